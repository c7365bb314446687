// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jasonchan510ca/checklist-generator/internal/history"
	"github.com/jasonchan510ca/checklist-generator/pkg/types"
)

// renderConfig builds the run's RenderConfig from defaults, then the viper
// config surface, then flags. Flags win over config values.
func renderConfig(cmd *cobra.Command) (types.RenderConfig, error) {
	cfg := types.DefaultRenderConfig()

	if viper.IsSet("page.width") {
		cfg.Page.Width = viper.GetFloat64("page.width")
	}
	if viper.IsSet("page.height") {
		cfg.Page.Height = viper.GetFloat64("page.height")
	}
	if viper.IsSet("page.margin") {
		cfg.Page.Margin = viper.GetFloat64("page.margin")
	}
	if viper.IsSet("columns") {
		cfg.Columns = viper.GetInt("columns")
	}

	if err := applyTextConfig("header", &cfg.Header.TextStyle); err != nil {
		return cfg, err
	}
	if viper.IsSet("header.space_after") {
		cfg.Header.SpaceAfter = viper.GetFloat64("header.space_after")
	}
	if err := applyTextConfig("item", &cfg.Item.TextStyle); err != nil {
		return cfg, err
	}
	if viper.IsSet("item.line_height") {
		cfg.Item.LineHeight = viper.GetFloat64("item.line_height")
	}

	flagOverrides(cmd, &cfg)

	if cfg.Page.Width <= 0 || cfg.Page.Height <= 0 {
		return cfg, fmt.Errorf("page size must be positive (got %gx%g)", cfg.Page.Width, cfg.Page.Height)
	}
	if cfg.Page.Margin < 0 || 2*cfg.Page.Margin >= cfg.Page.Width {
		return cfg, fmt.Errorf("margin %g leaves no printable width on a %g pt page", cfg.Page.Margin, cfg.Page.Width)
	}
	if cfg.Columns < 1 {
		cfg.Columns = 1
	}
	return cfg, nil
}

// applyTextConfig reads <key>.font, <key>.size, and <key>.color.
func applyTextConfig(key string, style *types.TextStyle) error {
	if viper.IsSet(key + ".font") {
		style.Family, style.Style = types.ParseFontName(viper.GetString(key + ".font"))
	}
	if viper.IsSet(key + ".size") {
		style.Size = viper.GetFloat64(key + ".size")
	}
	if viper.IsSet(key + ".color") {
		c, err := types.ParseColor(viper.GetString(key + ".color"))
		if err != nil {
			return fmt.Errorf("config %s.color: %w", key, err)
		}
		style.Color = c
	}
	return nil
}

func flagOverrides(cmd *cobra.Command, cfg *types.RenderConfig) {
	if cmd.Flags().Changed("page-width") {
		cfg.Page.Width, _ = cmd.Flags().GetFloat64("page-width")
	}
	if cmd.Flags().Changed("page-height") {
		cfg.Page.Height, _ = cmd.Flags().GetFloat64("page-height")
	}
	if cmd.Flags().Changed("margin") {
		cfg.Page.Margin, _ = cmd.Flags().GetFloat64("margin")
	}
	if cmd.Flags().Changed("columns") {
		cfg.Columns, _ = cmd.Flags().GetInt("columns")
	}
}

// historyConfig resolves the ledger location from config, with a local
// default next to the working directory.
func historyConfig() history.Config {
	dir := viper.GetString("history.dir")
	if dir == "" {
		dir = ".checklist-gen"
	}
	return history.Config{Dir: dir}
}
