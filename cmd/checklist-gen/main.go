// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the checklist-gen CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the checklist-gen CLI.
var rootCmd = &cobra.Command{
	Use:   "checklist-gen",
	Short: "Render structured checklists as printable PDFs",
	Long: `checklist-gen reads a structured checklist description (title, optional
column count, named categories of items with bullet styles) and renders it
as a paginated, multi-column printable PDF.

Page geometry and the two fixed visual styles are configured once per run,
through a config file, environment, or flags. Successful runs are recorded
in a local history ledger.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./checklist-gen.yaml or ~/.config/checklist-gen/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("checklist-gen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "checklist-gen"))
		}
	}

	viper.SetEnvPrefix("CHECKLIST_GEN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
