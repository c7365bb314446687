// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jasonchan510ca/checklist-generator/internal/history"
	"github.com/jasonchan510ca/checklist-generator/internal/layout"
	"github.com/jasonchan510ca/checklist-generator/internal/loader"
	"github.com/jasonchan510ca/checklist-generator/internal/render"
	"github.com/jasonchan510ca/checklist-generator/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render a checklist source file to a printable PDF",
	Long: `Generate loads a checklist source (XML or YAML by extension), flows its
category blocks into a multi-column page grid, and writes a paginated PDF.

The XML source has two schema variants: "inline" reads title and column
count from child elements; "attribute" reads the title from a root
attribute and takes the column count from --columns or config.`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	if input == "" {
		input = viper.GetString("input")
	}
	if input == "" {
		input = "checklist.xml"
	}
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = viper.GetString("output")
	}
	if output == "" {
		output = "checklist.pdf"
	}

	cfg, err := renderConfig(cmd)
	if err != nil {
		return err
	}
	for _, style := range []types.TextStyle{cfg.Title, cfg.Header.TextStyle, cfg.Item.TextStyle} {
		if !render.FontAvailable(style) {
			return fmt.Errorf("font family %q is not a PDF core font", style.Family)
		}
	}

	schemaName, _ := cmd.Flags().GetString("schema")
	if schemaName == "" {
		schemaName = viper.GetString("schema")
	}
	schema, err := loader.ParseSchemaVariant(schemaName)
	if err != nil {
		return err
	}

	doc, err := loader.Load(input, loader.Options{Schema: schema, Columns: cfg.Columns})
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Parsed %s: %d column(s), %d categories, %d items.\n",
		input, doc.Columns, len(doc.Categories), doc.ItemCount())

	pages, stats := layout.Flow(doc, cfg)
	for _, name := range stats.Overflowed {
		fmt.Fprintf(os.Stderr, "warning: category %q is taller than a column and overflows the bottom margin\n", name)
	}

	if err := render.WritePDF(output, pages); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Checklist written to %s (%d page(s)).\n", output, len(pages))

	if noHistory, _ := cmd.Flags().GetBool("no-history"); !noHistory {
		recordRun(input, output, doc, len(pages))
	}
	return nil
}

// recordRun appends the run to the history ledger. Ledger trouble never
// fails a run that already produced its artifact.
func recordRun(input, output string, doc types.ChecklistDocument, pages int) {
	store, err := history.Open(historyConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open history: %v\n", err)
		return
	}
	defer store.Close()

	_, err = store.Record(context.Background(), history.Run{
		InputPath:  input,
		OutputPath: output,
		Title:      doc.Title,
		Pages:      pages,
		Categories: len(doc.Categories),
		Items:      doc.ItemCount(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record run: %v\n", err)
	}
}

func init() {
	generateCmd.Flags().String("input", "", "checklist source file (XML or YAML; default checklist.xml)")
	generateCmd.Flags().String("output", "", "output PDF path (default checklist.pdf)")
	generateCmd.Flags().String("schema", "", "XML schema variant: inline or attribute")
	generateCmd.Flags().Int("columns", 1, "column count when the document does not supply one")
	generateCmd.Flags().Float64("page-width", 0, "page width in points")
	generateCmd.Flags().Float64("page-height", 0, "page height in points")
	generateCmd.Flags().Float64("margin", 0, "page margin in points")
	generateCmd.Flags().Bool("no-history", false, "skip recording the run in the history ledger")

	rootCmd.AddCommand(generateCmd)
}
