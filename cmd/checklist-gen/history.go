// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jasonchan510ca/checklist-generator/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded generation runs",
	Long: `History lists past successful generations from the local ledger:
input and output paths, title, and page/category/item counts.`,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := history.Open(historyConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.List(context.Background(), limit)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatHistoryOutput(runs, jsonOutput)
}

func formatHistoryOutput(runs []history.Run, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-19s  %-24s  %-24s  %-5s  %-4s  %s\n",
		"ID", "When", "Input", "Output", "Pages", "Cats", "Items")
	for _, r := range runs {
		input := r.InputPath
		if len(input) > 24 {
			input = "..." + input[len(input)-21:]
		}
		output := r.OutputPath
		if len(output) > 24 {
			output = "..." + output[len(output)-21:]
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-19s  %-24s  %-24s  %-5d  %-4d  %d\n",
			r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			input, output, r.Pages, r.Categories, r.Items)
	}
	fmt.Fprintf(os.Stdout, "\n%d run(s)\n", len(runs))
	return nil
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to list")
	historyCmd.Flags().Bool("json", false, "output runs as JSON")

	rootCmd.AddCommand(historyCmd)
}
