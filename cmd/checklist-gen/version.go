package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of checklist-gen",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("checklist-gen %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
