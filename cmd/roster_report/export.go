package main

import (
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write department salary statistics to the report file",
	Long:  "Writes one row per department (headcount, min, max and mean salary) to the report path, replacing any existing file.",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	actions, err := newActions(cmd, os.Stdout)
	if err != nil {
		return err
	}
	return actions.Export()
}
