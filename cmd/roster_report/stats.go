package main

import (
	"os"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats [DEPARTMENT...]",
	Short: "Print salary statistics of each department",
	Long:  "Prints headcount and min, max and mean salary for the named departments (case-insensitive), or for every department in roster order when none are named.",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	actions, err := newActions(cmd, os.Stdout)
	if err != nil {
		return err
	}
	return actions.ShowStats(args...)
}
