package main

import (
	"os"

	"github.com/spf13/cobra"
)

var teamsCmd = &cobra.Command{
	Use:   "teams [DEPARTMENT...]",
	Short: "Print the teams of each department",
	Long:  "Prints the teams table for the named departments (case-insensitive), or for every department in roster order when none are named.",
	RunE:  runTeams,
}

func init() {
	rootCmd.AddCommand(teamsCmd)
}

func runTeams(cmd *cobra.Command, args []string) error {
	actions, err := newActions(cmd, os.Stdout)
	if err != nil {
		return err
	}
	return actions.ShowTeams(args...)
}
