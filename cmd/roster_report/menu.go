package main

import (
	"os"

	"github.com/jonathan/roster-summary/internal/menu"
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the interactive menu",
	Long:  "Loads the roster once and shows a numbered menu: department teams, salary statistics, report export and exit.",
	Args:  cobra.NoArgs,
	RunE:  runMenu,
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

func runMenu(cmd *cobra.Command, _ []string) error {
	actions, err := newActions(cmd, os.Stdout)
	if err != nil {
		return err
	}

	session := &menu.Session{Actions: *actions, In: os.Stdin}
	return session.Run()
}
