// Package main provides the entry point for the roster_report CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "roster_report",
	Short: "Department team and salary summaries from an employee roster",
	Long: `roster_report reads a semicolon-delimited employee roster and summarizes it by department:
the teams of each department and salary statistics (headcount, min, max, mean).

Run without a subcommand to open the interactive menu.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMenu,
}

var (
	configPath string
	rosterPath string
	reportPath string
	delimiter  string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.json file (values can be overridden by env vars and other flags)")
	rootCmd.PersistentFlags().StringVarP(&rosterPath, "in", "i", "", "Path to roster CSV file (default Corp_Summary.csv, env ROSTER_PATH)")
	rootCmd.PersistentFlags().StringVarP(&reportPath, "out", "o", "", "Path to report CSV file (default Report.csv, env REPORT_PATH)")
	rootCmd.PersistentFlags().StringVar(&delimiter, "delimiter", "", "Roster field separator (default ';', env ROSTER_DELIMITER)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print load and export summaries to stderr")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
