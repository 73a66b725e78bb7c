package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/jonathan/roster-summary/internal/aggregation"
	"github.com/jonathan/roster-summary/internal/config"
	"github.com/jonathan/roster-summary/internal/menu"
	"github.com/jonathan/roster-summary/internal/observability"
	"github.com/jonathan/roster-summary/internal/roster"
	"github.com/jonathan/roster-summary/internal/validation"
	"github.com/spf13/cobra"
)

// resolveConfig merges, in increasing priority: defaults, the --config file,
// environment variables and explicitly set flags.
func resolveConfig(cmd *cobra.Command, lookupEnv func(string) (string, bool)) (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loadedCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
	}

	cfg.ApplyEnv(lookupEnv)

	// Only override if the flag was explicitly set
	flags := cmd.Flags()
	if flags.Changed("in") {
		cfg.RosterPath = rosterPath
	}
	if flags.Changed("out") {
		cfg.ReportPath = reportPath
	}
	if flags.Changed("delimiter") {
		cfg.Delimiter = delimiter
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}

	merged := cfg.MergeWithDefaults(config.Defaults())
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}

	return merged, nil
}

// newActions resolves configuration and loads the roster. A roster that cannot
// be loaded is fatal.
func newActions(cmd *cobra.Command, out io.Writer) (*menu.Actions, error) {
	cfg, err := resolveConfig(cmd, os.LookupEnv)
	if err != nil {
		return nil, err
	}

	records, err := roster.LoadRoster(cfg.RosterPath, cfg.DelimiterRune())
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	actions := &menu.Actions{
		Records:    records,
		Whitelist:  validation.DefaultWhitelist(),
		ReportPath: cfg.ReportPath,
		Out:        out,
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		_, _ = fmt.Fprintf(os.Stderr, "Config: %s\n", cfg)

		// Aggregation errors surface again from the actions; the summary skips teams.
		teams, err := aggregation.ComputeTeams(records)
		if err != nil {
			log.Printf("Roster summary without departments: %v", err)
		}
		printer.PrintRosterSummary(uuid.New(), cfg.RosterPath, records, teams)
		actions.Printer = printer
	}

	return actions, nil
}
