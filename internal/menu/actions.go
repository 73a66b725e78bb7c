// Package menu implements the department report actions and the interactive
// numbered menu that drives them.
package menu

import (
	"errors"
	"fmt"
	"io"

	"github.com/jonathan/roster-summary/internal/aggregation"
	"github.com/jonathan/roster-summary/internal/export"
	"github.com/jonathan/roster-summary/internal/observability"
	"github.com/jonathan/roster-summary/internal/rendering"
	"github.com/jonathan/roster-summary/internal/types"
	"github.com/jonathan/roster-summary/internal/validation"
)

// Actions runs report actions over a loaded roster. Aggregates are computed
// fresh on every call.
type Actions struct {
	Records    []types.Record
	Whitelist  validation.Whitelist
	ReportPath string
	Out        io.Writer
	// Printer receives export summaries; nil disables them
	Printer *observability.Printer
}

// ShowTeams prints the teams table for the named departments, or for all
// departments when no names are given.
func (a *Actions) ShowTeams(names ...string) error {
	return a.Whitelist.Wrap(a.showTeams)(names...)
}

// ShowStats prints the salary table for the named departments, or for all
// departments when no names are given.
func (a *Actions) ShowStats(names ...string) error {
	return a.Whitelist.Wrap(a.showStats)(names...)
}

// Export writes the salary report to ReportPath.
func (a *Actions) Export() error {
	stats, err := aggregation.ComputeStats(a.Records)
	if err != nil {
		return err
	}

	if err := export.ExportStats(stats, a.ReportPath); err != nil {
		return err
	}

	if a.Printer != nil {
		a.Printer.PrintExportSummary(a.ReportPath, stats)
	}
	_, _ = fmt.Fprintf(a.Out, "\nОтчёт сохранён: %s\n", a.ReportPath)
	return nil
}

func (a *Actions) showTeams(names ...string) error {
	teams, err := aggregation.ComputeTeams(a.Records)
	if err != nil {
		return err
	}

	table, err := rendering.RenderTeams(teams, names)
	if err != nil {
		return err
	}

	_, err = io.WriteString(a.Out, table)
	return err
}

func (a *Actions) showStats(names ...string) error {
	stats, err := aggregation.ComputeStats(a.Records)
	if err != nil {
		return err
	}

	table, err := rendering.RenderStats(stats, names)
	if err != nil {
		return err
	}

	_, err = io.WriteString(a.Out, table)
	return err
}

// IsRecoverable reports whether err should end only the current action
// rather than the program.
func IsRecoverable(err error) bool {
	var notFound *validation.DepartmentNotFoundError
	var notLoaded *rendering.DepartmentNotLoadedError
	var exportErr *export.ExportError

	return errors.As(err, &notFound) || errors.As(err, &notLoaded) || errors.As(err, &exportErr)
}
