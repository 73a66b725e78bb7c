// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jonathan/roster-summary/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	for _, line := range lines {
		// Truncate long lines
		if utf8.RuneCountInString(line) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRosterSummary outputs what was loaded from the roster file.
func (p *Printer) PrintRosterSummary(runID uuid.UUID, path string, records []types.Record, teams *types.DepartmentTeams) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Run:          %s\n", runID))
	sb.WriteString(fmt.Sprintf("Source:       %s\n", path))
	sb.WriteString(fmt.Sprintf("Records:      %d\n", len(records)))

	if teams != nil {
		sb.WriteString(fmt.Sprintf("Departments:  %d\n", teams.Len()))
		departments := teams.Departments()
		count := min(len(departments), maxItemsToShow)
		for i := 0; i < count; i++ {
			set, _ := teams.Get(departments[i])
			sb.WriteString(fmt.Sprintf("  • %s (%d teams)\n", departments[i], set.Len()))
		}
		if len(departments) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(departments)-maxItemsToShow))
		}
	}

	p.printBox("ROSTER LOADED", sb.String())
}

// PrintExportSummary outputs where the report went and what it contains.
func (p *Printer) PrintExportSummary(path string, stats *types.DepartmentStats) {
	if stats == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Report:       %s\n", path))
	sb.WriteString(fmt.Sprintf("Departments:  %d\n", stats.Len()))

	total := 0
	for _, name := range stats.Departments() {
		s, _ := stats.Get(name)
		total += s.Count
	}
	sb.WriteString(fmt.Sprintf("Employees:    %d\n", total))

	p.printBox("REPORT EXPORTED", sb.String())
}
