package rendering

import (
	"fmt"
	"strings"

	"github.com/jonathan/roster-summary/internal/types"
	"github.com/jonathan/roster-summary/internal/validation"
)

const (
	// teamsWidth is the rule width of the teams table
	teamsWidth = 70
	// statsWidth is the rule width of the stats table
	statsWidth = 80
	// nameColumn is the width of the department column in both tables
	nameColumn = 13
)

// Column labels.
const (
	LabelDepartment = "Департамент"
	LabelTeams      = "Отделы"
	LabelCount      = "Численность"
	LabelMinSalary  = "Мин. Зарплата"
	LabelMaxSalary  = "Макс. Зарплата"
	LabelMeanSalary = "Сред. Зарплата"
)

// RenderTeams renders the teams of every department in filter, or of all
// departments in stored order when filter is empty.
func RenderTeams(teams *types.DepartmentTeams, filter []string) (string, error) {
	names, err := selectNames(teams.Departments(), filter, func(name string) bool {
		_, ok := teams.Get(name)
		return ok
	})
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	rule := strings.Repeat("=", teamsWidth)
	sep := strings.Repeat("-", teamsWidth)

	sb.WriteString("\n")
	sb.WriteString(rule + "\n")
	sb.WriteString(fmt.Sprintf("%-*s| %s\n", nameColumn, LabelDepartment, LabelTeams))
	sb.WriteString(rule + "\n")

	for _, name := range names {
		set, _ := teams.Get(name)
		sb.WriteString(fmt.Sprintf("%-*s| %s\n", nameColumn, name, strings.Join(set.Names(), ", ")))
		sb.WriteString(sep + "\n")
	}

	return sb.String(), nil
}

// RenderStats renders salary statistics of every department in filter, or of
// all departments in stored order when filter is empty. Means are printed
// with four decimals.
func RenderStats(stats *types.DepartmentStats, filter []string) (string, error) {
	names, err := selectNames(stats.Departments(), filter, func(name string) bool {
		_, ok := stats.Get(name)
		return ok
	})
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	rule := strings.Repeat("=", statsWidth)
	sep := strings.Repeat("-", statsWidth)

	sb.WriteString("\n")
	sb.WriteString(rule + "\n")
	sb.WriteString(fmt.Sprintf("%-*s| %-13s| %-13s| %-15s|%-13s\n",
		nameColumn, LabelDepartment, LabelCount, LabelMinSalary, LabelMaxSalary, LabelMeanSalary))
	sb.WriteString(rule + "\n")

	for _, name := range names {
		s, _ := stats.Get(name)
		sb.WriteString(fmt.Sprintf("%-*s| %-13d| %-13d| %-15d| %.4f\n",
			nameColumn, name, s.Count, s.Min, s.Max, s.Mean))
		sb.WriteString(sep + "\n")
	}

	return sb.String(), nil
}

// selectNames resolves the rows to print. Filter names are title-cased and
// must be present; an empty filter selects all of stored.
func selectNames(stored []string, filter []string, present func(string) bool) ([]string, error) {
	if len(filter) == 0 {
		return stored, nil
	}

	names := make([]string, 0, len(filter))
	for _, raw := range filter {
		name := validation.TitleCase(raw)
		if !present(name) {
			return nil, &DepartmentNotLoadedError{Name: name}
		}
		names = append(names, name)
	}
	return names, nil
}
