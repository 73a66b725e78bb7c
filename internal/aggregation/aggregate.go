package aggregation

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jonathan/roster-summary/internal/types"
)

// accumulator holds the running values of one department during a scan.
type accumulator struct {
	count int
	min   int
	max   int
	sum   int64
}

// ComputeTeams groups the distinct team names of every department.
// Departments appear in order of first occurrence.
func ComputeTeams(records []types.Record) (*types.DepartmentTeams, error) {
	teams := types.NewDepartmentTeams()

	for _, rec := range records {
		if err := checkWidth(rec); err != nil {
			return nil, err
		}
		teams.Ensure(rec.Department()).Add(rec.Team())
	}

	return teams, nil
}

// ComputeStats computes employee count and min, max and mean salary of every
// department in a single pass. Departments appear in order of first occurrence.
func ComputeStats(records []types.Record) (*types.DepartmentStats, error) {
	order := make([]string, 0)
	accs := make(map[string]*accumulator)

	for _, rec := range records {
		if err := checkWidth(rec); err != nil {
			return nil, err
		}
		salary, err := parseSalary(rec)
		if err != nil {
			return nil, err
		}

		name := rec.Department()
		acc, ok := accs[name]
		if !ok {
			acc = &accumulator{min: math.MaxInt, max: math.MinInt}
			accs[name] = acc
			order = append(order, name)
		}

		acc.count++
		if salary < acc.min {
			acc.min = salary
		}
		if salary > acc.max {
			acc.max = salary
		}
		acc.sum += int64(salary)
	}

	// Means are only published once the whole input has been seen.
	stats := types.NewDepartmentStats()
	for _, name := range order {
		acc := accs[name]
		stats.Set(name, types.Stats{
			Count: acc.count,
			Min:   acc.min,
			Max:   acc.max,
			Mean:  float64(acc.sum) / float64(acc.count),
		})
	}

	return stats, nil
}

func checkWidth(rec types.Record) error {
	if len(rec.Fields) < types.MinFields {
		return &ParseError{
			Line:    rec.Line,
			Field:   len(rec.Fields),
			Message: fmt.Sprintf("expected at least %d fields, got %d", types.MinFields, len(rec.Fields)),
		}
	}
	return nil
}

func parseSalary(rec types.Record) (int, error) {
	raw := rec.Field(types.SalaryField)
	salary, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &ParseError{
			Line:    rec.Line,
			Field:   types.SalaryField,
			Message: fmt.Sprintf("salary %q is not an integer", raw),
			Cause:   err,
		}
	}
	return salary, nil
}
