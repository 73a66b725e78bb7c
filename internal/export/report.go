package export

import (
	"encoding/csv"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/jonathan/roster-summary/internal/types"
)

// DefaultReportPath is where the report is written when no path is configured.
const DefaultReportPath = "Report.csv"

// Delimiter is the field separator of the report.
const Delimiter = ';'

// Header is the first row of every report.
var Header = []string{"Департамент", "Численность", "Мин. Зарплата", "Макс. Зарплата", "Сред. Зарплата"}

// ExportStats writes stats to path, replacing any existing file.
func ExportStats(stats *types.DepartmentStats, path string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return &ExportError{Path: path, Cause: err}
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = &ExportError{Path: path, Cause: cerr}
		}
	}()

	if err := WriteReport(file, stats); err != nil {
		return &ExportError{Path: path, Cause: err}
	}

	log.Printf("Report written to %s. Departments: %d", path, stats.Len())
	return nil
}

// WriteReport writes the header and one row per department in stored order.
func WriteReport(w io.Writer, stats *types.DepartmentStats) error {
	writer := csv.NewWriter(w)
	writer.Comma = Delimiter
	writer.UseCRLF = true

	if err := writer.Write(Header); err != nil {
		return err
	}

	for _, name := range stats.Departments() {
		s, _ := stats.Get(name)
		row := []string{
			name,
			strconv.Itoa(s.Count),
			strconv.Itoa(s.Min),
			strconv.Itoa(s.Max),
			FormatMean(s.Mean),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// FormatMean renders v as the shortest decimal that round-trips, keeping a
// trailing ".0" on integral values (2000 -> "2000.0"). Very large and very
// small magnitudes use exponent notation.
func FormatMean(v float64) string {
	abs := math.Abs(v)
	if math.IsInf(v, 0) || math.IsNaN(v) || abs >= 1e16 || (abs != 0 && abs < 1e-4) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
