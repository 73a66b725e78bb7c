package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/jonathan/roster-summary/internal/types"
)

// DefaultDelimiter is the field separator of roster files.
const DefaultDelimiter = ';'

// LoadRoster reads every data row of the roster at path, skipping the header.
func LoadRoster(path string, delimiter rune) ([]types.Record, error) {
	start := time.Now()

	file, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to open file %s", path),
			Cause:   err,
		}
	}
	defer file.Close()

	records, err := ReadRecords(file, delimiter)
	if err != nil {
		return nil, err
	}

	log.Printf("Roster loaded from %s. Rows: %d. Time: %v", path, len(records), time.Since(start))
	return records, nil
}

// ReadRecords decodes delimited rows from r. The first row is treated as the
// header and discarded. Rows may differ in width. Quotes are read leniently:
// a bare quote inside an unquoted field is kept as text and an unterminated
// quoted field runs to the end of input.
func ReadRecords(r io.Reader, delimiter rune) ([]types.Record, error) {
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}

	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &LoadError{Message: "missing header row"}
		}
		return nil, &LoadError{Message: "failed to read header row", Cause: err}
	}

	records := make([]types.Record, 0, 64)
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &LoadError{Message: "failed to read row", Cause: err}
		}

		line, _ := reader.FieldPos(0)
		records = append(records, types.Record{Line: line, Fields: fields})
	}

	return records, nil
}
