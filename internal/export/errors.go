// Package export writes department salary statistics to a delimited report file.
package export

import "fmt"

// ExportError represents a failure creating or writing the report file
type ExportError struct {
	Path  string
	Cause error
}

func (e *ExportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("export error: %s: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("export error: %s", e.Path)
}

func (e *ExportError) Unwrap() error {
	return e.Cause
}
