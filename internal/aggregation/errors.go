// Package aggregation groups roster records by department and computes team
// sets and salary statistics.
package aggregation

import "fmt"

// ParseError represents a record that cannot be aggregated: it is too short
// or its salary is not an integer.
type ParseError struct {
	Line    int
	Field   int
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("parse error: line %d, field %d: %s", e.Line, e.Field, e.Message)
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
