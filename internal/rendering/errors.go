// Package rendering formats department aggregates as fixed-width text tables.
package rendering

import "fmt"

// DepartmentNotLoadedError reports a recognized department that has no
// records in the loaded roster.
type DepartmentNotLoadedError struct {
	Name string
}

func (e *DepartmentNotLoadedError) Error() string {
	return fmt.Sprintf("department %s has no records in the roster", e.Name)
}
