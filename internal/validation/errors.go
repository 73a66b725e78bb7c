// Package validation checks user-supplied department names against the fixed
// set of recognized departments.
package validation

import "fmt"

// DepartmentNotFoundMessage is shown to users when a department name is not recognized.
const DepartmentNotFoundMessage = "Такого Департамента не существует"

// DepartmentNotFoundError reports a department name outside the whitelist
type DepartmentNotFoundError struct {
	// Name is the name as the user typed it
	Name string
}

func (e *DepartmentNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", DepartmentNotFoundMessage, e.Name)
}
