// Package types provides type definitions for structured data used throughout the roster-summary system.
package types

// Column positions interpreted in a roster row.
const (
	DepartmentField = 1
	TeamField       = 2
	SalaryField     = 5

	// MinFields is the smallest row width the aggregations accept.
	MinFields = SalaryField + 1
)

// Record is one data row of the roster file.
type Record struct {
	// Line is the 1-based line number in the source file (0 if unknown)
	Line int
	// Fields holds the raw column values in file order
	Fields []string
}

// Field returns the value at index i, or "" if the row is too short.
func (r Record) Field(i int) string {
	if i < 0 || i >= len(r.Fields) {
		return ""
	}
	return r.Fields[i]
}

// Department returns the department column of the record.
func (r Record) Department() string { return r.Field(DepartmentField) }

// Team returns the team column of the record.
func (r Record) Team() string { return r.Field(TeamField) }

// TeamSet is a set of distinct team names. Members are kept in the order they
// were first added.
type TeamSet struct {
	names []string
	index map[string]struct{}
}

// NewTeamSet creates an empty TeamSet.
func NewTeamSet() *TeamSet {
	return &TeamSet{index: make(map[string]struct{})}
}

// Add inserts name; it reports whether the name was new.
func (s *TeamSet) Add(name string) bool {
	if _, ok := s.index[name]; ok {
		return false
	}
	s.index[name] = struct{}{}
	s.names = append(s.names, name)
	return true
}

// Contains reports whether name is a member.
func (s *TeamSet) Contains(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Len returns the number of distinct teams.
func (s *TeamSet) Len() int { return len(s.names) }

// Names returns a copy of the members.
func (s *TeamSet) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// DepartmentTeams maps department names to their team sets, keeping
// departments in first-occurrence order.
type DepartmentTeams struct {
	order []string
	teams map[string]*TeamSet
}

// NewDepartmentTeams creates an empty DepartmentTeams.
func NewDepartmentTeams() *DepartmentTeams {
	return &DepartmentTeams{teams: make(map[string]*TeamSet)}
}

// Ensure returns the team set for department, creating it on first sight.
func (d *DepartmentTeams) Ensure(department string) *TeamSet {
	set, ok := d.teams[department]
	if !ok {
		set = NewTeamSet()
		d.teams[department] = set
		d.order = append(d.order, department)
	}
	return set
}

// Get looks up the team set of a department.
func (d *DepartmentTeams) Get(department string) (*TeamSet, bool) {
	set, ok := d.teams[department]
	return set, ok
}

// Departments returns department names in first-occurrence order.
func (d *DepartmentTeams) Departments() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Len returns the number of departments.
func (d *DepartmentTeams) Len() int { return len(d.order) }

// Stats holds the salary statistics of one department.
type Stats struct {
	Count int
	Min   int
	Max   int
	Mean  float64
}

// DepartmentStats maps department names to their Stats, keeping departments
// in first-occurrence order.
type DepartmentStats struct {
	order []string
	stats map[string]Stats
}

// NewDepartmentStats creates an empty DepartmentStats.
func NewDepartmentStats() *DepartmentStats {
	return &DepartmentStats{stats: make(map[string]Stats)}
}

// Set stores s for department. A department stored for the first time is
// appended to the iteration order.
func (d *DepartmentStats) Set(department string, s Stats) {
	if _, ok := d.stats[department]; !ok {
		d.order = append(d.order, department)
	}
	d.stats[department] = s
}

// Get looks up the stats of a department.
func (d *DepartmentStats) Get(department string) (Stats, bool) {
	s, ok := d.stats[department]
	return s, ok
}

// Departments returns department names in first-occurrence order.
func (d *DepartmentStats) Departments() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Len returns the number of departments.
func (d *DepartmentStats) Len() int { return len(d.order) }
