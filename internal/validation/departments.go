package validation

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// canonicalDepartments are the recognized department names, in display order.
var canonicalDepartments = [...]string{
	"Разработка",
	"Маркетинг",
	"Бухгалтерия",
	"Аналитика",
	"Продажи",
}

// DepartmentAction is a presentation call that takes an optional list of
// department names. No names means all departments.
type DepartmentAction func(names ...string) error

// Whitelist is an immutable set of recognized department names.
type Whitelist struct {
	names []string
	index map[string]struct{}
}

// NewWhitelist builds a Whitelist from canonical (already title-cased) names.
func NewWhitelist(names ...string) Whitelist {
	w := Whitelist{
		names: make([]string, 0, len(names)),
		index: make(map[string]struct{}, len(names)),
	}
	for _, name := range names {
		if _, ok := w.index[name]; ok {
			continue
		}
		w.index[name] = struct{}{}
		w.names = append(w.names, name)
	}
	return w
}

// DefaultWhitelist returns the five recognized departments.
func DefaultWhitelist() Whitelist {
	return NewWhitelist(canonicalDepartments[:]...)
}

// Names returns the canonical names in order.
func (w Whitelist) Names() []string {
	out := make([]string, len(w.names))
	copy(out, w.names)
	return out
}

// Contains reports whether the title-cased form of name is recognized.
func (w Whitelist) Contains(name string) bool {
	_, ok := w.index[TitleCase(name)]
	return ok
}

// Check returns a *DepartmentNotFoundError for the first unrecognized name.
// An empty list is always valid.
func (w Whitelist) Check(names ...string) error {
	for _, name := range names {
		if !w.Contains(name) {
			return &DepartmentNotFoundError{Name: name}
		}
	}
	return nil
}

// Wrap returns an action that validates its arguments before delegating to
// action. When validation fails, action is never invoked.
func (w Whitelist) Wrap(action DepartmentAction) DepartmentAction {
	return func(names ...string) error {
		if err := w.Check(names...); err != nil {
			return err
		}
		return action(names...)
	}
}

// TitleCase upper-cases the first letter of every word and lower-cases the rest.
func TitleCase(name string) string {
	return cases.Title(language.Russian).String(name)
}
