// SPDX-License-Identifier: MIT

package dataset

import "fmt"

// Dataset is an ordered collection of named variables. Insertion order is
// preserved so iteration and error reporting stay deterministic.
//
// Dataset is not safe for concurrent mutation; the numeric pipeline only
// ever reads from it.
type Dataset struct {
	vars  map[string]*Variable
	order []string // insertion order, one entry per key in vars
}

// New returns an empty dataset.
func New() *Dataset {
	return &Dataset{vars: make(map[string]*Variable)}
}

// Add registers v under name. The name must be non-empty and unused;
// the variable must be non-nil.
func (ds *Dataset) Add(name string, v *Variable) error {
	if name == "" {
		return fmt.Errorf("Add: %w", ErrBadName)
	}
	if v == nil {
		return fmt.Errorf("Add(%q): %w", name, ErrNilVariable)
	}
	if _, ok := ds.vars[name]; ok {
		return fmt.Errorf("Add(%q): %w", name, ErrDuplicateVariable)
	}
	ds.vars[name] = v
	ds.order = append(ds.order, name)

	return nil
}

// Get returns the variable registered under name, or ErrUnknownVariable.
func (ds *Dataset) Get(name string) (*Variable, error) {
	v, ok := ds.vars[name]
	if !ok {
		return nil, fmt.Errorf("Get(%q): %w", name, ErrUnknownVariable)
	}

	return v, nil
}

// Has reports whether a variable is registered under name.
func (ds *Dataset) Has(name string) bool {
	_, ok := ds.vars[name]

	return ok
}

// Names returns the variable names in insertion order.
func (ds *Dataset) Names() []string {
	return append([]string(nil), ds.order...)
}

// Len returns the number of registered variables.
func (ds *Dataset) Len() int { return len(ds.order) }
