package columns

import (
	"errors"
	"fmt"
)

var (
	// ErrUnresolvableColumn is returned when a raw column configuration
	// matches none of the resolution rules.
	ErrUnresolvableColumn = errors.New("unresolvable column configuration")
	// ErrColumnArity is returned when a table does not have exactly one
	// observed value column, or exactly one measure type column when the
	// observed value's measure must be back-filled.
	ErrColumnArity = errors.New("column arity violation")
)

// UnresolvableError identifies the column whose configuration could not be
// resolved.
type UnresolvableError struct {
	Title string
	Raw   any
}

func (e *UnresolvableError) Error() string {
	return fmt.Sprintf("column %q: unmatched column definition: %v", e.Title, e.Raw)
}

// Unwrap lets errors.Is match ErrUnresolvableColumn.
func (e *UnresolvableError) Unwrap() error {
	return ErrUnresolvableColumn
}

// ArityError reports how many columns of a role a table actually has.
type ArityError struct {
	Role  Role
	Count int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("found %d %s columns, expected 1", e.Count, e.Role)
}

// Unwrap lets errors.Is match ErrColumnArity.
func (e *ArityError) Unwrap() error {
	return ErrColumnArity
}
