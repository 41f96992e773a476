package internals

// This file handles the error collector obj and the error kinds raised
// during semantic analysis. All of them are user-facing except
// InternalError, which is only ever used as a panic payload for
// invariant breaks in the compiler itself.

import (
	"fmt"

	"cinder/object"
)

type ErrorCollector struct {
	Errors []error
}

func NewErrorCollector() *ErrorCollector {
	return &ErrorCollector{
		Errors: make([]error, 0),
	}
}

func (ec *ErrorCollector) Add(err error) {
	ec.Errors = append(ec.Errors, err)
}

func (ec *ErrorCollector) HasErrors() bool {
	return len(ec.Errors) > 0
}

// At prefixes err with a source position so collected diagnostics can
// be traced back to the file. The original error stays reachable
// through errors.As.
func At(file string, row, col int, err error) error {
	return fmt.Errorf("%s:%d:%d: %w", file, row, col, err)
}

// StructureError reports a name the language refuses outright: bad
// identifier characters, or a reserved word used while a scope is open.
type StructureError struct {
	Msg string
}

func (e *StructureError) Error() string { return e.Msg }

// CollisionError reports an attempt to bind a name that is already
// bound. Builtin is set when the existing binding came from the
// bootstrap phase and so can never be shadowed; otherwise Prev holds
// the live user declaration being redeclared.
type CollisionError struct {
	Name    string
	Builtin bool
	Prev    object.Definition
}

func (e *CollisionError) Error() string {
	if e.Builtin {
		return fmt.Sprintf("cannot assign to '%s', it is a builtin", e.Name)
	}
	return fmt.Sprintf("'%s' has already been declared as a %s", e.Name, e.Prev.Kind())
}

// UndeclaredError reports a lookup of a name with no live binding.
type UndeclaredError struct {
	Name string
}

func (e *UndeclaredError) Error() string {
	return fmt.Sprintf("'%s' has not been declared", e.Name)
}

// InternalError marks a bug in the compiler's own traversal logic,
// like closing a scope that was never opened. It is panicked with, not
// returned, and must never be recovered into normal diagnostics.
type InternalError struct {
	Msg string
}

func (e *InternalError) Error() string { return e.Msg }
