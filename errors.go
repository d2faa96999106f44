// errors.go
package libprobe

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the header or every binary variant was missing
	ErrNotFound = errors.New("library not found")

	// ErrInvalidSpec indicates a library spec is missing required fields
	ErrInvalidSpec = errors.New("invalid library spec")
)

// Error reports a detection that did not yield a usable library
type Error struct {
	Op      string // Operation that failed (detect, check)
	Library string // Library name, e.g. libcmaes
	Root    string // Override root that was searched; empty means system directories
	Err     error  // Underlying error
}

func (e *Error) Error() string {
	if e.Library == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s under %s: %v", e.Op, e.Library, e.where(), e.Err)
}

func (e *Error) where() string {
	if e.Root == "" {
		return "system directories"
	}
	return e.Root
}

func (e *Error) Unwrap() error {
	return e.Err
}
