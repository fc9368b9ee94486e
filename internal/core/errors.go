package core

import (
	"fmt"
	"strings"
)

// ValidationError indicates required text fields were empty or blank on add
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("required field(s) missing: %s", strings.Join(e.Fields, ", "))
}

// NotFoundError indicates no book matched a title lookup
type NotFoundError struct {
	Title string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no book found with title %q", e.Title)
}

// PersistenceError wraps a failure to write the library to its backing store.
// The in-memory library keeps the mutation, so nothing is lost until the
// process exits; callers report "could not save" and carry on.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("could not save library: %v", e.Err)
	}

	return fmt.Sprintf("could not save library after %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
