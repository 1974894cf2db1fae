package dispatch

import (
	"errors"
	"fmt"
)

// ErrSpawn wraps OS process-creation failures: permissions, missing file,
// malformed path.
var ErrSpawn = errors.New("process creation failed")

// InterpreterNotFoundError reports a PATH search that came up empty.
type InterpreterNotFoundError struct {
	// Name is the interpreter or viewer that could not be resolved.
	Name string

	// Suggestion is an install hint for well-known interpreters, possibly
	// empty.
	Suggestion string
}

func (e *InterpreterNotFoundError) Error() string {
	return fmt.Sprintf("interpreter %q not found on PATH", e.Name)
}
