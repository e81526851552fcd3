package tableset

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the library.
var (
	// ErrClosed is returned when attempting to use a closed [ChromeEngine].
	ErrClosed = errors.New("tableset: engine is closed")
)

// CompileError reports a failed external compiler run. It wraps the
// process error and carries the tail of the compiler's log, which for
// LaTeX is where the actual diagnostic lives.
type CompileError struct {
	// Command is the executable that was invoked.
	Command string

	// Log holds the final lines of the compiler's combined output.
	Log string

	// Err is the underlying process error.
	Err error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("tableset: %s failed: %v", e.Command, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}
