package errors

import (
	"fmt"
	"strings"
)

// ExecError reports a failed invocation of an external tool. It covers both
// a tool that could not be started (not on PATH) and one that exited with a
// non-zero status; callers do not distinguish the two.
type ExecError struct {
	// Args is the full argv, starting with the binary.
	Args []string

	// ExitCode is the process exit status, or -1 if the process never ran.
	ExitCode int

	// Stderr holds whatever the tool wrote to standard error.
	Stderr string

	// Err is the underlying error from the process runner.
	Err error
}

// Command returns the argv joined by spaces.
func (e *ExecError) Command() string {
	return strings.Join(e.Args, " ")
}

func (e *ExecError) Error() string {
	if e.ExitCode < 0 {
		return fmt.Sprintf("command %q could not be run: %v", e.Command(), e.Err)
	}
	return fmt.Sprintf("command %q returned non-zero exit status %d", e.Command(), e.ExitCode)
}

// Unwrap returns the underlying runner error.
func (e *ExecError) Unwrap() error {
	return e.Err
}

// IsExecError reports whether err has an *ExecError in its chain.
func IsExecError(err error) bool {
	var execErr *ExecError
	return As(err, &execErr)
}
