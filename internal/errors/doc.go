// Package errors provides error handling conventions for the awscmds CLI.
//
// It re-exports the helpers from github.com/cockroachdb/errors so callers
// need a single import, and adds the CLI-specific types:
//
//   - [ExitError] wraps an error with a process exit code and an optional
//     suggestion for the user.
//   - [ExecError] reports that an external tool could not be run or exited
//     with a non-zero status.
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid flags, configuration, etc.)
//   - ExitSystem (2): System-related error (missing tool, tool failure, I/O)
//
// # Checking for tool failures
//
//	var execErr *errors.ExecError
//	if errors.As(err, &execErr) {
//	    fmt.Printf("%s exited with %d\n", execErr.Command(), execErr.ExitCode)
//	}
package errors
