// Package awscli runs the AWS CLI's help pages and lists the services and
// commands they advertise.
package awscli

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/thoreinstein/awscmds/internal/errors"
	"github.com/thoreinstein/awscmds/internal/logging"
)

// DefaultBinary is the executable looked up on PATH when none is configured.
const DefaultBinary = "aws"

// Runner runs the external tool with args and returns its standard output.
type Runner interface {
	Run(ctx context.Context, args ...string) (string, error)
}

// ExecRunner runs Binary as a child process and waits for it to exit.
// Any failure to start the process or a non-zero exit status is reported
// as an *errors.ExecError.
type ExecRunner struct {
	// Binary is the executable name or path. Empty means DefaultBinary.
	Binary string

	// Env, when non-nil, replaces the child's environment.
	Env []string
}

// NewExecRunner returns an ExecRunner for binary.
func NewExecRunner(binary string) *ExecRunner {
	return &ExecRunner{Binary: binary}
}

func (r *ExecRunner) binary() string {
	if r.Binary == "" {
		return DefaultBinary
	}
	return r.Binary
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, args ...string) (string, error) {
	bin := r.binary()
	argv := append([]string{bin}, args...)
	logger := logging.FromContext(ctx)
	logger.Debug("running external tool", "command", strings.Join(argv, " "))

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if r.Env != nil {
		cmd.Env = r.Env
	}

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", errors.Wrapf(ctxErr, "running %s", bin)
		}

		execErr := &errors.ExecError{
			Args:     argv,
			ExitCode: -1,
			Stderr:   stderr.String(),
			Err:      err,
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			execErr.ExitCode = exitErr.ExitCode()
		}
		logger.Debug("external tool failed",
			"command", execErr.Command(),
			"exit_code", execErr.ExitCode,
			"stderr", strings.TrimSpace(execErr.Stderr))
		return "", execErr
	}

	logger.Log(ctx, logging.LevelTrace, "external tool output",
		"command", strings.Join(argv, " "),
		"bytes", stdout.Len())
	return stdout.String(), nil
}
