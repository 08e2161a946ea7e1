// Package execution runs the few external programs unbrew depends on.
package execution

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"github.com/arthur-debert/unbrew/pkg/errors"
	"github.com/arthur-debert/unbrew/pkg/logging"
	"github.com/rs/zerolog"
)

// DefaultTimeout bounds a single command.
const DefaultTimeout = time.Minute

// Runner executes commands on the host. It implements types.CommandRunner.
type Runner struct {
	logger  zerolog.Logger
	timeout time.Duration
}

// NewRunner returns a Runner that kills commands running longer than
// timeout. A zero timeout uses DefaultTimeout.
func NewRunner(timeout time.Duration) *Runner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Runner{
		logger:  logging.GetLogger("execution.runner"),
		timeout: timeout,
	}
}

// Run executes name with args and returns its standard output. On failure
// the returned error wraps the underlying *exec.Error or *exec.ExitError, so
// callers can test for exec.ErrNotFound.
func (r *Runner) Run(name string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	logging.LogCommand(name, args)

	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		r.logger.Debug().
			Err(err).
			Str("command", name).
			Strs("args", args).
			Str("stderr", stderr.String()).
			Msg("Command execution failed")
		return stdout.Bytes(), errors.Wrapf(err, errors.ErrCommandFailed, "failed to execute %s", name).
			WithDetail("stderr", stderr.String())
	}
	return stdout.Bytes(), nil
}
