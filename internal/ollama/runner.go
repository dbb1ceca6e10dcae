// internal/ollama/runner.go
package ollama

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"time"

	"github.com/mwiater/forge/internal/logging"
)

// Runner executes external commands. The production implementation shells out;
// tests substitute a scripted fake.
type Runner interface {
	// Run executes the command and captures stdout and stderr.
	Run(ctx context.Context, name string, args ...string) (stdout string, stderr string, err error)
	// RunAttached executes the command with the process's own stdio so output
	// streams directly to the terminal.
	RunAttached(ctx context.Context, name string, args ...string) error
	// FileExists reports whether a path exists on disk.
	FileExists(path string) bool
}

// execRunner is the os/exec-backed Runner.
type execRunner struct{}

// NewRunner returns the default os/exec-backed Runner.
func NewRunner() Runner {
	return execRunner{}
}

func (execRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = os.Environ()

	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	start := time.Now()
	err := cmd.Run()
	logging.LogInvocation(append([]string{name}, args...), time.Since(start), runStatus(ctx, err))

	return outBuf.String(), errBuf.String(), err
}

func (execRunner) RunAttached(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = os.Environ()
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	start := time.Now()
	err := cmd.Run()
	logging.LogInvocation(append([]string{name}, args...), time.Since(start), runStatus(ctx, err))
	return err
}

func (execRunner) FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// runStatus summarizes how an invocation ended for the invocation log.
func runStatus(ctx context.Context, err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return "timeout"
	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.String()
		}
		return err.Error()
	}
}
