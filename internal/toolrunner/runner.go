package toolrunner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Result captures the outcome of a completed tool invocation.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner abstracts external command execution so probing and copying share one
// execution path and tests can substitute fakes.
type Runner interface {
	// LookPath resolves a binary on the execution PATH.
	LookPath(binary string) (string, error)
	// Run executes the binary and waits for completion. A non-zero exit is
	// reported through Result.ExitCode, not through the error value; the
	// error is reserved for failures to start or wait on the process.
	Run(ctx context.Context, binary string, args []string) (Result, error)
}

// ErrNotFound indicates the requested binary could not be resolved on PATH.
var ErrNotFound = exec.ErrNotFound

type commandRunner struct{}

// New returns the exec-backed Runner used outside of tests.
func New() Runner {
	return commandRunner{}
}

func (commandRunner) LookPath(binary string) (string, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return "", fmt.Errorf("lookup: %w", ErrNotFound)
	}
	return exec.LookPath(binary)
}

func (commandRunner) Run(ctx context.Context, binary string, args []string) (Result, error) {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, fmt.Errorf("run %s: %w", binary, err)
	}
	return result, nil
}
