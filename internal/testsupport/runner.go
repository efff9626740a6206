package testsupport

import (
	"context"
	"fmt"

	"slicer/internal/toolrunner"
)

// Call records a single invocation observed by the fake runner. CtxErr
// captures the context's error at call time so tests can assert that
// cancellation reaches the subprocess layer.
type Call struct {
	Binary string
	Args   []string
	CtxErr error
}

// Response scripts the outcome of one Run call.
type Response struct {
	Result toolrunner.Result
	Err    error
}

// FakeRunner substitutes the exec-backed runner in tests. Responses are
// consumed in order; a Run call past the scripted responses succeeds with a
// zero Result.
type FakeRunner struct {
	Missing   map[string]bool
	Responses []Response
	Calls     []Call
}

var _ toolrunner.Runner = (*FakeRunner)(nil)

func (f *FakeRunner) LookPath(binary string) (string, error) {
	if f.Missing[binary] {
		return "", fmt.Errorf("lookup %s: %w", binary, toolrunner.ErrNotFound)
	}
	return "/usr/bin/" + binary, nil
}

func (f *FakeRunner) Run(ctx context.Context, binary string, args []string) (toolrunner.Result, error) {
	f.Calls = append(f.Calls, Call{Binary: binary, Args: append([]string(nil), args...), CtxErr: ctx.Err()})
	if len(f.Responses) == 0 {
		return toolrunner.Result{}, nil
	}
	next := f.Responses[0]
	f.Responses = f.Responses[1:]
	return next.Result, next.Err
}
