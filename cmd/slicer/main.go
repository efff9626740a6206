package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"slicer/internal/services"
)

// exitCode maps a run outcome to the process exit status: 0 when every
// segment was written, 1 for a partial segment failure, 2 for fatal errors
// (bad request, missing tool, failed probe), 130 when interrupted.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return 130
	case services.Fatal(err):
		return 2
	default:
		return 1
	}
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	err := newRootCommand().ExecuteContext(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
	}
	if code := exitCode(err); code != 0 {
		os.Exit(code)
	}
}
