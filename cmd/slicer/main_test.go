package main

import (
	"context"
	"errors"
	"testing"

	"slicer/internal/services"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newRootCommand()

	expected := []string{"split", "deps", "history", "config"}
	for _, name := range expected {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}

	for _, flag := range []string{"config", "log-level", "log-format"} {
		if root.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("missing persistent flag %q", flag)
		}
	}
}

func TestExitCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, 0},
		{"partial failure", services.Wrap(services.ErrSegmentCopy, "split", "run", "2 of 4 segments failed", nil), 1},
		{"fatal", services.Wrap(services.ErrProbe, "ffprobe", "duration", "unreadable", nil), 2},
		{"interrupted", context.Canceled, 130},
		{"wrapped interrupt", errors.Join(errors.New("run aborted"), context.Canceled), 130},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := exitCode(tc.err); got != tc.want {
				t.Fatalf("exitCode(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}
