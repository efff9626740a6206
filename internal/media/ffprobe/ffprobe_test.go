package ffprobe

import (
	"context"
	"errors"
	"strings"
	"testing"

	"slicer/internal/services"
	"slicer/internal/testsupport"
	"slicer/internal/toolrunner"
)

func TestDurationParsesToken(t *testing.T) {
	runner := &testsupport.FakeRunner{
		Responses: []testsupport.Response{
			{Result: toolrunner.Result{Stdout: " 90.048000\n"}},
		},
	}

	seconds, err := Duration(context.Background(), runner, "", "movie.mp4")
	if err != nil {
		t.Fatalf("duration: %v", err)
	}
	if seconds != 90.048 {
		t.Fatalf("unexpected duration: %v", seconds)
	}

	call := runner.Calls[0]
	if call.Binary != "ffprobe" {
		t.Fatalf("expected default binary, got %q", call.Binary)
	}
	joined := strings.Join(call.Args, " ")
	if !strings.Contains(joined, "format=duration") {
		t.Fatalf("args should request the duration entry: %v", call.Args)
	}
	if call.Args[len(call.Args)-1] != "movie.mp4" {
		t.Fatalf("path should be the final argument: %v", call.Args)
	}
}

func TestDurationNonZeroExitCarriesStderr(t *testing.T) {
	runner := &testsupport.FakeRunner{
		Responses: []testsupport.Response{
			{Result: toolrunner.Result{ExitCode: 1, Stderr: "movie.mp4: Invalid data found\n"}},
		},
	}

	_, err := Duration(context.Background(), runner, "ffprobe", "movie.mp4")
	if !errors.Is(err, services.ErrProbe) {
		t.Fatalf("expected ErrProbe, got %v", err)
	}
	if !strings.Contains(err.Error(), "Invalid data found") {
		t.Fatalf("captured stderr missing from error: %v", err)
	}
}

func TestDurationUnparseableOutput(t *testing.T) {
	runner := &testsupport.FakeRunner{
		Responses: []testsupport.Response{
			{Result: toolrunner.Result{Stdout: "N/A\n"}},
		},
	}

	_, err := Duration(context.Background(), runner, "ffprobe", "movie.mp4")
	if !errors.Is(err, services.ErrProbe) {
		t.Fatalf("expected ErrProbe, got %v", err)
	}
}

func TestDurationRejectsNonPositive(t *testing.T) {
	for _, token := range []string{"0", "-4.2"} {
		runner := &testsupport.FakeRunner{
			Responses: []testsupport.Response{
				{Result: toolrunner.Result{Stdout: token}},
			},
		}
		if _, err := Duration(context.Background(), runner, "ffprobe", "movie.mp4"); !errors.Is(err, services.ErrProbe) {
			t.Fatalf("token %q: expected ErrProbe, got %v", token, err)
		}
	}
}

func TestDurationRunFailure(t *testing.T) {
	runner := &testsupport.FakeRunner{
		Responses: []testsupport.Response{
			{Err: errors.New("context canceled")},
		},
	}

	_, err := Duration(context.Background(), runner, "ffprobe", "movie.mp4")
	if !errors.Is(err, services.ErrProbe) {
		t.Fatalf("expected ErrProbe, got %v", err)
	}
}
