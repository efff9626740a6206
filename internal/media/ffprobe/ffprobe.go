package ffprobe

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"slicer/internal/services"
	"slicer/internal/toolrunner"
)

// durationArgs asks ffprobe for the container-level duration in seconds as a
// single bare token on stdout, with the format section only.
func durationArgs(path string) []string {
	return []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		"--", path,
	}
}

// Duration executes ffprobe against the provided path and returns the
// container duration in seconds. A zero or negative probed duration is a
// probe failure: no planning is meaningful without a positive duration.
func Duration(ctx context.Context, runner toolrunner.Runner, binary, path string) (float64, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return 0, services.Wrap(services.ErrProbe, "ffprobe", "duration", "empty path", nil)
	}

	result, err := runner.Run(ctx, binary, durationArgs(path))
	if err != nil {
		return 0, services.Wrap(services.ErrProbe, "ffprobe", "duration", "", err)
	}
	if result.ExitCode != 0 {
		detail := strings.TrimSpace(result.Stderr)
		if detail == "" {
			detail = fmt.Sprintf("exit code %d", result.ExitCode)
		}
		return 0, services.Wrap(services.ErrProbe, "ffprobe", "duration", detail, nil)
	}

	token := strings.TrimSpace(result.Stdout)
	seconds, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, services.Wrap(services.ErrProbe, "ffprobe", "duration",
			fmt.Sprintf("unparseable output %q", token), nil)
	}
	if seconds <= 0 {
		return 0, services.Wrap(services.ErrProbe, "ffprobe", "duration",
			fmt.Sprintf("non-positive duration %v", seconds), nil)
	}
	return seconds, nil
}
