package deps

import (
	"fmt"
	"strings"

	"slicer/internal/config"
	"slicer/internal/services"
	"slicer/internal/toolrunner"
)

// Requirement defines an external executable slicer relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
}

// Status reports the availability of a requirement.
type Status struct {
	Name        string
	Command     string
	Description string
	Available   bool
	Detail      string
}

// Requirements lists the toolchain for a split run, using the configured
// binary names.
func Requirements(cfg *config.Config) []Requirement {
	ffmpeg, ffprobe := "ffmpeg", "ffprobe"
	if cfg != nil {
		ffmpeg = cfg.Tools.FFmpeg
		ffprobe = cfg.Tools.FFprobe
	}
	return []Requirement{
		{Name: "FFprobe", Command: ffprobe, Description: "container duration discovery"},
		{Name: "FFmpeg", Command: ffmpeg, Description: "stream-copy segment extraction"},
	}
}

// Check evaluates the provided requirements against the execution PATH.
func Check(runner toolrunner.Runner, requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := runner.LookPath(cmd); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}

// Verify returns an ErrToolMissing error naming every unavailable requirement,
// or nil when the toolchain is complete.
func Verify(runner toolrunner.Runner, requirements []Requirement) error {
	missing := make([]string, 0, len(requirements))
	for _, status := range Check(runner, requirements) {
		if !status.Available {
			missing = append(missing, status.Command)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return services.Wrap(services.ErrToolMissing, "preflight", "check binaries",
		fmt.Sprintf("install %s and ensure it is on PATH", strings.Join(missing, ", ")), nil)
}
