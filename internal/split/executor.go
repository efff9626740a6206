package split

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"slicer/internal/logging"
	"slicer/internal/services"
	"slicer/internal/toolrunner"
)

const lockFileName = ".slicer.lock"

// Executor performs the stream-copy loop for a planned run. Segments are
// copied synchronously in order; a failed segment is recorded and the loop
// continues, since every successful part is an independent artifact.
type Executor struct {
	runner    toolrunner.Runner
	binary    string
	logger    *slog.Logger
	overwrite bool
}

// Option configures the executor.
type Option func(*Executor)

// WithoutOverwrite makes ffmpeg refuse to replace an existing part file,
// failing that segment instead.
func WithoutOverwrite() Option {
	return func(e *Executor) {
		e.overwrite = false
	}
}

// NewExecutor constructs an Executor around the shared tool runner.
func NewExecutor(runner toolrunner.Runner, binary string, logger *slog.Logger, opts ...Option) *Executor {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffmpeg"
	}
	executor := &Executor{
		runner:    runner,
		binary:    binary,
		logger:    logging.NewComponentLogger(logger, "split"),
		overwrite: true,
	}
	for _, opt := range opts {
		opt(executor)
	}
	return executor
}

// Execute copies every planned segment into the request's output directory.
// The returned error is non-nil only for run-level failures (the output
// directory being locked by another run); per-segment copy failures live in
// the report.
func (e *Executor) Execute(ctx context.Context, req Request, durationSeconds float64, segments []Segment) (Report, error) {
	report := Report{
		RunID:           uuid.NewString(),
		SourcePath:      req.SourcePath,
		OutputDir:       req.OutputDir,
		ChunkCount:      req.ChunkCount,
		DurationSeconds: durationSeconds,
		StartedAt:       time.Now().UTC(),
	}

	lock := flock.New(filepath.Join(req.OutputDir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return Report{}, services.Wrap(services.ErrOutputDirBusy, "split", "lock output dir", "", err)
	}
	if !locked {
		return Report{}, services.Wrap(services.ErrOutputDirBusy, "split", "lock output dir",
			fmt.Sprintf("another run is writing into %s", req.OutputDir), nil)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	logger := e.logger.With(
		logging.String(logging.FieldRunID, report.RunID),
		logging.String(logging.FieldSource, req.SourcePath),
	)
	logger.Info("split started",
		logging.Int("chunk_count", req.ChunkCount),
		logging.Float64("duration_seconds", durationSeconds),
		logging.String("output_dir", req.OutputDir),
		logging.Bool("overwrite", e.overwrite),
	)

	for _, segment := range segments {
		report.Results = append(report.Results, e.copySegment(ctx, logger, req, segment))
	}

	report.Elapsed = time.Since(report.StartedAt)
	logger.Info("split finished",
		logging.Int("succeeded", report.Succeeded()),
		logging.Int("failed", report.Failed()),
		logging.Duration("elapsed", report.Elapsed),
	)
	return report, nil
}

func (e *Executor) copySegment(ctx context.Context, logger *slog.Logger, req Request, segment Segment) SegmentResult {
	result := SegmentResult{
		Segment:    segment,
		OutputPath: OutputPath(req, segment),
	}

	runResult, err := e.runner.Run(ctx, e.binary, copyArgs(req, segment, result.OutputPath, e.overwrite))
	if err != nil {
		result.Err = services.Wrap(services.ErrSegmentCopy, "ffmpeg",
			fmt.Sprintf("segment %d", segment.Index), "", err)
	} else if runResult.ExitCode != 0 {
		detail := stderrTail(runResult.Stderr)
		if detail == "" {
			detail = fmt.Sprintf("exit code %d", runResult.ExitCode)
		}
		result.Err = services.Wrap(services.ErrSegmentCopy, "ffmpeg",
			fmt.Sprintf("segment %d", segment.Index), detail, nil)
	}

	if result.Err != nil {
		logger.Error("segment copy failed",
			logging.Int(logging.FieldSegment, segment.Index),
			logging.Error(result.Err),
		)
		return result
	}

	if info, statErr := os.Stat(result.OutputPath); statErr == nil {
		result.SizeBytes = info.Size()
	}
	logger.Info("segment written",
		logging.Int(logging.FieldSegment, segment.Index),
		logging.String("output", result.OutputPath),
		logging.Int64("size_bytes", result.SizeBytes),
	)
	return result
}

// copyArgs builds the ffmpeg invocation for one segment. The seek offset sits
// before -i: input-side seeking is fast but snaps to keyframes, an accepted
// trade-off of stream copy. The final segment carries no -t so it copies to
// end of stream.
func copyArgs(req Request, segment Segment, outputPath string, overwrite bool) []string {
	overwriteFlag := "-y"
	if !overwrite {
		overwriteFlag = "-n"
	}
	args := []string{
		"-hide_banner",
		overwriteFlag,
		"-ss", formatSeconds(segment.StartSeconds),
		"-i", req.SourcePath,
	}
	if segment.Capped {
		args = append(args, "-t", formatSeconds(segment.DurationSeconds))
	}
	args = append(args,
		"-map", "0",
		"-c", "copy",
		"-avoid_negative_ts", "make_zero",
		outputPath,
	)
	return args
}

func formatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', 6, 64)
}

// stderrTail keeps the last few non-empty lines of ffmpeg's stderr, which is
// where the actionable message lives.
func stderrTail(stderr string) string {
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	kept := make([]string, 0, 3)
	for i := len(lines) - 1; i >= 0 && len(kept) < 3; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		kept = append([]string{line}, kept...)
	}
	return strings.Join(kept, "; ")
}
