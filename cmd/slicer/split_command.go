package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"slicer/internal/deps"
	"slicer/internal/history"
	"slicer/internal/logging"
	"slicer/internal/media/ffprobe"
	"slicer/internal/services"
	"slicer/internal/split"
)

func newSplitCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "split [file] [chunks] [output-dir]",
		Short: "Split a video into equal chunks using stream copy",
		Long: `Split a video file into a number of sequential chunks using ffmpeg's
stream copy mode. The original data is preserved bit for bit; cut points snap
to keyframes, so chunk durations may vary slightly.

With two or three arguments the split runs directly. Any other argument count
falls back to interactive prompts when run from a terminal.`,
		Args: cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(cmd, ctx, args, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the run report as JSON")
	return cmd
}

func runSplit(cmd *cobra.Command, ctx *commandContext, args []string, jsonOutput bool) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}

	req, err := resolveRequest(cmd, cfg.Output.DefaultDir, args)
	if err != nil {
		return err
	}

	runner := ctx.toolRunner()
	if err := deps.Verify(runner, deps.Requirements(cfg)); err != nil {
		return err
	}

	duration, err := ffprobe.Duration(cmd.Context(), runner, cfg.Tools.FFprobe, req.SourcePath)
	if err != nil {
		return err
	}

	segments := split.Plan(duration, req.ChunkCount)
	var opts []split.Option
	if !cfg.Output.Overwrite {
		opts = append(opts, split.WithoutOverwrite())
	}
	executor := split.NewExecutor(runner, cfg.Tools.FFmpeg, logger, opts...)
	report, err := executor.Execute(cmd.Context(), req, duration, segments)
	if err != nil {
		return err
	}

	recordHistory(cmd, ctx, report)

	if jsonOutput {
		if err := writeJSON(cmd, newReportView(report)); err != nil {
			return err
		}
	} else {
		renderReport(cmd, report)
	}

	if !report.AllSucceeded() {
		return services.Wrap(services.ErrSegmentCopy, "split", "run",
			fmt.Sprintf("%d of %d segments failed", report.Failed(), report.ChunkCount), nil)
	}
	return nil
}

// resolveRequest picks the request-construction strategy once: direct when the
// argument count is usable, interactive prompts otherwise. Downstream code
// only ever sees the built request.
func resolveRequest(cmd *cobra.Command, defaultOutputDir string, args []string) (split.Request, error) {
	if len(args) == 2 || len(args) == 3 {
		count, err := parseChunkCount(args[1])
		if err != nil {
			return split.Request{}, err
		}
		outputDir := defaultOutputDir
		if len(args) == 3 {
			outputDir = args[2]
		}
		return split.NewRequest(args[0], count, outputDir)
	}

	if !interactiveAllowed(cmd.InOrStdin()) {
		return split.Request{}, services.Wrap(services.ErrInvalidRequest, "request", "arguments",
			"expected <file> <chunks> [output-dir], and stdin is not a terminal for prompting", nil)
	}
	return promptRequest(cmd, defaultOutputDir)
}

func parseChunkCount(raw string) (int, error) {
	count, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, services.Wrap(services.ErrInvalidRequest, "request", "chunk count",
			fmt.Sprintf("%q is not an integer", raw), nil)
	}
	return count, nil
}

// recordHistory persists the run outcome. History failures are logged and
// swallowed: the split artifacts already exist.
func recordHistory(cmd *cobra.Command, ctx *commandContext, report split.Report) {
	cfg := ctx.cfg
	if cfg == nil || !cfg.History.Enabled {
		return
	}
	logger := ctx.logger
	if logger == nil {
		logger = logging.NewNop()
	}

	store, err := history.Open(cfg)
	if err != nil {
		logger.Warn("history unavailable", logging.Error(err))
		return
	}
	defer store.Close()

	if err := store.RecordRun(cmd.Context(), report); err != nil {
		logger.Warn("record run history", logging.Error(err))
	}
}
