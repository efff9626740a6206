package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"slicer/internal/split"
)

// reportView is the JSON shape of a completed run.
type reportView struct {
	RunID           string        `json:"run_id"`
	SourcePath      string        `json:"source_path"`
	OutputDir       string        `json:"output_dir"`
	ChunkCount      int           `json:"chunk_count"`
	DurationSeconds float64       `json:"duration_seconds"`
	ElapsedSeconds  float64       `json:"elapsed_seconds"`
	Succeeded       int           `json:"succeeded"`
	Failed          int           `json:"failed"`
	Segments        []segmentView `json:"segments"`
}

type segmentView struct {
	Index           int     `json:"index"`
	StartSeconds    float64 `json:"start_seconds"`
	DurationSeconds float64 `json:"duration_seconds,omitempty"`
	ToEndOfFile     bool    `json:"to_end_of_file"`
	OutputPath      string  `json:"output_path,omitempty"`
	SizeBytes       int64   `json:"size_bytes,omitempty"`
	Error           string  `json:"error,omitempty"`
}

func newReportView(report split.Report) reportView {
	view := reportView{
		RunID:           report.RunID,
		SourcePath:      report.SourcePath,
		OutputDir:       report.OutputDir,
		ChunkCount:      report.ChunkCount,
		DurationSeconds: report.DurationSeconds,
		ElapsedSeconds:  report.Elapsed.Seconds(),
		Succeeded:       report.Succeeded(),
		Failed:          report.Failed(),
	}
	for _, result := range report.Results {
		segment := segmentView{
			Index:        result.Segment.Index,
			StartSeconds: result.Segment.StartSeconds,
			ToEndOfFile:  !result.Segment.Capped,
		}
		if result.Segment.Capped {
			segment.DurationSeconds = result.Segment.DurationSeconds
		}
		if result.Err != nil {
			segment.Error = result.Err.Error()
		} else {
			segment.OutputPath = result.OutputPath
			segment.SizeBytes = result.SizeBytes
		}
		view.Segments = append(view.Segments, segment)
	}
	return view
}

func renderReport(cmd *cobra.Command, report split.Report) {
	out := cmd.OutOrStdout()

	rows := make([][]string, 0, len(report.Results))
	for _, result := range report.Results {
		status := "ok"
		detail := result.OutputPath
		size := formatBytes(result.SizeBytes)
		if result.Err != nil {
			status = "failed"
			detail = result.Err.Error()
			size = "-"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", result.Segment.Index),
			formatClock(result.Segment.StartSeconds),
			status,
			detail,
			size,
		})
	}

	fmt.Fprintln(out, renderTable(
		[]string{"Part", "Start", "Status", "Output", "Size"},
		rows,
		[]columnAlignment{alignRight, alignRight, alignLeft, alignLeft, alignRight},
	))
	fmt.Fprintf(out, "%d succeeded, %d failed (source %s, %s)\n",
		report.Succeeded(), report.Failed(),
		formatClock(report.DurationSeconds),
		report.Elapsed.Round(time.Millisecond),
	)
}
