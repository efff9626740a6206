package split

import (
	"time"
)

// SegmentResult records the outcome of one copy invocation.
type SegmentResult struct {
	Segment    Segment
	OutputPath string
	SizeBytes  int64
	Err        error
}

// Report aggregates a full run for the reporter and the history store.
type Report struct {
	RunID           string
	SourcePath      string
	OutputDir       string
	ChunkCount      int
	DurationSeconds float64
	StartedAt       time.Time
	Elapsed         time.Duration
	Results         []SegmentResult
}

// Succeeded counts segments that produced an output file.
func (r Report) Succeeded() int {
	count := 0
	for _, result := range r.Results {
		if result.Err == nil {
			count++
		}
	}
	return count
}

// Failed counts segments whose copy invocation failed.
func (r Report) Failed() int {
	return len(r.Results) - r.Succeeded()
}

// AllSucceeded reports whether every segment was written.
func (r Report) AllSucceeded() bool {
	return r.Failed() == 0
}
