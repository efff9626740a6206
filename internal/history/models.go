package history

import "time"

// Run is one recorded split run.
type Run struct {
	ID              string
	SourcePath      string
	OutputDir       string
	ChunkCount      int
	DurationSeconds float64
	Succeeded       int
	Failed          int
	Elapsed         time.Duration
	CreatedAt       time.Time
}

// SegmentRecord is one recorded segment outcome.
type SegmentRecord struct {
	Index           int
	StartSeconds    float64
	DurationSeconds float64
	Capped          bool
	OutputPath      string
	SizeBytes       int64
	Error           string
}
