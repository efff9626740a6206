package split

// Segment is one planned time range of the source file. Indices are 1-based.
// The final segment of a plan is uncapped: the copy runs to end of stream,
// absorbing floating-point division remainder so the parts always reconstruct
// the full source.
type Segment struct {
	Index           int
	StartSeconds    float64
	DurationSeconds float64
	Capped          bool
}

// Plan computes chunkCount contiguous segments covering [0, duration).
// Preconditions (duration > 0, chunkCount >= 1) are enforced by callers;
// Plan itself performs no I/O and cannot fail.
func Plan(duration float64, chunkCount int) []Segment {
	perChunk := duration / float64(chunkCount)
	segments := make([]Segment, 0, chunkCount)
	for i := 0; i < chunkCount; i++ {
		segment := Segment{
			Index:        i + 1,
			StartSeconds: float64(i) * perChunk,
		}
		if i < chunkCount-1 {
			segment.DurationSeconds = perChunk
			segment.Capped = true
		}
		segments = append(segments, segment)
	}
	return segments
}
