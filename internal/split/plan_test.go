package split

import (
	"math"
	"testing"
)

func TestPlanProperties(t *testing.T) {
	for _, chunkCount := range []int{1, 2, 3, 7, 100, 150} {
		segments := Plan(7200.5, chunkCount)
		if len(segments) != chunkCount {
			t.Fatalf("chunkCount=%d: got %d segments", chunkCount, len(segments))
		}
		for i, segment := range segments {
			if segment.Index != i+1 {
				t.Fatalf("chunkCount=%d: segment %d has index %d", chunkCount, i, segment.Index)
			}
			if i > 0 && segments[i].StartSeconds <= segments[i-1].StartSeconds {
				t.Fatalf("chunkCount=%d: start times not strictly increasing at %d", chunkCount, i)
			}
			last := i == chunkCount-1
			if segment.Capped == last {
				t.Fatalf("chunkCount=%d: segment %d capped=%v", chunkCount, segment.Index, segment.Capped)
			}
		}
	}
}

func TestPlanSingleChunkIsPassthrough(t *testing.T) {
	segments := Plan(30.0, 1)
	if len(segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segments))
	}
	segment := segments[0]
	if segment.StartSeconds != 0 {
		t.Fatalf("expected start 0, got %v", segment.StartSeconds)
	}
	if segment.Capped {
		t.Fatal("single segment must be uncapped")
	}
}

func TestPlanWorkedExample(t *testing.T) {
	// 90 seconds into 3 chunks: (0, 30), (30, 30), (60, to end).
	segments := Plan(90.0, 3)

	expected := []struct {
		start  float64
		dur    float64
		capped bool
	}{
		{0, 30, true},
		{30, 30, true},
		{60, 0, false},
	}
	for i, want := range expected {
		got := segments[i]
		if math.Abs(got.StartSeconds-want.start) > 1e-9 {
			t.Fatalf("segment %d: start %v, want %v", i+1, got.StartSeconds, want.start)
		}
		if got.Capped != want.capped {
			t.Fatalf("segment %d: capped %v, want %v", i+1, got.Capped, want.capped)
		}
		if want.capped && math.Abs(got.DurationSeconds-want.dur) > 1e-9 {
			t.Fatalf("segment %d: duration %v, want %v", i+1, got.DurationSeconds, want.dur)
		}
	}
}

func TestPlanCoversDuration(t *testing.T) {
	duration := 100.0 / 3.0
	segments := Plan(duration, 7)

	var capped float64
	for _, segment := range segments[:len(segments)-1] {
		capped += segment.DurationSeconds
	}
	lastStart := segments[len(segments)-1].StartSeconds
	if math.Abs(capped-lastStart) > 1e-9 {
		t.Fatalf("capped durations %v should reach the last start %v", capped, lastStart)
	}
	if lastStart >= duration {
		t.Fatalf("last start %v must fall inside the file duration %v", lastStart, duration)
	}
}
