package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"slicer/internal/services"
	"slicer/internal/split"
	"slicer/internal/testsupport"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	store, err := Open(cfg)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return store
}

func sampleReport() split.Report {
	return split.Report{
		RunID:           "run-1",
		SourcePath:      "/videos/movie.mp4",
		OutputDir:       "/videos",
		ChunkCount:      3,
		DurationSeconds: 90,
		StartedAt:       time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Elapsed:         4 * time.Second,
		Results: []split.SegmentResult{
			{
				Segment:    split.Segment{Index: 1, StartSeconds: 0, DurationSeconds: 30, Capped: true},
				OutputPath: "/videos/movie_part01.mp4",
				SizeBytes:  1024,
			},
			{
				Segment: split.Segment{Index: 2, StartSeconds: 30, DurationSeconds: 30, Capped: true},
				Err:     services.Wrap(services.ErrSegmentCopy, "ffmpeg", "segment 2", "exit code 1", nil),
			},
			{
				Segment:    split.Segment{Index: 3, StartSeconds: 60},
				OutputPath: "/videos/movie_part03.mp4",
				SizeBytes:  2048,
			},
		},
	}
}

func TestRecordAndListRuns(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	if err := store.RecordRun(ctx, sampleReport()); err != nil {
		t.Fatalf("record run: %v", err)
	}

	runs, err := store.ListRuns(ctx, 10)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	run := runs[0]
	if run.ID != "run-1" || run.ChunkCount != 3 {
		t.Fatalf("unexpected run: %+v", run)
	}
	if run.Succeeded != 2 || run.Failed != 1 {
		t.Fatalf("expected 2/1 outcome, got %d/%d", run.Succeeded, run.Failed)
	}
	if run.Elapsed != 4*time.Second {
		t.Fatalf("unexpected elapsed: %v", run.Elapsed)
	}
	if run.CreatedAt.IsZero() {
		t.Fatal("created_at not round-tripped")
	}
}

func TestSegmentsRoundTrip(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	if err := store.RecordRun(ctx, sampleReport()); err != nil {
		t.Fatalf("record run: %v", err)
	}

	records, err := store.Segments(ctx, "run-1")
	if err != nil {
		t.Fatalf("segments: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(records))
	}
	if !records[0].Capped || records[0].DurationSeconds != 30 {
		t.Fatalf("segment 1 should be capped at 30s: %+v", records[0])
	}
	if records[1].Error == "" {
		t.Fatal("segment 2 error not persisted")
	}
	if records[2].Capped {
		t.Fatalf("final segment must be uncapped: %+v", records[2])
	}
	if records[2].SizeBytes != 2048 {
		t.Fatalf("segment 3 size not persisted: %+v", records[2])
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	older := sampleReport()
	older.RunID = "run-old"
	older.StartedAt = time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	newer := sampleReport()
	newer.RunID = "run-new"
	newer.StartedAt = time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)

	for _, report := range []split.Report{older, newer} {
		if err := store.RecordRun(ctx, report); err != nil {
			t.Fatalf("record %s: %v", report.RunID, err)
		}
	}

	runs, err := store.ListRuns(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != "run-new" {
		t.Fatalf("expected newest run only, got %+v", runs)
	}
}

func TestOpenRejectsDisabledHistory(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithHistoryDisabled())
	if _, err := Open(cfg); err == nil {
		t.Fatal("expected error when history is disabled")
	}
}

func TestSchemaVersionGuard(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store, err := Open(cfg)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := store.db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("update version: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	if _, err := Open(cfg); !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}
