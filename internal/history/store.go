package history

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"slicer/internal/config"
	"slicer/internal/split"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema
// changes; stale databases are rejected rather than migrated.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database schema version doesn't match the
// expected version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

// Store persists run history backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database.
func Open(cfg *config.Config) (*Store, error) {
	if cfg == nil || !cfg.History.Enabled {
		return nil, errors.New("history is disabled")
	}
	dbPath := cfg.History.Path
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("ensure history directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
		if _, err := s.db.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
			return fmt.Errorf("record schema version: %w", err)
		}
		return nil
	}

	var version int
	if err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (delete %s to reset)",
			ErrSchemaMismatch, version, schemaVersion, s.path)
	}
	return nil
}

// RecordRun inserts a completed run and its per-segment outcomes.
func (s *Store) RecordRun(ctx context.Context, report split.Report) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	createdAt := report.StartedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (
            id, source_path, output_dir, chunk_count, duration_seconds,
            succeeded, failed, elapsed_ms, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		report.RunID,
		report.SourcePath,
		report.OutputDir,
		report.ChunkCount,
		report.DurationSeconds,
		report.Succeeded(),
		report.Failed(),
		report.Elapsed.Milliseconds(),
		createdAt.Format(time.RFC3339Nano),
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, result := range report.Results {
		var segmentErr any
		if result.Err != nil {
			segmentErr = result.Err.Error()
		}
		var capped any
		if result.Segment.Capped {
			capped = result.Segment.DurationSeconds
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO run_segments (
                run_id, segment_index, start_seconds, duration_seconds,
                output_path, size_bytes, error
            ) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			report.RunID,
			result.Segment.Index,
			result.Segment.StartSeconds,
			capped,
			result.OutputPath,
			result.SizeBytes,
			segmentErr,
		); err != nil {
			return fmt.Errorf("insert segment %d: %w", result.Segment.Index, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source_path, output_dir, chunk_count, duration_seconds,
                succeeded, failed, elapsed_ms, created_at
           FROM runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := make([]Run, 0, limit)
	for rows.Next() {
		var run Run
		var elapsedMS int64
		var createdAt string
		if err := rows.Scan(
			&run.ID, &run.SourcePath, &run.OutputDir, &run.ChunkCount,
			&run.DurationSeconds, &run.Succeeded, &run.Failed, &elapsedMS, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.Elapsed = time.Duration(elapsedMS) * time.Millisecond
		if parsed, parseErr := time.Parse(time.RFC3339Nano, createdAt); parseErr == nil {
			run.CreatedAt = parsed
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// Segments returns the per-segment outcomes of one run in segment order.
func (s *Store) Segments(ctx context.Context, runID string) ([]SegmentRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT segment_index, start_seconds, duration_seconds, output_path, size_bytes, error
           FROM run_segments WHERE run_id = ? ORDER BY segment_index`, runID)
	if err != nil {
		return nil, fmt.Errorf("query segments: %w", err)
	}
	defer rows.Close()

	var records []SegmentRecord
	for rows.Next() {
		var record SegmentRecord
		var duration sql.NullFloat64
		var segmentErr sql.NullString
		if err := rows.Scan(
			&record.Index, &record.StartSeconds, &duration,
			&record.OutputPath, &record.SizeBytes, &segmentErr,
		); err != nil {
			return nil, fmt.Errorf("scan segment: %w", err)
		}
		if duration.Valid {
			record.DurationSeconds = duration.Float64
			record.Capped = true
		}
		record.Error = segmentErr.String
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate segments: %w", err)
	}
	return records, nil
}
