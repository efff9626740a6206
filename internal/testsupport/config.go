package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"slicer/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp paths per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Logging.Dir = filepath.Join(base, "logs")
	cfg.History.Path = filepath.Join(base, "history.db")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithHistoryDisabled turns off run-history recording.
func WithHistoryDisabled() ConfigOption {
	return func(cfg *config.Config) {
		cfg.History.Enabled = false
	}
}

// SourceFile writes a placeholder media file into a temp directory and
// returns its path.
func SourceFile(t testing.TB, name string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("not a real container"), 0o644); err != nil {
		t.Fatalf("write source file: %v", err)
	}
	return path
}
