package split

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"slicer/internal/config"
	"slicer/internal/services"
)

// Request describes one split run. Built once from user input, immutable
// thereafter; the planner and executor never learn how it was constructed.
type Request struct {
	SourcePath string
	ChunkCount int
	OutputDir  string
}

// NewRequest validates user input and resolves the output directory, creating
// it when absent. An empty outputDir places the parts alongside the source.
func NewRequest(sourcePath string, chunkCount int, outputDir string) (Request, error) {
	sourcePath = strings.TrimSpace(sourcePath)
	if sourcePath == "" {
		return Request{}, services.Wrap(services.ErrInvalidRequest, "request", "source path", "path is required", nil)
	}
	expanded, err := config.ExpandPath(sourcePath)
	if err != nil {
		return Request{}, services.Wrap(services.ErrInvalidRequest, "request", "source path", "", err)
	}
	info, err := os.Stat(expanded)
	if err != nil {
		return Request{}, services.Wrap(services.ErrInvalidRequest, "request", "source path",
			fmt.Sprintf("input file not found: %s", expanded), nil)
	}
	if info.IsDir() {
		return Request{}, services.Wrap(services.ErrInvalidRequest, "request", "source path",
			fmt.Sprintf("%s is a directory", expanded), nil)
	}
	if filepath.Ext(expanded) == "" {
		return Request{}, services.Wrap(services.ErrInvalidRequest, "request", "source path",
			fmt.Sprintf("%s has no file extension", expanded), nil)
	}

	if chunkCount < 1 {
		return Request{}, services.Wrap(services.ErrInvalidRequest, "request", "chunk count",
			fmt.Sprintf("must be at least 1, got %d", chunkCount), nil)
	}

	outputDir = strings.TrimSpace(outputDir)
	if outputDir == "" {
		outputDir = filepath.Dir(expanded)
	} else {
		outputDir, err = config.ExpandPath(outputDir)
		if err != nil {
			return Request{}, services.Wrap(services.ErrInvalidRequest, "request", "output dir", "", err)
		}
		// Idempotent: an existing directory is fine.
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return Request{}, services.Wrap(services.ErrInvalidRequest, "request", "output dir", "", err)
		}
	}

	return Request{
		SourcePath: expanded,
		ChunkCount: chunkCount,
		OutputDir:  outputDir,
	}, nil
}

// BaseName returns the source file name without its extension.
func (r Request) BaseName() string {
	name := filepath.Base(r.SourcePath)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
