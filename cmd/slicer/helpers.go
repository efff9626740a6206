package main

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// formatBytes renders a byte count for table cells.
func formatBytes(size int64) string {
	if size <= 0 {
		return "-"
	}
	return humanize.IBytes(uint64(size))
}

// formatClock renders seconds as H:MM:SS for display.
func formatClock(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		return "-"
	}
	total := int(math.Round(seconds))
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60
	return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
}
