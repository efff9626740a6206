package services

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors classify every failure mode of a split run. Callers decide
// propagation by marker: ErrSegmentCopy is recoverable per segment, everything
// else aborts the run before any further tool invocation.
var (
	ErrToolMissing    = errors.New("required tool missing")
	ErrProbe          = errors.New("probe error")
	ErrInvalidRequest = errors.New("invalid request")
	ErrSegmentCopy    = errors.New("segment copy error")
	ErrConfiguration  = errors.New("configuration error")
	ErrOutputDirBusy  = errors.New("output directory busy")
)

// Wrap builds an error message that includes component context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrConfiguration
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Fatal reports whether an error must abort the run. Per-segment copy failures
// are the only recoverable class.
func Fatal(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, ErrSegmentCopy)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
