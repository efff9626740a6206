// Package split holds the orchestration core: request validation, segment
// planning, and the sequential stream-copy loop. The planner is a pure
// function; all byte-level splitting is delegated to ffmpeg through the
// toolrunner abstraction.
package split
