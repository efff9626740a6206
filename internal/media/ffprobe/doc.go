// Package ffprobe wraps the external ffprobe tool for container duration
// discovery. All media parsing is delegated to ffprobe itself; this package
// only builds the invocation and parses the single numeric token it emits.
package ffprobe
