// Command slicer splits video files into equal sequential parts using
// ffmpeg's stream copy mode, orchestrating ffprobe for duration discovery and
// ffmpeg for the copy itself. No media bytes are touched in-process.
package main
