package split

import (
	"fmt"
	"path/filepath"
	"strconv"
)

const partExtension = ".mp4"

// padWidth returns the zero-padding width for part indices: at least two
// digits, wider once the chunk count needs it, so lexicographic order always
// matches numeric order.
func padWidth(chunkCount int) int {
	width := len(strconv.Itoa(chunkCount))
	if width < 2 {
		width = 2
	}
	return width
}

// OutputName derives the deterministic part file name for a segment index.
func OutputName(baseName string, index, chunkCount int) string {
	return fmt.Sprintf("%s_part%0*d%s", baseName, padWidth(chunkCount), index, partExtension)
}

// OutputPath resolves the full path of a segment's output file.
func OutputPath(req Request, segment Segment) string {
	return filepath.Join(req.OutputDir, OutputName(req.BaseName(), segment.Index, req.ChunkCount))
}
