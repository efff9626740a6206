package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"slicer/internal/services"
	"slicer/internal/split"
)

// interactiveAllowed reports whether prompting makes sense for the command's
// input stream. Injected readers (tests, pipes set via SetIn) are always
// promptable; a real stdin must be a terminal.
func interactiveAllowed(in io.Reader) bool {
	file, ok := in.(*os.File)
	if !ok {
		return true
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// promptRequest gathers the split request interactively.
func promptRequest(cmd *cobra.Command, defaultOutputDir string) (split.Request, error) {
	reader := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	source, err := promptLine(reader, out, "Path to file: ")
	if err != nil {
		return split.Request{}, err
	}

	countRaw, err := promptLine(reader, out, "Number of chunks: ")
	if err != nil {
		return split.Request{}, err
	}
	count, err := parseChunkCount(countRaw)
	if err != nil {
		return split.Request{}, err
	}

	outputDir, err := promptLine(reader, out, "Output directory (press Enter to keep alongside the source): ")
	if err != nil {
		return split.Request{}, err
	}
	if outputDir == "" {
		outputDir = defaultOutputDir
	}

	return split.NewRequest(source, count, outputDir)
}

func promptLine(reader *bufio.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	line, err := reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			return "", services.Wrap(services.ErrInvalidRequest, "request", "prompt", "input closed", nil)
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
