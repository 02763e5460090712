package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"javalet/interpreter-go/pkg/driver"
	"javalet/interpreter-go/pkg/parser"
)

// fragmentChunk is a run of source lines that forms one fragment. StartLine is 1-based.
type fragmentChunk struct {
	Source    string
	StartLine int
}

func runFileCommand(args []string, cfg *driver.Config, opts globalOptions) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "javalet run expects exactly one file (use - for stdin)")
		return 1
	}
	path := args[0]

	var reader io.Reader
	displayPath := path
	if path == "-" {
		reader = os.Stdin
		displayPath = "<stdin>"
	} else {
		file, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "javalet run: %v\n", err)
			return 1
		}
		defer file.Close()
		reader = file
	}

	probe, err := parser.NewFragmentParser()
	if err != nil {
		fmt.Fprintf(os.Stderr, "javalet run: %v\n", err)
		return 1
	}
	defer probe.Close()

	chunks, err := splitFragments(reader, probe)
	if err != nil {
		fmt.Fprintf(os.Stderr, "javalet run: %v\n", err)
		return 1
	}

	session, err := newCLISession(cfg, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "javalet run: %v\n", err)
		return 1
	}
	defer session.Close()

	for _, chunk := range chunks {
		if !session.evaluate(chunk.Source, displayPath, chunk.StartLine-1) {
			return 1
		}
	}
	return 0
}

// splitFragments groups lines into fragments: lines accumulate until they parse as a
// fragment, or until the parser no longer expects more input. Blank lines and comment
// lines between fragments are skipped.
func splitFragments(r io.Reader, probe *parser.FragmentParser) ([]fragmentChunk, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var chunks []fragmentChunk
	var current strings.Builder
	start := 0
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if current.Len() == 0 {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || strings.HasPrefix(trimmed, "//") {
				continue
			}
			start = lineNo
		} else {
			current.WriteByte('\n')
		}
		current.WriteString(line)

		source := current.String()
		if probe.Incomplete(source) {
			continue
		}
		chunks = append(chunks, fragmentChunk{Source: source, StartLine: start})
		current.Reset()
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if current.Len() > 0 {
		chunks = append(chunks, fragmentChunk{Source: current.String(), StartLine: start})
	}
	return chunks, nil
}
