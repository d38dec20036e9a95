package main

import (
	"fmt"
	"io"
	"strings"
)

// readTexts returns the positional arguments, or all of in when there are none.
// One trailing line ending is dropped from stdin input.
func readTexts(args []string, in io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	text = strings.TrimSuffix(text, "\r")
	return []string{text}, nil
}

// writeLines writes each value on its own line.
func writeLines(out io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}
