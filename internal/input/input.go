// Package input reads puzzle input files.
package input

import (
	"fmt"
	"os"
	"strings"
)

// ReadLines returns the lines of the file at path with carriage returns
// removed. A single trailing newline does not produce an empty last line.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}

	return SplitLines(string(data)), nil
}

// SplitLines splits text the way ReadLines splits a file.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}

	return strings.Split(text, "\n")
}
