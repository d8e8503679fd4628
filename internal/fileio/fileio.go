// Package fileio reads and writes the file formats exchanged with the workspace.
//
// Readers return plain records or header/row tables; writers build the full
// output in memory and perform a single write so a failure never leaves a
// partially written file behind.
package fileio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ResourceError wraps a failure to read, parse or write an external file.
type ResourceError struct {
	Op   string
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

func readErr(path string, err error) error {
	return &ResourceError{Op: "read", Path: path, Err: err}
}

func writeErr(path string, err error) error {
	return &ResourceError{Op: "write", Path: path, Err: err}
}

// Record is one named sequence read from a file.
type Record struct {
	Name     string
	Residues string
}

// ReadText returns the whole file as a string.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", readErr(path, err)
	}
	return string(data), nil
}

// WriteText writes text in one call.
func WriteText(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return writeErr(path, err)
	}
	return nil
}

// WriteLines writes lines joined by newlines with a trailing newline.
func WriteLines(path string, lines []string) error {
	return WriteText(path, strings.Join(lines, "\n")+"\n")
}

// EnsureDir creates the parent directory of path.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return writeErr(dir, err)
	}
	return nil
}

// splitLines splits on \n and drops a trailing \r from each line.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// SplitLines splits text into lines the way notes files are read.
func SplitLines(text string) []string {
	return splitLines(text)
}
