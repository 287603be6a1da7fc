// Package ingest reads input files line by line and feeds them to the
// category accumulators.
package ingest

import (
	"context"
	"fmt"
)

// Line is a single trimmed, non-empty input record.
type Line struct {
	// Text is the line content with leading and trailing whitespace removed.
	Text string

	// Source is the file path this line came from.
	Source string

	// LineNum is the 1-based line number in the source file.
	LineNum int
}

// LineSource provides an iterator over the non-blank lines of one input.
// Implementations are for sequential access only.
type LineSource interface {
	// Next returns the next non-blank line.
	// Returns io.EOF when the input is exhausted.
	Next(ctx context.Context) (*Line, error)

	// Close releases any resources held by the source.
	Close() error
}

// FileError records an input file that could not be fully read.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// Summary describes the outcome of an ingestion run.
type Summary struct {
	// FilesRead is the number of files read to the end without error.
	FilesRead int

	// Failures lists files that could not be opened or were only partly read.
	Failures []FileError

	// LinesIngested counts classified lines across all files.
	LinesIngested uint64

	// BlankLines counts lines discarded because they were empty after trimming.
	BlankLines uint64
}
