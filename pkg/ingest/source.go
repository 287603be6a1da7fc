package ingest

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
)

// DefaultMaxLineSize bounds a single input line.
const DefaultMaxLineSize = 16 * 1024 * 1024

// ErrLineTooLong is returned when a line exceeds the configured maximum size.
var ErrLineTooLong = errors.New("line exceeds maximum line size")

const byteOrderMark = "\ufeff"

// FileSource implements LineSource for a single file.
type FileSource struct {
	fs          afero.Fs
	path        string
	maxLineSize int

	file    afero.File
	scanner *bufio.Scanner
	lineNum int
	blank   uint64
}

// NewFileSource creates a LineSource reading path from fs. The file is opened
// lazily on the first call to Next.
func NewFileSource(fs afero.Fs, path string, maxLineSize int) *FileSource {
	if maxLineSize <= 0 {
		maxLineSize = DefaultMaxLineSize
	}
	return &FileSource{
		fs:          fs,
		path:        path,
		maxLineSize: maxLineSize,
	}
}

// Next returns the next non-blank trimmed line.
// Blank lines are skipped and counted. Returns io.EOF at end of file.
func (s *FileSource) Next(ctx context.Context) (*Line, error) {
	if s.scanner == nil {
		if err := s.open(); err != nil {
			return nil, err
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if !s.scanner.Scan() {
			break
		}
		s.lineNum++

		raw := s.scanner.Text()
		if s.lineNum == 1 {
			raw = strings.TrimPrefix(raw, byteOrderMark)
		}

		text := strings.TrimSpace(raw)
		if text == "" {
			s.blank++
			continue
		}

		return &Line{
			Text:    text,
			Source:  s.path,
			LineNum: s.lineNum,
		}, nil
	}

	if err := s.scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			err = fmt.Errorf("line %d: %w (%d bytes)", s.lineNum+1, ErrLineTooLong, s.maxLineSize)
		}
		return nil, err
	}

	return nil, io.EOF
}

// BlankLines returns the number of blank lines skipped so far.
func (s *FileSource) BlankLines() uint64 {
	return s.blank
}

// Close releases the file handle. It is safe to call more than once.
func (s *FileSource) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}

func (s *FileSource) open() error {
	f, err := s.fs.Open(s.path)
	if err != nil {
		return fmt.Errorf("opening input file: %w", err)
	}

	info, err := f.Stat()
	if err == nil && info.IsDir() {
		_ = f.Close()
		return fmt.Errorf("opening input file: %s is a directory", s.path)
	}

	s.file = f
	s.scanner = bufio.NewScanner(f)
	s.scanner.Buffer(make([]byte, 0, min(64*1024, s.maxLineSize)), s.maxLineSize)
	s.lineNum = 0

	return nil
}
