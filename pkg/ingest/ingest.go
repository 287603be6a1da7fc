package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/ccollicutt/linesplit/pkg/accumulator"
	"github.com/ccollicutt/linesplit/pkg/classify"
)

// Ingestor reads input files in order and routes every non-blank line to the
// accumulator of its category.
type Ingestor struct {
	fs          afero.Fs
	logger      *log.Logger
	maxLineSize int
}

// Option configures an Ingestor.
type Option func(*Ingestor)

// WithLogger sets the logger used for per-file diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(in *Ingestor) {
		if l != nil {
			in.logger = l
		}
	}
}

// WithMaxLineSize sets the longest accepted input line in bytes.
func WithMaxLineSize(n int) Option {
	return func(in *Ingestor) {
		if n > 0 {
			in.maxLineSize = n
		}
	}
}

// New creates an Ingestor reading from fs.
func New(fs afero.Fs, opts ...Option) *Ingestor {
	in := &Ingestor{
		fs:          fs,
		logger:      log.New(io.Discard),
		maxLineSize: DefaultMaxLineSize,
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Run ingests every path in order. A file that cannot be opened or read is
// reported, recorded in the summary and skipped from the point of failure;
// processing continues with the next file. Only context cancellation and
// accumulator errors abort the run.
func (in *Ingestor) Run(ctx context.Context, paths []string, set *accumulator.Set) (*Summary, error) {
	summary := &Summary{}

	for _, path := range paths {
		err := in.ingestFile(ctx, path, set, summary)
		if err == nil {
			summary.FilesRead++
			continue
		}

		var fileErr *FileError
		if !errors.As(err, &fileErr) {
			return summary, err
		}

		in.logger.Warn("skipping rest of input file", "file", fileErr.Path, "err", fileErr.Err)
		summary.Failures = append(summary.Failures, *fileErr)
	}

	in.logger.Debug("ingestion complete",
		"files", len(paths),
		"failed", len(summary.Failures),
		"lines", summary.LinesIngested,
		"blank", summary.BlankLines)

	return summary, nil
}

// ingestFile reads one file to the end. The file handle is released before
// returning on every path.
func (in *Ingestor) ingestFile(ctx context.Context, path string, set *accumulator.Set, summary *Summary) error {
	source := NewFileSource(in.fs, path, in.maxLineSize)
	defer func() {
		summary.BlankLines += source.BlankLines()
		if err := source.Close(); err != nil {
			in.logger.Warn("closing input file", "file", path, "err", err)
		}
	}()

	in.logger.Debug("reading input file", "file", path)

	for {
		line, err := source.Next(ctx)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			if ctx.Err() != nil {
				return err
			}
			return &FileError{Path: path, Err: err}
		}

		if err := set.Ingest(classify.Classify(line.Text)); err != nil {
			return fmt.Errorf("%s:%d: %w", line.Source, line.LineNum, err)
		}
		summary.LinesIngested++
	}
}
