package output

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/ccollicutt/linesplit/pkg/accumulator"
	"github.com/ccollicutt/linesplit/pkg/classify"
)

// FallbackDir is used when the configured output directory is unusable.
const FallbackDir = "."

// WriteMode selects whether existing output files are kept or replaced.
type WriteMode string

const (
	ModeOverwrite WriteMode = "overwrite"
	ModeAppend    WriteMode = "append"
)

// ModeFor returns ModeAppend when append is true, else ModeOverwrite.
func ModeFor(appendMode bool) WriteMode {
	if appendMode {
		return ModeAppend
	}
	return ModeOverwrite
}

// FileName returns the output file name of a category.
func FileName(prefix string, c classify.Category) string {
	switch c {
	case classify.CategoryInteger:
		return prefix + "integers.txt"
	case classify.CategoryFloat:
		return prefix + "floats.txt"
	default:
		return prefix + "strings.txt"
	}
}

// PrepareDir makes sure dir exists, creating it if necessary. If dir cannot
// be used, FallbackDir is returned together with the reason so the caller can
// warn and carry on.
func PrepareDir(fs afero.Fs, dir string) (string, error) {
	if dir == "" {
		return FallbackDir, nil
	}

	info, err := fs.Stat(dir)
	switch {
	case err == nil && info.IsDir():
		return dir, nil
	case err == nil:
		return FallbackDir, fmt.Errorf("output path %s is not a directory", dir)
	case !errors.Is(err, os.ErrNotExist):
		return FallbackDir, fmt.Errorf("checking output directory %s: %w", dir, err)
	}

	if err := fs.MkdirAll(dir, 0755); err != nil {
		return FallbackDir, fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	return dir, nil
}

// WriteResult is the outcome of writing one category file.
type WriteResult struct {
	Category classify.Category
	Path     string
	Lines    int

	// Skipped is true for empty categories; no file was touched.
	Skipped bool

	Err error
}

// Writer writes accumulated lines to per-category files.
type Writer struct {
	fs     afero.Fs
	dir    string
	prefix string
	mode   WriteMode
}

// NewWriter creates a Writer for dir. The directory must already exist (see
// PrepareDir).
func NewWriter(fs afero.Fs, dir, prefix string, mode WriteMode) *Writer {
	if dir == "" {
		dir = FallbackDir
	}
	return &Writer{fs: fs, dir: dir, prefix: prefix, mode: mode}
}

// WriteAll writes every non-empty category in output order. A failure for one
// category does not stop or undo the others.
func (w *Writer) WriteAll(set *accumulator.Set) []WriteResult {
	results := make([]WriteResult, 0, len(classify.Categories))
	for _, acc := range set.All() {
		results = append(results, w.Write(acc))
	}
	return results
}

// Write writes one accumulator's lines. Empty accumulators are skipped so an
// existing file for that category is left untouched.
func (w *Writer) Write(acc *accumulator.Accumulator) WriteResult {
	path := filepath.Join(w.dir, FileName(w.prefix, acc.Category()))
	result := WriteResult{
		Category: acc.Category(),
		Path:     path,
	}

	if acc.Empty() {
		result.Skipped = true
		return result
	}

	if err := w.writeLines(path, acc.Lines); err != nil {
		result.Err = fmt.Errorf("writing %s: %w", path, err)
		return result
	}
	result.Lines = len(acc.Lines)

	return result
}

func (w *Writer) writeLines(path string, lines []string) (err error) {
	flags := os.O_WRONLY | os.O_CREATE
	if w.mode == ModeAppend {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	f, err := w.fs.OpenFile(path, flags, 0644)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	bw := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
