package output

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrUnknownFormat is returned for an unsupported stats format name.
var ErrUnknownFormat = errors.New("unknown stats format")

// Format names.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formatter renders a statistics report in a specific format.
type Formatter interface {
	// Format renders the report to the given writer.
	// A report in StatsNone mode renders nothing.
	Format(ctx context.Context, report *Report, w io.Writer) error

	// Name returns the format name (text, json, yaml).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Verbose adds input metadata (files read and failed, blank lines).
	Verbose bool
}

// NewFormatter returns the formatter registered under name.
func NewFormatter(name string, opts FormatOptions) (Formatter, error) {
	switch name {
	case FormatText:
		return NewTextFormatter(opts), nil
	case FormatJSON:
		return NewJSONFormatter(opts), nil
	case FormatYAML:
		return NewYAMLFormatter(opts), nil
	default:
		return nil, fmt.Errorf("%w %q (use text, json, or yaml)", ErrUnknownFormat, name)
	}
}
