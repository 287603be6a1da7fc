package output

import (
	"context"
	"fmt"
	"io"

	"github.com/ccollicutt/linesplit/pkg/classify"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return FormatText
}

// Format renders the report as text: all counts first, then the details of
// every non-empty category in full mode.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if report.Mode == StatsNone {
		return nil
	}

	for _, c := range report.Categories {
		if _, err := fmt.Fprintf(w, "%s count: %d\n", label(c.Category), c.Count); err != nil {
			return err
		}
	}

	if report.Mode == StatsFull {
		for i := range report.Categories {
			if err := f.formatDetail(&report.Categories[i], w); err != nil {
				return err
			}
		}
	}

	if f.opts.Verbose {
		return f.formatMetadata(&report.Metadata, w)
	}
	return nil
}

func (f *TextFormatter) formatDetail(c *CategoryStats, w io.Writer) error {
	if !c.HasDetail() {
		return nil
	}

	name := label(c.Category)
	if c.MinLength != nil {
		_, err := fmt.Fprintf(w, "%s min length: %d\n%s max length: %d\n",
			name, *c.MinLength, name, *c.MaxLength)
		return err
	}

	_, err := fmt.Fprintf(w, "%s min: %s\n%s max: %s\n%s sum: %s\n%s average: %s\n",
		name, c.Min,
		name, c.Max,
		name, c.Sum,
		name, c.Average)
	return err
}

func (f *TextFormatter) formatMetadata(m *Metadata, w io.Writer) error {
	_, err := fmt.Fprintf(w, "Inputs: %d (%d failed)\nLines: %d classified, %d blank\n",
		len(m.Inputs), len(m.FailedInputs), m.LinesIngested, m.BlankLines)
	return err
}

func label(c classify.Category) string {
	switch c {
	case classify.CategoryInteger:
		return "Integers"
	case classify.CategoryFloat:
		return "Floats"
	case classify.CategoryString:
		return "Strings"
	default:
		return string(c)
	}
}
