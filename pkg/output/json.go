package output

import (
	"context"
	"encoding/json"
	"io"
)

// JSONFormatter formats reports as JSON.
type JSONFormatter struct {
	opts FormatOptions
}

// NewJSONFormatter creates a new JSON formatter with the given options.
func NewJSONFormatter(opts FormatOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return FormatJSON
}

// Format renders the report as JSON. Metadata is only included when verbose.
func (f *JSONFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if report.Mode == StatsNone {
		return nil
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if !f.opts.Verbose {
		return encoder.Encode(struct {
			Mode       StatsMode       `json:"mode"`
			Categories []CategoryStats `json:"categories"`
		}{report.Mode, report.Categories})
	}

	return encoder.Encode(report)
}
