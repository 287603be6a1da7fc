package output

import (
	"context"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter formats reports as YAML.
type YAMLFormatter struct {
	opts FormatOptions
}

// NewYAMLFormatter creates a new YAML formatter with the given options.
func NewYAMLFormatter(opts FormatOptions) *YAMLFormatter {
	return &YAMLFormatter{opts: opts}
}

// Name returns the format name.
func (f *YAMLFormatter) Name() string {
	return FormatYAML
}

// Format renders the report as a YAML document.
func (f *YAMLFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if report.Mode == StatsNone {
		return nil
	}

	var doc any = report
	if !f.opts.Verbose {
		doc = struct {
			Mode       StatsMode       `yaml:"mode"`
			Categories []CategoryStats `yaml:"categories"`
		}{report.Mode, report.Categories}
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return err
	}
	return encoder.Close()
}
