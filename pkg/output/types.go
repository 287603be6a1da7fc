// Package output writes the per-category result files and renders the
// statistics report.
package output

import (
	"fmt"

	"github.com/ccollicutt/linesplit/pkg/accumulator"
	"github.com/ccollicutt/linesplit/pkg/classify"
)

// StatsMode selects how much of the statistics report is rendered.
type StatsMode string

const (
	StatsNone  StatsMode = "none"
	StatsShort StatsMode = "short"
	StatsFull  StatsMode = "full"
)

// ResolveStatsMode combines the short and full flags. Full is a superset of
// short, so it wins when both are requested.
func ResolveStatsMode(short, full bool) StatsMode {
	switch {
	case full:
		return StatsFull
	case short:
		return StatsShort
	default:
		return StatsNone
	}
}

// ParseStatsMode converts a mode name to a StatsMode.
func ParseStatsMode(s string) (StatsMode, error) {
	switch m := StatsMode(s); m {
	case StatsNone, StatsShort, StatsFull:
		return m, nil
	case "":
		return StatsNone, nil
	default:
		return "", fmt.Errorf("invalid stats mode %q (must be none, short, or full)", s)
	}
}

// Report is the statistics output of a run.
type Report struct {
	// Mode is the detail level the report was built for.
	Mode StatsMode `json:"mode" yaml:"mode"`

	// Categories holds one entry per category in output order.
	Categories []CategoryStats `json:"categories" yaml:"categories"`

	// Metadata provides context about the run.
	Metadata Metadata `json:"metadata" yaml:"metadata"`
}

// CategoryStats is the rendered state of one accumulator. Aggregates are
// strings so that arbitrary-precision values survive every output format.
type CategoryStats struct {
	Category classify.Category `json:"category" yaml:"category"`
	Count    uint64            `json:"count" yaml:"count"`

	// Numeric categories, full mode, non-empty only.
	Min     string `json:"min,omitempty" yaml:"min,omitempty"`
	Max     string `json:"max,omitempty" yaml:"max,omitempty"`
	Sum     string `json:"sum,omitempty" yaml:"sum,omitempty"`
	Average string `json:"average,omitempty" yaml:"average,omitempty"`

	// String category, full mode, non-empty only.
	MinLength *int `json:"min_length,omitempty" yaml:"min_length,omitempty"`
	MaxLength *int `json:"max_length,omitempty" yaml:"max_length,omitempty"`
}

// HasDetail returns true if full-mode aggregates are present.
func (c *CategoryStats) HasDetail() bool {
	return c.Sum != "" || c.MinLength != nil
}

// Metadata describes the inputs of a run.
type Metadata struct {
	// Inputs lists the input paths in processing order.
	Inputs []string `json:"inputs" yaml:"inputs"`

	// FailedInputs lists inputs that could not be fully read.
	FailedInputs []string `json:"failed_inputs,omitempty" yaml:"failed_inputs,omitempty"`

	// LinesIngested is the number of classified lines.
	LinesIngested uint64 `json:"lines_ingested" yaml:"lines_ingested"`

	// BlankLines is the number of discarded blank lines.
	BlankLines uint64 `json:"blank_lines" yaml:"blank_lines"`
}

// NewReport builds a Report from the final accumulator state. The set is
// only read.
func NewReport(set *accumulator.Set, mode StatsMode, meta Metadata) *Report {
	report := &Report{
		Mode:     mode,
		Metadata: meta,
	}
	if mode == StatsNone {
		return report
	}

	for _, acc := range set.All() {
		stats := CategoryStats{
			Category: acc.Category(),
			Count:    acc.Count,
		}
		if mode == StatsFull && !acc.Empty() {
			fillDetail(&stats, acc)
		}
		report.Categories = append(report.Categories, stats)
	}

	return report
}

func fillDetail(stats *CategoryStats, acc *accumulator.Accumulator) {
	if n := acc.Numeric; n != nil {
		stats.Min = accumulator.FormatNumber(n.Min)
		stats.Max = accumulator.FormatNumber(n.Max)
		stats.Sum = accumulator.FormatNumber(n.Sum)
		if avg, ok := acc.Average(); ok {
			stats.Average = accumulator.FormatAverage(avg)
		}
		return
	}

	if s := acc.Text; s != nil {
		minLen, maxLen := s.MinLength, s.MaxLength
		stats.MinLength = &minLen
		stats.MaxLength = &maxLen
	}
}

// Category returns the stats for c, or nil if the report has none.
func (r *Report) Category(c classify.Category) *CategoryStats {
	for i := range r.Categories {
		if r.Categories[i].Category == c {
			return &r.Categories[i]
		}
	}
	return nil
}
