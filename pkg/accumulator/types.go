// Package accumulator keeps the exact running statistics of each category.
package accumulator

import (
	"github.com/shopspring/decimal"

	"github.com/ccollicutt/linesplit/pkg/classify"
)

// AveragePrecision is the number of fractional digits of a reported average.
const AveragePrecision = 10

// Accumulator is the running aggregate of one category: its count, the
// ordered output lines and either numeric or text statistics.
type Accumulator struct {
	category classify.Category

	// Count is the number of lines ingested.
	Count uint64

	// Lines holds the output text of every ingested line in input order.
	// Numbers are stored in canonical form, strings verbatim.
	Lines []string

	// Numeric is set for Integer and Float accumulators.
	Numeric *NumericStats

	// Text is set for the String accumulator.
	Text *TextStats
}

// NumericStats holds exact aggregates. Min and Max are meaningless while the
// owning accumulator is empty.
type NumericStats struct {
	Sum decimal.Decimal
	Min decimal.Decimal
	Max decimal.Decimal
}

// TextStats holds string length extremes in characters (code points).
type TextStats struct {
	MinLength int
	MaxLength int
}
