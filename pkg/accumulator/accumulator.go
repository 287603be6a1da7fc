package accumulator

import (
	"fmt"
	"math/big"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/ccollicutt/linesplit/pkg/classify"
)

// New creates an empty accumulator for the given category.
func New(category classify.Category) *Accumulator {
	a := &Accumulator{category: category}
	a.Reset()
	return a
}

// Category returns the category this accumulator collects.
func (a *Accumulator) Category() classify.Category {
	return a.category
}

// Empty returns true if nothing has been ingested.
func (a *Accumulator) Empty() bool {
	return a.Count == 0
}

// Reset clears all state for reuse.
func (a *Accumulator) Reset() {
	a.Count = 0
	a.Lines = nil
	a.Numeric = nil
	a.Text = nil

	if a.category.IsNumeric() {
		a.Numeric = &NumericStats{Sum: decimal.Zero}
	} else {
		a.Text = &TextStats{}
	}
}

// Add ingests one classified line. The result must belong to this
// accumulator's category.
func (a *Accumulator) Add(r classify.Result) error {
	if r.Category != a.category {
		return fmt.Errorf("%s accumulator cannot ingest %s value %q", a.category, r.Category, r.Text)
	}

	if a.Numeric != nil {
		a.addNumber(r)
	} else {
		a.addText(r.Text)
	}
	a.Count++

	return nil
}

func (a *Accumulator) addNumber(r classify.Result) {
	v := r.Value.Decimal()
	a.Lines = append(a.Lines, r.Value.String())

	n := a.Numeric
	n.Sum = n.Sum.Add(v)
	if a.Count == 0 {
		n.Min, n.Max = v, v
		return
	}
	if v.LessThan(n.Min) {
		n.Min = v
	}
	if v.GreaterThan(n.Max) {
		n.Max = v
	}
}

func (a *Accumulator) addText(text string) {
	a.Lines = append(a.Lines, text)

	length := utf8.RuneCountInString(text)
	s := a.Text
	if a.Count == 0 {
		s.MinLength, s.MaxLength = length, length
		return
	}
	s.MinLength = min(s.MinLength, length)
	s.MaxLength = max(s.MaxLength, length)
}

// Average returns Sum / Count rounded half-up to AveragePrecision fractional
// digits. The second return value is false for empty or non-numeric
// accumulators. Sum is not modified.
func (a *Accumulator) Average() (decimal.Decimal, bool) {
	if a.Numeric == nil || a.Count == 0 {
		return decimal.Zero, false
	}
	count := decimal.NewFromBigInt(new(big.Int).SetUint64(a.Count), 0)
	return a.Numeric.Sum.DivRound(count, AveragePrecision), true
}

// FormatAverage renders an average with exactly AveragePrecision fractional
// digits.
func FormatAverage(d decimal.Decimal) string {
	return d.StringFixed(AveragePrecision)
}

// FormatNumber renders an aggregate in the same canonical form used for
// output lines.
func FormatNumber(d decimal.Decimal) string {
	return d.String()
}
