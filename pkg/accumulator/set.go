package accumulator

import (
	"fmt"

	"github.com/ccollicutt/linesplit/pkg/classify"
)

// Set owns one accumulator per category and routes classified lines to them.
type Set struct {
	Integers *Accumulator
	Floats   *Accumulator
	Strings  *Accumulator
}

// NewSet creates a set of three empty accumulators.
func NewSet() *Set {
	return &Set{
		Integers: New(classify.CategoryInteger),
		Floats:   New(classify.CategoryFloat),
		Strings:  New(classify.CategoryString),
	}
}

// Get returns the accumulator for a category, or nil for an unknown one.
func (s *Set) Get(c classify.Category) *Accumulator {
	switch c {
	case classify.CategoryInteger:
		return s.Integers
	case classify.CategoryFloat:
		return s.Floats
	case classify.CategoryString:
		return s.Strings
	default:
		return nil
	}
}

// Ingest routes a classified line to its category's accumulator.
func (s *Set) Ingest(r classify.Result) error {
	acc := s.Get(r.Category)
	if acc == nil {
		return fmt.Errorf("no accumulator for category %q", r.Category)
	}
	return acc.Add(r)
}

// All returns the accumulators in output order (integers, floats, strings).
func (s *Set) All() []*Accumulator {
	return []*Accumulator{s.Integers, s.Floats, s.Strings}
}
