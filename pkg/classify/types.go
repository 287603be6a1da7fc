// Package classify assigns every input line to exactly one category.
package classify

import "github.com/ccollicutt/linesplit/pkg/numeric"

// Category enumerates classification outcomes.
type Category string

const (
	CategoryInteger Category = "integer"
	CategoryFloat   Category = "float"
	CategoryString  Category = "string"
)

// Categories lists every category in output order.
var Categories = []Category{CategoryInteger, CategoryFloat, CategoryString}

// IsNumeric returns true for Integer and Float.
func (c Category) IsNumeric() bool {
	return c == CategoryInteger || c == CategoryFloat
}

// Result is the outcome of classifying a single line.
type Result struct {
	// Category is the assigned category.
	Category Category

	// Text is the original trimmed line.
	Text string

	// Value is the parsed number. Zero for CategoryString.
	Value numeric.Value
}
