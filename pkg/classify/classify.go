package classify

import "github.com/ccollicutt/linesplit/pkg/numeric"

// Classify tags a trimmed, non-empty line as Integer, Float or String.
func Classify(text string) Result {
	v, ok := numeric.Parse(text)
	if !ok {
		return Result{Category: CategoryString, Text: text}
	}

	if v.Integral() {
		return Result{Category: CategoryInteger, Text: text, Value: v}
	}
	return Result{Category: CategoryFloat, Text: text, Value: v}
}
