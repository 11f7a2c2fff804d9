package parser

import "fmt"

// InvalidExpressionError reports input rejected by the dice grammar. It
// carries the original, unmodified text for display.
type InvalidExpressionError struct {
	Input string
}

func (e *InvalidExpressionError) Error() string {
	return fmt.Sprintf("Invalid dice roll %q", e.Input)
}
