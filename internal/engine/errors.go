package engine

import (
	"errors"
	"fmt"
)

// ErrNoChoices indicates Choose was invoked with a single, unsplittable
// option. Adapters surface it as usage help rather than an error message.
var ErrNoChoices = errors.New("at least two choices must be provided")

// errOverflow is the internal sentinel for a normal sample escaping the
// representable float range. It never reaches callers: Roll swallows it
// and returns the literal joke string instead.
var errOverflow = errors.New("normal sample overflowed")

// InvalidNumberError reports a coin-flip amount that does not parse as an
// integer. It carries the original text for display.
type InvalidNumberError struct {
	Input string
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("Invalid input %q: not a number", e.Input)
}
