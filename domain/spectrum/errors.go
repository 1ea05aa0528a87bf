package spectrum

import (
	"errors"
	"fmt"
)

// Sentinel errors for the analysis operations. Callers match them with
// errors.Is and present the message to the user.
var (
	// ErrInvalidSelection indicates a degenerate user selection, such as two
	// background points sharing the same x value.
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrInsufficientData indicates an operation that needs at least two
	// samples was attempted on a smaller spectrum.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrUnsortedData indicates x values that are not in ascending order,
	// which the trapezoidal integration requires.
	ErrUnsortedData = errors.New("x values not in ascending order")
)

// ParseError describes a measurement file line that could not be parsed as
// two numeric columns.
type ParseError struct {
	Path string
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s:%d: cannot parse %q: %v", e.Path, e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("line %d: cannot parse %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
