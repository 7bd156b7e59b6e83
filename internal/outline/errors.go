package outline

import (
	"errors"
	"fmt"
)

// ErrMalformedOutline is matched by every SyntaxError.
var ErrMalformedOutline = errors.New("malformed outline")

// SyntaxError reports the 1-based line at which decoding gave up.
type SyntaxError struct {
	Line   int
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: line %d: %s", ErrMalformedOutline, e.Line, e.Reason)
}

func (e *SyntaxError) Unwrap() error {
	return ErrMalformedOutline
}
