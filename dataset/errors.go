package dataset

import (
	"errors"
	"fmt"
)

// ErrNoTimestamp is returned when the column selection lacks the UTC date or
// time column, so rows cannot be placed in time.
var ErrNoTimestamp = errors.New("selection has no UTC Date/UTC Time columns")

// ParseError locates a malformed value in a data file.
type ParseError struct {
	Path   string
	Line   int
	Column string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s:%d: column %q: %v", e.Path, e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
