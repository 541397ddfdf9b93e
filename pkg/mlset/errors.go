package mlset

import "fmt"

// ParseError reports a continuous cell that could not be parsed as a
// number. Record is the zero-based data record index, not counting the
// header.
type ParseError struct {
	Record int
	Field  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("record %d: error parsing feature %s: %v", e.Record, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ShapeError reports an attempt to one-hot encode something that is not a
// single column of codes.
type ShapeError struct {
	Rows    int
	Columns int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("cannot one-hot encode a %dx%d matrix: want a single column", e.Rows, e.Columns)
}

// UnsupportedError reports a missing-value policy this package does not
// implement.
type UnsupportedError struct {
	Policy string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported NaN policy %q", e.Policy)
}
