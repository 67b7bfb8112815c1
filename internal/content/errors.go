package content

import "fmt"

// ParseError is returned when a document's front matter cannot be decoded.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse front matter of %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// InvalidDateError is returned when a document has a date field that does
// not parse as a timestamp. A missing date is not an error.
type InvalidDateError struct {
	Path  string
	Value any
	Err   error
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q in %s: %v", fmt.Sprint(e.Value), e.Path, e.Err)
}

func (e *InvalidDateError) Unwrap() error { return e.Err }
