package parsing

import "fmt"

// NotFoundError is returned when a path does not reference an existing file
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no source file at %s: %v", e.Path, e.Err)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// ParseError is returned when a file's content is not syntactically valid Java.
// Line and Column point at the first bad node, and are zero if it is unknown
type ParseError struct {
	Path   string
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("failed to parse %s at %d:%d: %v", e.Path, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
