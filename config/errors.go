package config

import "fmt"

// Error reports an unusable option value.
type Error struct {
	Option string
	Value  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("illegal %s -- %s", e.Option, e.Value)
}

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	Path   string
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %v", e.Path, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("parse error in %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
