package schematic

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when the text holds no rows.
	ErrEmptyInput = errors.New("empty schematic")
	// ErrIrregularGrid is returned when rows differ in width.
	ErrIrregularGrid = errors.New("irregular grid")
	// ErrInvalidCharacter is returned for a carriage return that does not end a line.
	ErrInvalidCharacter = errors.New("invalid character")
)

// ParseError describes where parsing failed. Line and Col are 1-based; zero means
// the error is not tied to a position.
type ParseError struct {
	Line   int
	Col    int
	Detail string
	Err    error
}

func (e *ParseError) Error() string {
	msg := "schematic: " + e.Err.Error()
	switch {
	case e.Line > 0 && e.Col > 0:
		msg += fmt.Sprintf(" at line %d, column %d", e.Line, e.Col)
	case e.Line > 0:
		msg += fmt.Sprintf(" at line %d", e.Line)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// InvariantError is the panic value used when a query breaks an internal invariant,
// such as resolving a non-number cell as a number. It signals a programming error.
type InvariantError struct {
	At     Coord
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("schematic: invariant violated at %s: %s", e.At, e.Reason)
}
