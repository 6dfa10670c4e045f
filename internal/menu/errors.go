package menu

import (
	"errors"
	"fmt"
)

var (
	ErrIndexOutOfRange = errors.New("menu: field index out of range")
	ErrNotASubmenu     = errors.New("menu: field is not a submenu")
	ErrNotALeaf        = errors.New("menu: field is not a leaf")
	ErrNotABoolean     = errors.New("menu: field is not a boolean")
)

// ParseErrorKind narrows down why a leaf write was rejected.
type ParseErrorKind int

const (
	ParseMalformed  ParseErrorKind = iota // text is not a value of the type at all
	ParseOutOfRange                       // numeric value outside the type's range
	ParseWrongArity                       // wrong element count for a fixed-size sequence
)

func (k ParseErrorKind) String() string {
	switch k {
	case ParseOutOfRange:
		return "out of range"
	case ParseWrongArity:
		return "wrong arity"
	}
	return "malformed"
}

// ParseError reports a rejected WriteLeaf. The underlying field keeps its
// prior value in every case.
type ParseError struct {
	Kind  ParseErrorKind
	Type  PrimitiveType
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as %s: %s", e.Input, e.Type, e.Kind)
}

func (e *ParseError) Unwrap() error { return e.Err }
