package parser

import (
	"errors"
	"fmt"

	"item-parser/internal/item"
)

// ErrorKind classifies why a dump could not be parsed.
type ErrorKind int

const (
	EmptyInput ErrorKind = iota + 1
	MissingClassSection
	MissingRaritySection
	UnrecognizedRarity
	UnexpectedSectionShape
	UnknownBaseType
	UnknownCategory
	RequiredSectionParseFailed
	UnknownID
)

func (k ErrorKind) String() string {
	switch k {
	case EmptyInput:
		return "EmptyInput"
	case MissingClassSection:
		return "MissingClassSection"
	case MissingRaritySection:
		return "MissingRaritySection"
	case UnrecognizedRarity:
		return "UnrecognizedRarity"
	case UnexpectedSectionShape:
		return "UnexpectedSectionShape"
	case UnknownBaseType:
		return "UnknownBaseType"
	case UnknownCategory:
		return "UnknownCategory"
	case RequiredSectionParseFailed:
		return "RequiredSectionParseFailed"
	case UnknownID:
		return "UnknownID"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ParseError is the typed failure of a parse. errors.Is matches any
// ParseError of the same kind.
type ParseError struct {
	Kind    ErrorKind
	Section item.SectionKind
	Detail  string
	Err     error
}

// ErrEmptyInput is returned for a dump without sections.
var ErrEmptyInput = &ParseError{Kind: EmptyInput, Detail: "dump contains no sections"}

func newError(kind ErrorKind, format string, args ...any) *ParseError {
	return &ParseError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

func (e *ParseError) Error() string {
	msg := e.Kind.String()
	if e.Section != "" {
		msg += " in " + string(e.Section)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is reports whether target is a ParseError of the same kind.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == e.Kind
}

// KindOf extracts the ErrorKind of err.
func KindOf(err error) (ErrorKind, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return 0, false
}
