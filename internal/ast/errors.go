package ast

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound matches lookups of absent or empty slots.
	ErrNotFound = errors.New("node not found")
	// ErrWrongType matches lookups of slots holding another kind.
	ErrWrongType = errors.New("node has another type")

	ErrNoLibrary         = errors.New("no library found")
	ErrMultipleLibraries = errors.New("multiple libraries found")
	ErrNoEntity          = errors.New("no entity found in this library")
	ErrMultipleEntities  = errors.New("multiple entities found in this library")
)

// LookupErrorKind tells the two lookup failures apart.
type LookupErrorKind uint8

const (
	NotFound LookupErrorKind = iota
	WrongType
)

// LookupError is returned by TryGet.
type LookupError struct {
	Kind     LookupErrorKind
	ID       GenericNodeID
	Expected string
	Actual   string // WrongType only
}

func (e *LookupError) Error() string {
	if e.Kind == WrongType {
		return fmt.Sprintf("node #%d is of type %s; expected %s", e.ID, e.Actual, e.Expected)
	}
	return fmt.Sprintf("node #%d not found in AST; expected %s", e.ID, e.Expected)
}

func (e *LookupError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == NotFound
	case ErrWrongType:
		return e.Kind == WrongType
	}
	return false
}

// TryFromNodeError reports a node that is not a member of a subset group.
type TryFromNodeError struct {
	Actual   string
	Expected string
}

func (e *TryFromNodeError) Error() string {
	return fmt.Sprintf("node is of type %s; expected %s", e.Actual, e.Expected)
}

func (e *TryFromNodeError) Is(target error) bool { return target == ErrWrongType }

func newTryFromNodeError(n Node, expected string) *TryFromNodeError {
	return &TryFromNodeError{Actual: nodeKindName(n), Expected: expected}
}

// ParseError aborts a load. Line is the physical line of the stream,
// the metadata line being line 1.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in line %d: %s: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
