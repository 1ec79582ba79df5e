/*
File : wacc/checker/errors.go
CheckerError is the single error type produced by every stage downstream
of the lexer: the parser raises Syntax errors with a position already
attached (it always knows the current token's line/column); the semantic
walker and typing package often raise Semantic/Type errors with no
position at all, leaving WithPos to stamp one in as the error unwinds
through each enclosing IdentifiedStatement. When an error crosses more
than one IdentifiedStatement boundary on its way out, each boundary
re-stamps it, so the outermost boundary's position is the one a caller
ultimately sees.
*/
package checker

import (
	"fmt"

	"github.com/wacclang/wacc/location"
)

// Kind distinguishes the three error categories spec.md §7 enumerates.
type Kind int

const (
	Syntax Kind = iota
	Semantic
	Type
)

func (k Kind) String() string {
	switch k {
	case Syntax:
		return "Syntax"
	case Semantic:
		return "Semantic"
	case Type:
		return "Type"
	default:
		return "Unknown"
	}
}

// CheckerError is the error type returned by Parse and Check.
type CheckerError struct {
	Kind    Kind
	Pos     location.Position
	HasPos  bool
	Message string
}

// New builds a CheckerError with a position already known.
func New(kind Kind, pos location.Position, message string) *CheckerError {
	return &CheckerError{Kind: kind, Pos: pos, HasPos: true, Message: message}
}

// NewUnlocated builds a CheckerError with no position yet; the nearest
// enclosing IdentifiedStatement attaches one via WithPos on the way out.
func NewUnlocated(kind Kind, message string) *CheckerError {
	return &CheckerError{Kind: kind, Message: message}
}

// WithPos returns a copy of e stamped with pos, overwriting any position
// the error already carried. Called at every IdentifiedStatement boundary
// an error propagates through, so the outermost call wins.
func (e *CheckerError) WithPos(pos location.Position) *CheckerError {
	stamped := *e
	stamped.Pos = pos
	stamped.HasPos = true
	return &stamped
}

func (e *CheckerError) Error() string {
	if !e.HasPos {
		if e.Message == "" {
			return fmt.Sprintf("%s Error", e.Kind)
		}
		return fmt.Sprintf("%s Error: %s", e.Kind, e.Message)
	}
	if e.Message == "" {
		return fmt.Sprintf("%s Error in statement on line %d, column %d", e.Kind, e.Pos.Line, e.Pos.Column)
	}
	return fmt.Sprintf("%s Error in statement on line %d, column %d: %s", e.Kind, e.Pos.Line, e.Pos.Column, e.Message)
}
