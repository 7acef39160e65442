package parser

import "fmt"

// Pos is a source position attached to syntax errors. It is opaque to
// the session, which only forwards it into error payloads.
type Pos struct {
	Line   int
	Column int
}

// SyntaxError is a structural parse failure carrying the source
// position current at the failing reduction
type SyntaxError struct {
	Pos Pos
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d, col %d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
}

// syntaxErrorf builds a SyntaxError at the given position
func syntaxErrorf(pos Pos, format string, args ...any) *SyntaxError {
	return &SyntaxError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
