package groovylex

import "fmt"

// LexError reports a fatal lexical failure: either no rule matched at the
// current position, or EOF arrived with a string/comment mode still pushed
// (§7 error kinds 1 and 2). Shaped after pongo2's Error
// (filename/line/column plus a formatted Error()) rather than a wrapped
// sentinel, since that's the error-reporting idiom this corpus uses for
// source-position failures.
type LexError struct {
	Filename string
	Line     int
	Column   int
	Context  string
	Msg      string
}

func (e *LexError) Error() string {
	s := "[groovylex"
	if e.Filename != "" {
		s += " in " + e.Filename
	}
	if e.Line > 0 {
		s += fmt.Sprintf(" | Line %d Col %d", e.Line, e.Column)
	}
	s += "] " + e.Msg
	if e.Context != "" {
		s += fmt.Sprintf(" (near %q)", e.Context)
	}
	return s
}

// ParseError is the contract type for §7 error kind 3: a failure raised by
// the external grammar engine this repo does not implement. Nothing here
// constructs one; it exists so a caller's parser can satisfy a common
// interface alongside LexError without this package needing to know the
// grammar engine's concrete error type.
type ParseError interface {
	error
	Position() (line, column int)
}
