package groovylex

import (
	"strconv"
	"strings"
)

// spanCursor walks byte-by-byte through a raw lexeme's span, handing out
// sub-spans to S2's sugar expansions (label split, GString path
// expansion, ...) the same way Lexer.emit advances across S1's input.
type spanCursor struct {
	byte int
	line int
	col  int
}

func newSpanCursor(loc Location) spanCursor {
	return spanCursor{byte: loc.StartByte, line: loc.Line, col: loc.Column}
}

func (c *spanCursor) advance(s string) Location {
	start := Location{StartByte: c.byte, Line: c.line, Column: c.col}
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			c.line++
			c.col = 0
		} else {
			c.col++
		}
	}
	c.byte += len(s)
	start.EndByte = c.byte
	return start
}

// categoryHandler produces the Terminals a single RawToken of some
// category expands to, given a cursor already positioned at the token's
// start. Registered per-category in categoryHandlers; a category with no
// direct entry falls back to its Parent, repeatedly, per §4.2's two-level
// dispatch.
type categoryHandler func(a *Adapter, tok RawToken, cur *spanCursor) []Terminal

var categoryHandlers = map[Category]categoryHandler{
	CatWhitespace: handleWhitespace,

	CatComment:          handleFiltered,
	CatCommentSingle:    handleFiltered,
	CatCommentMultiline: handleFiltered,
	CatCommentPreproc:   handleFiltered,
	CatGeneric:          handleFiltered,
	CatOther:            handleFiltered,
	CatNone:             handleFiltered,

	CatKeyword: handleKeyword,
	CatOperator: handleOperator,

	CatNumberInteger: handleIntLiteral,
	CatNumberFloat:   handleFloatLiteral,
	CatNumber:        handleNumberFallback,

	CatName:      handleIdentifier,
	CatNameLabel: handleLabel,

	CatStringSingle: handleStringSingle,
	CatString:       handleStringGeneric,
	CatStringDouble: handleStringDouble,
	CatStringEscape: handleEscape,

	CatStringGStringBegin:       handleGStringBegin,
	CatStringGStringEnd:         handleGStringEnd,
	CatStringGStringPath:        handleGStringPath,
	CatStringGStringClosureBegin: handleClosureBegin,
	CatStringGStringClosureEnd:   handleClosureEnd,
}

func handleWhitespace(a *Adapter, tok RawToken, cur *spanCursor) []Terminal {
	if tok.Lexeme != "\n" {
		return nil
	}
	return []Terminal{a.term(TermNL, tok.Lexeme, tok, cur.advance(tok.Lexeme))}
}

func handleFiltered(a *Adapter, tok RawToken, cur *spanCursor) []Terminal {
	return nil
}

func handleKeyword(a *Adapter, tok RawToken, cur *spanCursor) []Terminal {
	name, ok := keywordTerminals[tok.Lexeme]
	if !ok {
		name = TermKeyword
	}
	return []Terminal{a.term(name, tok.Lexeme, tok, cur.advance(tok.Lexeme))}
}

func handleOperator(a *Adapter, tok RawToken, cur *spanCursor) []Terminal {
	name, ok := operatorTerminals[tok.Lexeme]
	if !ok {
		name = TermOperator
	}
	return []Terminal{a.term(name, tok.Lexeme, tok, cur.advance(tok.Lexeme))}
}

func handleIntLiteral(a *Adapter, tok RawToken, cur *spanCursor) []Terminal {
	return []Terminal{a.term(TermIntegerLiteral, tok.Lexeme, tok, cur.advance(tok.Lexeme))}
}

func handleFloatLiteral(a *Adapter, tok RawToken, cur *spanCursor) []Terminal {
	return []Terminal{a.term(TermFloatingPointLiteral, tok.Lexeme, tok, cur.advance(tok.Lexeme))}
}

func handleNumberFallback(a *Adapter, tok RawToken, cur *spanCursor) []Terminal {
	return []Terminal{a.term(TermNumber, tok.Lexeme, tok, cur.advance(tok.Lexeme))}
}

func handleIdentifier(a *Adapter, tok RawToken, cur *spanCursor) []Terminal {
	return []Terminal{a.term(TermIdent, tok.Lexeme, tok, cur.advance(tok.Lexeme))}
}

// handleLabel splits "foo:" into IDENTIFIER "foo" then COLON ":", the
// spans partitioned across the original lexeme's bytes.
func handleLabel(a *Adapter, tok RawToken, cur *spanCursor) []Terminal {
	name := tok.Lexeme[:len(tok.Lexeme)-1]
	nameLoc := cur.advance(name)
	colonLoc := cur.advance(":")
	return []Terminal{
		a.term(TermIdent, name, tok, nameLoc),
		a.term(TermColon, ":", tok, colonLoc),
	}
}

func stripQuoted(s string) string {
	if strings.HasPrefix(s, "'''") && strings.HasSuffix(s, "'''") && len(s) >= 6 {
		return s[3 : len(s)-3]
	}
	if len(s) >= 2 {
		return s[1 : len(s)-1]
	}
	return s
}

func handleStringSingle(a *Adapter, tok RawToken, cur *spanCursor) []Terminal {
	value := stripQuoted(tok.Lexeme)
	return []Terminal{a.term(TermStringLiteral, value, tok, cur.advance(tok.Lexeme))}
}

// handleStringGeneric is the String parent's fallback: a slashy literal
// (bare, outside the GString sub-modes — not produced by this lexer's own
// rules but reachable via the parent walk for any unmapped String.*
// child, e.g. String.Char) has its delimiters stripped; anything else is
// residue the grammar is expected to ignore.
func handleStringGeneric(a *Adapter, tok RawToken, cur *spanCursor) []Terminal {
	loc := cur.advance(tok.Lexeme)
	if len(tok.Lexeme) >= 2 && strings.HasPrefix(tok.Lexeme, "/") && strings.HasSuffix(tok.Lexeme, "/") {
		return []Terminal{a.term(TermStringLiteral, tok.Lexeme[1:len(tok.Lexeme)-1], tok, loc)}
	}
	return []Terminal{a.term(TermSkippable, tok.Lexeme, tok, loc)}
}

func handleStringDouble(a *Adapter, tok RawToken, cur *spanCursor) []Terminal {
	return []Terminal{a.term(TermStringLiteralPart, tok.Lexeme, tok, cur.advance(tok.Lexeme))}
}

// escapeValue decodes a String.Escape lexeme: a two-byte "\X" becomes its
// single character X; a "\uXXXX" form decodes the hex digits numerically.
func escapeValue(lexeme string) string {
	body := lexeme[1:]
	if len(lexeme) == 2 {
		return body
	}
	if strings.HasPrefix(body, "u") && len(body) == 5 {
		if n, err := strconv.ParseInt(body[1:], 16, 32); err == nil {
			return string(rune(n))
		}
	}
	return body
}

func handleEscape(a *Adapter, tok RawToken, cur *spanCursor) []Terminal {
	value := escapeValue(tok.Lexeme)
	return []Terminal{a.term(TermStringLiteralPart, value, tok, cur.advance(tok.Lexeme))}
}

func handleGStringBegin(a *Adapter, tok RawToken, cur *spanCursor) []Terminal {
	return []Terminal{a.term(TermGStringBegin, tok.Lexeme, tok, cur.advance(tok.Lexeme))}
}

func handleGStringEnd(a *Adapter, tok RawToken, cur *spanCursor) []Terminal {
	return []Terminal{a.term(TermGStringEnd, tok.Lexeme, tok, cur.advance(tok.Lexeme))}
}

// handleGStringPath expands "$a.b.c" into GSTRING_PART "$", then
// IDENTIFIER/DOT pairs for each dotted segment, dropping the trailing DOT.
func handleGStringPath(a *Adapter, tok RawToken, cur *spanCursor) []Terminal {
	segments := strings.Split(tok.Lexeme[1:], ".")
	out := make([]Terminal, 0, 2*len(segments))
	out = append(out, a.term(TermGStringPart, "$", tok, cur.advance("$")))
	for i, seg := range segments {
		out = append(out, a.term(TermIdent, seg, tok, cur.advance(seg)))
		if i != len(segments)-1 {
			out = append(out, a.term(TermDot, ".", tok, cur.advance(".")))
		}
	}
	return out
}

// handleClosureBegin expands "${" into GSTRING_PART "$", LBRACE "{".
func handleClosureBegin(a *Adapter, tok RawToken, cur *spanCursor) []Terminal {
	return []Terminal{
		a.term(TermGStringPart, "$", tok, cur.advance("$")),
		a.term(TermLBrace, "{", tok, cur.advance("{")),
	}
}

func handleClosureEnd(a *Adapter, tok RawToken, cur *spanCursor) []Terminal {
	return []Terminal{a.term(TermRBrace, tok.Lexeme, tok, cur.advance(tok.Lexeme))}
}

// Adapter is S2: it coalesces operators, maps categories to terminals,
// expands syntactic sugar, and drops filtered raw tokens, consuming any
// RawTokenSource (normally a *Lexer). It follows the same Do/Get/Run
// channel shape the teacher's Lexer/Parser share, one stage further down
// the pipeline.
type Adapter struct {
	source    RawTokenSource
	coalescer operatorCoalescer
	output    chan Terminal
	err       error
}

// NewAdapter wraps source for terminal adaptation.
func NewAdapter(source RawTokenSource) *Adapter {
	return &Adapter{
		source: source,
		output: make(chan Terminal, 2),
	}
}

// Chan exposes the terminal channel.
func (a *Adapter) Chan() chan Terminal {
	return a.output
}

// Get fetches the next available Terminal, blocking until one is ready.
// The zero Terminal (Name == "") on a closed channel signals end of
// stream — no real Terminal ever has an empty Name.
func (a *Adapter) Get() Terminal {
	return <-a.output
}

// Err returns the first fatal error from the underlying source, once the
// stream has ended.
func (a *Adapter) Err() error {
	return a.err
}

func (a *Adapter) term(name, value string, raw RawToken, loc Location) Terminal {
	return Terminal{
		Name:      name,
		Value:     value,
		Raw:       raw.Lexeme,
		StartByte: loc.StartByte,
		EndByte:   loc.EndByte,
		Line:      loc.Line,
		Column:    loc.Column,
	}
}

func (a *Adapter) mapToken(tok RawToken) []Terminal {
	cur := newSpanCursor(tok.Loc)
	cat := tok.Category
	for {
		if h, ok := categoryHandlers[cat]; ok {
			return h(a, tok, &cur)
		}
		parent, ok := cat.Parent()
		if !ok {
			return []Terminal{a.term(TermSkippable, tok.Lexeme, tok, cur.advance(tok.Lexeme))}
		}
		cat = parent
	}
}

// emitRaw runs tok through coalescing-aware mapping and sends every
// resulting Terminal downstream, in order.
func (a *Adapter) emitRaw(tok RawToken) {
	for _, ready := range a.coalescer.feed(tok) {
		for _, t := range a.mapToken(ready) {
			a.output <- t
		}
	}
}

// Do starts adapting on a goroutine, closing the channel once the source
// is exhausted.
func (a *Adapter) Do() {
	a.source.Do()
	go func() {
		defer close(a.output)
		for {
			tok := a.source.Get()
			if tok.Category == CatEOF {
				break
			}
			a.emitRaw(tok)
		}
		if flushed, ok := a.coalescer.flush(); ok {
			for _, t := range a.mapToken(flushed) {
				a.output <- t
			}
		}
		if errSrc, ok := a.source.(interface{ Err() error }); ok {
			a.err = errSrc.Err()
		}
	}()
}

// Run adapts the stream synchronously and returns every Terminal, or the
// source's fatal error.
func (a *Adapter) Run() ([]Terminal, error) {
	a.Do()
	var terms []Terminal
	for t := range a.output {
		terms = append(terms, t)
	}
	return terms, a.err
}
