package groovylex

import "strings"

// multiCharOperators is the fixed 42-entry set from spec §4.2, reproduced
// bit-exactly. Order doesn't matter for lookup but is kept close to the
// original grouping for readability.
var multiCharOperators = []string{
	"..", "<..", "..<", "<..<",
	"*.", "?.", "?[", "??.", "?:", ".&", "::",
	"=~", "==~",
	"**", "**=",
	"<=>", "===", "!==", "->",
	"!instanceof", "!in",
	"==", "<=", ">=", "!=", "&&", "||",
	"++", "--",
	"+=", "-=", "*=", "/=", "&=", "|=", "^=", "%=",
	"<<=", ">>=", ">>>=",
	"?=", "...",
}

// multiCharByFirstByte indexes multiCharOperators by their first byte, the
// same grouping lexer.py's COMBINED_OPERATORS_HASH builds.
var multiCharByFirstByte = func() map[byte][]string {
	m := make(map[byte][]string)
	for _, op := range multiCharOperators {
		b := op[0]
		m[b] = append(m[b], op)
	}
	return m
}()

// isMultiCharPrefix reports whether s is a non-empty, strict-or-equal
// prefix of at least one known multi-char operator.
func isMultiCharPrefix(s string) bool {
	if s == "" {
		return false
	}
	for _, op := range multiCharByFirstByte[s[0]] {
		if strings.HasPrefix(op, s) {
			return true
		}
	}
	return false
}

// operatorCoalescer is the single-slot pending-operator buffer of spec §3/
// §4.2: at most one candidate lexeme in flight, never a streaming
// transducer.
type operatorCoalescer struct {
	pending *RawToken
}

// feed offers the next raw token to the coalescer and returns zero or more
// tokens now ready for the rest of S2 to process, in order. A token that
// extends the pending buffer yields nothing; a token that can't extend it
// flushes the buffer (and, unless the new token itself starts a fresh
// buffer, the new token right behind it).
func (c *operatorCoalescer) feed(tok RawToken) []RawToken {
	if c.pending != nil {
		candidate := c.pending.Lexeme + tok.Lexeme
		if isMultiCharPrefix(candidate) {
			c.pending.Lexeme = candidate
			c.pending.Loc.EndByte = tok.Loc.EndByte
			return nil
		}

		flushed := *c.pending
		c.pending = nil

		if tok.Category == CatOperator && isMultiCharPrefix(tok.Lexeme) {
			t := tok
			c.pending = &t
			return []RawToken{flushed}
		}
		return []RawToken{flushed, tok}
	}

	if tok.Category == CatOperator && isMultiCharPrefix(tok.Lexeme) {
		t := tok
		c.pending = &t
		return nil
	}

	return []RawToken{tok}
}

// flush drains any buffered operator at end of stream.
func (c *operatorCoalescer) flush() (RawToken, bool) {
	if c.pending == nil {
		return RawToken{}, false
	}
	t := *c.pending
	c.pending = nil
	return t, true
}
