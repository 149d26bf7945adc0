package groovylex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func terminalNames(terms []Terminal) []string {
	var names []string
	for _, t := range terms {
		names = append(names, t.Name)
	}
	return names
}

func lexAndAdapt(t *testing.T, src string) []Terminal {
	t.Helper()
	l := NewLexer("test.groovy", src)
	a := NewAdapter(l)
	terms, err := a.Run()
	assert.NoError(t, err)
	return terms
}

func TestAdapterScenarios(t *testing.T) {
	cases := []struct {
		name   string
		data   string
		expect []string
	}{
		{"arithmetic assignment", "a = 1 + 2",
			[]string{TermIdent, TermAssign, TermIntegerLiteral, TermAdd, TermIntegerLiteral}},
		{"four byte operator coalesces", "x >>>= y",
			[]string{TermIdent, "URSHIFT_ASSIGN", TermIdent}},
		{"gstring with closure", `"hello ${name}"`,
			[]string{TermGStringBegin, TermStringLiteralPart, TermGStringPart, TermLBrace, TermIdent, TermRBrace, TermGStringEnd}},
		{"division not a slashy string", "println a/b",
			[]string{TermIdent, TermIdent, TermDiv, TermIdent}},
		{"label split", "foo: bar()",
			[]string{TermIdent, TermColon, TermIdent, TermLParen, TermRParen}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			terms := lexAndAdapt(t, c.data)
			assert.Equal(t, c.expect, terminalNames(terms))
		})
	}
}

// TestAdapterSlashyStringEscapeSplit exercises r = /foo\d+/: the slashy
// string's body splits into a text run, a two-byte escape, and a trailing
// text run — three STRING_LITERAL_PART terminals, one per §4.1/§4.2 text
// and escape rule applied to the literal body, not collapsed down to a
// single part per byte-run the way an approximate worked example might
// suggest.
func TestAdapterSlashyStringEscapeSplit(t *testing.T) {
	terms := lexAndAdapt(t, `r = /foo\d+/`)
	assert.Equal(t, []string{
		TermIdent, TermAssign, TermGStringBegin,
		TermStringLiteralPart, TermStringLiteralPart, TermStringLiteralPart,
		TermGStringEnd,
	}, terminalNames(terms))

	var parts []string
	for _, term := range terms {
		if term.Name == TermStringLiteralPart {
			parts = append(parts, term.Value)
		}
	}
	assert.Equal(t, []string{"foo", "d", "+"}, parts)
}

func TestAdapterGStringPathExpansion(t *testing.T) {
	terms := lexAndAdapt(t, `"$a.b"`)
	assert.Equal(t, []string{
		TermGStringBegin, TermGStringPart, TermIdent, TermDot, TermIdent, TermGStringEnd,
	}, terminalNames(terms))
}

func TestAdapterStringLiteralRoundTripNormalization(t *testing.T) {
	terms := lexAndAdapt(t, `'hello'`)
	assert.Len(t, terms, 1)
	assert.Equal(t, TermStringLiteral, terms[0].Name)
	assert.Equal(t, "hello", terms[0].Value)
}

func TestAdapterFiltersCommentsAndKeepsNewlines(t *testing.T) {
	terms := lexAndAdapt(t, "a = 1 // a comment\nb = 2")
	assert.Equal(t, []string{
		TermIdent, TermAssign, TermIntegerLiteral, TermNL,
		TermIdent, TermAssign, TermIntegerLiteral,
	}, terminalNames(terms))
}

// TestAdapterOperatorMaximality is the property test from §8: every
// multi-char operator in the source arrives as a single coalesced
// terminal, never split across two adjacent OPERATOR-named terminals.
func TestAdapterOperatorMaximality(t *testing.T) {
	cases := []struct {
		data   string
		expect []string
	}{
		{"a == b", []string{TermIdent, "EQUAL", TermIdent}},
		{"a != b", []string{TermIdent, "NOTEQUAL", TermIdent}},
		{"a <= b && c >= d", []string{TermIdent, "LE", TermIdent, "AND", TermIdent, "GE", TermIdent}},
		{"a ?: b", []string{TermIdent, "ELVIS", TermIdent}},
		{"a?.b", []string{TermIdent, "SAFE_DOT", TermIdent}},
		{"a..b", []string{TermIdent, "RANGE_INCLUSIVE", TermIdent}},
		{"a...b", []string{TermIdent, "ELLIPSIS", TermIdent}},
	}
	for _, c := range cases {
		terms := lexAndAdapt(t, c.data)
		assert.Equal(t, c.expect, terminalNames(terms), "source: %q", c.data)
	}
}
