package groovylex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexerStringSubModes(t *testing.T) {
	cases := []struct {
		name   string
		data   string
		expect []RawToken
	}{
		{
			"plain gstring",
			`"hello"`,
			[]RawToken{
				{Category: CatStringGStringBegin, Lexeme: `"`},
				{Category: CatStringDouble, Lexeme: "hello"},
				{Category: CatStringGStringEnd, Lexeme: `"`},
			},
		},
		{
			"gstring with dotted path interpolation",
			`"hi $a.b"`,
			[]RawToken{
				{Category: CatStringGStringBegin, Lexeme: `"`},
				{Category: CatStringDouble, Lexeme: "hi "},
				{Category: CatStringGStringPath, Lexeme: "$a.b"},
				{Category: CatStringGStringEnd, Lexeme: `"`},
			},
		},
		{
			"gstring with closure interpolation",
			`"hi ${a}"`,
			[]RawToken{
				{Category: CatStringGStringBegin, Lexeme: `"`},
				{Category: CatStringDouble, Lexeme: "hi "},
				{Category: CatStringGStringClosureBegin, Lexeme: "${"},
				{Category: CatName, Lexeme: "a"},
				{Category: CatStringGStringClosureEnd, Lexeme: "}"},
				{Category: CatStringGStringEnd, Lexeme: `"`},
			},
		},
		{
			"triple quoted gstring",
			`"""hello"""`,
			[]RawToken{
				{Category: CatStringGStringBegin, Lexeme: `"""`},
				{Category: CatStringDouble, Lexeme: "hello"},
				{Category: CatStringGStringEnd, Lexeme: `"""`},
			},
		},
		{
			"escape sequence",
			`"a\nb"`,
			[]RawToken{
				{Category: CatStringGStringBegin, Lexeme: `"`},
				{Category: CatStringDouble, Lexeme: "a"},
				{Category: CatStringEscape, Lexeme: `\n`},
				{Category: CatStringDouble, Lexeme: "b"},
				{Category: CatStringGStringEnd, Lexeme: `"`},
			},
		},
		{
			"dollar slashy string",
			`$/a/b/$`,
			[]RawToken{
				{Category: CatStringGStringBegin, Lexeme: "$/"},
				{Category: CatStringDouble, Lexeme: "a"},
				{Category: CatStringDouble, Lexeme: "/"},
				{Category: CatStringDouble, Lexeme: "b"},
				{Category: CatStringGStringEnd, Lexeme: "/$"},
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := NewLexer("test.groovy", c.data)
			toks, err := l.Run()
			assert.NoError(t, err)

			var got []RawToken
			for _, tok := range toks {
				got = append(got, RawToken{Category: tok.Category, Lexeme: tok.Lexeme})
			}
			assert.Equal(t, c.expect, got)
		})
	}
}
