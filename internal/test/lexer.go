package test

import (
	"math/rand"
	"strings"
)

// multiCharOperatorPool holds the single-char operators, the bare shifts
// (<<, >>, >>>) and a hand-picked subset of pkg's multi-char operator
// table (kept by hand, same as the teacher kept validTokens beside its own
// token set) so the coalescer property test can throw real operator
// sequences at the coalescer instead of single-char noise.
var multiCharOperatorPool = []string{
	"+", "-", "*", "/", "%", "=", "<", ">", "!", "&", "|", "^", "~", "?", ":", ".",
	"==", "!=", "<=", ">=", "&&", "||", "++", "--", "+=", "-=", "*=", "/=", "%=",
	"<<", ">>", ">>>", "<<=", ">>=", ">>>=", "&=", "|=", "^=", "**", "**=",
	"?:", "?.", "*.", "..", "...", "=~", "==~", "<=>",
}

// GetRandomOperatorSequence returns size operators drawn from the pool,
// joined with sep, for exercising the coalescer against arbitrary
// adjacency of multi-char operator prefixes the way the teacher's
// GetRandomTokensWithSep exercised the lexer against arbitrary token
// adjacency.
func GetRandomOperatorSequence(size int, sep string) string {
	var toks []string
	for len(toks) < size {
		toks = append(toks, multiCharOperatorPool[rand.Intn(len(multiCharOperatorPool))])
	}
	return strings.Join(toks, sep)
}

const validGroovySnippets = "def x = 1;x += 2;x >>>= y;println a/b;r = /foo\\d+/;\"hello ${name}\";foo: bar();if (x) {y} else {z};// a comment\n;/* block */;import java.util.List;class Foo {}"

// GetRandomSource returns size Groovy-ish statements drawn from a small
// fixed pool, joined by newlines, for fuzzing the full S1->S2 pipeline the
// way the teacher's GetRandomTokens fuzzed its single-stage lexer.
func GetRandomSource(size int) string {
	valid := strings.Split(validGroovySnippets, ";")

	var lines []string
	for len(lines) < size {
		lines = append(lines, valid[rand.Intn(len(valid))])
	}

	return strings.Join(lines, "\n")
}
