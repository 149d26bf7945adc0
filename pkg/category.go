package groovylex

import "strings"

// Category is the hierarchical lexical tag S1 attaches to every raw token it
// emits. The hierarchy is a closed, dot-separated tree (e.g. "String.GString.GStringBegin"
// is a child of "String.GString", which is a child of "String"); Parent walks
// one level up without any runtime reflection, matching the pygments-style
// category tree this lexer is modeled on.
type Category string

// Root categories and their children. Values are the dotted path, so a
// category's parent is always derivable by trimming its last segment.
const (
	CatNone Category = "" // filtered: produced by rules that consume input but emit nothing

	// CatEOF is not part of the dotted hierarchy; it is a sentinel the
	// Lexer sends as its last RawToken (success or failure alike) so a
	// channel consumer can tell the stream ended without racing a closed
	// channel's zero value, mirroring the teacher's explicit TokenEOF.
	CatEOF Category = "<eof>"

	CatWhitespace Category = "Whitespace"

	CatComment           Category = "Comment"
	CatCommentSingle     Category = "Comment.Single"
	CatCommentMultiline  Category = "Comment.Multiline"
	CatCommentPreproc    Category = "Comment.Preproc"

	CatGeneric Category = "Generic"
	CatOther   Category = "Other"

	CatKeyword            Category = "Keyword"
	CatKeywordDeclaration Category = "Keyword.Declaration"
	CatKeywordType        Category = "Keyword.Type"
	CatKeywordNamespace   Category = "Keyword.Namespace"
	CatKeywordConstant    Category = "Keyword.Constant"

	CatOperator Category = "Operator"

	CatName           Category = "Name"
	CatNameAttribute  Category = "Name.Attribute"
	CatNameLabel      Category = "Name.Label"
	CatNameClass      Category = "Name.Class"
	CatNameNamespace  Category = "Name.Namespace"
	CatNameDecorator  Category = "Name.Decorator"
	CatNameFunction   Category = "Name.Function"

	CatNumber        Category = "Number"
	CatNumberInteger Category = "Number.Integer"
	CatNumberHex     Category = "Number.Hex"
	CatNumberFloat   Category = "Number.Float"

	CatString                       Category = "String"
	CatStringSingle                 Category = "String.Single"
	CatStringDouble                 Category = "String.Double"
	CatStringChar                   Category = "String.Char"
	CatStringEscape                 Category = "String.Escape"
	CatStringGString                Category = "String.GString"
	CatStringGStringBegin           Category = "String.GString.GStringBegin"
	CatStringGStringEnd             Category = "String.GString.GStringEnd"
	CatStringGStringPath            Category = "String.GString.GStringPath"
	CatStringGStringClosureBegin    Category = "String.GString.ClosureBegin"
	CatStringGStringClosureEnd      Category = "String.GString.ClosureEnd"
)

// Parent returns the immediate parent category and true, or ("", false) if
// c is already a root category. The adapter's category-to-terminal dispatch
// walks Parent repeatedly until it finds a mapped category or runs out.
func (c Category) Parent() (Category, bool) {
	s := string(c)
	i := strings.LastIndex(s, ".")
	if i < 0 {
		return "", false
	}
	return Category(s[:i]), true
}

// IsFiltered reports whether this exact category is always dropped by S2
// regardless of lexeme (comments, generic/other residue). Whitespace is
// handled separately because its fate depends on the lexeme ("\n" survives
// as NL).
func (c Category) IsFiltered() bool {
	switch c {
	case CatComment, CatCommentSingle, CatCommentMultiline, CatCommentPreproc,
		CatGeneric, CatOther, CatNone:
		return true
	}
	return false
}
