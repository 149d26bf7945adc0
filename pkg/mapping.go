package groovylex

// keywordTerminals maps every reserved-word lexeme to its terminal name,
// reproduced bit-exactly from lexer.py's GMAPPER keyword dictionary:
// true/false/null get their own literal terminals, everything else is its
// uppercase self (non-sealed keeps the hyphen as an underscore).
var keywordTerminals = map[string]string{
	"as": "AS", "def": "DEF", "in": "IN", "trait": "TRAIT",
	"threadsafe": "THREADSAFE", "var": "VAR",

	"abstract": "ABSTRACT", "assert": "ASSERT", "boolean": "BOOLEAN",
	"break": "BREAK", "byte": "BYTE", "case": "CASE", "catch": "CATCH",
	"char": "CHAR", "class": "CLASS", "const": "CONST",
	"continue": "CONTINUE", "default": "DEFAULT", "do": "DO",
	"double": "DOUBLE", "else": "ELSE", "enum": "ENUM",
	"extends": "EXTENDS", "final": "FINAL", "finally": "FINALLY",
	"float": "FLOAT", "for": "FOR", "goto": "GOTO", "if": "IF",
	"implements": "IMPLEMENTS", "import": "IMPORT",
	"instanceof": "INSTANCEOF", "int": "INT", "interface": "INTERFACE",
	"long": "LONG", "native": "NATIVE", "new": "NEW",
	"non-sealed": "NON_SEALED", "package": "PACKAGE",
	"permits": "PERMITS", "private": "PRIVATE", "protected": "PROTECTED",
	"public": "PUBLIC", "record": "RECORD", "return": "RETURN",
	"sealed": "SEALED", "short": "SHORT", "static": "STATIC",
	"strictfp": "STRICTFP", "super": "SUPER", "switch": "SWITCH",
	"synchronized": "SYNCHRONIZED", "this": "THIS", "throw": "THROW",
	"throws": "THROWS", "transient": "TRANSIENT", "try": "TRY",
	"void": "VOID", "volatile": "VOLATILE", "while": "WHILE",
	"yield": "YIELD",

	"true": TermBooleanLiteral, "false": TermBooleanLiteral,
	"null": TermNullLiteral,
}

// operatorTerminals maps every operator lexeme S2 can produce to its
// terminal name: the single-char set from Base rule 21 (plus the
// brackets, dot, and division from rules 17/20/16), the 42-entry
// multi-char set from §4.2, and the three "bare shift" lexemes
// (<<, >>, >>>) that only ever arise as coalescer by-products — they're
// valid prefixes of their *_ASSIGN forms but never complete to one, so
// the coalescer flushes them as their own operator tokens.
var operatorTerminals = map[string]string{
	"{": TermLBrace, "}": TermRBrace,
	"[": TermLBrack, "]": TermRBrack,
	"(": TermLParen, ")": TermRParen,
	",": TermComma, ";": TermSemi, ":": TermColon, ".": TermDot,
	"=": TermAssign, "?": TermQuestion, "!": TermNot,
	"+": TermAdd, "-": TermSub, "*": TermMul, "/": TermDiv, "%": TermMod,
	"&": TermBitAnd, "|": TermBitOr, "^": TermXor, "~": TermBitNot,
	"<": TermLt, ">": TermGt,

	"<<": TermLShift, ">>": TermRShift, ">>>": TermURShift,

	"..":   "RANGE_INCLUSIVE",
	"<..":  "RANGE_EXCLUSIVE_LEFT",
	"..<":  "RANGE_EXCLUSIVE_RIGHT",
	"<..<": "RANGE_EXCLUSIVE_FULL",
	"*.":   "SPREAD_DOT",
	"?.":   "SAFE_DOT",
	"?[":   "SAFE_INDEX",
	"??.":  "SAFE_CHAIN_DOT",
	"?:":   "ELVIS",
	".&":   "METHOD_POINTER",
	"::":   "METHOD_REFERENCE",
	"=~":   "REGEX_FIND",
	"==~":  "REGEX_MATCH",
	"**":   "POWER",
	"**=":  "POWER_ASSIGN",
	"<=>":  "SPACESHIP",
	"===":  "IDENTICAL",
	"!==":  "NOT_IDENTICAL",
	"->":   "ARROW",
	"!instanceof": "NOT_INSTANCEOF",
	"!in":  "NOT_IN",
	"==":   "EQUAL",
	"<=":   "LE",
	">=":   "GE",
	"!=":   "NOTEQUAL",
	"&&":   "AND",
	"||":   "OR",
	"++":   "INC",
	"--":   "DEC",
	"+=":   "ADD_ASSIGN",
	"-=":   "SUB_ASSIGN",
	"*=":   "MUL_ASSIGN",
	"/=":   "DIV_ASSIGN",
	"&=":   "AND_ASSIGN",
	"|=":   "OR_ASSIGN",
	"^=":   "XOR_ASSIGN",
	"%=":   "MOD_ASSIGN",
	"<<=":  "LSHIFT_ASSIGN",
	">>=":  "RSHIFT_ASSIGN",
	">>>=": "URSHIFT_ASSIGN",
	"?=":   "ELVIS_ASSIGN",
	"...":  "ELLIPSIS",
}
