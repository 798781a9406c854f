package ron

// TokenKind identifies the lexical class of a token produced by the lexer.
type TokenKind uint8

// Token kinds cover the full surface of the dialect: punctuation,
// literals, identifiers, and the document-level attribute opener.
const (
	// TokenEOF marks the end of input. Its text is empty.
	TokenEOF TokenKind = iota

	// TokenIdent is a bare identifier: a variant tag, a field name,
	// or one of the keyword-like identifiers (true, false, None, Some).
	TokenIdent

	// TokenInt is an integer literal with optional sign.
	TokenInt

	// TokenFloat is a floating-point literal with optional sign,
	// fraction, and exponent.
	TokenFloat

	// TokenString is a double-quoted string literal. The token value
	// carries the unescaped contents.
	TokenString

	// TokenLParen is '('.
	TokenLParen

	// TokenRParen is ')'.
	TokenRParen

	// TokenLBracket is '['.
	TokenLBracket

	// TokenRBracket is ']'.
	TokenRBracket

	// TokenColon is ':'.
	TokenColon

	// TokenComma is ','.
	TokenComma

	// TokenAttrOpen is the attribute opener "#![" that introduces a
	// document-level directive such as #![enable(implicit_some)].
	TokenAttrOpen
)

// String returns a human-readable name for the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "end of input"
	case TokenIdent:
		return "identifier"
	case TokenInt:
		return "integer"
	case TokenFloat:
		return "float"
	case TokenString:
		return "string"
	case TokenLParen:
		return "'('"
	case TokenRParen:
		return "')'"
	case TokenLBracket:
		return "'['"
	case TokenRBracket:
		return "']'"
	case TokenColon:
		return "':'"
	case TokenComma:
		return "','"
	case TokenAttrOpen:
		return "'#!['"
	default:
		return "unknown token"
	}
}

// Pos locates a byte in the source text. Line and Col are 1-based;
// Offset is the 0-based byte offset.
type Pos struct {
	Offset int
	Line   int
	Col    int
}

// Token is one lexical unit with its source position.
// Text holds the raw token text for identifiers and the unescaped
// contents for strings. Int and Float hold the converted value for
// numeric tokens.
type Token struct {
	Kind  TokenKind
	Pos   Pos
	Text  string
	Int   int64
	Float float64
}
