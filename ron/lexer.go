package ron

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/tdewolff/parse/v2"
	pstrconv "github.com/tdewolff/parse/v2/strconv"
)

// lexer scans document text into tokens, tracking line and column
// eagerly so every token (and every error) carries an exact position.
type lexer struct {
	r    *parse.Input
	line int
	col  int
}

func newLexer(text string) *lexer {
	return &lexer{r: parse.NewInputString(text), line: 1, col: 1}
}

// pos returns the position of the next unread byte.
func (l *lexer) pos() Pos {
	return Pos{Offset: l.r.Offset(), Line: l.line, Col: l.col}
}

// move consumes n bytes, updating the line/column counters.
// Multi-byte runes advance the column by one per rune, not per byte.
func (l *lexer) move(n int) {
	for i := 0; i < n; {
		c := l.r.Peek(0)
		if c == '\n' {
			l.line++
			l.col = 1
			l.r.Move(1)
			i++
			continue
		}
		if c < utf8.RuneSelf {
			l.col++
			l.r.Move(1)
			i++
			continue
		}
		_, size := l.r.PeekRune(0)
		l.col++
		l.r.Move(size)
		i += size
	}
}

// next returns the next token, skipping whitespace and comments.
func (l *lexer) next() (Token, error) {
	if err := l.skipSpace(); err != nil {
		return Token{}, err
	}
	pos := l.pos()
	c := l.r.Peek(0)
	switch {
	case c == 0:
		return Token{Kind: TokenEOF, Pos: pos}, nil
	case c == '(':
		l.move(1)
		return Token{Kind: TokenLParen, Pos: pos, Text: "("}, nil
	case c == ')':
		l.move(1)
		return Token{Kind: TokenRParen, Pos: pos, Text: ")"}, nil
	case c == '[':
		l.move(1)
		return Token{Kind: TokenLBracket, Pos: pos, Text: "["}, nil
	case c == ']':
		l.move(1)
		return Token{Kind: TokenRBracket, Pos: pos, Text: "]"}, nil
	case c == ':':
		l.move(1)
		return Token{Kind: TokenColon, Pos: pos, Text: ":"}, nil
	case c == ',':
		l.move(1)
		return Token{Kind: TokenComma, Pos: pos, Text: ","}, nil
	case c == '#':
		if l.r.Peek(1) == '!' && l.r.Peek(2) == '[' {
			l.move(3)
			return Token{Kind: TokenAttrOpen, Pos: pos, Text: "#!["}, nil
		}
		return Token{}, errorf(pos, "unexpected character %q", rune(c))
	case c == '"':
		return l.lexString(pos)
	case c == '+' || c == '-' || isDigit(c):
		return l.lexNumber(pos)
	case isIdentStart(c):
		return l.lexIdent(pos), nil
	default:
		r, _ := l.r.PeekRune(0)
		return Token{}, errorf(pos, "unexpected character %q", r)
	}
}

// skipSpace consumes whitespace, // line comments, and nestable
// /* */ block comments. An unterminated block comment is an error.
func (l *lexer) skipSpace() error {
	for {
		c := l.r.Peek(0)
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			l.move(1)
		case c == '/' && l.r.Peek(1) == '/':
			for {
				c = l.r.Peek(0)
				if c == 0 || c == '\n' {
					break
				}
				l.move(1)
			}
		case c == '/' && l.r.Peek(1) == '*':
			start := l.pos()
			l.move(2)
			depth := 1
			for depth > 0 {
				c = l.r.Peek(0)
				if c == 0 {
					return errorf(start, "unterminated block comment")
				}
				if c == '/' && l.r.Peek(1) == '*' {
					depth++
					l.move(2)
					continue
				}
				if c == '*' && l.r.Peek(1) == '/' {
					depth--
					l.move(2)
					continue
				}
				l.move(1)
			}
		default:
			return nil
		}
	}
}

func (l *lexer) lexIdent(pos Pos) Token {
	l.r.Skip()
	n := 0
	for isIdentPart(l.r.Peek(n)) {
		n++
	}
	l.move(n)
	return Token{Kind: TokenIdent, Pos: pos, Text: string(l.r.Shift())}
}

// lexNumber scans an integer or float literal. The literal shape is
// validated here; conversion goes through parse/v2's strconv so the
// lexer and any embedding parser agree on numeric semantics.
func (l *lexer) lexNumber(pos Pos) (Token, error) {
	l.r.Skip()
	n := 0
	if c := l.r.Peek(n); c == '+' || c == '-' {
		n++
	}
	digits := 0
	for isDigit(l.r.Peek(n)) {
		n++
		digits++
	}
	isFloat := false
	if l.r.Peek(n) == '.' {
		isFloat = true
		n++
		for isDigit(l.r.Peek(n)) {
			n++
			digits++
		}
	}
	if digits == 0 {
		l.move(n)
		return Token{}, errorf(pos, "malformed number")
	}
	if c := l.r.Peek(n); c == 'e' || c == 'E' {
		isFloat = true
		n++
		if c := l.r.Peek(n); c == '+' || c == '-' {
			n++
		}
		expDigits := 0
		for isDigit(l.r.Peek(n)) {
			n++
			expDigits++
		}
		if expDigits == 0 {
			l.move(n)
			return Token{}, errorf(pos, "malformed number: missing exponent digits")
		}
	}
	if isIdentPart(l.r.Peek(n)) || l.r.Peek(n) == '.' {
		for isIdentPart(l.r.Peek(n)) || l.r.Peek(n) == '.' {
			n++
		}
		l.move(n)
		return Token{}, errorf(pos, "malformed number %q", string(l.r.Shift()))
	}
	l.move(n)
	text := l.r.Shift()

	if !isFloat {
		i, ok := parseIntText(text)
		if !ok {
			// Out of int64 range. The literal is still a valid
			// number, so fall back to the float path.
			f, fn := pstrconv.ParseFloat(text)
			if fn != len(text) || math.IsInf(f, 0) {
				return Token{}, errorf(pos, "integer literal %q out of range", string(text))
			}
			return Token{Kind: TokenFloat, Pos: pos, Text: string(text), Float: f}, nil
		}
		return Token{Kind: TokenInt, Pos: pos, Text: string(text), Int: i}, nil
	}

	f, fn := pstrconv.ParseFloat(text)
	if fn != len(text) {
		return Token{}, errorf(pos, "malformed number %q", string(text))
	}
	if math.IsInf(f, 0) {
		return Token{}, errorf(pos, "float literal %q out of range", string(text))
	}
	return Token{Kind: TokenFloat, Pos: pos, Text: string(text), Float: f}, nil
}

// parseIntText converts a signed decimal literal, reporting failure on
// overflow or trailing garbage.
func parseIntText(b []byte) (int64, bool) {
	i, n := pstrconv.ParseInt(b)
	if n != len(b) {
		return 0, false
	}
	return i, true
}

func (l *lexer) lexString(pos Pos) (Token, error) {
	l.move(1) // opening quote
	var sb strings.Builder
	for {
		c := l.r.Peek(0)
		switch c {
		case 0, '\n':
			return Token{}, errorf(pos, "unterminated string")
		case '"':
			l.move(1)
			return Token{Kind: TokenString, Pos: pos, Text: sb.String()}, nil
		case '\\':
			escPos := l.pos()
			l.move(1)
			if err := l.lexEscape(&sb, escPos); err != nil {
				return Token{}, err
			}
		default:
			r, size := l.r.PeekRune(0)
			sb.WriteRune(r)
			l.move(size)
		}
	}
}

func (l *lexer) lexEscape(sb *strings.Builder, pos Pos) error {
	c := l.r.Peek(0)
	switch c {
	case '"':
		sb.WriteByte('"')
	case '\\':
		sb.WriteByte('\\')
	case 'n':
		sb.WriteByte('\n')
	case 'r':
		sb.WriteByte('\r')
	case 't':
		sb.WriteByte('\t')
	case 'u':
		l.move(1)
		if l.r.Peek(0) != '{' {
			return errorf(pos, `invalid escape: \u must be followed by {hex}`)
		}
		l.move(1)
		var v rune
		digits := 0
		for {
			h := l.r.Peek(0)
			hv, ok := hexVal(h)
			if !ok {
				break
			}
			v = v<<4 | rune(hv)
			digits++
			if digits > 6 {
				return errorf(pos, "unicode escape too long")
			}
			l.move(1)
		}
		if digits == 0 || l.r.Peek(0) != '}' {
			return errorf(pos, "malformed unicode escape")
		}
		if !utf8.ValidRune(v) {
			return errorf(pos, "invalid unicode code point in escape")
		}
		l.move(1)
		sb.WriteRune(v)
		return nil
	default:
		return errorf(pos, `invalid escape \%c`, c)
	}
	l.move(1)
	return nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool { return isIdentStart(c) || isDigit(c) }

func hexVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
