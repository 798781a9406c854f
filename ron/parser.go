package ron

// parser is a recursive-descent parser over the lexer's token stream
// with two tokens of lookahead. The second token is needed once: after
// '(' an identifier followed by ':' starts a record, anything else a
// tuple.
type parser struct {
	lex   *lexer
	tok   Token // current token
	ahead []Token
}

// recognized document extensions. Anything else cannot be honored and
// must not be silently ignored, so it is a parse error.
var knownExtensions = map[string]bool{
	"implicit_some": true,
}

// Parse parses a complete document: leading #![enable(...)]
// directives, one root value, then end of input.
func Parse(text string) (*Document, error) {
	p := &parser{lex: newLexer(text)}
	if err := p.advance(); err != nil {
		return nil, err
	}

	doc := &Document{}
	for p.tok.Kind == TokenAttrOpen {
		if err := p.parseDirective(doc); err != nil {
			return nil, err
		}
	}

	root, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	doc.Root = root

	if p.tok.Kind != TokenEOF {
		return nil, errorf(p.tok.Pos, "unexpected %s after document root", p.tok.Kind)
	}
	return doc, nil
}

func (p *parser) advance() error {
	if len(p.ahead) > 0 {
		p.tok = p.ahead[0]
		p.ahead = p.ahead[1:]
		return nil
	}
	t, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = t
	return nil
}

// peek returns the token after the current one without consuming it.
func (p *parser) peek() (Token, error) {
	if len(p.ahead) == 0 {
		t, err := p.lex.next()
		if err != nil {
			return Token{}, err
		}
		p.ahead = append(p.ahead, t)
	}
	return p.ahead[0], nil
}

func (p *parser) expect(kind TokenKind) (Token, error) {
	if p.tok.Kind != kind {
		return Token{}, errorf(p.tok.Pos, "expected %s, found %s", kind, p.tok.Kind)
	}
	t := p.tok
	if err := p.advance(); err != nil {
		return Token{}, err
	}
	return t, nil
}

// parseDirective parses #![enable(ext, ...)] with the opener already
// current.
func (p *parser) parseDirective(doc *Document) error {
	if err := p.advance(); err != nil {
		return err
	}
	name, err := p.expect(TokenIdent)
	if err != nil {
		return err
	}
	if name.Text != "enable" {
		return errorf(name.Pos, "unknown directive %q", name.Text)
	}
	if _, err := p.expect(TokenLParen); err != nil {
		return err
	}
	for {
		ext, err := p.expect(TokenIdent)
		if err != nil {
			return err
		}
		if !knownExtensions[ext.Text] {
			return errorf(ext.Pos, "unsupported extension %q", ext.Text)
		}
		doc.Extensions = append(doc.Extensions, ext.Text)
		if p.tok.Kind == TokenComma {
			if err := p.advance(); err != nil {
				return err
			}
			if p.tok.Kind == TokenRParen {
				break
			}
			continue
		}
		break
	}
	if _, err := p.expect(TokenRParen); err != nil {
		return err
	}
	if _, err := p.expect(TokenRBracket); err != nil {
		return err
	}
	return nil
}

func (p *parser) parseValue() (Value, error) {
	switch p.tok.Kind {
	case TokenInt:
		v := Value{Kind: KindInt, Pos: p.tok.Pos, Int: p.tok.Int}
		return v, p.advance()
	case TokenFloat:
		v := Value{Kind: KindFloat, Pos: p.tok.Pos, Float: p.tok.Float}
		return v, p.advance()
	case TokenString:
		v := Value{Kind: KindString, Pos: p.tok.Pos, Str: p.tok.Text}
		return v, p.advance()
	case TokenLParen:
		return p.parseParen("")
	case TokenLBracket:
		return p.parseSeq()
	case TokenIdent:
		return p.parseIdentValue()
	default:
		return Value{}, errorf(p.tok.Pos, "expected a value, found %s", p.tok.Kind)
	}
}

// parseIdentValue handles booleans, unit variants, and tagged values.
func (p *parser) parseIdentValue() (Value, error) {
	tok := p.tok
	switch tok.Text {
	case "true", "false":
		v := Value{Kind: KindBool, Pos: tok.Pos, Bool: tok.Text == "true"}
		return v, p.advance()
	}
	if err := p.advance(); err != nil {
		return Value{}, err
	}
	if p.tok.Kind == TokenLParen {
		v, err := p.parseParen(tok.Text)
		if err != nil {
			return Value{}, err
		}
		v.Pos = tok.Pos
		return v, nil
	}
	return Value{Kind: KindUnit, Pos: tok.Pos, Tag: tok.Text}, nil
}

// parseParen parses a parenthesized record or tuple, tagged when tag
// is non-empty. The current token is '('.
func (p *parser) parseParen(tag string) (Value, error) {
	open := p.tok
	if err := p.advance(); err != nil {
		return Value{}, err
	}

	v := Value{Pos: open.Pos, Tag: tag}

	// Empty parens are an empty tuple: Tag() or ().
	if p.tok.Kind == TokenRParen {
		v.Kind = KindTuple
		return v, p.advance()
	}

	isRecord := false
	if p.tok.Kind == TokenIdent {
		ahead, err := p.peek()
		if err != nil {
			return Value{}, err
		}
		isRecord = ahead.Kind == TokenColon
	}

	if isRecord {
		v.Kind = KindRecord
		for {
			name, err := p.expect(TokenIdent)
			if err != nil {
				return Value{}, err
			}
			if _, err := p.expect(TokenColon); err != nil {
				return Value{}, err
			}
			fv, err := p.parseValue()
			if err != nil {
				return Value{}, err
			}
			v.Fields = append(v.Fields, Field{Name: name.Text, NamePos: name.Pos, Value: fv})
			more, err := p.separator(TokenRParen)
			if err != nil {
				return Value{}, err
			}
			if !more {
				break
			}
		}
	} else {
		v.Kind = KindTuple
		for {
			item, err := p.parseValue()
			if err != nil {
				return Value{}, err
			}
			v.Items = append(v.Items, item)
			more, err := p.separator(TokenRParen)
			if err != nil {
				return Value{}, err
			}
			if !more {
				break
			}
		}
	}

	if _, err := p.expect(TokenRParen); err != nil {
		return Value{}, err
	}
	return v, nil
}

func (p *parser) parseSeq() (Value, error) {
	open := p.tok
	if err := p.advance(); err != nil {
		return Value{}, err
	}
	v := Value{Kind: KindSeq, Pos: open.Pos}
	if p.tok.Kind == TokenRBracket {
		return v, p.advance()
	}
	for {
		item, err := p.parseValue()
		if err != nil {
			return Value{}, err
		}
		v.Items = append(v.Items, item)
		more, err := p.separator(TokenRBracket)
		if err != nil {
			return Value{}, err
		}
		if !more {
			break
		}
	}
	if _, err := p.expect(TokenRBracket); err != nil {
		return Value{}, err
	}
	return v, nil
}

// separator consumes an element separator. It reports whether another
// element follows, treating a trailing comma before the closing token
// as end of list.
func (p *parser) separator(closing TokenKind) (bool, error) {
	if p.tok.Kind != TokenComma {
		return false, nil
	}
	if err := p.advance(); err != nil {
		return false, err
	}
	return p.tok.Kind != closing, nil
}
