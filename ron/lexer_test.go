package ron

import (
	"strings"
	"testing"
)

// lexAll drains the lexer, returning every token up to and including EOF.
func lexAll(t *testing.T, src string) []Token {
	t.Helper()
	l := newLexer(src)
	var toks []Token
	for {
		tok, err := l.next()
		if err != nil {
			t.Fatalf("next() error: %v", err)
		}
		toks = append(toks, tok)
		if tok.Kind == TokenEOF {
			return toks
		}
	}
}

func TestLexerPunctuation(t *testing.T) {
	toks := lexAll(t, "( ) [ ] : ,")
	want := []TokenKind{
		TokenLParen, TokenRParen, TokenLBracket, TokenRBracket,
		TokenColon, TokenComma, TokenEOF,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %v, want %v", i, toks[i].Kind, k)
		}
	}
}

func TestLexerNumbers(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		kind  TokenKind
		i     int64
		f     float64
	}{
		{"zero", "0", TokenInt, 0, 0},
		{"positive int", "42", TokenInt, 42, 0},
		{"negative int", "-5", TokenInt, -5, 0},
		{"explicit plus", "+7", TokenInt, 7, 0},
		{"simple float", "1.5", TokenFloat, 0, 1.5},
		{"negative float", "-0.25", TokenFloat, 0, -0.25},
		{"exponent", "1e3", TokenFloat, 0, 1000},
		{"signed exponent", "2.5e-2", TokenFloat, 0, 0.025},
		{"trailing dot", "5.", TokenFloat, 0, 5},
		{"leading dot with sign", "-.5", TokenFloat, 0, -0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := lexAll(t, tt.src)
			if len(toks) != 2 {
				t.Fatalf("got %d tokens, want 2", len(toks))
			}
			tok := toks[0]
			if tok.Kind != tt.kind {
				t.Fatalf("kind = %v, want %v", tok.Kind, tt.kind)
			}
			if tt.kind == TokenInt && tok.Int != tt.i {
				t.Errorf("Int = %d, want %d", tok.Int, tt.i)
			}
			if tt.kind == TokenFloat && tok.Float != tt.f {
				t.Errorf("Float = %g, want %g", tok.Float, tt.f)
			}
		})
	}
}

func TestLexerNumberErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"bare sign", "-"},
		{"sign then dot", "+."},
		{"missing exponent digits", "1e"},
		{"ident suffix", "1.5x"},
		{"double dot", "1.2.3"},
		{"huge float", "1e999"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newLexer(tt.src)
			if _, err := l.next(); err == nil {
				t.Errorf("next(%q) succeeded, want error", tt.src)
			}
		})
	}
}

func TestLexerHugeIntegerFallsBackToFloat(t *testing.T) {
	// Larger than int64 but well inside float64 range.
	l := newLexer("92233720368547758080")
	tok, err := l.next()
	if err != nil {
		t.Fatalf("next() error: %v", err)
	}
	if tok.Kind != TokenFloat {
		t.Fatalf("kind = %v, want %v", tok.Kind, TokenFloat)
	}
	if tok.Float != 92233720368547758080.0 {
		t.Errorf("Float = %g", tok.Float)
	}
}

func TestLexerStrings(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"plain", `"hello"`, "hello"},
		{"empty", `""`, ""},
		{"escapes", `"a\"b\\c\nd\te"`, "a\"b\\c\nd\te"},
		{"unicode escape", `"\u{2603}"`, "☃"},
		{"multibyte passthrough", `"héllo"`, "héllo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := lexAll(t, tt.src)
			if toks[0].Kind != TokenString {
				t.Fatalf("kind = %v, want %v", toks[0].Kind, TokenString)
			}
			if toks[0].Text != tt.want {
				t.Errorf("Text = %q, want %q", toks[0].Text, tt.want)
			}
		})
	}
}

func TestLexerStringErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unterminated", `"abc`},
		{"newline in string", "\"ab\nc\""},
		{"bad escape", `"\q"`},
		{"bad unicode escape", `"\u{zz}"`},
		{"unterminated unicode escape", `"\u{41"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newLexer(tt.src)
			if _, err := l.next(); err == nil {
				t.Errorf("next(%q) succeeded, want error", tt.src)
			}
		})
	}
}

func TestLexerComments(t *testing.T) {
	src := strings.Join([]string{
		"// leading comment",
		"a /* inline */ b",
		"/* nested /* block */ still comment */ c",
		"// trailing",
	}, "\n")
	toks := lexAll(t, src)
	var idents []string
	for _, tok := range toks {
		if tok.Kind == TokenIdent {
			idents = append(idents, tok.Text)
		}
	}
	want := []string{"a", "b", "c"}
	if len(idents) != len(want) {
		t.Fatalf("idents = %v, want %v", idents, want)
	}
	for i := range want {
		if idents[i] != want[i] {
			t.Errorf("ident %d = %q, want %q", i, idents[i], want[i])
		}
	}
}

func TestLexerUnterminatedBlockComment(t *testing.T) {
	l := newLexer("/* never closed")
	if _, err := l.next(); err == nil {
		t.Error("next() succeeded, want error")
	}
}

func TestLexerPositions(t *testing.T) {
	src := "abc\n  (42"
	toks := lexAll(t, src)
	wantPos := []struct {
		line, col int
	}{
		{1, 1}, // abc
		{2, 3}, // (
		{2, 4}, // 42
		{2, 6}, // EOF
	}
	if len(toks) != len(wantPos) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(wantPos))
	}
	for i, wp := range wantPos {
		if toks[i].Pos.Line != wp.line || toks[i].Pos.Col != wp.col {
			t.Errorf("token %d at %d:%d, want %d:%d",
				i, toks[i].Pos.Line, toks[i].Pos.Col, wp.line, wp.col)
		}
	}
}

func TestLexerAttrOpen(t *testing.T) {
	toks := lexAll(t, "#![enable(implicit_some)]")
	if toks[0].Kind != TokenAttrOpen {
		t.Fatalf("first token = %v, want %v", toks[0].Kind, TokenAttrOpen)
	}
	if toks[1].Kind != TokenIdent || toks[1].Text != "enable" {
		t.Errorf("second token = %v %q, want identifier \"enable\"", toks[1].Kind, toks[1].Text)
	}
}

func TestLexerBareHashIsError(t *testing.T) {
	l := newLexer("# foo")
	if _, err := l.next(); err == nil {
		t.Error("next() succeeded, want error")
	}
}
