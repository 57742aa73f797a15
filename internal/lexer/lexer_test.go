package lexer

import (
	"testing"

	"github.com/cwbudde/go-script/internal/token"
)

func collectTypes(t *testing.T, src string) []token.Type {
	t.Helper()
	l := New(src)
	toks, err := l.All()
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	types := make([]token.Type, len(toks))
	for i, tok := range toks {
		types[i] = tok.Type
	}
	return types
}

func TestScanBasicDeclaration(t *testing.T) {
	src := `variable edad = 30;`
	types := collectTypes(t, src)
	want := []token.Type{token.VAR, token.IDENT, token.EQ, token.INT, token.SEMI, token.EOF}
	if len(types) != len(want) {
		t.Fatalf("got %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, types[i], want[i])
		}
	}
}

func TestScanOperatorsAndComparisons(t *testing.T) {
	types := collectTypes(t, `== != >= <= > < + - * / % ^`)
	want := []token.Type{
		token.EQ_EQ, token.NEQ, token.GTE, token.LTE, token.GT, token.LT,
		token.PLUS, token.MINUS, token.STAR, token.SLASH, token.PERCENT, token.CARET,
		token.EOF,
	}
	if len(types) != len(want) {
		t.Fatalf("got %v, want %v", types, want)
	}
}

func TestScanStringLiteralNoEscape(t *testing.T) {
	l := New(`"hola mundo"`)
	tok, err := l.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Type != token.STRING || tok.Lexeme != "hola mundo" {
		t.Errorf("got %+v", tok)
	}
}

func TestScanStringLiteralSingleQuoted(t *testing.T) {
	l := New(`'hola mundo'`)
	tok, err := l.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Type != token.STRING || tok.Lexeme != "hola mundo" {
		t.Errorf("got %+v", tok)
	}
}

func TestScanCommentIsIgnored(t *testing.T) {
	types := collectTypes(t, "variable x = 1 # esto es un comentario\n")
	want := []token.Type{token.VAR, token.IDENT, token.EQ, token.INT, token.EOF}
	if len(types) != len(want) {
		t.Fatalf("got %v, want %v", types, want)
	}
}

func TestScanAccentedIdentifier(t *testing.T) {
	l := New(`variable niño = verdadero;`)
	toks, err := l.All()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[1].Lexeme != "niño" {
		t.Errorf("got lexeme %q, want niño", toks[1].Lexeme)
	}
}

func TestScanUnterminatedStringHaltsImmediately(t *testing.T) {
	l := New(`"sin cerrar`)
	_, err := l.Next()
	if err == nil {
		t.Fatal("expected lexical error for unterminated string")
	}
}

func TestScanIllegalCharacterHalts(t *testing.T) {
	l := New(`@`)
	_, err := l.Next()
	if err == nil {
		t.Fatal("expected lexical error for illegal character")
	}
	var lexErr *Error
	if e, ok := err.(*Error); ok {
		lexErr = e
	} else {
		t.Fatalf("expected *Error, got %T", err)
	}
	if lexErr.Char != '@' {
		t.Errorf("got char %q, want @", lexErr.Char)
	}
}

func TestScanImplicitMultiplicationTokensAreJustNumberThenParen(t *testing.T) {
	// The lexer has no notion of implicit multiplication; it just emits
	// INT followed by PAREN_L with no operator between, which the parser
	// is responsible for interpreting.
	types := collectTypes(t, `2(3 + 4)`)
	want := []token.Type{token.INT, token.PAREN_L, token.INT, token.PLUS, token.INT, token.PAREN_R, token.EOF}
	if len(types) != len(want) {
		t.Fatalf("got %v, want %v", types, want)
	}
}
