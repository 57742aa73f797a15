package ast

import (
	"testing"

	"github.com/cwbudde/go-script/internal/token"
	"github.com/tidwall/gjson"
)

func tok(tt token.Type, lit string) token.Token {
	return token.NewToken(tt, lit, token.Position{Line: 1, Column: 1})
}

func TestSerializeProgramRoundTripsKinds(t *testing.T) {
	prog := &Program{
		Statements: []Statement{
			&VarDeclStmt{
				Token: tok(token.VAR, "variable"),
				Name:  &Identifier{Token: tok(token.IDENT, "edad"), Value: "edad"},
				Value: &IntegerLiteral{Token: tok(token.INT, "30"), Value: 30},
			},
			&ShowStmt{
				Token: tok(token.SHOW, "mostrar"),
				Value: &StringLiteral{Token: tok(token.STRING, "hola"), Value: "hola"},
			},
		},
	}

	out, err := Serialize(prog)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}

	if kind := gjson.Get(out, "kind").String(); kind != "Program" {
		t.Errorf("root kind = %q, want Program", kind)
	}
	if kind := gjson.Get(out, "statements.0.kind").String(); kind != "VarDeclStmt" {
		t.Errorf("statements.0.kind = %q, want VarDeclStmt", kind)
	}
	if name := gjson.Get(out, "statements.0.name.value").String(); name != "edad" {
		t.Errorf("statements.0.name.value = %q, want edad", name)
	}
	if val := gjson.Get(out, "statements.0.value.value").Int(); val != 30 {
		t.Errorf("statements.0.value.value = %d, want 30", val)
	}
	if kind := gjson.Get(out, "statements.1.kind").String(); kind != "ShowStmt" {
		t.Errorf("statements.1.kind = %q, want ShowStmt", kind)
	}
}

func TestSerializeHtmlAndCssLiterals(t *testing.T) {
	prog := &Program{
		Statements: []Statement{
			&ExpressionStmt{
				Token: tok(token.IDENT, "div"),
				Expr: &HtmlElemLiteral{
					Token: tok(token.IDENT, "div"),
					Tag:   "div",
					Attrs: []HtmlAttr{{Name: "clase", Value: &StringLiteral{Token: tok(token.STRING, "caja"), Value: "caja"}}},
				},
			},
			&ExpressionStmt{
				Token: tok(token.STRING, "p"),
				Expr: &CssRuleLiteral{
					Token:    tok(token.STRING, "p"),
					Selector: "p",
					Decls:    []CssDecl{{Property: "color", Value: "rojo"}},
				},
			},
		},
	}

	out, err := Serialize(prog)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if tag := gjson.Get(out, "statements.0.expr.tag").String(); tag != "div" {
		t.Errorf("tag = %q, want div", tag)
	}
	if sel := gjson.Get(out, "statements.1.expr.selector").String(); sel != "p" {
		t.Errorf("selector = %q, want p", sel)
	}
}
