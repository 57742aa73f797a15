package render

import (
	"strings"
	"testing"

	"github.com/cwbudde/go-script/internal/runtime"
)

func TestToHTMLRendersAttrsAndChildren(t *testing.T) {
	node := &runtime.HTMLNode{
		Tag:   "div",
		Attrs: []runtime.HTMLAttr{{Name: "clase", Value: "caja"}},
		Children: []*runtime.Value{
			runtime.NewInteger(2),
			runtime.NewHTML(&runtime.HTMLNode{Tag: "p"}),
		},
	}
	out, err := ToHTML(runtime.NewHTML(node))
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if !strings.Contains(out, `clase="caja"`) {
		t.Errorf("missing attribute in %q", out)
	}
	if !strings.Contains(out, "2") || !strings.Contains(out, "<p></p>") {
		t.Errorf("missing children in %q", out)
	}
}

func TestToHTMLRejectsNonHTMLValue(t *testing.T) {
	if _, err := ToHTML(runtime.NewInteger(1)); err == nil {
		t.Fatal("expected an error for a non-html value")
	}
}

func TestToCSSRendersDecls(t *testing.T) {
	rule := &runtime.CSSRule{
		Selector: "p",
		Decls:    []runtime.CSSDecl{{Property: "color", Value: "rojo"}},
	}
	out, err := ToCSS(runtime.NewCSS(rule))
	if err != nil {
		t.Fatalf("ToCSS: %v", err)
	}
	if !strings.Contains(out, "color: rojo;") {
		t.Errorf("got %q", out)
	}
}
