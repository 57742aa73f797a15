package evaluator

import (
	"github.com/cwbudde/go-script/internal/ast"
	"github.com/cwbudde/go-script/internal/ierrors"
	"github.com/cwbudde/go-script/internal/runtime"
)

func (e *Evaluator) evalHtmlElem(n *ast.HtmlElemLiteral, env *runtime.Environment) (*runtime.Value, *ierrors.Error) {
	node := &runtime.HTMLNode{Tag: n.Tag}
	for _, attr := range n.Attrs {
		val, err := e.evalExpression(attr.Value, env)
		if err != nil {
			return nil, err
		}
		node.Attrs = append(node.Attrs, runtime.HTMLAttr{Name: attr.Name, Value: val.String()})
	}
	for _, child := range n.Children {
		val, err := e.evalExpression(child, env)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, val)
	}
	return runtime.NewHTML(node), nil
}

func (e *Evaluator) evalCssRule(n *ast.CssRuleLiteral, _ *runtime.Environment) (*runtime.Value, *ierrors.Error) {
	rule := &runtime.CSSRule{Selector: n.Selector}
	for _, d := range n.Decls {
		rule.Decls = append(rule.Decls, runtime.CSSDecl{Property: d.Property, Value: d.Value})
	}
	return runtime.NewCSS(rule), nil
}
