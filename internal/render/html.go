// Package render implements the pure to_html and to_css serializers over
// html- and css-tagged runtime.Value trees.
package render

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-script/internal/runtime"
)

// voidElements never get a closing tag or children, mirroring common HTML
// rendering practice for tags like <br> and <img>.
var voidElements = map[string]bool{
	"br": true, "img": true, "input": true, "hr": true, "meta": true, "link": true,
}

// ToHTML renders an html-tagged Value as an HTML string. Non-html children
// (integer, decimal, string, boolean, null) are stringified with the same
// textual rules '+'-concatenation uses, so numeric/text children render
// sensibly inline instead of being rejected.
func ToHTML(v *runtime.Value) (string, error) {
	if v.Tag != runtime.TagHTML {
		return "", fmt.Errorf("to_html: se esperaba un valor html, se recibió %s", v.Tag)
	}
	var sb strings.Builder
	renderNode(&sb, v.HTML)
	return sb.String(), nil
}

func renderNode(sb *strings.Builder, node *runtime.HTMLNode) {
	sb.WriteString("<" + node.Tag)
	for _, a := range node.Attrs {
		sb.WriteString(fmt.Sprintf(" %s=%q", a.Name, a.Value))
	}
	if voidElements[node.Tag] {
		sb.WriteString(" />")
		return
	}
	sb.WriteString(">")
	for _, child := range node.Children {
		renderChild(sb, child)
	}
	sb.WriteString("</" + node.Tag + ">")
}

func renderChild(sb *strings.Builder, v *runtime.Value) {
	if v.Tag == runtime.TagHTML {
		renderNode(sb, v.HTML)
		return
	}
	sb.WriteString(v.String())
}
