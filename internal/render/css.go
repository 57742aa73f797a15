package render

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-script/internal/runtime"
)

// ToCSS renders a css-tagged Value as a single CSS rule block.
func ToCSS(v *runtime.Value) (string, error) {
	if v.Tag != runtime.TagCSS {
		return "", fmt.Errorf("to_css: se esperaba un valor css, se recibió %s", v.Tag)
	}
	rule := v.CSS
	var sb strings.Builder
	sb.WriteString(rule.Selector)
	sb.WriteString(" {\n")
	for _, d := range rule.Decls {
		sb.WriteString(fmt.Sprintf("  %s: %s;\n", d.Property, d.Value))
	}
	sb.WriteString("}")
	return sb.String(), nil
}
