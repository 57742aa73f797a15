// Package runtime defines the language's runtime value representation and
// lexical environments.
package runtime

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Tag identifies the closed set of runtime value kinds.
type Tag int

const (
	TagInteger Tag = iota
	TagDecimal
	TagString
	TagBoolean
	TagNull
	TagList
	TagDict
	TagFunction
	TagHTML
	TagCSS
)

func (t Tag) String() string {
	switch t {
	case TagInteger:
		return "integer"
	case TagDecimal:
		return "decimal"
	case TagString:
		return "string"
	case TagBoolean:
		return "boolean"
	case TagNull:
		return "null"
	case TagList:
		return "list"
	case TagDict:
		return "dict"
	case TagFunction:
		return "function"
	case TagHTML:
		return "html"
	case TagCSS:
		return "css"
	default:
		return "unknown"
	}
}

// HTMLNode is the rendered-value payload of an html-tagged Value.
type HTMLNode struct {
	Tag      string
	Attrs    []HTMLAttr
	Children []*Value
}

// HTMLAttr is a single attribute of an HTMLNode.
type HTMLAttr struct {
	Name  string
	Value string
}

// CSSRule is the rendered-value payload of a css-tagged Value.
type CSSRule struct {
	Selector string
	Decls    []CSSDecl
}

// CSSDecl is one property/value pair of a CSSRule.
type CSSDecl struct {
	Property string
	Value    string
}

// Function is the runtime payload of a function-tagged Value: its
// parameter names, body (an evaluator-owned opaque node), and the lexical
// environment captured at declaration time.
type Function struct {
	Name    string
	Params  []string
	Body    interface{} // *ast.BlockStmt; kept opaque to avoid an import cycle
	Closure *Environment
}

// Value is a tagged-union runtime value. Composite payloads (List, Dict) are
// reference types in Go already (slices/maps), so they share storage the
// same way the language's acyclic-by-construction composites do; no
// separate refcount field is needed because Go's GC already reclaims them.
type Value struct {
	Tag     Tag
	Int     int64
	Dec     decimal.Decimal
	Str     string
	Bool    bool
	List    []*Value
	Dict    map[string]*Value
	DictKey []string // insertion order, parallel to Dict's keys
	Fn      *Function
	HTML    *HTMLNode
	CSS     *CSSRule
}

// NewInteger builds an integer-tagged Value.
func NewInteger(v int64) *Value { return &Value{Tag: TagInteger, Int: v} }

// NewDecimal builds a decimal-tagged Value.
func NewDecimal(v decimal.Decimal) *Value { return &Value{Tag: TagDecimal, Dec: v} }

// NewString builds a string-tagged Value.
func NewString(v string) *Value { return &Value{Tag: TagString, Str: v} }

// NewBoolean builds a boolean-tagged Value.
func NewBoolean(v bool) *Value { return &Value{Tag: TagBoolean, Bool: v} }

// Null is the sentinel nulo value.
var Null = &Value{Tag: TagNull}

// NewList builds a list-tagged Value.
func NewList(elems []*Value) *Value { return &Value{Tag: TagList, List: elems} }

// NewDict builds an empty dict-tagged Value ready for Set calls.
func NewDict() *Value {
	return &Value{Tag: TagDict, Dict: map[string]*Value{}}
}

// Set inserts or updates a key in a dict-tagged Value, preserving insertion
// order for iteration (ForEach).
func (v *Value) Set(key string, val *Value) {
	if _, exists := v.Dict[key]; !exists {
		v.DictKey = append(v.DictKey, key)
	}
	v.Dict[key] = val
}

// NewFunction builds a function-tagged Value.
func NewFunction(fn *Function) *Value { return &Value{Tag: TagFunction, Fn: fn} }

// NewHTML builds an html-tagged Value.
func NewHTML(node *HTMLNode) *Value { return &Value{Tag: TagHTML, HTML: node} }

// NewCSS builds a css-tagged Value.
func NewCSS(rule *CSSRule) *Value { return &Value{Tag: TagCSS, CSS: rule} }

// Truthy implements the language's truthiness rule: null and false are
// falsy, the integer/decimal zero is falsy, the empty string is falsy,
// everything else (including empty lists/dicts) is truthy.
func (v *Value) Truthy() bool {
	switch v.Tag {
	case TagNull:
		return false
	case TagBoolean:
		return v.Bool
	case TagInteger:
		return v.Int != 0
	case TagDecimal:
		return !v.Dec.IsZero()
	case TagString:
		return v.Str != ""
	default:
		return true
	}
}

// String renders v the way '+'-concatenation and mostrar stringify values.
func (v *Value) String() string {
	switch v.Tag {
	case TagInteger:
		return fmt.Sprintf("%d", v.Int)
	case TagDecimal:
		return v.Dec.String()
	case TagString:
		return v.Str
	case TagBoolean:
		if v.Bool {
			return "verdadero"
		}
		return "falso"
	case TagNull:
		return "nulo"
	case TagList:
		s := "["
		for i, e := range v.List {
			if i > 0 {
				s += ", "
			}
			s += e.String()
		}
		return s + "]"
	case TagDict:
		s := "{"
		for i, k := range v.DictKey {
			if i > 0 {
				s += ", "
			}
			s += k + ": " + v.Dict[k].String()
		}
		return s + "}"
	case TagFunction:
		return "<funcion>"
	case TagHTML:
		return "<html>"
	case TagCSS:
		return "<css>"
	default:
		return "<desconocido>"
	}
}
