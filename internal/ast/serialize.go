package ast

import (
	"fmt"

	"github.com/tidwall/sjson"
)

// Serialize renders the program as the JSON shape spec.md's ast() entry
// point exposes externally: a tree of {kind, line, column, ...fields}
// objects where nested nodes sit under their field names (statements,
// left, right, args, children, ...), built incrementally with sjson rather than struct-tag marshaling
// so evaluator-only fields never leak into the wire format.
func Serialize(prog *Program) (string, error) {
	out := "{}"
	var err error
	out, err = sjson.Set(out, "kind", "Program")
	if err != nil {
		return "", err
	}
	for i, stmt := range prog.Statements {
		out, err = setNode(out, fmt.Sprintf("statements.%d", i), stmt)
		if err != nil {
			return "", err
		}
	}
	return out, nil
}

// setNode serializes node as a nested JSON value at path within doc.
func setNode(doc, path string, node Node) (string, error) {
	obj, err := serializeNode(node)
	if err != nil {
		return "", err
	}
	return sjson.SetRaw(doc, path, obj)
}

func serializeNode(node Node) (string, error) {
	if node == nil {
		return "null", nil
	}
	out := "{}"
	var err error
	pos := node.Pos()
	out, err = sjson.Set(out, "line", pos.Line)
	if err != nil {
		return "", err
	}
	out, err = sjson.Set(out, "column", pos.Column)
	if err != nil {
		return "", err
	}

	switch n := node.(type) {
	case *Identifier:
		out, err = sjson.Set(out, "kind", "Identifier")
		out, err = sjson.Set(out, "value", n.Value)
	case *IntegerLiteral:
		out, err = sjson.Set(out, "kind", "IntegerLiteral")
		out, err = sjson.Set(out, "value", n.Value)
	case *DecimalLiteral:
		out, err = sjson.Set(out, "kind", "DecimalLiteral")
		out, err = sjson.Set(out, "value", n.Value)
	case *StringLiteral:
		out, err = sjson.Set(out, "kind", "StringLiteral")
		out, err = sjson.Set(out, "value", n.Value)
	case *BooleanLiteral:
		out, err = sjson.Set(out, "kind", "BooleanLiteral")
		out, err = sjson.Set(out, "value", n.Value)
	case *NullLiteral:
		out, err = sjson.Set(out, "kind", "NullLiteral")
	case *ListLiteral:
		out, err = sjson.Set(out, "kind", "ListLiteral")
		for i, el := range n.Elements {
			out, err = setNode(out, fmt.Sprintf("elements.%d", i), el)
			if err != nil {
				return "", err
			}
		}
	case *DictLiteral:
		out, err = sjson.Set(out, "kind", "DictLiteral")
		for i, p := range n.Pairs {
			out, err = setNode(out, fmt.Sprintf("pairs.%d.key", i), p.Key)
			if err != nil {
				return "", err
			}
			out, err = setNode(out, fmt.Sprintf("pairs.%d.value", i), p.Value)
			if err != nil {
				return "", err
			}
		}
	case *HtmlElemLiteral:
		out, err = sjson.Set(out, "kind", "HtmlElemLiteral")
		out, err = sjson.Set(out, "tag", n.Tag)
		for i, a := range n.Attrs {
			out, err = sjson.Set(out, fmt.Sprintf("attrs.%d.name", i), a.Name)
			if err != nil {
				return "", err
			}
			out, err = setNode(out, fmt.Sprintf("attrs.%d.value", i), a.Value)
			if err != nil {
				return "", err
			}
		}
		for i, c := range n.Children {
			out, err = setNode(out, fmt.Sprintf("children.%d", i), c)
			if err != nil {
				return "", err
			}
		}
	case *CssRuleLiteral:
		out, err = sjson.Set(out, "kind", "CssRuleLiteral")
		out, err = sjson.Set(out, "selector", n.Selector)
		for i, d := range n.Decls {
			out, err = sjson.Set(out, fmt.Sprintf("decls.%d.property", i), d.Property)
			if err != nil {
				return "", err
			}
			out, err = sjson.Set(out, fmt.Sprintf("decls.%d.value", i), d.Value)
			if err != nil {
				return "", err
			}
		}
	case *BinaryExpr:
		out, err = sjson.Set(out, "kind", "BinaryExpr")
		out, err = sjson.Set(out, "operator", n.Operator)
		out, err = setNode(out, "left", n.Left)
		if err != nil {
			return "", err
		}
		out, err = setNode(out, "right", n.Right)
	case *LogicalExpr:
		out, err = sjson.Set(out, "kind", "LogicalExpr")
		out, err = sjson.Set(out, "operator", n.Operator)
		out, err = setNode(out, "left", n.Left)
		if err != nil {
			return "", err
		}
		out, err = setNode(out, "right", n.Right)
	case *UnaryExpr:
		out, err = sjson.Set(out, "kind", "UnaryExpr")
		out, err = sjson.Set(out, "operator", n.Operator)
		out, err = setNode(out, "right", n.Right)
	case *GroupedExpr:
		out, err = sjson.Set(out, "kind", "GroupedExpr")
		out, err = setNode(out, "inner", n.Inner)
	case *AssignExpr:
		out, err = sjson.Set(out, "kind", "AssignExpr")
		out, err = setNode(out, "name", n.Name)
		if err != nil {
			return "", err
		}
		out, err = setNode(out, "value", n.Value)
	case *IndexExpr:
		out, err = sjson.Set(out, "kind", "IndexExpr")
		out, err = setNode(out, "left", n.Left)
		if err != nil {
			return "", err
		}
		out, err = setNode(out, "index", n.Index)
	case *CallExpr:
		out, err = sjson.Set(out, "kind", "CallExpr")
		out, err = setNode(out, "callee", n.Callee)
		if err != nil {
			return "", err
		}
		for i, a := range n.Args {
			out, err = setNode(out, fmt.Sprintf("args.%d", i), a)
			if err != nil {
				return "", err
			}
		}
	case *ExpressionStmt:
		out, err = sjson.Set(out, "kind", "ExpressionStmt")
		out, err = setNode(out, "expr", n.Expr)
	case *VarDeclStmt:
		out, err = sjson.Set(out, "kind", "VarDeclStmt")
		out, err = setNode(out, "name", n.Name)
		if err != nil {
			return "", err
		}
		out, err = setNode(out, "value", n.Value)
	case *BlockStmt:
		out, err = sjson.Set(out, "kind", "BlockStmt")
		for i, s := range n.Statements {
			out, err = setNode(out, fmt.Sprintf("statements.%d", i), s)
			if err != nil {
				return "", err
			}
		}
	case *IfStmt:
		out, err = sjson.Set(out, "kind", "IfStmt")
		out, err = setNode(out, "condition", n.Condition)
		if err != nil {
			return "", err
		}
		out, err = setNode(out, "then", n.Then)
		if err != nil {
			return "", err
		}
		out, err = setNode(out, "else", n.Else)
	case *WhileStmt:
		out, err = sjson.Set(out, "kind", "WhileStmt")
		out, err = setNode(out, "condition", n.Condition)
		if err != nil {
			return "", err
		}
		out, err = setNode(out, "body", n.Body)
	case *ForStmt:
		out, err = sjson.Set(out, "kind", "ForStmt")
		out, err = setNode(out, "init", n.Init)
		if err != nil {
			return "", err
		}
		out, err = setNode(out, "condition", n.Condition)
		if err != nil {
			return "", err
		}
		out, err = setNode(out, "step", n.Step)
		if err != nil {
			return "", err
		}
		out, err = setNode(out, "body", n.Body)
	case *ForEachStmt:
		out, err = sjson.Set(out, "kind", "ForEachStmt")
		out, err = setNode(out, "name", n.Name)
		if err != nil {
			return "", err
		}
		out, err = setNode(out, "collection", n.Collection)
		if err != nil {
			return "", err
		}
		out, err = setNode(out, "body", n.Body)
	case *FuncDeclStmt:
		out, err = sjson.Set(out, "kind", "FuncDeclStmt")
		if n.Name != nil {
			out, err = setNode(out, "name", n.Name)
			if err != nil {
				return "", err
			}
		}
		for i, p := range n.Params {
			out, err = setNode(out, fmt.Sprintf("params.%d", i), p)
			if err != nil {
				return "", err
			}
		}
		out, err = setNode(out, "body", n.Body)
	case *ReturnStmt:
		out, err = sjson.Set(out, "kind", "ReturnStmt")
		if n.Value != nil {
			out, err = setNode(out, "value", n.Value)
		}
	case *ShowStmt:
		out, err = sjson.Set(out, "kind", "ShowStmt")
		out, err = setNode(out, "value", n.Value)
	default:
		out, err = sjson.Set(out, "kind", "Unknown")
	}
	if err != nil {
		return "", err
	}
	return out, nil
}
