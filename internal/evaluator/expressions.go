package evaluator

import (
	"github.com/cwbudde/go-script/internal/ast"
	"github.com/cwbudde/go-script/internal/ierrors"
	"github.com/cwbudde/go-script/internal/runtime"
	"github.com/shopspring/decimal"
)

func (e *Evaluator) evalExpression(expr ast.Expression, env *runtime.Environment) (*runtime.Value, *ierrors.Error) {
	if err := e.tickStep(func() (int, int) { p := expr.Pos(); return p.Line, p.Column }); err != nil {
		return nil, err
	}

	switch n := expr.(type) {
	case *ast.IntegerLiteral:
		return runtime.NewInteger(n.Value), nil
	case *ast.DecimalLiteral:
		d, err := decimal.NewFromString(n.Value)
		if err != nil {
			pos := n.Pos()
			return nil, ierrors.New(ierrors.Syntax, pos.Line, pos.Column, "literal decimal inválido: %s", n.Value)
		}
		return runtime.NewDecimal(d), nil
	case *ast.StringLiteral:
		return runtime.NewString(n.Value), nil
	case *ast.BooleanLiteral:
		return runtime.NewBoolean(n.Value), nil
	case *ast.NullLiteral:
		return runtime.Null, nil

	case *ast.Identifier:
		if val, ok := env.Get(n.Value); ok {
			return val, nil
		}
		pos := n.Pos()
		return nil, ierrors.New(ierrors.Name, pos.Line, pos.Column, "variable indefinida: %s", n.Value)

	case *ast.GroupedExpr:
		return e.evalExpression(n.Inner, env)

	case *ast.UnaryExpr:
		return e.evalUnary(n, env)

	case *ast.BinaryExpr:
		left, err := e.evalExpression(n.Left, env)
		if err != nil {
			return nil, err
		}
		right, err := e.evalExpression(n.Right, env)
		if err != nil {
			return nil, err
		}
		pos := n.Pos()
		return e.evalBinary(n.Operator, left, right, pos.Line, pos.Column)

	case *ast.LogicalExpr:
		return e.evalLogical(n, env)

	case *ast.AssignExpr:
		val, err := e.evalExpression(n.Value, env)
		if err != nil {
			return nil, err
		}
		if !env.Set(n.Name.Value, val) {
			pos := n.Pos()
			return nil, ierrors.New(ierrors.Name, pos.Line, pos.Column, "variable indefinida: %s", n.Name.Value)
		}
		return val, nil

	case *ast.ListLiteral:
		elems := make([]*runtime.Value, len(n.Elements))
		for i, el := range n.Elements {
			v, err := e.evalExpression(el, env)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return runtime.NewList(elems), nil

	case *ast.DictLiteral:
		d := runtime.NewDict()
		for _, pair := range n.Pairs {
			k, err := e.evalExpression(pair.Key, env)
			if err != nil {
				return nil, err
			}
			v, err := e.evalExpression(pair.Value, env)
			if err != nil {
				return nil, err
			}
			d.Set(k.String(), v)
		}
		return d, nil

	case *ast.IndexExpr:
		return e.evalIndex(n, env)

	case *ast.CallExpr:
		return e.evalCall(n, env)

	case *ast.FuncDeclStmt:
		fn := &runtime.Function{
			Name:    identOrAnon(n.Name),
			Params:  identNames(n.Params),
			Body:    n.Body,
			Closure: env,
		}
		return runtime.NewFunction(fn), nil

	case *ast.HtmlElemLiteral:
		return e.evalHtmlElem(n, env)

	case *ast.CssRuleLiteral:
		return e.evalCssRule(n, env)

	default:
		pos := expr.Pos()
		return nil, ierrors.New(ierrors.NotImplemented, pos.Line, pos.Column, "expresión no soportada: %T", expr)
	}
}

func (e *Evaluator) evalUnary(n *ast.UnaryExpr, env *runtime.Environment) (*runtime.Value, *ierrors.Error) {
	right, err := e.evalExpression(n.Right, env)
	if err != nil {
		return nil, err
	}
	pos := n.Pos()
	switch n.Operator {
	case "-":
		switch right.Tag {
		case runtime.TagInteger:
			return runtime.NewInteger(-right.Int), nil
		case runtime.TagDecimal:
			return runtime.NewDecimal(right.Dec.Neg()), nil
		default:
			return nil, ierrors.New(ierrors.Type, pos.Line, pos.Column, "operando no numérico para '-': %s", right.Tag)
		}
	case "no":
		return runtime.NewBoolean(!right.Truthy()), nil
	default:
		return nil, ierrors.New(ierrors.NotImplemented, pos.Line, pos.Column, "operador unario no soportado: %s", n.Operator)
	}
}

// evalLogical short-circuits: 'y' only evaluates its right side when the
// left is true, 'o' only when the left is false. Both operands must be
// boolean; original_source/interpreter.py raises TypeError otherwise.
func (e *Evaluator) evalLogical(n *ast.LogicalExpr, env *runtime.Environment) (*runtime.Value, *ierrors.Error) {
	left, err := e.evalExpression(n.Left, env)
	if err != nil {
		return nil, err
	}
	if left.Tag != runtime.TagBoolean {
		pos := n.Left.Pos()
		return nil, ierrors.New(ierrors.Type, pos.Line, pos.Column, "operando izquierdo de '%s' debe ser booleano, se obtuvo %s", n.Operator, left.Tag)
	}
	if n.Operator == "o" && left.Bool {
		return left, nil
	}
	if n.Operator == "y" && !left.Bool {
		return left, nil
	}
	right, err := e.evalExpression(n.Right, env)
	if err != nil {
		return nil, err
	}
	if right.Tag != runtime.TagBoolean {
		pos := n.Right.Pos()
		return nil, ierrors.New(ierrors.Type, pos.Line, pos.Column, "operando derecho de '%s' debe ser booleano, se obtuvo %s", n.Operator, right.Tag)
	}
	return right, nil
}

func (e *Evaluator) evalIndex(n *ast.IndexExpr, env *runtime.Environment) (*runtime.Value, *ierrors.Error) {
	left, err := e.evalExpression(n.Left, env)
	if err != nil {
		return nil, err
	}
	idx, err := e.evalExpression(n.Index, env)
	if err != nil {
		return nil, err
	}
	pos := n.Pos()
	switch left.Tag {
	case runtime.TagList:
		if idx.Tag != runtime.TagInteger {
			return nil, ierrors.New(ierrors.Type, pos.Line, pos.Column, "el índice de una lista debe ser entero")
		}
		i := idx.Int
		if i < 0 || i >= int64(len(left.List)) {
			return nil, ierrors.New(ierrors.Type, pos.Line, pos.Column, "índice fuera de rango: %d", i)
		}
		return left.List[i], nil
	case runtime.TagDict:
		key := idx.String()
		if v, ok := left.Dict[key]; ok {
			return v, nil
		}
		return nil, ierrors.New(ierrors.Name, pos.Line, pos.Column, "clave indefinida: %s", key)
	default:
		return nil, ierrors.New(ierrors.Type, pos.Line, pos.Column, "no se puede indexar un valor de tipo %s", left.Tag)
	}
}

// iterableItems resolves the per-iteration values para cada binds its
// variable to. Lists yield their elements; dicts yield their keys as
// strings (spec's intentionally lossy ForEach-over-dict behavior — reach
// for dict[clave] inside the loop body to recover the value); strings
// yield their runes as one-character strings.
func (e *Evaluator) iterableItems(v *runtime.Value) ([]*runtime.Value, *ierrors.Error) {
	switch v.Tag {
	case runtime.TagList:
		return v.List, nil
	case runtime.TagDict:
		items := make([]*runtime.Value, len(v.DictKey))
		for i, k := range v.DictKey {
			items[i] = runtime.NewString(k)
		}
		return items, nil
	case runtime.TagString:
		runes := []rune(v.Str)
		items := make([]*runtime.Value, len(runes))
		for i, r := range runes {
			items[i] = runtime.NewString(string(r))
		}
		return items, nil
	default:
		return nil, ierrors.NewWithoutPos(ierrors.Type, "no se puede iterar sobre un valor de tipo %s", v.Tag)
	}
}
