package evaluator

import (
	"github.com/cwbudde/go-script/internal/ierrors"
	"github.com/cwbudde/go-script/internal/runtime"
	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"
)

func isNumeric(v *runtime.Value) bool {
	return v.Tag == runtime.TagInteger || v.Tag == runtime.TagDecimal
}

func asDecimal(v *runtime.Value) decimal.Decimal {
	if v.Tag == runtime.TagInteger {
		return decimal.NewFromInt(v.Int)
	}
	return v.Dec
}

func normalize(s string) string {
	return norm.NFC.String(s)
}

func (e *Evaluator) evalBinary(operator string, left, right *runtime.Value, line, col int) (*runtime.Value, *ierrors.Error) {
	switch operator {
	case "+":
		return e.evalPlus(left, right, line, col)
	case "-", "*", "/", "%", "^":
		return e.evalArithmetic(operator, left, right, line, col)
	case "==":
		eq, err := e.valuesEqual(left, right, line, col)
		if err != nil {
			return nil, err
		}
		return runtime.NewBoolean(eq), nil
	case "!=":
		eq, err := e.valuesEqual(left, right, line, col)
		if err != nil {
			return nil, err
		}
		return runtime.NewBoolean(!eq), nil
	case ">", "<", ">=", "<=":
		return e.evalOrdering(operator, left, right, line, col)
	default:
		return nil, ierrors.New(ierrors.NotImplemented, line, col, "operador no soportado: %s", operator)
	}
}

// evalPlus concatenates when at least one operand is a string, joins two
// lists into a new list, and adds numerically when both are numeric. Mixed non-string, non-numeric pairs
// are a Type error — there is no implicit stringification of lists, dicts,
// booleans, or null through '+'.
func (e *Evaluator) evalPlus(left, right *runtime.Value, line, col int) (*runtime.Value, *ierrors.Error) {
	if left.Tag == runtime.TagString || right.Tag == runtime.TagString {
		if !isNumeric(left) && left.Tag != runtime.TagString {
			return nil, ierrors.New(ierrors.Type, line, col, "no se puede concatenar un valor de tipo %s", left.Tag)
		}
		if !isNumeric(right) && right.Tag != runtime.TagString {
			return nil, ierrors.New(ierrors.Type, line, col, "no se puede concatenar un valor de tipo %s", right.Tag)
		}
		return runtime.NewString(left.String() + right.String()), nil
	}
	if left.Tag == runtime.TagList && right.Tag == runtime.TagList {
		combined := make([]*runtime.Value, 0, len(left.List)+len(right.List))
		combined = append(combined, left.List...)
		combined = append(combined, right.List...)
		return runtime.NewList(combined), nil
	}
	if isNumeric(left) && isNumeric(right) {
		return e.evalArithmetic("+", left, right, line, col)
	}
	return nil, ierrors.New(ierrors.Type, line, col,
		"operandos incompatibles para '+': %s y %s", left.Tag, right.Tag)
}

func (e *Evaluator) evalArithmetic(operator string, left, right *runtime.Value, line, col int) (*runtime.Value, *ierrors.Error) {
	if !isNumeric(left) || !isNumeric(right) {
		return nil, ierrors.New(ierrors.Type, line, col,
			"operandos no numéricos para '%s': %s y %s", operator, left.Tag, right.Tag)
	}

	bothInt := left.Tag == runtime.TagInteger && right.Tag == runtime.TagInteger
	if bothInt && operator != "/" {
		a, b := left.Int, right.Int
		switch operator {
		case "-":
			return runtime.NewInteger(a - b), nil
		case "*":
			return runtime.NewInteger(a * b), nil
		case "%":
			if b == 0 {
				return nil, ierrors.New(ierrors.DivisionByZero, line, col, "división por cero")
			}
			return runtime.NewInteger(a % b), nil
		case "^":
			return runtime.NewInteger(intPow(a, b)), nil
		case "+":
			return runtime.NewInteger(a + b), nil
		}
	}

	a, b := asDecimal(left), asDecimal(right)
	switch operator {
	case "+":
		return runtime.NewDecimal(a.Add(b)), nil
	case "-":
		return runtime.NewDecimal(a.Sub(b)), nil
	case "*":
		return runtime.NewDecimal(a.Mul(b)), nil
	case "/":
		if b.IsZero() {
			return nil, ierrors.New(ierrors.DivisionByZero, line, col, "división por cero")
		}
		return runtime.NewDecimal(a.Div(b)), nil
	case "%":
		if b.IsZero() {
			return nil, ierrors.New(ierrors.DivisionByZero, line, col, "división por cero")
		}
		return runtime.NewDecimal(a.Mod(b)), nil
	case "^":
		exp, _ := b.Float64()
		return runtime.NewDecimal(a.Pow(decimal.NewFromFloat(exp))), nil
	}
	return nil, ierrors.New(ierrors.NotImplemented, line, col, "operador no soportado: %s", operator)
}

func intPow(base, exp int64) int64 {
	if exp < 0 {
		return 0
	}
	result := int64(1)
	for i := int64(0); i < exp; i++ {
		result *= base
	}
	return result
}

// evalOrdering handles <, >, <=, >=: numeric operands only, per
// original_source/interpreter.py's comparison operators. String ordering
// is not part of the language.
func (e *Evaluator) evalOrdering(operator string, left, right *runtime.Value, line, col int) (*runtime.Value, *ierrors.Error) {
	if !isNumeric(left) || !isNumeric(right) {
		return nil, ierrors.New(ierrors.Type, line, col,
			"operandos no numéricos para '%s': %s y %s", operator, left.Tag, right.Tag)
	}
	a, b := asDecimal(left), asDecimal(right)
	cmp := a.Cmp(b)
	return runtime.NewBoolean(compareOp(operator, cmp)), nil
}

func compareOp(operator string, cmp int) bool {
	switch operator {
	case ">":
		return cmp > 0
	case "<":
		return cmp < 0
	case ">=":
		return cmp >= 0
	case "<=":
		return cmp <= 0
	}
	return false
}

// valuesEqual implements ==/!=: both operands must share the same type
// tag (integer and decimal are distinct tags here, not a shared numeric
// family), per original_source/interpreter.py's izquierda.tipo !=
// derecha.tipo check. Mixed tags are a Type error rather than false.
func (e *Evaluator) valuesEqual(left, right *runtime.Value, line, col int) (bool, *ierrors.Error) {
	if left.Tag != right.Tag {
		return false, ierrors.New(ierrors.Type, line, col,
			"no se pueden comparar tipos distintos: %s y %s", left.Tag, right.Tag)
	}
	switch left.Tag {
	case runtime.TagInteger:
		return left.Int == right.Int, nil
	case runtime.TagDecimal:
		return left.Dec.Equal(right.Dec), nil
	case runtime.TagString:
		return normalize(left.Str) == normalize(right.Str), nil
	case runtime.TagBoolean:
		return left.Bool == right.Bool, nil
	case runtime.TagNull:
		return true, nil
	case runtime.TagList:
		if len(left.List) != len(right.List) {
			return false, nil
		}
		for i := range left.List {
			eq, err := e.valuesEqual(left.List[i], right.List[i], line, col)
			if err != nil {
				return false, err
			}
			if !eq {
				return false, nil
			}
		}
		return true, nil
	case runtime.TagDict:
		if len(left.DictKey) != len(right.DictKey) {
			return false, nil
		}
		for _, k := range left.DictKey {
			rv, ok := right.Dict[k]
			if !ok {
				return false, nil
			}
			eq, err := e.valuesEqual(left.Dict[k], rv, line, col)
			if err != nil {
				return false, err
			}
			if !eq {
				return false, nil
			}
		}
		return true, nil
	default:
		return left == right, nil
	}
}
