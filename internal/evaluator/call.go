package evaluator

import (
	"github.com/cwbudde/go-script/internal/ast"
	"github.com/cwbudde/go-script/internal/ierrors"
	"github.com/cwbudde/go-script/internal/runtime"
)

func (e *Evaluator) evalCall(n *ast.CallExpr, env *runtime.Environment) (*runtime.Value, *ierrors.Error) {
	callee, err := e.evalExpression(n.Callee, env)
	if err != nil {
		return nil, err
	}
	pos := n.Pos()
	if callee.Tag != runtime.TagFunction {
		return nil, ierrors.New(ierrors.Type, pos.Line, pos.Column, "no se puede llamar a un valor de tipo %s", callee.Tag)
	}

	args := make([]*runtime.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := e.evalExpression(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	return e.callFunction(callee.Fn, args, pos.Line, pos.Column)
}

// callFunction invokes fn with args. Per the REDESIGN FLAG this module
// implements, the call frame is parented off fn's captured declaration-time
// environment (static/lexical scoping), never off the caller's frame.
func (e *Evaluator) callFunction(fn *runtime.Function, args []*runtime.Value, line, col int) (*runtime.Value, *ierrors.Error) {
	if len(args) != len(fn.Params) {
		return nil, ierrors.New(ierrors.Arity, line, col,
			"%s espera %d argumento(s), se recibieron %d", fn.Name, len(fn.Params), len(args))
	}

	e.callDepth++
	defer func() { e.callDepth-- }()
	if e.cfg.MaxCallDepth > 0 && e.callDepth > e.cfg.MaxCallDepth {
		return nil, ierrors.New(ierrors.Exhausted, line, col,
			"se excedió la profundidad máxima de llamadas (%d)", e.cfg.MaxCallDepth)
	}

	callEnv := runtime.NewEnclosedEnvironment(fn.Closure)
	for i, paramName := range fn.Params {
		callEnv.Define(paramName, args[i])
	}

	body, ok := fn.Body.(*ast.BlockStmt)
	if !ok {
		return nil, ierrors.New(ierrors.ReturnType, line, col, "cuerpo de función inválido para %s", fn.Name)
	}

	f, err := e.evalBlock(body, callEnv)
	if err != nil {
		return nil, err
	}
	if f.isReturn {
		return f.value, nil
	}
	return runtime.Null, nil
}
