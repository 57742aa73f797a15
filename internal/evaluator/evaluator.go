// Package evaluator tree-walks an internal/ast.Program against an
// internal/runtime.Environment, producing a runtime.Value or a structured
// ierrors.Error.
package evaluator

import (
	"fmt"
	"io"

	"github.com/cwbudde/go-script/internal/ast"
	"github.com/cwbudde/go-script/internal/ierrors"
	"github.com/cwbudde/go-script/internal/runtime"
	"github.com/cwbudde/go-script/internal/token"
)

// DefaultMaxSteps bounds the number of statements and expressions a single
// Run may evaluate before the evaluator gives up with an Exhausted error, guarding against a
// runaway mientras (verdadero) {} loop.
const DefaultMaxSteps = 10_000_000

// DefaultMaxCallDepth bounds function-call nesting the same way.
const DefaultMaxCallDepth = 1000

// Config tunes the evaluator's cooperative interrupt guards.
type Config struct {
	MaxSteps     int
	MaxCallDepth int
	Output       io.Writer
}

// DefaultConfig returns the evaluator's default guard values.
func DefaultConfig() Config {
	return Config{MaxSteps: DefaultMaxSteps, MaxCallDepth: DefaultMaxCallDepth}
}

// Evaluator walks an AST against a root Environment.
type Evaluator struct {
	cfg       Config
	steps     int
	callDepth int
}

// New creates an Evaluator with the given configuration.
func New(cfg Config) *Evaluator {
	return &Evaluator{cfg: cfg}
}

// flow carries a statement's result value alongside whether a devolver is
// unwinding through it. It is the typed, non-error control-flow signal
// spec.md's design notes call for: loops and blocks must re-raise it (carry
// isReturn through unchanged) rather than swallow it, and only
// callFunction is entitled to consume it.
type flow struct {
	value    *runtime.Value
	isReturn bool
}

// Eval executes prog's statements in env in order, returning the value of
// the last top-level statement that produced one (an expression statement,
// a mostrar, or a funcion declaration), or runtime.Null if none did, or the
// first error encountered. A devolver that reaches the top level, outside
// any function, is a Syntax error.
func (e *Evaluator) Eval(prog *ast.Program, env *runtime.Environment) (*runtime.Value, *ierrors.Error) {
	last := runtime.Null
	for _, stmt := range prog.Statements {
		f, err := e.evalStatement(stmt, env)
		if err != nil {
			return nil, err
		}
		if f.isReturn {
			pos := stmt.Pos()
			return nil, ierrors.New(ierrors.Syntax, pos.Line, pos.Column, "'devolver' fuera de una función")
		}
		if f.value != nil {
			last = f.value
		}
	}
	return last, nil
}

func (e *Evaluator) tickStep(pos func() (int, int)) *ierrors.Error {
	e.steps++
	if e.cfg.MaxSteps > 0 && e.steps > e.cfg.MaxSteps {
		line, col := pos()
		return ierrors.New(ierrors.Exhausted, line, col, "se excedió el número máximo de pasos (%d)", e.cfg.MaxSteps)
	}
	return nil
}

func (e *Evaluator) evalStatement(stmt ast.Statement, env *runtime.Environment) (flow, *ierrors.Error) {
	if err := e.tickStep(func() (int, int) { p := stmt.Pos(); return p.Line, p.Column }); err != nil {
		return flow{}, err
	}

	switch s := stmt.(type) {
	case *ast.VarDeclStmt:
		val, err := e.evalExpression(s.Value, env)
		if err != nil {
			return flow{}, err
		}
		env.Define(s.Name.Value, val)
		return flow{}, nil

	case *ast.ExpressionStmt:
		val, err := e.evalExpression(s.Expr, env)
		if err != nil {
			return flow{}, err
		}
		return flow{value: val}, nil

	case *ast.ShowStmt:
		val, err := e.evalExpression(s.Value, env)
		if err != nil {
			return flow{}, err
		}
		if e.cfg.Output != nil {
			fmt.Fprintln(e.cfg.Output, val.String())
		}
		return flow{value: val}, nil

	case *ast.BlockStmt:
		return e.evalBlock(s, runtime.NewEnclosedEnvironment(env))

	case *ast.IfStmt:
		cond, err := e.evalExpression(s.Condition, env)
		if err != nil {
			return flow{}, err
		}
		ok, err := e.requireBoolean(cond, s.Condition.Pos())
		if err != nil {
			return flow{}, err
		}
		if ok {
			return e.evalBlock(s.Then, env)
		}
		if s.Else != nil {
			if elseBlock, ok := s.Else.(*ast.BlockStmt); ok {
				return e.evalBlock(elseBlock, env)
			}
			return e.evalStatement(s.Else, env)
		}
		return flow{}, nil

	case *ast.WhileStmt:
		for {
			cond, err := e.evalExpression(s.Condition, env)
			if err != nil {
				return flow{}, err
			}
			ok, err := e.requireBoolean(cond, s.Condition.Pos())
			if err != nil {
				return flow{}, err
			}
			if !ok {
				return flow{}, nil
			}
			f, err := e.evalBlock(s.Body, env)
			if err != nil {
				return flow{}, err
			}
			if f.isReturn {
				return f, nil
			}
		}

	case *ast.ForStmt:
		loopEnv := env
		if s.Init != nil {
			if _, err := e.evalStatement(s.Init, loopEnv); err != nil {
				return flow{}, err
			}
		}
		for {
			if s.Condition != nil {
				cond, err := e.evalExpression(s.Condition, loopEnv)
				if err != nil {
					return flow{}, err
				}
				ok, err := e.requireBoolean(cond, s.Condition.Pos())
				if err != nil {
					return flow{}, err
				}
				if !ok {
					break
				}
			}
			f, err := e.evalBlock(s.Body, loopEnv)
			if err != nil {
				return flow{}, err
			}
			if f.isReturn {
				return f, nil
			}
			if s.Step != nil {
				if _, err := e.evalStatement(s.Step, loopEnv); err != nil {
					return flow{}, err
				}
			}
		}
		return flow{}, nil

	case *ast.ForEachStmt:
		coll, err := e.evalExpression(s.Collection, env)
		if err != nil {
			return flow{}, err
		}
		items, iterErr := e.iterableItems(coll)
		if iterErr != nil {
			pos := s.Pos()
			iterErr.Line, iterErr.Column = pos.Line, pos.Column
			return flow{}, iterErr
		}
		for _, item := range items {
			iterEnv := runtime.NewEnclosedEnvironment(env)
			iterEnv.Define(s.Name.Value, item)
			f, err := e.evalBlock(s.Body, iterEnv)
			if err != nil {
				return flow{}, err
			}
			if f.isReturn {
				return f, nil
			}
		}
		return flow{}, nil

	case *ast.FuncDeclStmt:
		fn := &runtime.Function{
			Name:    identOrAnon(s.Name),
			Params:  identNames(s.Params),
			Body:    s.Body,
			Closure: env,
		}
		val := runtime.NewFunction(fn)
		if s.Name != nil {
			env.Define(s.Name.Value, val)
		}
		return flow{value: val}, nil

	case *ast.ReturnStmt:
		val := runtime.Null
		if s.Value != nil {
			v, err := e.evalExpression(s.Value, env)
			if err != nil {
				return flow{}, err
			}
			val = v
		}
		return flow{value: val, isReturn: true}, nil

	default:
		pos := stmt.Pos()
		return flow{}, ierrors.New(ierrors.NotImplemented, pos.Line, pos.Column, "sentencia no soportada: %T", stmt)
	}
}

// evalBlock runs a block's statements in env (the caller decides whether
// that is a fresh enclosed scope or the current frame), stopping and propagating the flow as soon as a devolver fires.
func (e *Evaluator) evalBlock(block *ast.BlockStmt, env *runtime.Environment) (flow, *ierrors.Error) {
	var last flow
	for _, stmt := range block.Statements {
		f, err := e.evalStatement(stmt, env)
		if err != nil {
			return flow{}, err
		}
		if f.isReturn {
			return f, nil
		}
		if f.value != nil {
			last = f
		}
	}
	return last, nil
}

// requireBoolean enforces the condicion.tipo == 'booleano' check
// original_source/interpreter.py makes before branching or looping; any
// other tag is a Type error rather than falling back to truthiness.
func (e *Evaluator) requireBoolean(v *runtime.Value, pos token.Position) (bool, *ierrors.Error) {
	if v.Tag != runtime.TagBoolean {
		return false, ierrors.New(ierrors.Type, pos.Line, pos.Column, "se esperaba booleano, se obtuvo %s", v.Tag)
	}
	return v.Bool, nil
}

func identOrAnon(id *ast.Identifier) string {
	if id == nil {
		return "<anónima>"
	}
	return id.Value
}

func identNames(ids []*ast.Identifier) []string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.Value
	}
	return names
}
