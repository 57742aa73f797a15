// Package script is the public entry point for embedding the interpreter:
// Run executes source and returns its result, AST exposes the parsed tree,
// and ToHTML/ToCSS serialize html/css-tagged values.
package script

import (
	"bytes"

	"github.com/cwbudde/go-script/internal/ast"
	"github.com/cwbudde/go-script/internal/evaluator"
	"github.com/cwbudde/go-script/internal/ierrors"
	"github.com/cwbudde/go-script/internal/parser"
	"github.com/cwbudde/go-script/internal/render"
	"github.com/cwbudde/go-script/internal/runtime"
	"github.com/google/uuid"
)

// Option configures a Run or AST invocation.
type Option func(*options)

type options struct {
	maxSteps     int
	maxCallDepth int
	traceback    bool
}

func defaultOptions() options {
	cfg := evaluator.DefaultConfig()
	return options{maxSteps: cfg.MaxSteps, maxCallDepth: cfg.MaxCallDepth}
}

// WithMaxSteps overrides the cooperative step budget (0 disables it).
func WithMaxSteps(n int) Option {
	return func(o *options) { o.maxSteps = n }
}

// WithMaxCallDepth overrides the function-call depth budget (0 disables it).
func WithMaxCallDepth(n int) Option {
	return func(o *options) { o.maxCallDepth = n }
}

// WithTraceback attaches a "request <uuid>: <message>" traceback string to
// any error an invocation produces, for hosting layers that want a
// correlatable id without maintaining their own scheme.
func WithTraceback(enabled bool) Option {
	return func(o *options) { o.traceback = enabled }
}

// Result is the outcome of Run: exactly one of Err or a populated Value
// (plus HTML/CSS when the value is html/css-tagged).
type Result struct {
	Value  *runtime.Value
	Output string
	HTML   string
	CSS    string
	Err    *ierrors.Error
}

// ASTResult is the outcome of AST.
type ASTResult struct {
	JSON string
	Err  *ierrors.Error
}

// Run parses and executes source, returning its final value (or error).
// Everything mostrar prints is captured into Result.Output.
func Run(source string, opts ...Option) Result {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	requestID := uuid.New()

	prog, perr := parseProgram(source)
	if perr != nil {
		return Result{Err: attachTraceback(perr, requestID, o.traceback)}
	}

	var out bytes.Buffer
	cfg := evaluator.Config{MaxSteps: o.maxSteps, MaxCallDepth: o.maxCallDepth, Output: &out}
	ev := evaluator.New(cfg)
	env := runtime.NewEnvironment()
	val, eerr := ev.Eval(prog, env)
	if eerr != nil {
		return Result{Err: attachTraceback(eerr, requestID, o.traceback)}
	}

	result := Result{Value: val, Output: out.String()}
	if val.Tag == runtime.TagHTML {
		if html, err := render.ToHTML(val); err == nil {
			result.HTML = html
		}
	}
	if val.Tag == runtime.TagCSS {
		if css, err := render.ToCSS(val); err == nil {
			result.CSS = css
		}
	}
	return result
}

// AST parses source and returns its serialized JSON tree.
func AST(source string, opts ...Option) ASTResult {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	requestID := uuid.New()

	prog, perr := parseProgram(source)
	if perr != nil {
		return ASTResult{Err: attachTraceback(perr, requestID, o.traceback)}
	}
	out, err := ast.Serialize(prog)
	if err != nil {
		return ASTResult{Err: ierrors.NewWithoutPos(ierrors.Syntax, "error al serializar el AST: %v", err)}
	}
	return ASTResult{JSON: out}
}

// ToHTML renders an html-tagged value as HTML.
func ToHTML(v *runtime.Value) (string, error) {
	return render.ToHTML(v)
}

// ToCSS renders a css-tagged value as CSS.
func ToCSS(v *runtime.Value) (string, error) {
	return render.ToCSS(v)
}

func parseProgram(source string) (*ast.Program, *ierrors.Error) {
	p, err := parser.New(source)
	if err != nil {
		return nil, err
	}
	return p.ParseProgram()
}

func attachTraceback(err *ierrors.Error, requestID uuid.UUID, enabled bool) *ierrors.Error {
	if enabled {
		err.Traceback = "request " + requestID.String() + ": " + err.Error()
	}
	return err
}
