package script_test

import (
	"strings"
	"testing"

	"github.com/cwbudde/go-script/pkg/script"
	"github.com/tidwall/gjson"
)

func TestRunSuccessProducesOutput(t *testing.T) {
	result := script.Run(`mostrar "hola";`)
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if result.Output != "hola\n" {
		t.Errorf("Output = %q, want %q", result.Output, "hola\n")
	}
}

func TestRunLexicalErrorHasNoTracebackByDefault(t *testing.T) {
	result := script.Run(`@`)
	if result.Err == nil {
		t.Fatal("expected a Lexical error")
	}
	if result.Err.Kind != "Lexical" {
		t.Errorf("Kind = %v, want Lexical", result.Err.Kind)
	}
	if result.Err.Traceback != "" {
		t.Errorf("Traceback should be empty unless requested, got %q", result.Err.Traceback)
	}
}

func TestRunWithTracebackAttachesRequestID(t *testing.T) {
	result := script.Run(`mostrar noexiste;`, script.WithTraceback(true))
	if result.Err == nil {
		t.Fatal("expected a Name error")
	}
	if !strings.HasPrefix(result.Err.Traceback, "request ") {
		t.Errorf("Traceback = %q, want it to start with 'request '", result.Err.Traceback)
	}
}

func TestRunRespectsMaxStepsOption(t *testing.T) {
	result := script.Run(`mientras (verdadero) { variable x = 1; }`, script.WithMaxSteps(20))
	if result.Err == nil || result.Err.Kind != "Exhausted" {
		t.Fatalf("expected Exhausted error, got %v", result.Err)
	}
}

func TestASTReturnsSerializedTree(t *testing.T) {
	res := script.AST(`variable x = 1;`)
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if kind := gjson.Get(res.JSON, "kind").String(); kind != "Program" {
		t.Errorf("kind = %q, want Program", kind)
	}
	if name := gjson.Get(res.JSON, "statements.0.name.value").String(); name != "x" {
		t.Errorf("name = %q, want x", name)
	}
}

func TestToHTMLViaRun(t *testing.T) {
	result := script.Run(`mostrar div{}["hola"];`)
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if !strings.Contains(result.HTML, "<div>hola</div>") {
		t.Errorf("HTML = %q", result.HTML)
	}
}

func TestToCSSViaRun(t *testing.T) {
	result := script.Run(`mostrar "p"{color: "rojo"};`)
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if !strings.Contains(result.CSS, "color: rojo;") {
		t.Errorf("CSS = %q", result.CSS)
	}
}
