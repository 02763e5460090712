package interpreter

import (
	"errors"
	"testing"

	"javalet/interpreter-go/pkg/ast"
	"javalet/interpreter-go/pkg/runtime"
)

func newTestInterpreter(t *testing.T) *Interpreter {
	t.Helper()
	interp := New()
	t.Cleanup(interp.Close)
	return interp
}

func mustInterpret(t *testing.T, interp *Interpreter, source string) Result {
	t.Helper()
	res, err := interp.Interpret(source)
	if err != nil {
		t.Fatalf("Interpret(%q): %v", source, err)
	}
	return res
}

func mustEvaluate(t *testing.T, interp *Interpreter, node ast.Node) Result {
	t.Helper()
	res, err := interp.Evaluate(node)
	if err != nil {
		t.Fatalf("Evaluate(%s): %v", node.NodeType(), err)
	}
	return res
}

func mustValue(t *testing.T, res Result) runtime.Value {
	t.Helper()
	val, err := ValueOf(res)
	if err != nil {
		t.Fatalf("ValueOf(%#v): %v", res, err)
	}
	return val
}

func expectFormatted(t *testing.T, interp *Interpreter, source, want string) {
	t.Helper()
	got := FormatValue(mustValue(t, mustInterpret(t, interp, source)))
	if got != want {
		t.Fatalf("%s = %q, want %q", source, got, want)
	}
}

func expectKind(t *testing.T, err error, want ErrorKind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", want)
	}
	if !errors.Is(err, want) {
		t.Fatalf("expected %s error, got %v", want, err)
	}
	if got, ok := KindOf(err); !ok || got != want {
		t.Fatalf("KindOf = %q, want %q", got, want)
	}
}

func variableValue(t *testing.T, interp *Interpreter, name string) runtime.Value {
	t.Helper()
	entity, ok := interp.GlobalScope().Resolve(name)
	if !ok {
		t.Fatalf("variable %s not declared", name)
	}
	variable, ok := entity.(*runtime.Variable)
	if !ok {
		t.Fatalf("%s is %T, not a variable", name, entity)
	}
	return variable.Value
}
