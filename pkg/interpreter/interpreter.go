package interpreter

import (
	"fmt"
	"sync"

	"javalet/interpreter-go/pkg/ast"
	"javalet/interpreter-go/pkg/parser"
	"javalet/interpreter-go/pkg/runtime"
)

// maxCallDepth bounds method recursion so runaway programs fail instead of exhausting the
// goroutine stack.
const maxCallDepth = 4096

// Interpreter evaluates fragments against a global scope that persists across calls.
// Fragments from different goroutines are serialised.
type Interpreter struct {
	mu     sync.Mutex
	global *runtime.Scope
	parser *parser.FragmentParser
	depth  int
}

// New returns an interpreter with an empty global scope.
func New() *Interpreter {
	return &Interpreter{global: runtime.NewScope(nil)}
}

// GlobalScope exposes the root scope.
func (i *Interpreter) GlobalScope() *runtime.Scope {
	return i.global
}

// Close releases the fragment parser, if one was created.
func (i *Interpreter) Close() {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.parser != nil {
		i.parser.Close()
		i.parser = nil
	}
}

// Interpret parses source as an expression, statement or declaration and evaluates it.
func (i *Interpreter) Interpret(source string) (Result, error) {
	res, _, err := i.InterpretFragment(source)
	return res, err
}

// InterpretFragment is Interpret that also reports how the source was classified.
func (i *Interpreter) InterpretFragment(source string) (Result, parser.FragmentKind, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.parser == nil {
		p, err := parser.NewFragmentParser()
		if err != nil {
			return nil, 0, fmt.Errorf("interpreter: %w", err)
		}
		i.parser = p
	}
	node, kind, err := i.parser.ParseFragment(source)
	if err != nil {
		return nil, 0, &parseFailure{err: err}
	}
	res, err := i.evaluateTopLevel(node)
	return res, kind, err
}

// Evaluate runs a prebuilt tree against the global scope.
func (i *Interpreter) Evaluate(node ast.Node) (Result, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.evaluateTopLevel(node)
}

// evaluateTopLevel makes each fragment atomic: a failure restores the global scope.
func (i *Interpreter) evaluateTopLevel(node ast.Node) (Result, error) {
	restore := i.global.Checkpoint()
	i.depth = 0
	res, err := i.evaluate(node, i.global)
	if err != nil {
		restore()
		return nil, err
	}
	return res, nil
}

func (i *Interpreter) evaluate(node ast.Node, scope *runtime.Scope) (Result, error) {
	switch n := node.(type) {
	case nil:
		return nil, nil
	case ast.Expression:
		return i.evaluateExpression(n, scope)
	case ast.Statement:
		return i.evaluateStatement(n, scope)
	case *ast.MethodDeclaration:
		return nil, i.evaluateMethodDeclaration(n, scope)
	default:
		return nil, fmt.Errorf("interpreter: unsupported node %s", node.NodeType())
	}
}
