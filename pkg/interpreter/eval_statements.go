package interpreter

import (
	"fmt"

	"javalet/interpreter-go/pkg/ast"
	"javalet/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evaluateStatement(node ast.Statement, scope *runtime.Scope) (Result, error) {
	res, err := i.dispatchStatement(node, scope)
	if err != nil {
		return nil, attachSpan(err, node)
	}
	return res, nil
}

func (i *Interpreter) dispatchStatement(node ast.Statement, scope *runtime.Scope) (Result, error) {
	switch n := node.(type) {
	case *ast.ExpressionStatement:
		return i.evaluateExpression(n.Expression, scope)
	case *ast.VariableDeclaration:
		return nil, i.evaluateVariableDeclaration(n, scope)
	case *ast.Block:
		return i.evaluateBlock(n, scope)
	case *ast.ReturnStatement:
		return i.evaluateReturnStatement(n, scope)
	case *ast.WhileStatement:
		return i.evaluateWhileStatement(n, scope)
	case *ast.IfStatement:
		return i.evaluateIfStatement(n, scope)
	case *ast.EmptyStatement:
		return nil, nil
	default:
		return nil, fmt.Errorf("interpreter: unsupported statement %s", node.NodeType())
	}
}

// evaluateBlock runs statements in the given scope and stops at the first return.
func (i *Interpreter) evaluateBlock(node *ast.Block, scope *runtime.Scope) (Result, error) {
	for _, stmt := range node.Statements {
		res, err := i.evaluateStatement(stmt, scope)
		if err != nil {
			return nil, err
		}
		if ret, ok := res.(ReturnResult); ok {
			return ret, nil
		}
	}
	return nil, nil
}

func (i *Interpreter) evaluateReturnStatement(node *ast.ReturnStatement, scope *runtime.Scope) (Result, error) {
	if node.Argument == nil {
		return ReturnResult{}, nil
	}
	val, err := i.evaluateValue(node.Argument, scope)
	if err != nil {
		return nil, err
	}
	return ReturnResult{Value: val}, nil
}

// evaluateWhileStatement tests the condition in the enclosing scope and runs each
// iteration in a fresh child scope. A return from the body ends the loop and propagates.
func (i *Interpreter) evaluateWhileStatement(node *ast.WhileStatement, scope *runtime.Scope) (Result, error) {
	for {
		cond, err := i.evaluateCondition(node.Condition, scope)
		if err != nil {
			return nil, err
		}
		if !cond {
			return nil, nil
		}
		res, err := i.evaluateStatement(node.Body, runtime.NewScope(scope))
		if err != nil {
			return nil, err
		}
		if ret, ok := res.(ReturnResult); ok {
			return ret, nil
		}
	}
}

func (i *Interpreter) evaluateIfStatement(node *ast.IfStatement, scope *runtime.Scope) (Result, error) {
	cond, err := i.evaluateCondition(node.Condition, scope)
	if err != nil {
		return nil, err
	}
	branch := node.Consequence
	if !cond {
		branch = node.Alternative
	}
	if branch == nil {
		return nil, nil
	}
	res, err := i.evaluateStatement(branch, runtime.NewScope(scope))
	if err != nil {
		return nil, err
	}
	if ret, ok := res.(ReturnResult); ok {
		return ret, nil
	}
	return nil, nil
}
