package interpreter

import (
	"fmt"

	"javalet/interpreter-go/pkg/ast"
	"javalet/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evaluateExpression(node ast.Expression, scope *runtime.Scope) (Result, error) {
	res, err := i.dispatchExpression(node, scope)
	if err != nil {
		return nil, attachSpan(err, node)
	}
	return res, nil
}

func (i *Interpreter) dispatchExpression(node ast.Expression, scope *runtime.Scope) (Result, error) {
	switch n := node.(type) {
	case *ast.IntegerLiteral:
		if n.Long {
			return ValueResult{Value: runtime.LongValue(n.Value)}, nil
		}
		return ValueResult{Value: runtime.IntValue(n.Value)}, nil
	case *ast.FloatLiteral:
		if n.Single {
			return ValueResult{Value: runtime.FloatValueOf(n.Value)}, nil
		}
		return ValueResult{Value: runtime.DoubleValue(n.Value)}, nil
	case *ast.StringLiteral:
		return ValueResult{Value: runtime.StringValue{Val: n.Value}}, nil
	case *ast.CharLiteral:
		return ValueResult{Value: runtime.CharValue{Val: uint16(n.Value)}}, nil
	case *ast.BooleanLiteral:
		return ValueResult{Value: runtime.BoolValue{Val: n.Value}}, nil
	case *ast.NullLiteral:
		return ValueResult{Value: runtime.NullValue{}}, nil
	case *ast.Identifier:
		return i.evaluateIdentifier(n, scope), nil
	case *ast.BinaryExpression:
		return i.evaluateBinaryExpression(n, scope)
	case *ast.UnaryExpression:
		return i.evaluateUnaryExpression(n, scope)
	case *ast.UpdateExpression:
		return i.evaluateUpdateExpression(n, scope)
	case *ast.AssignmentExpression:
		return i.evaluateAssignmentExpression(n, scope)
	case *ast.ConditionalExpression:
		return i.evaluateConditionalExpression(n, scope)
	case *ast.MethodCall:
		return i.evaluateMethodCall(n, scope)
	default:
		return nil, fmt.Errorf("interpreter: unsupported expression %s", node.NodeType())
	}
}

func (i *Interpreter) evaluateIdentifier(node *ast.Identifier, scope *runtime.Scope) Result {
	if entity, ok := scope.Resolve(node.Name); ok {
		if variable, ok := entity.(*runtime.Variable); ok {
			return ReferenceResult{Target: variable}
		}
	}
	return UnresolvedResult{Name: node.Name}
}

// evaluateValue evaluates an expression and reads its value.
func (i *Interpreter) evaluateValue(node ast.Expression, scope *runtime.Scope) (runtime.Value, error) {
	res, err := i.evaluateExpression(node, scope)
	if err != nil {
		return nil, err
	}
	val, err := ValueOf(res)
	if err != nil {
		return nil, attachSpan(err, node)
	}
	return val, nil
}

func (i *Interpreter) evaluateCondition(node ast.Expression, scope *runtime.Scope) (bool, error) {
	res, err := i.evaluateExpression(node, scope)
	if err != nil {
		return false, err
	}
	ok, err := Truthy(res)
	if err != nil {
		return false, attachSpan(err, node)
	}
	return ok, nil
}

func (i *Interpreter) evaluateBinaryExpression(node *ast.BinaryExpression, scope *runtime.Scope) (Result, error) {
	switch node.Operator {
	case "&&", "||":
		return i.evaluateLogicalExpression(node, scope)
	}
	left, err := i.evaluateValue(node.Left, scope)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluateValue(node.Right, scope)
	if err != nil {
		return nil, err
	}
	val, err := applyBinaryOperator(node.Operator, left, right)
	if err != nil {
		return nil, err
	}
	return ValueResult{Value: val}, nil
}

func (i *Interpreter) evaluateLogicalExpression(node *ast.BinaryExpression, scope *runtime.Scope) (Result, error) {
	left, err := i.evaluateValue(node.Left, scope)
	if err != nil {
		return nil, err
	}
	lb, ok := left.(runtime.BoolValue)
	if !ok {
		return nil, operandMismatch(node.Operator, left, runtime.BoolValue{})
	}
	if (node.Operator == "&&" && !lb.Val) || (node.Operator == "||" && lb.Val) {
		return ValueResult{Value: lb}, nil
	}
	right, err := i.evaluateValue(node.Right, scope)
	if err != nil {
		return nil, err
	}
	rb, ok := right.(runtime.BoolValue)
	if !ok {
		return nil, operandMismatch(node.Operator, left, right)
	}
	return ValueResult{Value: rb}, nil
}

func (i *Interpreter) evaluateUnaryExpression(node *ast.UnaryExpression, scope *runtime.Scope) (Result, error) {
	operand, err := i.evaluateValue(node.Operand, scope)
	if err != nil {
		return nil, err
	}
	val, err := applyUnaryOperator(node.Operator, operand)
	if err != nil {
		return nil, err
	}
	return ValueResult{Value: val}, nil
}

// evaluateUpdateExpression handles ++ and --. Postfix yields the value before the write,
// prefix the value after it.
func (i *Interpreter) evaluateUpdateExpression(node *ast.UpdateExpression, scope *runtime.Scope) (Result, error) {
	target, err := i.evaluateExpression(node.Operand, scope)
	if err != nil {
		return nil, err
	}
	ref, ok := target.(ReferenceResult)
	if !ok {
		if unresolved, isName := target.(UnresolvedResult); isName {
			return nil, newRuntimeError(ErrUseOfUnresolvedName, "cannot find symbol '%s'", unresolved.Name)
		}
		return nil, newRuntimeError(ErrNotAssignable, "operand of %s must be a variable", node.Operator)
	}
	old := ref.Target.Value
	delta := int64(1)
	if node.Operator == "--" {
		delta = -1
	}
	updated, err := stepValue(old, delta)
	if err != nil {
		return nil, err
	}
	if err := Write(ref, updated); err != nil {
		return nil, err
	}
	if node.Prefix {
		return ValueResult{Value: updated}, nil
	}
	return ValueResult{Value: old}, nil
}

// stepValue adds delta to a numeric value without changing its type.
func stepValue(v runtime.Value, delta int64) (runtime.Value, error) {
	switch val := v.(type) {
	case runtime.IntegerValue:
		return runtime.MakeInteger(val.Val+delta, val.Type), nil
	case runtime.FloatValue:
		return runtime.MakeFloat(val.Val+float64(delta), val.Type), nil
	case runtime.CharValue:
		return runtime.CharValue{Val: uint16(int64(val.Val) + delta)}, nil
	default:
		return nil, newRuntimeError(ErrTypeMismatch, "bad operand type %s for increment/decrement", runtime.TypeOf(v))
	}
}

func (i *Interpreter) evaluateAssignmentExpression(node *ast.AssignmentExpression, scope *runtime.Scope) (Result, error) {
	target, err := i.evaluateExpression(node.Left, scope)
	if err != nil {
		return nil, err
	}
	ref, ok := target.(ReferenceResult)
	if !ok {
		if unresolved, isName := target.(UnresolvedResult); isName {
			return nil, newRuntimeError(ErrUseOfUnresolvedName, "cannot find symbol '%s'", unresolved.Name)
		}
		return nil, newRuntimeError(ErrNotAssignable, "left-hand side of %s must be a variable", node.Operator)
	}

	value, err := i.evaluateValue(node.Right, scope)
	if err != nil {
		return nil, err
	}
	if node.Operator != "=" {
		op := node.Operator[:len(node.Operator)-1]
		combined, err := applyBinaryOperator(op, ref.Target.Value, value)
		if err != nil {
			return nil, err
		}
		// Compound assignment carries an implicit cast back to the variable's type.
		value = castForCompound(ref.Target.Type, combined)
	}
	stored, err := coerceForVariable(ref.Target.Type, value)
	if err != nil {
		return nil, err
	}
	if err := Write(ref, stored); err != nil {
		return nil, err
	}
	return ValueResult{Value: stored}, nil
}

func (i *Interpreter) evaluateConditionalExpression(node *ast.ConditionalExpression, scope *runtime.Scope) (Result, error) {
	cond, err := i.evaluateCondition(node.Condition, scope)
	if err != nil {
		return nil, err
	}
	branch := node.Alternative
	if cond {
		branch = node.Consequence
	}
	val, err := i.evaluateValue(branch, scope)
	if err != nil {
		return nil, err
	}
	return ValueResult{Value: val}, nil
}
