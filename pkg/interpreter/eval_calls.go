package interpreter

import (
	"javalet/interpreter-go/pkg/ast"
	"javalet/interpreter-go/pkg/runtime"
)

// evaluateMethodCall invokes a declared method. The call scope's parent is the caller's
// scope, so free names in the body resolve against the call site.
func (i *Interpreter) evaluateMethodCall(node *ast.MethodCall, scope *runtime.Scope) (Result, error) {
	name := node.Name.Name
	entity, ok := scope.Resolve(name)
	method, isMethod := entity.(*runtime.Method)
	if !ok || !isMethod {
		return nil, newRuntimeError(ErrUnknownMethod, "cannot find method '%s'", name)
	}
	if len(node.Arguments) != method.Arity() {
		return nil, newRuntimeError(ErrArityMismatch, "method '%s' expects %d argument(s), found %d", name, method.Arity(), len(node.Arguments))
	}

	args := make([]runtime.Value, len(node.Arguments))
	for idx, arg := range node.Arguments {
		val, err := i.evaluateValue(arg, scope)
		if err != nil {
			return nil, err
		}
		args[idx] = val
	}

	if i.depth >= maxCallDepth {
		return nil, newRuntimeError(ErrStackOverflow, "call depth exceeded %d in '%s'", maxCallDepth, name)
	}
	i.depth++
	defer func() { i.depth-- }()

	callScope := runtime.NewScope(scope)
	for idx, param := range method.Params {
		callScope.Declare(runtime.NewVariable(param.Name, runtime.TypeOf(args[idx]), args[idx]))
	}

	res, err := i.evaluateBlock(method.Body, callScope)
	if err != nil {
		return nil, err
	}
	ret, ok := res.(ReturnResult)
	if !ok || ret.Value == nil {
		return nil, nil
	}
	value := ret.Value
	if method.ReturnType.IsNumeric() {
		if converted, ok := runtime.Convert(value, method.ReturnType); ok {
			value = converted
		}
	}
	return ValueResult{Value: value}, nil
}
