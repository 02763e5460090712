package interpreter

import (
	"javalet/interpreter-go/pkg/ast"
	"javalet/interpreter-go/pkg/runtime"
)

// inferredTypeName lets a declaration take its tag from the initializer.
const inferredTypeName = "var"

// evaluateVariableDeclaration declares each declarator in order, so later initializers see
// earlier names.
func (i *Interpreter) evaluateVariableDeclaration(node *ast.VariableDeclaration, scope *runtime.Scope) error {
	typeName := ""
	if node.Type != nil {
		typeName = node.Type.Name
	}
	primitive, isPrimitive := runtime.LookupType(typeName)

	for _, declarator := range node.Declarators {
		if declarator == nil || declarator.Name == nil {
			continue
		}
		if declarator.Initializer == nil {
			if !isPrimitive {
				return attachSpan(newRuntimeError(ErrUnresolvedTypeName, "cannot resolve type '%s' for '%s'", typeName, declarator.Name.Name), declarator)
			}
			zero, _ := runtime.ZeroValue(primitive)
			scope.Declare(runtime.NewVariable(declarator.Name.Name, primitive, zero))
			continue
		}

		value, err := i.evaluateValue(declarator.Initializer, scope)
		if err != nil {
			return err
		}
		tag := runtime.TypeTag(typeName)
		switch {
		case isPrimitive:
			tag = primitive
		case typeName == inferredTypeName:
			tag = runtime.TypeOf(value)
		}
		stored, err := coerceForVariable(tag, value)
		if err != nil {
			return attachSpan(err, declarator)
		}
		scope.Declare(runtime.NewVariable(declarator.Name.Name, tag, stored))
	}
	return nil
}

// evaluateMethodDeclaration registers a method. Bare signatures are ignored.
func (i *Interpreter) evaluateMethodDeclaration(node *ast.MethodDeclaration, scope *runtime.Scope) error {
	if node.Body == nil || node.Name == nil {
		return nil
	}
	params := make([]runtime.Param, 0, len(node.Parameters))
	for _, param := range node.Parameters {
		if param == nil || param.Name == nil {
			continue
		}
		params = append(params, runtime.Param{Name: param.Name.Name, Type: typeTagOf(param.Type)})
	}
	scope.Declare(&runtime.Method{
		Name:       node.Name.Name,
		Params:     params,
		ReturnType: typeTagOf(node.ReturnType),
		Body:       node.Body,
	})
	return nil
}

func typeTagOf(ref *ast.TypeReference) runtime.TypeTag {
	if ref == nil {
		return runtime.TypeVoid
	}
	if tag, ok := runtime.LookupType(ref.Name); ok {
		return tag
	}
	return runtime.TypeTag(ref.Name)
}

// coerceForVariable converts a value being stored into a variable of the given tag.
// Numeric values are converted to numeric primitive tags; other primitive tags require a
// value of the same type. Non-primitive tags accept any value.
func coerceForVariable(tag runtime.TypeTag, value runtime.Value) (runtime.Value, error) {
	if !tag.IsPrimitive() {
		return value, nil
	}
	if tag.IsNumeric() {
		if converted, ok := runtime.Convert(value, tag); ok {
			return converted, nil
		}
	} else if runtime.TypeOf(value) == tag {
		return value, nil
	}
	return nil, newRuntimeError(ErrTypeMismatch, "incompatible types: %s cannot be converted to %s", runtime.TypeOf(value), tag)
}

// castForCompound applies the implicit narrowing of compound assignment.
func castForCompound(tag runtime.TypeTag, value runtime.Value) runtime.Value {
	if tag.IsNumeric() {
		if converted, ok := runtime.Convert(value, tag); ok {
			return converted
		}
	}
	return value
}
