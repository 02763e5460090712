package runtime

import "javalet/interpreter-go/pkg/ast"

// Entity is a named thing declared in a Scope: a *Variable or a *Method.
type Entity interface {
	EntityName() string
	entity()
}

// Variable is a mutable slot. Every reference to a variable shares the same pointer, so
// writes through one reference are observed by all others.
type Variable struct {
	Name  string
	Type  TypeTag
	Value Value
}

func NewVariable(name string, tag TypeTag, value Value) *Variable {
	return &Variable{Name: name, Type: tag, Value: value}
}

func (v *Variable) EntityName() string { return v.Name }
func (*Variable) entity()              {}

// Param is one declared method parameter. The type is informational only.
type Param struct {
	Name string
	Type TypeTag
}

// Method is a callable procedure. It holds its declaration data only, never a scope:
// a call resolves free names against the caller's scope.
type Method struct {
	Name       string
	Params     []Param
	ReturnType TypeTag
	Body       *ast.Block
}

func (m *Method) EntityName() string { return m.Name }
func (*Method) entity()              {}

// Arity is the number of declared parameters.
func (m *Method) Arity() int {
	return len(m.Params)
}
