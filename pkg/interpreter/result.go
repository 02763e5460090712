package interpreter

import (
	"javalet/interpreter-go/pkg/runtime"
)

// Result is the outcome of evaluating one node. A nil Result means the node produced no
// result at all, which is distinct from a ValueResult holding null.
type Result interface {
	result()
}

// ValueResult is a plain, read-only value.
type ValueResult struct {
	Value runtime.Value
}

// ReferenceResult designates a variable; it is the only writable result.
type ReferenceResult struct {
	Target *runtime.Variable
}

// ReturnResult unwinds enclosing blocks and loops until the nearest method call consumes
// it. A nil Value is a bare `return;`.
type ReturnResult struct {
	Value runtime.Value
}

// UnresolvedResult is a name that did not resolve to a variable. Reading it is an error.
type UnresolvedResult struct {
	Name string
}

func (ValueResult) result()      {}
func (ReferenceResult) result()  {}
func (ReturnResult) result()     {}
func (UnresolvedResult) result() {}

// ValueOf reads the value a result stands for.
func ValueOf(r Result) (runtime.Value, error) {
	switch res := r.(type) {
	case ValueResult:
		return res.Value, nil
	case ReferenceResult:
		return res.Target.Value, nil
	case ReturnResult:
		if res.Value == nil {
			return runtime.VoidValue{}, nil
		}
		return res.Value, nil
	case UnresolvedResult:
		return nil, newRuntimeError(ErrUseOfUnresolvedName, "cannot find symbol '%s'", res.Name)
	case nil:
		return nil, newRuntimeError(ErrTypeMismatch, "expression produces no value")
	default:
		return nil, newRuntimeError(ErrTypeMismatch, "unexpected result %T", r)
	}
}

// Truthy reads a result as a condition; only booleans qualify.
func Truthy(r Result) (bool, error) {
	val, err := ValueOf(r)
	if err != nil {
		return false, err
	}
	b, ok := val.(runtime.BoolValue)
	if !ok {
		return false, newRuntimeError(ErrTypeMismatch, "condition must be boolean, found %s", runtime.TypeOf(val))
	}
	return b.Val, nil
}

// Write stores v through a reference result.
func Write(r Result, v runtime.Value) error {
	ref, ok := r.(ReferenceResult)
	if !ok {
		return newRuntimeError(ErrNotAssignable, "expression is not assignable")
	}
	ref.Target.Value = v
	return nil
}

// IsVoid reports whether r carries no value: no result, or a bare return.
func IsVoid(r Result) bool {
	switch res := r.(type) {
	case nil:
		return true
	case ReturnResult:
		return res.Value == nil
	default:
		return false
	}
}
