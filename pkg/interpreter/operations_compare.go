package interpreter

import (
	"javalet/interpreter-go/pkg/runtime"
)

func applyOrdering(op string, left, right runtime.Value) (runtime.Value, error) {
	if !runtime.IsNumeric(left) || !runtime.IsNumeric(right) {
		return nil, operandMismatch(op, left, right)
	}
	var cmp int
	if promotedType(left, right).IsFloating() {
		l, _ := runtime.AsFloat(left)
		r, _ := runtime.AsFloat(right)
		// Every ordering involving NaN is false.
		if l != l || r != r {
			return runtime.BoolValue{Val: false}, nil
		}
		cmp = compareFloats(l, r)
	} else {
		l, _ := runtime.AsInteger(left)
		r, _ := runtime.AsInteger(right)
		cmp = compareInts(l, r)
	}
	var out bool
	switch op {
	case "<":
		out = cmp < 0
	case "<=":
		out = cmp <= 0
	case ">":
		out = cmp > 0
	default:
		out = cmp >= 0
	}
	return runtime.BoolValue{Val: out}, nil
}

// applyEquality compares numbers after promotion, booleans by value, and strings by
// content. null equals only null and is never equal to a string.
func applyEquality(op string, left, right runtime.Value) (runtime.Value, error) {
	equal, err := valuesEqual(op, left, right)
	if err != nil {
		return nil, err
	}
	if op == "!=" {
		equal = !equal
	}
	return runtime.BoolValue{Val: equal}, nil
}

func valuesEqual(op string, left, right runtime.Value) (bool, error) {
	switch {
	case runtime.IsNumeric(left) && runtime.IsNumeric(right):
		if promotedType(left, right).IsFloating() {
			l, _ := runtime.AsFloat(left)
			r, _ := runtime.AsFloat(right)
			return l == r, nil
		}
		l, _ := runtime.AsInteger(left)
		r, _ := runtime.AsInteger(right)
		return l == r, nil
	}

	lb, lIsBool := left.(runtime.BoolValue)
	rb, rIsBool := right.(runtime.BoolValue)
	if lIsBool && rIsBool {
		return lb.Val == rb.Val, nil
	}

	ls, lIsStr := left.(runtime.StringValue)
	rs, rIsStr := right.(runtime.StringValue)
	_, lIsNull := left.(runtime.NullValue)
	_, rIsNull := right.(runtime.NullValue)
	switch {
	case lIsStr && rIsStr:
		return ls.Val == rs.Val, nil
	case lIsNull && rIsNull:
		return true, nil
	case (lIsNull && rIsStr) || (lIsStr && rIsNull):
		return false, nil
	}
	return false, operandMismatch(op, left, right)
}

func compareInts(l, r int64) int {
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}

func compareFloats(l, r float64) int {
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}
