package interpreter

import (
	"math"

	"javalet/interpreter-go/pkg/runtime"
)

func applyBinaryOperator(op string, left, right runtime.Value) (runtime.Value, error) {
	if op == "+" && (isString(left) || isString(right)) {
		return runtime.StringValue{Val: FormatValue(left) + FormatValue(right)}, nil
	}
	switch op {
	case "+", "-", "*", "/", "%":
		return applyArithmetic(op, left, right)
	case "<", "<=", ">", ">=":
		return applyOrdering(op, left, right)
	case "==", "!=":
		return applyEquality(op, left, right)
	case "&", "|", "^":
		return applyBitwise(op, left, right)
	case "<<", ">>", ">>>":
		return applyShift(op, left, right)
	default:
		return nil, newRuntimeError(ErrUnsupportedOperator, "unsupported operator %s", op)
	}
}

func applyUnaryOperator(op string, operand runtime.Value) (runtime.Value, error) {
	switch op {
	case "-", "+":
		if !runtime.IsNumeric(operand) {
			return nil, unaryMismatch(op, operand)
		}
		promoted := unaryPromote(operand)
		if op == "+" {
			return promoted, nil
		}
		switch val := promoted.(type) {
		case runtime.IntegerValue:
			return runtime.MakeInteger(-val.Val, val.Type), nil
		case runtime.FloatValue:
			return runtime.MakeFloat(-val.Val, val.Type), nil
		}
	case "!":
		b, ok := operand.(runtime.BoolValue)
		if !ok {
			return nil, unaryMismatch(op, operand)
		}
		return runtime.BoolValue{Val: !b.Val}, nil
	case "~":
		if !runtime.IsNumeric(operand) {
			return nil, unaryMismatch(op, operand)
		}
		val, ok := unaryPromote(operand).(runtime.IntegerValue)
		if !ok {
			return nil, newRuntimeError(ErrUnsupportedOperator, "bad operand type %s for unary operator '~'", runtime.TypeOf(operand))
		}
		return runtime.MakeInteger(^val.Val, val.Type), nil
	}
	return nil, newRuntimeError(ErrUnsupportedOperator, "unsupported unary operator %s", op)
}

func applyArithmetic(op string, left, right runtime.Value) (runtime.Value, error) {
	if !runtime.IsNumeric(left) || !runtime.IsNumeric(right) {
		return nil, operandMismatch(op, left, right)
	}
	tag := promotedType(left, right)
	if tag.IsFloating() {
		l, _ := runtime.AsFloat(left)
		r, _ := runtime.AsFloat(right)
		var out float64
		switch op {
		case "+":
			out = l + r
		case "-":
			out = l - r
		case "*":
			out = l * r
		case "/":
			out = l / r
		case "%":
			out = math.Mod(l, r)
		}
		return runtime.MakeFloat(out, tag), nil
	}

	l, _ := runtime.AsInteger(left)
	r, _ := runtime.AsInteger(right)
	var out int64
	switch op {
	case "+":
		out = l + r
	case "-":
		out = l - r
	case "*":
		out = l * r
	case "/", "%":
		if r == 0 {
			return nil, newRuntimeError(ErrDivisionByZero, "/ by zero")
		}
		if op == "/" {
			out = l / r
		} else {
			out = l % r
		}
	}
	return runtime.MakeInteger(out, tag), nil
}

func applyBitwise(op string, left, right runtime.Value) (runtime.Value, error) {
	if lb, ok := left.(runtime.BoolValue); ok {
		rb, ok := right.(runtime.BoolValue)
		if !ok {
			return nil, operandMismatch(op, left, right)
		}
		switch op {
		case "&":
			return runtime.BoolValue{Val: lb.Val && rb.Val}, nil
		case "|":
			return runtime.BoolValue{Val: lb.Val || rb.Val}, nil
		default:
			return runtime.BoolValue{Val: lb.Val != rb.Val}, nil
		}
	}
	if !runtime.IsNumeric(left) || !runtime.IsNumeric(right) {
		return nil, operandMismatch(op, left, right)
	}
	tag := promotedType(left, right)
	if tag.IsFloating() {
		return nil, newRuntimeError(ErrUnsupportedOperator, "bad operand types for binary operator '%s': %s and %s", op, runtime.TypeOf(left), runtime.TypeOf(right))
	}
	l, _ := runtime.AsInteger(left)
	r, _ := runtime.AsInteger(right)
	var out int64
	switch op {
	case "&":
		out = l & r
	case "|":
		out = l | r
	default:
		out = l ^ r
	}
	return runtime.MakeInteger(out, tag), nil
}

// applyShift types the result by the promoted left operand only; the distance is masked
// to the width of that type.
func applyShift(op string, left, right runtime.Value) (runtime.Value, error) {
	if !runtime.IsNumeric(left) || !runtime.IsNumeric(right) {
		return nil, operandMismatch(op, left, right)
	}
	lv, lok := unaryPromote(left).(runtime.IntegerValue)
	rv, rok := unaryPromote(right).(runtime.IntegerValue)
	if !lok || !rok {
		return nil, newRuntimeError(ErrUnsupportedOperator, "bad operand types for binary operator '%s': %s and %s", op, runtime.TypeOf(left), runtime.TypeOf(right))
	}
	if lv.Type == runtime.TypeLong {
		distance := uint64(rv.Val) & 63
		switch op {
		case "<<":
			return runtime.LongValue(lv.Val << distance), nil
		case ">>":
			return runtime.LongValue(lv.Val >> distance), nil
		default:
			return runtime.LongValue(int64(uint64(lv.Val) >> distance)), nil
		}
	}
	distance := uint64(rv.Val) & 31
	l32 := int32(lv.Val)
	switch op {
	case "<<":
		return runtime.IntValue(int64(l32 << distance)), nil
	case ">>":
		return runtime.IntValue(int64(l32 >> distance)), nil
	default:
		return runtime.IntValue(int64(uint32(l32) >> distance)), nil
	}
}

// promotedType applies binary numeric promotion to two numeric operands.
func promotedType(left, right runtime.Value) runtime.TypeTag {
	lt, rt := runtime.TypeOf(left), runtime.TypeOf(right)
	switch {
	case lt == runtime.TypeDouble || rt == runtime.TypeDouble:
		return runtime.TypeDouble
	case lt == runtime.TypeFloat || rt == runtime.TypeFloat:
		return runtime.TypeFloat
	case lt == runtime.TypeLong || rt == runtime.TypeLong:
		return runtime.TypeLong
	default:
		return runtime.TypeInt
	}
}

// unaryPromote widens byte, short and char to int.
func unaryPromote(v runtime.Value) runtime.Value {
	switch val := v.(type) {
	case runtime.CharValue:
		return runtime.IntValue(int64(val.Val))
	case runtime.IntegerValue:
		if val.Type == runtime.TypeByte || val.Type == runtime.TypeShort {
			return runtime.IntValue(val.Val)
		}
	}
	return v
}

func isString(v runtime.Value) bool {
	_, ok := v.(runtime.StringValue)
	return ok
}

// category groups runtime types for diagnostics: operands of one category that an operator
// does not accept are unsupported, operands of different categories are mismatched.
func category(v runtime.Value) string {
	switch v.(type) {
	case runtime.IntegerValue, runtime.FloatValue, runtime.CharValue:
		return "numeric"
	case runtime.BoolValue:
		return "boolean"
	case runtime.StringValue:
		return "string"
	case runtime.NullValue:
		return "null"
	default:
		return "void"
	}
}

func operandMismatch(op string, left, right runtime.Value) error {
	if category(left) == category(right) {
		return newRuntimeError(ErrUnsupportedOperator, "bad operand types for binary operator '%s': %s and %s", op, runtime.TypeOf(left), runtime.TypeOf(right))
	}
	return newRuntimeError(ErrTypeMismatch, "incompatible operand types for binary operator '%s': %s and %s", op, runtime.TypeOf(left), runtime.TypeOf(right))
}

func unaryMismatch(op string, operand runtime.Value) error {
	return newRuntimeError(ErrTypeMismatch, "bad operand type %s for unary operator '%s'", runtime.TypeOf(operand), op)
}
