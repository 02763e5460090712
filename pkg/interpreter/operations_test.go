package interpreter

import (
	"math"
	"testing"

	"javalet/interpreter-go/pkg/runtime"
)

func TestBinaryOperators(t *testing.T) {
	cases := []struct {
		name        string
		op          string
		left, right runtime.Value
		want        runtime.Value
	}{
		{"int add", "+", runtime.IntValue(2), runtime.IntValue(3), runtime.IntValue(5)},
		{"int overflow wraps", "+", runtime.IntValue(math.MaxInt32), runtime.IntValue(1), runtime.IntValue(math.MinInt32)},
		{"long keeps width", "+", runtime.LongValue(math.MaxInt32), runtime.IntValue(1), runtime.LongValue(math.MaxInt32 + 1)},
		{"int division truncates", "/", runtime.IntValue(-7), runtime.IntValue(2), runtime.IntValue(-3)},
		{"int remainder sign", "%", runtime.IntValue(-7), runtime.IntValue(2), runtime.IntValue(-1)},
		{"double promotion", "*", runtime.IntValue(3), runtime.DoubleValue(0.5), runtime.DoubleValue(1.5)},
		{"float promotion", "-", runtime.FloatValueOf(2.5), runtime.IntValue(1), runtime.FloatValueOf(1.5)},
		{"double remainder", "%", runtime.DoubleValue(5.5), runtime.DoubleValue(2), runtime.DoubleValue(1.5)},
		{"char arithmetic", "+", runtime.CharValue{Val: 'a'}, runtime.IntValue(1), runtime.IntValue(98)},
		{"less", "<", runtime.IntValue(1), runtime.IntValue(2), runtime.BoolValue{Val: true}},
		{"greater equal", ">=", runtime.IntValue(2), runtime.IntValue(2), runtime.BoolValue{Val: true}},
		{"mixed ordering", "<=", runtime.DoubleValue(2.5), runtime.IntValue(2), runtime.BoolValue{Val: false}},
		{"int equality", "==", runtime.IntValue(4), runtime.LongValue(4), runtime.BoolValue{Val: true}},
		{"inequality", "!=", runtime.IntValue(4), runtime.IntValue(5), runtime.BoolValue{Val: true}},
		{"string equality", "==", runtime.StringValue{Val: "ab"}, runtime.StringValue{Val: "ab"}, runtime.BoolValue{Val: true}},
		{"null equality", "==", runtime.NullValue{}, runtime.NullValue{}, runtime.BoolValue{Val: true}},
		{"null vs string", "==", runtime.NullValue{}, runtime.StringValue{Val: ""}, runtime.BoolValue{Val: false}},
		{"bool equality", "!=", runtime.BoolValue{Val: true}, runtime.BoolValue{Val: false}, runtime.BoolValue{Val: true}},
		{"bitwise and", "&", runtime.IntValue(12), runtime.IntValue(10), runtime.IntValue(8)},
		{"bitwise or", "|", runtime.IntValue(12), runtime.IntValue(10), runtime.IntValue(14)},
		{"bitwise xor", "^", runtime.IntValue(12), runtime.IntValue(10), runtime.IntValue(6)},
		{"boolean xor", "^", runtime.BoolValue{Val: true}, runtime.BoolValue{Val: true}, runtime.BoolValue{Val: false}},
		{"boolean and", "&", runtime.BoolValue{Val: true}, runtime.BoolValue{Val: false}, runtime.BoolValue{Val: false}},
		{"shift left", "<<", runtime.IntValue(1), runtime.IntValue(4), runtime.IntValue(16)},
		{"shift masks distance", "<<", runtime.IntValue(1), runtime.IntValue(33), runtime.IntValue(2)},
		{"shift left overflow", "<<", runtime.IntValue(1), runtime.IntValue(31), runtime.IntValue(math.MinInt32)},
		{"arithmetic shift", ">>", runtime.IntValue(-16), runtime.IntValue(2), runtime.IntValue(-4)},
		{"logical shift", ">>>", runtime.IntValue(-1), runtime.IntValue(28), runtime.IntValue(15)},
		{"long logical shift", ">>>", runtime.LongValue(-1), runtime.IntValue(60), runtime.LongValue(15)},
		{"shift keeps left type", "<<", runtime.IntValue(1), runtime.LongValue(2), runtime.IntValue(4)},
		{"concat", "+", runtime.StringValue{Val: "n"}, runtime.IntValue(1), runtime.StringValue{Val: "n1"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := applyBinaryOperator(tc.op, tc.left, tc.right)
			if err != nil {
				t.Fatalf("applyBinaryOperator: %v", err)
			}
			if got != tc.want {
				t.Fatalf("%#v %s %#v = %#v, want %#v", tc.left, tc.op, tc.right, got, tc.want)
			}
		})
	}
}

func TestBinaryOperatorErrors(t *testing.T) {
	cases := []struct {
		name        string
		op          string
		left, right runtime.Value
		want        ErrorKind
	}{
		{"division by zero", "/", runtime.IntValue(1), runtime.IntValue(0), ErrDivisionByZero},
		{"remainder by zero", "%", runtime.LongValue(1), runtime.LongValue(0), ErrDivisionByZero},
		{"string minus", "-", runtime.StringValue{Val: "a"}, runtime.StringValue{Val: "b"}, ErrUnsupportedOperator},
		{"string ordering", "<", runtime.StringValue{Val: "a"}, runtime.StringValue{Val: "b"}, ErrUnsupportedOperator},
		{"boolean arithmetic", "*", runtime.BoolValue{Val: true}, runtime.BoolValue{Val: true}, ErrUnsupportedOperator},
		{"double bitwise", "&", runtime.DoubleValue(1), runtime.IntValue(1), ErrUnsupportedOperator},
		{"double shift", "<<", runtime.DoubleValue(1), runtime.IntValue(1), ErrUnsupportedOperator},
		{"int plus boolean", "+", runtime.IntValue(1), runtime.BoolValue{Val: true}, ErrTypeMismatch},
		{"int equals string", "==", runtime.IntValue(1), runtime.StringValue{Val: "1"}, ErrTypeMismatch},
		{"bool and int", "&", runtime.BoolValue{Val: true}, runtime.IntValue(1), ErrTypeMismatch},
		{"unknown operator", "instanceof", runtime.IntValue(1), runtime.IntValue(1), ErrUnsupportedOperator},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := applyBinaryOperator(tc.op, tc.left, tc.right)
			expectKind(t, err, tc.want)
		})
	}
}

func TestFloatingDivisionByZeroIsNotAnError(t *testing.T) {
	got, err := applyBinaryOperator("/", runtime.DoubleValue(1), runtime.IntValue(0))
	if err != nil {
		t.Fatalf("applyBinaryOperator: %v", err)
	}
	if f, _ := runtime.AsFloat(got); !math.IsInf(f, 1) {
		t.Fatalf("1.0 / 0 = %#v, want +Inf", got)
	}
	nan := runtime.DoubleValue(math.NaN())
	for _, op := range []string{"<", "<=", ">", ">="} {
		got, err := applyBinaryOperator(op, nan, runtime.DoubleValue(0))
		if err != nil || got != (runtime.BoolValue{Val: false}) {
			t.Fatalf("NaN %s 0 = (%#v, %v)", op, got, err)
		}
	}
}

func TestUnaryOperators(t *testing.T) {
	cases := []struct {
		op      string
		operand runtime.Value
		want    runtime.Value
	}{
		{"-", runtime.IntValue(5), runtime.IntValue(-5)},
		{"-", runtime.IntValue(math.MinInt32), runtime.IntValue(math.MinInt32)},
		{"-", runtime.DoubleValue(2.5), runtime.DoubleValue(-2.5)},
		{"+", runtime.CharValue{Val: 'A'}, runtime.IntValue(65)},
		{"!", runtime.BoolValue{Val: false}, runtime.BoolValue{Val: true}},
		{"~", runtime.IntValue(0), runtime.IntValue(-1)},
		{"~", runtime.LongValue(7), runtime.LongValue(-8)},
	}
	for _, tc := range cases {
		got, err := applyUnaryOperator(tc.op, tc.operand)
		if err != nil {
			t.Fatalf("%s%#v: %v", tc.op, tc.operand, err)
		}
		if got != tc.want {
			t.Fatalf("%s%#v = %#v, want %#v", tc.op, tc.operand, got, tc.want)
		}
	}

	_, err := applyUnaryOperator("!", runtime.IntValue(1))
	expectKind(t, err, ErrTypeMismatch)
	_, err = applyUnaryOperator("-", runtime.StringValue{Val: "x"})
	expectKind(t, err, ErrTypeMismatch)
	_, err = applyUnaryOperator("~", runtime.DoubleValue(1))
	expectKind(t, err, ErrUnsupportedOperator)
}

func TestLogicalOperatorsShortCircuit(t *testing.T) {
	interp := newTestInterpreter(t)
	mustInterpret(t, interp, "int calls = 0;")
	mustInterpret(t, interp, "boolean touch() { calls++; return true; }")

	expectFormatted(t, interp, "false && touch()", "false")
	expectFormatted(t, interp, "true || touch()", "true")
	expectFormatted(t, interp, "calls", "0")
	expectFormatted(t, interp, "true && touch()", "true")
	expectFormatted(t, interp, "calls", "1")

	_, err := interp.Interpret("1 && true")
	expectKind(t, err, ErrTypeMismatch)
}

func TestLeftOperandEvaluatedFirst(t *testing.T) {
	interp := newTestInterpreter(t)
	mustInterpret(t, interp, "int i = 1;")
	expectFormatted(t, interp, "i++ * 10 + i", "12")
	expectFormatted(t, interp, `i + "" + i++ + i`, "223")
}
