package interpreter

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf16"

	"javalet/interpreter-go/pkg/runtime"
)

// FormatValue renders a value the way Java's String.valueOf does.
func FormatValue(v runtime.Value) string {
	switch val := v.(type) {
	case runtime.StringValue:
		return val.Val
	case runtime.BoolValue:
		return strconv.FormatBool(val.Val)
	case runtime.CharValue:
		return string(utf16.Decode([]uint16{val.Val}))
	case runtime.IntegerValue:
		return strconv.FormatInt(val.Val, 10)
	case runtime.FloatValue:
		bitSize := 64
		if val.Type == runtime.TypeFloat {
			bitSize = 32
		}
		return formatFloating(val.Val, bitSize)
	case runtime.NullValue:
		return "null"
	case runtime.VoidValue:
		return "void"
	case nil:
		return "<nil>"
	default:
		return "<unknown>"
	}
}

// FormatResult renders a result for display. Results without a value render as
// "(no result)".
func FormatResult(r Result) (string, error) {
	if IsVoid(r) {
		return "(no result)", nil
	}
	val, err := ValueOf(r)
	if err != nil {
		return "", err
	}
	return FormatValue(val), nil
}

// formatFloating follows Double.toString: plain notation with at least one fractional
// digit for magnitudes in [1e-3, 1e7), computerized scientific notation otherwise.
func formatFloating(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	abs := math.Abs(f)
	if abs == 0 || (abs >= 1e-3 && abs < 1e7) {
		out := strconv.FormatFloat(f, 'f', -1, bitSize)
		if !strings.Contains(out, ".") {
			out += ".0"
		}
		return out
	}

	out := strconv.FormatFloat(f, 'E', -1, bitSize)
	mantissa, exponent, _ := strings.Cut(out, "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	exp, err := strconv.Atoi(exponent)
	if err != nil {
		return out
	}
	return mantissa + "E" + strconv.Itoa(exp)
}
