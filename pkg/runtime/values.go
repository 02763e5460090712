package runtime

import "fmt"

// Kind identifies the runtime value category.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindChar
	KindInteger
	KindFloat
	KindNull
	KindVoid
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "boolean"
	case KindChar:
		return "char"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindNull:
		return "null"
	case KindVoid:
		return "void"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values. Values are immutable; mutation
// happens by replacing the value held by a Variable.
type Value interface {
	Kind() Kind
}

//-----------------------------------------------------------------------------
// Scalars
//-----------------------------------------------------------------------------

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind { return KindString }

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBool }

// CharValue holds a UTF-16 code unit, as a Java char does.
type CharValue struct {
	Val uint16
}

func (v CharValue) Kind() Kind { return KindChar }

// IntegerValue carries one of the integral primitive tags (byte, short, int, long).
// Val is always already narrowed to the range of Type.
type IntegerValue struct {
	Val  int64
	Type TypeTag
}

func (v IntegerValue) Kind() Kind { return KindInteger }

// FloatValue carries float or double. A float-tagged value is rounded to float32 precision.
type FloatValue struct {
	Val  float64
	Type TypeTag
}

func (v FloatValue) Kind() Kind { return KindFloat }

type NullValue struct{}

func (NullValue) Kind() Kind { return KindNull }

// VoidValue stands in for the absent value of a bare `return;`.
type VoidValue struct{}

func (VoidValue) Kind() Kind { return KindVoid }

//-----------------------------------------------------------------------------
// Constructors
//-----------------------------------------------------------------------------

func IntValue(v int64) IntegerValue {
	return IntegerValue{Val: int64(int32(v)), Type: TypeInt}
}

func LongValue(v int64) IntegerValue {
	return IntegerValue{Val: v, Type: TypeLong}
}

func DoubleValue(v float64) FloatValue {
	return FloatValue{Val: v, Type: TypeDouble}
}

func FloatValueOf(v float64) FloatValue {
	return FloatValue{Val: float64(float32(v)), Type: TypeFloat}
}

// MakeInteger builds an integral value of the given tag, wrapping like a Java cast.
func MakeInteger(v int64, tag TypeTag) IntegerValue {
	return IntegerValue{Val: narrowInteger(v, tag), Type: tag}
}

// MakeFloat builds a floating value of the given tag.
func MakeFloat(v float64, tag TypeTag) FloatValue {
	if tag == TypeFloat {
		return FloatValueOf(v)
	}
	return DoubleValue(v)
}

func narrowInteger(v int64, tag TypeTag) int64 {
	switch tag {
	case TypeByte:
		return int64(int8(v))
	case TypeShort:
		return int64(int16(v))
	case TypeInt:
		return int64(int32(v))
	default:
		return v
	}
}

// IsNumeric reports whether the value participates in arithmetic (integers, floats, chars).
func IsNumeric(v Value) bool {
	switch v.(type) {
	case IntegerValue, FloatValue, CharValue:
		return true
	default:
		return false
	}
}
