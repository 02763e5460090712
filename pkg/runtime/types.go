package runtime

import "math"

// TypeTag names a declared or runtime type. Primitive tags come from a closed registry;
// any other tag is carried verbatim from source and never resolved further.
type TypeTag string

const (
	TypeBoolean TypeTag = "boolean"
	TypeChar    TypeTag = "char"
	TypeByte    TypeTag = "byte"
	TypeShort   TypeTag = "short"
	TypeInt     TypeTag = "int"
	TypeLong    TypeTag = "long"
	TypeFloat   TypeTag = "float"
	TypeDouble  TypeTag = "double"

	TypeString TypeTag = "String"
	TypeNull   TypeTag = "null"
	TypeVoid   TypeTag = "void"
)

var primitiveZeroValues = map[TypeTag]Value{
	TypeBoolean: BoolValue{Val: false},
	TypeChar:    CharValue{Val: 0},
	TypeByte:    IntegerValue{Val: 0, Type: TypeByte},
	TypeShort:   IntegerValue{Val: 0, Type: TypeShort},
	TypeInt:     IntegerValue{Val: 0, Type: TypeInt},
	TypeLong:    IntegerValue{Val: 0, Type: TypeLong},
	TypeFloat:   FloatValue{Val: 0, Type: TypeFloat},
	TypeDouble:  FloatValue{Val: 0, Type: TypeDouble},
}

// LookupType resolves a primitive type name through the registry.
func LookupType(name string) (TypeTag, bool) {
	tag := TypeTag(name)
	if _, ok := primitiveZeroValues[tag]; ok {
		return tag, true
	}
	return "", false
}

// ZeroValue returns the default value of a primitive type.
func ZeroValue(tag TypeTag) (Value, bool) {
	val, ok := primitiveZeroValues[tag]
	return val, ok
}

func (t TypeTag) IsPrimitive() bool {
	_, ok := primitiveZeroValues[t]
	return ok
}

func (t TypeTag) IsIntegral() bool {
	switch t {
	case TypeByte, TypeShort, TypeInt, TypeLong:
		return true
	default:
		return false
	}
}

func (t TypeTag) IsFloating() bool {
	return t == TypeFloat || t == TypeDouble
}

// IsNumeric includes char, which takes part in arithmetic after promotion.
func (t TypeTag) IsNumeric() bool {
	return t.IsIntegral() || t.IsFloating() || t == TypeChar
}

// TypeOf reports the runtime type tag of a value.
func TypeOf(v Value) TypeTag {
	switch val := v.(type) {
	case IntegerValue:
		return val.Type
	case FloatValue:
		return val.Type
	case CharValue:
		return TypeChar
	case BoolValue:
		return TypeBoolean
	case StringValue:
		return TypeString
	case NullValue:
		return TypeNull
	default:
		return TypeVoid
	}
}

// Convert applies a Java primitive conversion of a numeric value to a numeric target tag.
// It reports false when either side is not numeric, leaving the value untouched.
func Convert(v Value, tag TypeTag) (Value, bool) {
	if !tag.IsNumeric() || !IsNumeric(v) {
		return v, false
	}
	switch tag {
	case TypeFloat, TypeDouble:
		f, _ := AsFloat(v)
		return MakeFloat(f, tag), true
	case TypeChar:
		if f, ok := v.(FloatValue); ok {
			return CharValue{Val: uint16(saturateInt32(f.Val))}, true
		}
		i, _ := AsInteger(v)
		return CharValue{Val: uint16(i)}, true
	default:
		if f, ok := v.(FloatValue); ok && tag != TypeLong {
			// float -> int saturates at the int range before any further narrowing.
			return MakeInteger(saturateInt32(f.Val), tag), true
		}
		i, _ := AsInteger(v)
		return MakeInteger(i, tag), true
	}
}

func saturateInt32(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	default:
		return int64(f)
	}
}

// AsInteger reads a numeric value as int64; floats truncate toward zero and saturate like
// a Java narrowing conversion.
func AsInteger(v Value) (int64, bool) {
	switch val := v.(type) {
	case IntegerValue:
		return val.Val, true
	case CharValue:
		return int64(val.Val), true
	case FloatValue:
		switch {
		case math.IsNaN(val.Val):
			return 0, true
		case val.Val >= math.MaxInt64:
			return math.MaxInt64, true
		case val.Val <= math.MinInt64:
			return math.MinInt64, true
		default:
			return int64(val.Val), true
		}
	default:
		return 0, false
	}
}

// AsFloat reads a numeric value as float64.
func AsFloat(v Value) (float64, bool) {
	switch val := v.(type) {
	case FloatValue:
		return val.Val, true
	case IntegerValue:
		return float64(val.Val), true
	case CharValue:
		return float64(val.Val), true
	default:
		return 0, false
	}
}
