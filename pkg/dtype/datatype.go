package dtype

import (
	"fmt"
	"strings"
)

// Kind discriminates the variants of the DataType union.
type Kind uint8

const (
	KindNull Kind = iota
	KindBoolean
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUInt8
	KindUInt16
	KindUInt32
	KindUInt64
	KindFloat32
	KindFloat64
	KindString
	KindBinary
	KindDate
	KindDatetime
	KindDuration
	KindTime
	KindCategorical
	KindDecimal
	KindList
	KindArray
	KindObject
	KindUnknown
)

// TimeUnit is the resolution of Datetime and Duration types.
type TimeUnit uint8

const (
	Nanoseconds TimeUnit = iota
	Microseconds
	Milliseconds
)

// String returns the short unit suffix used in type rendering.
func (u TimeUnit) String() string {
	switch u {
	case Nanoseconds:
		return "ns"
	case Microseconds:
		return "us"
	case Milliseconds:
		return "ms"
	default:
		return "?"
	}
}

// DataType is the logical type of a column: a closed tagged union over
// every representable column type. Values are immutable; construct them
// with the factory functions (Int32, List, Datetime, ...), never by
// mutating fields. Equality is structural and exact, see Equal.
//
// List and Array are recursive: their element is itself a DataType. An
// unknown element is represented by Null, never by omission, and
// List(Null) is distinct from any concrete element type.
type DataType struct {
	kind  Kind
	inner *DataType // List/Array element
	width int       // Array length

	timeUnit TimeUnit // Datetime/Duration
	timeZone string   // Datetime

	precision int // Decimal; 0 means unspecified
	scale     int // Decimal
	scaleSet  bool

	objectName string // Object
}

// Null returns the null logical type, also used as the "unknown element"
// placeholder inside List and Array.
func Null() DataType { return DataType{kind: KindNull} }

// Boolean returns the boolean logical type.
func Boolean() DataType { return DataType{kind: KindBoolean} }

// Int8 returns the 8-bit signed integer logical type.
func Int8() DataType { return DataType{kind: KindInt8} }

// Int16 returns the 16-bit signed integer logical type.
func Int16() DataType { return DataType{kind: KindInt16} }

// Int32 returns the 32-bit signed integer logical type.
func Int32() DataType { return DataType{kind: KindInt32} }

// Int64 returns the 64-bit signed integer logical type.
func Int64() DataType { return DataType{kind: KindInt64} }

// UInt8 returns the 8-bit unsigned integer logical type.
func UInt8() DataType { return DataType{kind: KindUInt8} }

// UInt16 returns the 16-bit unsigned integer logical type.
func UInt16() DataType { return DataType{kind: KindUInt16} }

// UInt32 returns the 32-bit unsigned integer logical type.
func UInt32() DataType { return DataType{kind: KindUInt32} }

// UInt64 returns the 64-bit unsigned integer logical type.
func UInt64() DataType { return DataType{kind: KindUInt64} }

// Float32 returns the 32-bit floating point logical type.
func Float32() DataType { return DataType{kind: KindFloat32} }

// Float64 returns the 64-bit floating point logical type.
func Float64() DataType { return DataType{kind: KindFloat64} }

// String returns the UTF-8 text logical type.
func String() DataType { return DataType{kind: KindString} }

// Binary returns the opaque byte-sequence logical type.
func Binary() DataType { return DataType{kind: KindBinary} }

// Date returns the calendar-date logical type (days since epoch).
func Date() DataType { return DataType{kind: KindDate} }

// Time returns the time-of-day logical type (nanoseconds since midnight).
func Time() DataType { return DataType{kind: KindTime} }

// Datetime returns a timestamp logical type with the given unit and, when
// non-empty, time zone.
func Datetime(unit TimeUnit, zone string) DataType {
	return DataType{kind: KindDatetime, timeUnit: unit, timeZone: zone}
}

// Duration returns a time-delta logical type with the given unit.
func Duration(unit TimeUnit) DataType {
	return DataType{kind: KindDuration, timeUnit: unit}
}

// Categorical returns the dictionary-encoded string logical type. The
// category dictionary is runtime metadata on the concrete column, not
// part of the logical type value.
func Categorical() DataType { return DataType{kind: KindCategorical} }

// Decimal returns a fixed-point decimal logical type. A precision of 0
// means "unspecified precision".
func Decimal(precision, scale int) DataType {
	return DataType{kind: KindDecimal, precision: precision, scale: scale, scaleSet: true}
}

// List returns a variable-length list logical type with the given element
// type. Pass Null() when the element type is not (yet) known.
func List(element DataType) DataType {
	inner := element
	return DataType{kind: KindList, inner: &inner}
}

// Array returns a fixed-size list logical type with the given element
// type and per-row length.
func Array(element DataType, width int) DataType {
	inner := element
	return DataType{kind: KindArray, inner: &inner, width: width}
}

// Object returns the opaque user-object logical type identified by a
// registered type name.
func Object(typeName string) DataType {
	return DataType{kind: KindObject, objectName: typeName}
}

// Unknown returns the unresolved logical type, used before schema
// resolution and as the placeholder recovered from parameterized markers.
func Unknown() DataType { return DataType{kind: KindUnknown} }

// Kind returns the union discriminant.
func (dt DataType) Kind() Kind { return dt.kind }

// Equal reports exact structural equality: every recursive field must
// match. There is no coercive equality: List(Null) does not equal
// List(Int32), it denotes "unknown element type", and Array types with
// different widths are distinct.
func (dt DataType) Equal(other DataType) bool {
	if dt.kind != other.kind {
		return false
	}
	switch dt.kind {
	case KindList:
		return dt.inner.Equal(*other.inner)
	case KindArray:
		return dt.width == other.width && dt.inner.Equal(*other.inner)
	case KindDatetime:
		return dt.timeUnit == other.timeUnit && dt.timeZone == other.timeZone
	case KindDuration:
		return dt.timeUnit == other.timeUnit
	case KindDecimal:
		return dt.precision == other.precision &&
			dt.scale == other.scale &&
			dt.scaleSet == other.scaleSet
	case KindObject:
		return dt.objectName == other.objectName
	default:
		return true
	}
}

// Inner returns the element type of a List or Array and true, or the zero
// DataType and false for any other variant.
func (dt DataType) Inner() (DataType, bool) {
	if dt.kind == KindList || dt.kind == KindArray {
		return *dt.inner, true
	}
	return DataType{}, false
}

// ArrayWidth returns the fixed per-row length of an Array type and true,
// or 0 and false for any other variant.
func (dt DataType) ArrayWidth() (int, bool) {
	if dt.kind == KindArray {
		return dt.width, true
	}
	return 0, false
}

// DatetimeParams returns the time unit and zone of a Datetime and true,
// or zero values and false for any other variant.
func (dt DataType) DatetimeParams() (TimeUnit, string, bool) {
	if dt.kind == KindDatetime {
		return dt.timeUnit, dt.timeZone, true
	}
	return 0, "", false
}

// DurationUnit returns the time unit of a Duration and true, or zero
// values and false for any other variant.
func (dt DataType) DurationUnit() (TimeUnit, bool) {
	if dt.kind == KindDuration {
		return dt.timeUnit, true
	}
	return 0, false
}

// DecimalParams returns the precision and scale of a Decimal and true, or
// zero values and false for any other variant. A precision of 0 means
// the precision is unspecified.
func (dt DataType) DecimalParams() (precision, scale int, ok bool) {
	if dt.kind == KindDecimal {
		return dt.precision, dt.scale, true
	}
	return 0, 0, false
}

// ObjectName returns the registered type name of an Object and true, or
// "" and false for any other variant.
func (dt DataType) ObjectName() (string, bool) {
	if dt.kind == KindObject {
		return dt.objectName, true
	}
	return "", false
}

// IsNumeric reports whether the type is a fixed-width integer or float.
func (dt DataType) IsNumeric() bool {
	return dt.IsInteger() || dt.IsFloat()
}

// IsInteger reports whether the type is one of the eight fixed-width
// integer types.
func (dt DataType) IsInteger() bool {
	switch dt.kind {
	case KindInt8, KindInt16, KindInt32, KindInt64,
		KindUInt8, KindUInt16, KindUInt32, KindUInt64:
		return true
	default:
		return false
	}
}

// IsFloat reports whether the type is one of the two float widths.
func (dt DataType) IsFloat() bool {
	return dt.kind == KindFloat32 || dt.kind == KindFloat64
}

// IsNested reports whether the type contains an element type.
func (dt DataType) IsNested() bool {
	return dt.kind == KindList || dt.kind == KindArray
}

// String renders the type in the engine's display syntax, e.g. "int32",
// "list[int64]", "array[float64; 4]", "datetime[us, UTC]".
func (dt DataType) String() string {
	switch dt.kind {
	case KindNull:
		return "null"
	case KindBoolean:
		return "bool"
	case KindInt8:
		return "int8"
	case KindInt16:
		return "int16"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindUInt8:
		return "uint8"
	case KindUInt16:
		return "uint16"
	case KindUInt32:
		return "uint32"
	case KindUInt64:
		return "uint64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindString:
		return "str"
	case KindBinary:
		return "binary"
	case KindDate:
		return "date"
	case KindTime:
		return "time"
	case KindDatetime:
		var b strings.Builder
		b.WriteString("datetime[")
		b.WriteString(dt.timeUnit.String())
		if dt.timeZone != "" {
			b.WriteString(", ")
			b.WriteString(dt.timeZone)
		}
		b.WriteString("]")
		return b.String()
	case KindDuration:
		return fmt.Sprintf("duration[%s]", dt.timeUnit)
	case KindCategorical:
		return "cat"
	case KindDecimal:
		if dt.precision == 0 {
			return fmt.Sprintf("decimal[*,%d]", dt.scale)
		}
		return fmt.Sprintf("decimal[%d,%d]", dt.precision, dt.scale)
	case KindList:
		return fmt.Sprintf("list[%s]", dt.inner)
	case KindArray:
		return fmt.Sprintf("array[%s; %d]", dt.inner, dt.width)
	case KindObject:
		return fmt.Sprintf("object[%s]", dt.objectName)
	case KindUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("invalid(kind=%d)", dt.kind)
	}
}
