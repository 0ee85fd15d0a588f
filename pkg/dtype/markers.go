package dtype

// TypeMarker is a zero-size, stateless tag identifying one logical column
// type for generic dispatch. The marker → DataType mapping is total but
// not injective: scalar markers recover their exact logical type, while
// parameterized markers (DatetimeType, DurationType, CategoricalType,
// DecimalType) recover only a generic placeholder; the true instance
// parameters (time unit, zone, scale, category dictionary) travel as
// runtime metadata on the concrete column and are never recoverable from
// the marker alone. Any algorithm needing exact Decimal scale or Datetime
// unit must receive the concrete DataType out-of-band and must not treat
// the marker's recovered value as authoritative.
type TypeMarker interface {
	// DType returns the marker's canonical logical type. The call is
	// constant and idempotent.
	DType() DataType
}

// BooleanType tags boolean columns.
type BooleanType struct{}

// Int8Type tags 8-bit signed integer columns.
type Int8Type struct{}

// Int16Type tags 16-bit signed integer columns.
type Int16Type struct{}

// Int32Type tags 32-bit signed integer columns.
type Int32Type struct{}

// Int64Type tags 64-bit signed integer columns.
type Int64Type struct{}

// UInt8Type tags 8-bit unsigned integer columns.
type UInt8Type struct{}

// UInt16Type tags 16-bit unsigned integer columns.
type UInt16Type struct{}

// UInt32Type tags 32-bit unsigned integer columns.
type UInt32Type struct{}

// UInt64Type tags 64-bit unsigned integer columns.
type UInt64Type struct{}

// Float32Type tags 32-bit float columns.
type Float32Type struct{}

// Float64Type tags 64-bit float columns.
type Float64Type struct{}

// StringType tags UTF-8 text columns.
type StringType struct{}

// BinaryType tags opaque byte-sequence columns.
type BinaryType struct{}

// DateType tags calendar-date columns.
type DateType struct{}

// TimeType tags time-of-day columns.
type TimeType struct{}

// DatetimeType tags timestamp columns. The time unit and zone are runtime
// metadata on the column; DType returns Unknown.
type DatetimeType struct{}

// DurationType tags time-delta columns. The time unit is runtime metadata
// on the column; DType returns Unknown.
type DurationType struct{}

// CategoricalType tags dictionary-encoded string columns. The category
// dictionary is runtime metadata on the column; DType returns Unknown.
type CategoricalType struct{}

// DecimalType tags fixed-point decimal columns. Precision and scale are
// runtime metadata on the column; DType returns a placeholder with
// unspecified precision and scale 0.
type DecimalType struct{}

// ListType tags variable-length list columns. The element type cannot be
// known from the tag; DType returns List(Null).
type ListType struct{}

// ArrayType tags fixed-size list columns. The element type and width
// cannot be known from the tag; DType returns Array(Null, 0).
type ArrayType struct{}

// ObjectType tags opaque user-object columns. The registered type name is
// runtime metadata on the column; DType returns Object("").
type ObjectType struct{}

func (BooleanType) DType() DataType { return Boolean() }
func (Int8Type) DType() DataType    { return Int8() }
func (Int16Type) DType() DataType   { return Int16() }
func (Int32Type) DType() DataType   { return Int32() }
func (Int64Type) DType() DataType   { return Int64() }
func (UInt8Type) DType() DataType   { return UInt8() }
func (UInt16Type) DType() DataType  { return UInt16() }
func (UInt32Type) DType() DataType  { return UInt32() }
func (UInt64Type) DType() DataType  { return UInt64() }
func (Float32Type) DType() DataType { return Float32() }
func (Float64Type) DType() DataType { return Float64() }
func (StringType) DType() DataType  { return String() }
func (BinaryType) DType() DataType  { return Binary() }
func (DateType) DType() DataType    { return Date() }
func (TimeType) DType() DataType    { return Time() }

// Parameterized markers recover placeholders only.

func (DatetimeType) DType() DataType    { return Unknown() }
func (DurationType) DType() DataType    { return Unknown() }
func (CategoricalType) DType() DataType { return Unknown() }

// Scale 0 rather than unset so placeholder decimals still render.
func (DecimalType) DType() DataType { return Decimal(0, 0) }

// Null element: nothing is known about the element type from the tag.
func (ListType) DType() DataType { return List(Null()) }

func (ArrayType) DType() DataType { return Array(Null(), 0) }

func (ObjectType) DType() DataType { return Object("") }
