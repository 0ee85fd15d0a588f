package dtype

import "math"

// Native is the set of machine scalar types that can back a numeric
// column. Each member is paired with exactly one numeric marker, and the
// pairing is invertible: MarkerOf[N]().DType() names the logical type
// whose columns store N, and NativeWidth/IsFloatType classify N without a
// marker in hand.
//
// The contract every member satisfies: total ordering, the arithmetic
// operators (+, -, *, /, %, with % emulated for floats), additive and
// multiplicative identities (Zero, One), saturating representable bounds
// (MinValue, MaxValue), primitive-to-primitive casting (CastNum), and a
// float-ness flag (IsFloatType) consumed by NaN-aware comparison
// elsewhere in the engine. Element-wise columnar arithmetic over these
// scalars lives in the chunked package.
type Native interface {
	int8 | int16 | int32 | int64 |
		uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// IntegerNative is the subset of Native with integer representation.
type IntegerNative interface {
	int8 | int16 | int32 | int64 |
		uint8 | uint16 | uint32 | uint64
}

// FloatNative is the subset of Native with floating-point representation.
type FloatNative interface {
	float32 | float64
}

// NumericMarker is a TypeMarker bound to exactly one native machine
// scalar N. The binding is sealed: only the markers declared in this
// package satisfy it, each for a single N (Int32Type satisfies
// NumericMarker[int32] and nothing else). Generic kernels use it to tie
// a dispatch tag to the element type they operate on.
type NumericMarker[N Native] interface {
	TypeMarker
	bind(N)
}

// IntegerMarker is a NumericMarker whose native scalar is an integer
// width. The rolling aggregation surface is defined for these markers.
type IntegerMarker[N IntegerNative] interface {
	NumericMarker[N]
}

// FloatMarker is a NumericMarker whose native scalar is a float width.
type FloatMarker[N FloatNative] interface {
	NumericMarker[N]
}

func (Int8Type) bind(int8)       {}
func (Int16Type) bind(int16)     {}
func (Int32Type) bind(int32)     {}
func (Int64Type) bind(int64)     {}
func (UInt8Type) bind(uint8)     {}
func (UInt16Type) bind(uint16)   {}
func (UInt32Type) bind(uint32)   {}
func (UInt64Type) bind(uint64)   {}
func (Float32Type) bind(float32) {}
func (Float64Type) bind(float64) {}

// MarkerOf returns the unique numeric marker paired with the native
// scalar N. Together with DType and the bind relation this makes the
// native ↔ marker mapping invertible: MarkerOf[int32]() is Int32Type,
// and Int32Type binds only int32.
func MarkerOf[N Native]() TypeMarker {
	var z N
	switch any(z).(type) {
	case int8:
		return Int8Type{}
	case int16:
		return Int16Type{}
	case int32:
		return Int32Type{}
	case int64:
		return Int64Type{}
	case uint8:
		return UInt8Type{}
	case uint16:
		return UInt16Type{}
	case uint32:
		return UInt32Type{}
	case uint64:
		return UInt64Type{}
	case float32:
		return Float32Type{}
	case float64:
		return Float64Type{}
	default:
		// Unreachable: Native is a closed constraint.
		panic("dtype: native type outside the Native constraint")
	}
}

// DTypeOf returns the logical type of columns backed by the native
// scalar N.
func DTypeOf[N Native]() DataType {
	return MarkerOf[N]().DType()
}

// IsFloatType reports whether N is a floating-point width. NaN-aware
// comparison and sorting branch on this flag.
func IsFloatType[N Native]() bool {
	var z N
	switch any(z).(type) {
	case float32, float64:
		return true
	default:
		return false
	}
}

// Zero returns the additive identity of N.
func Zero[N Native]() N {
	var z N
	return z
}

// One returns the multiplicative identity of N.
func One[N Native]() N {
	return N(1)
}

// MinValue returns the smallest representable value of N (negative
// infinity is excluded: for floats this is the most negative finite
// value, matching the saturating-bounds contract).
func MinValue[N Native]() N {
	var z N
	switch p := any(&z).(type) {
	case *int8:
		*p = math.MinInt8
	case *int16:
		*p = math.MinInt16
	case *int32:
		*p = math.MinInt32
	case *int64:
		*p = math.MinInt64
	case *uint8, *uint16, *uint32, *uint64:
		// zero value already
	case *float32:
		*p = -math.MaxFloat32
	case *float64:
		*p = -math.MaxFloat64
	}
	return z
}

// MaxValue returns the largest representable value of N (for floats, the
// largest finite value).
func MaxValue[N Native]() N {
	var z N
	switch p := any(&z).(type) {
	case *int8:
		*p = math.MaxInt8
	case *int16:
		*p = math.MaxInt16
	case *int32:
		*p = math.MaxInt32
	case *int64:
		*p = math.MaxInt64
	case *uint8:
		*p = math.MaxUint8
	case *uint16:
		*p = math.MaxUint16
	case *uint32:
		*p = math.MaxUint32
	case *uint64:
		*p = math.MaxUint64
	case *float32:
		*p = math.MaxFloat32
	case *float64:
		*p = math.MaxFloat64
	}
	return z
}

// CastNum converts between native scalars with Go's primitive conversion
// semantics (truncation toward zero for float → int).
func CastNum[F, T Native](v F) T {
	return T(v)
}
