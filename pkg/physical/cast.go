package physical

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"

	"github.com/strataframe/strata/pkg/dtype"
	"github.com/strataframe/strata/pkg/strataerrors"
)

// Checked downcasts from a generic arrow.Array handle to the concrete
// representation the backing relations promise. Constructors uphold the
// relation, so in a correct program these assertions never fire; when one
// does it is a programmer-contract violation and the helpers fail fast
// with an invariant fault instead of corrupting memory downstream.

func invariantFault(want string, got arrow.Array) error {
	return strataerrors.Newf(strataerrors.ErrorTypeInvariant,
		"column backed by %s, expected %s", got.DataType(), want).
		WithDetail("length", got.Len())
}

// PrimitiveValues reinterprets a primitive array as its native value
// slice. The array must be backed by exactly N per the backing relation;
// any other layout panics.
func PrimitiveValues[N dtype.Native](a arrow.Array) []N {
	switch v := a.(type) {
	case *array.Int8:
		if vals, ok := any(v.Int8Values()).([]N); ok {
			return vals
		}
	case *array.Int16:
		if vals, ok := any(v.Int16Values()).([]N); ok {
			return vals
		}
	case *array.Int32:
		if vals, ok := any(v.Int32Values()).([]N); ok {
			return vals
		}
	case *array.Int64:
		if vals, ok := any(v.Int64Values()).([]N); ok {
			return vals
		}
	case *array.Uint8:
		if vals, ok := any(v.Uint8Values()).([]N); ok {
			return vals
		}
	case *array.Uint16:
		if vals, ok := any(v.Uint16Values()).([]N); ok {
			return vals
		}
	case *array.Uint32:
		if vals, ok := any(v.Uint32Values()).([]N); ok {
			return vals
		}
	case *array.Uint64:
		if vals, ok := any(v.Uint64Values()).([]N); ok {
			return vals
		}
	case *array.Float32:
		if vals, ok := any(v.Float32Values()).([]N); ok {
			return vals
		}
	case *array.Float64:
		if vals, ok := any(v.Float64Values()).([]N); ok {
			return vals
		}
	}
	panic(invariantFault(ReprFor[N]().String(), a))
}

// AsBoolean reinterprets an array as the boolean bitmap representation.
func AsBoolean(a arrow.Array) *array.Boolean {
	b, ok := a.(*array.Boolean)
	if !ok {
		panic(invariantFault("bool", a))
	}
	return b
}

// AsString reinterprets an array as the large UTF-8 representation.
func AsString(a arrow.Array) *array.LargeString {
	s, ok := a.(*array.LargeString)
	if !ok {
		panic(invariantFault("large_utf8", a))
	}
	return s
}

// AsBinary reinterprets an array as the large binary representation.
func AsBinary(a arrow.Array) *array.LargeBinary {
	b, ok := a.(*array.LargeBinary)
	if !ok {
		panic(invariantFault("large_binary", a))
	}
	return b
}

// AsList reinterprets an array as the large list representation.
func AsList(a arrow.Array) *array.LargeList {
	l, ok := a.(*array.LargeList)
	if !ok {
		panic(invariantFault("large_list", a))
	}
	return l
}

// AsFixedSizeList reinterprets an array as the fixed-size list
// representation.
func AsFixedSizeList(a arrow.Array) *array.FixedSizeList {
	l, ok := a.(*array.FixedSizeList)
	if !ok {
		panic(invariantFault("fixed_size_list", a))
	}
	return l
}
