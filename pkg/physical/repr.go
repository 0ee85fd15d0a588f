// Package physical binds the logical type system to Apache Arrow's
// in-memory array representations.
//
// It carries the two invariant-bearing relations of the engine:
//
//   - ReprOf(marker): the Arrow layout every column instance tagged with
//     that marker is assumed to be stored in.
//   - CanonicalRepr(dtype): the single Arrow layout a concrete column
//     type is built from.
//
// Neither relation is verified against live columns in normal operation:
// whoever constructs a column must uphold the backing guarantee at
// construction time, and generic kernels reinterpret column handles on
// that basis alone. The downcast helpers in cast.go are the fail-fast
// surface: they panic with an invariant fault when handed an array whose
// layout contradicts the relation. The conformance test in this package
// enumerates every supported marker/type pair and asserts both relations
// agree; it is the load-bearing regression test for the substrate.
package physical

import (
	"github.com/apache/arrow-go/v18/arrow"

	"github.com/strataframe/strata/pkg/dtype"
	"github.com/strataframe/strata/pkg/strataerrors"
)

// timeUnits maps logical time units to Arrow time units.
var timeUnits = map[dtype.TimeUnit]arrow.TimeUnit{
	dtype.Nanoseconds:  arrow.Nanosecond,
	dtype.Microseconds: arrow.Microsecond,
	dtype.Milliseconds: arrow.Millisecond,
}

// logicalUnits is the inverse of timeUnits.
var logicalUnits = map[arrow.TimeUnit]dtype.TimeUnit{
	arrow.Nanosecond:  dtype.Nanoseconds,
	arrow.Microsecond: dtype.Microseconds,
	arrow.Millisecond: dtype.Milliseconds,
}

// Unspecified decimal precision backs onto the widest decimal128.
const defaultDecimalPrecision = 38

// Arrow rejects fixed-size lists of non-positive width, so the
// width-unknown Array placeholder backs onto a single-element list on
// both relations.
const placeholderArrayWidth = 1

// ReprOf returns the Arrow physical representation assumed to underlie
// every column tagged with the given marker. For parameterized markers
// the instance parameters are not encoded in the tag, so the relation
// names the layout family's canonical member (nanosecond timestamps,
// widest decimal, null-element lists).
//
// Object markers have no Arrow representation; asking for one is a
// contract violation and panics.
func ReprOf(m dtype.TypeMarker) arrow.DataType {
	switch m.(type) {
	case dtype.Int8Type:
		return arrow.PrimitiveTypes.Int8
	case dtype.Int16Type:
		return arrow.PrimitiveTypes.Int16
	case dtype.Int32Type:
		return arrow.PrimitiveTypes.Int32
	case dtype.Int64Type:
		return arrow.PrimitiveTypes.Int64
	case dtype.UInt8Type:
		return arrow.PrimitiveTypes.Uint8
	case dtype.UInt16Type:
		return arrow.PrimitiveTypes.Uint16
	case dtype.UInt32Type:
		return arrow.PrimitiveTypes.Uint32
	case dtype.UInt64Type:
		return arrow.PrimitiveTypes.Uint64
	case dtype.Float32Type:
		return arrow.PrimitiveTypes.Float32
	case dtype.Float64Type:
		return arrow.PrimitiveTypes.Float64
	case dtype.BooleanType:
		return arrow.FixedWidthTypes.Boolean
	case dtype.StringType:
		return arrow.BinaryTypes.LargeString
	case dtype.BinaryType:
		return arrow.BinaryTypes.LargeBinary
	case dtype.DateType:
		return arrow.FixedWidthTypes.Date32
	case dtype.TimeType:
		return arrow.FixedWidthTypes.Time64ns
	case dtype.DatetimeType:
		return &arrow.TimestampType{Unit: arrow.Nanosecond}
	case dtype.DurationType:
		return &arrow.DurationType{Unit: arrow.Nanosecond}
	case dtype.CategoricalType:
		// Dictionary keys; the value dictionary is column metadata.
		return arrow.PrimitiveTypes.Uint32
	case dtype.DecimalType:
		return &arrow.Decimal128Type{Precision: defaultDecimalPrecision, Scale: 0}
	case dtype.ListType:
		return arrow.LargeListOf(arrow.Null)
	case dtype.ArrayType:
		return arrow.FixedSizeListOf(placeholderArrayWidth, arrow.Null)
	default:
		panic(strataerrors.Newf(strataerrors.ErrorTypeInvariant,
			"marker %T has no arrow backing representation", m))
	}
}

// ReprFor returns the Arrow representation backing columns of the native
// scalar N. It is ReprOf composed with the native → marker binding.
func ReprFor[N dtype.Native]() arrow.DataType {
	return ReprOf(dtype.MarkerOf[N]())
}

// CanonicalRepr names, for a concrete column type, the single Arrow
// layout it is built from. Generic code uses it to name "the"
// representation without re-deriving it from a marker.
//
// Unknown and Object types have no Arrow representation; asking for one
// is a contract violation and panics.
func CanonicalRepr(dt dtype.DataType) arrow.DataType {
	switch dt.Kind() {
	case dtype.KindNull:
		return arrow.Null
	case dtype.KindBoolean:
		return arrow.FixedWidthTypes.Boolean
	case dtype.KindInt8:
		return arrow.PrimitiveTypes.Int8
	case dtype.KindInt16:
		return arrow.PrimitiveTypes.Int16
	case dtype.KindInt32:
		return arrow.PrimitiveTypes.Int32
	case dtype.KindInt64:
		return arrow.PrimitiveTypes.Int64
	case dtype.KindUInt8:
		return arrow.PrimitiveTypes.Uint8
	case dtype.KindUInt16:
		return arrow.PrimitiveTypes.Uint16
	case dtype.KindUInt32:
		return arrow.PrimitiveTypes.Uint32
	case dtype.KindUInt64:
		return arrow.PrimitiveTypes.Uint64
	case dtype.KindFloat32:
		return arrow.PrimitiveTypes.Float32
	case dtype.KindFloat64:
		return arrow.PrimitiveTypes.Float64
	case dtype.KindString:
		return arrow.BinaryTypes.LargeString
	case dtype.KindBinary:
		return arrow.BinaryTypes.LargeBinary
	case dtype.KindDate:
		return arrow.FixedWidthTypes.Date32
	case dtype.KindTime:
		return arrow.FixedWidthTypes.Time64ns
	case dtype.KindDatetime:
		unit, zone, _ := dt.DatetimeParams()
		return &arrow.TimestampType{Unit: timeUnits[unit], TimeZone: zone}
	case dtype.KindDuration:
		unit, _ := dt.DurationUnit()
		return &arrow.DurationType{Unit: timeUnits[unit]}
	case dtype.KindCategorical:
		return arrow.PrimitiveTypes.Uint32
	case dtype.KindDecimal:
		precision, scale, _ := dt.DecimalParams()
		if precision == 0 {
			precision = defaultDecimalPrecision
		}
		return &arrow.Decimal128Type{Precision: int32(precision), Scale: int32(scale)}
	case dtype.KindList:
		inner, _ := dt.Inner()
		return arrow.LargeListOf(CanonicalRepr(inner))
	case dtype.KindArray:
		inner, _ := dt.Inner()
		width, _ := dt.ArrayWidth()
		if width <= 0 {
			width = placeholderArrayWidth
		}
		return arrow.FixedSizeListOf(int32(width), CanonicalRepr(inner))
	default:
		panic(strataerrors.Newf(strataerrors.ErrorTypeInvariant,
			"type %s has no arrow backing representation", dt))
	}
}

// LogicalOf recovers the logical column type described by an Arrow
// layout. This is the schema-ingestion direction (reading IPC files,
// foreign record batches); unsupported layouts report a data error
// rather than panicking because foreign input is not a contract party.
func LogicalOf(at arrow.DataType) (dtype.DataType, error) {
	switch t := at.(type) {
	case *arrow.NullType:
		return dtype.Null(), nil
	case *arrow.BooleanType:
		return dtype.Boolean(), nil
	case *arrow.Int8Type:
		return dtype.Int8(), nil
	case *arrow.Int16Type:
		return dtype.Int16(), nil
	case *arrow.Int32Type:
		return dtype.Int32(), nil
	case *arrow.Int64Type:
		return dtype.Int64(), nil
	case *arrow.Uint8Type:
		return dtype.UInt8(), nil
	case *arrow.Uint16Type:
		return dtype.UInt16(), nil
	case *arrow.Uint32Type:
		return dtype.UInt32(), nil
	case *arrow.Uint64Type:
		return dtype.UInt64(), nil
	case *arrow.Float32Type:
		return dtype.Float32(), nil
	case *arrow.Float64Type:
		return dtype.Float64(), nil
	case *arrow.StringType, *arrow.LargeStringType:
		return dtype.String(), nil
	case *arrow.BinaryType, *arrow.LargeBinaryType:
		return dtype.Binary(), nil
	case *arrow.Date32Type:
		return dtype.Date(), nil
	case *arrow.Time64Type:
		return dtype.Time(), nil
	case *arrow.TimestampType:
		unit, ok := logicalUnits[t.Unit]
		if !ok {
			return dtype.DataType{}, strataerrors.Newf(strataerrors.ErrorTypeData,
				"unsupported timestamp unit %s", t.Unit)
		}
		return dtype.Datetime(unit, t.TimeZone), nil
	case *arrow.DurationType:
		unit, ok := logicalUnits[t.Unit]
		if !ok {
			return dtype.DataType{}, strataerrors.Newf(strataerrors.ErrorTypeData,
				"unsupported duration unit %s", t.Unit)
		}
		return dtype.Duration(unit), nil
	case *arrow.Decimal128Type:
		return dtype.Decimal(int(t.Precision), int(t.Scale)), nil
	case *arrow.DictionaryType:
		return dtype.Categorical(), nil
	case *arrow.ListType:
		inner, err := LogicalOf(t.Elem())
		if err != nil {
			return dtype.DataType{}, err
		}
		return dtype.List(inner), nil
	case *arrow.LargeListType:
		inner, err := LogicalOf(t.Elem())
		if err != nil {
			return dtype.DataType{}, err
		}
		return dtype.List(inner), nil
	case *arrow.FixedSizeListType:
		inner, err := LogicalOf(t.Elem())
		if err != nil {
			return dtype.DataType{}, err
		}
		return dtype.Array(inner, int(t.Len())), nil
	default:
		return dtype.DataType{}, strataerrors.Newf(strataerrors.ErrorTypeData,
			"unsupported arrow type %s", at)
	}
}
