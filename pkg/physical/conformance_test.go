package physical

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/stretchr/testify/assert"

	"github.com/strataframe/strata/pkg/dtype"
)

// TestBackingRelationsAgree enumerates every supported marker/column-type
// pair and asserts that the backing-representation relation (keyed on the
// marker) and the canonical-backing relation (keyed on the column type)
// name the same physical representation. Generic kernels perform
// unchecked reinterpretations on the strength of this agreement; a
// mismatch here is a memory-safety bug in waiting.
func TestBackingRelationsAgree(t *testing.T) {
	pairs := []struct {
		name   string
		marker dtype.TypeMarker
		dt     dtype.DataType
	}{
		{"int8", dtype.Int8Type{}, dtype.Int8()},
		{"int16", dtype.Int16Type{}, dtype.Int16()},
		{"int32", dtype.Int32Type{}, dtype.Int32()},
		{"int64", dtype.Int64Type{}, dtype.Int64()},
		{"uint8", dtype.UInt8Type{}, dtype.UInt8()},
		{"uint16", dtype.UInt16Type{}, dtype.UInt16()},
		{"uint32", dtype.UInt32Type{}, dtype.UInt32()},
		{"uint64", dtype.UInt64Type{}, dtype.UInt64()},
		{"float32", dtype.Float32Type{}, dtype.Float32()},
		{"float64", dtype.Float64Type{}, dtype.Float64()},
		{"boolean", dtype.BooleanType{}, dtype.Boolean()},
		{"string", dtype.StringType{}, dtype.String()},
		{"binary", dtype.BinaryType{}, dtype.Binary()},
		{"date", dtype.DateType{}, dtype.Date()},
		{"time", dtype.TimeType{}, dtype.Time()},
		{"datetime", dtype.DatetimeType{}, dtype.Datetime(dtype.Nanoseconds, "")},
		{"duration", dtype.DurationType{}, dtype.Duration(dtype.Nanoseconds)},
		{"categorical", dtype.CategoricalType{}, dtype.Categorical()},
		{"decimal", dtype.DecimalType{}, dtype.Decimal(0, 0)},
		{"list", dtype.ListType{}, dtype.List(dtype.Null())},
		{"fixed-size list", dtype.ArrayType{}, dtype.Array(dtype.Null(), 0)},
	}

	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			byMarker := ReprOf(p.marker)
			byType := CanonicalRepr(p.dt)
			assert.True(t, arrow.TypeEqual(byMarker, byType),
				"marker relation names %s, type relation names %s", byMarker, byType)
		})
	}
}

// TestNativeBackingWidths pins each native scalar to the Arrow primitive
// layout of the same width via the marker binding.
func TestNativeBackingWidths(t *testing.T) {
	assert.True(t, arrow.TypeEqual(arrow.PrimitiveTypes.Int8, ReprFor[int8]()))
	assert.True(t, arrow.TypeEqual(arrow.PrimitiveTypes.Int16, ReprFor[int16]()))
	assert.True(t, arrow.TypeEqual(arrow.PrimitiveTypes.Int32, ReprFor[int32]()))
	assert.True(t, arrow.TypeEqual(arrow.PrimitiveTypes.Int64, ReprFor[int64]()))
	assert.True(t, arrow.TypeEqual(arrow.PrimitiveTypes.Uint8, ReprFor[uint8]()))
	assert.True(t, arrow.TypeEqual(arrow.PrimitiveTypes.Uint16, ReprFor[uint16]()))
	assert.True(t, arrow.TypeEqual(arrow.PrimitiveTypes.Uint32, ReprFor[uint32]()))
	assert.True(t, arrow.TypeEqual(arrow.PrimitiveTypes.Uint64, ReprFor[uint64]()))
	assert.True(t, arrow.TypeEqual(arrow.PrimitiveTypes.Float32, ReprFor[float32]()))
	assert.True(t, arrow.TypeEqual(arrow.PrimitiveTypes.Float64, ReprFor[float64]()))
}

// TestArrayPlaceholderWidth pins the width-unknown Array placeholder to
// a representable fixed-size list on both relations; Arrow's own
// constructor refuses non-positive widths.
func TestArrayPlaceholderWidth(t *testing.T) {
	want := arrow.FixedSizeListOf(1, arrow.Null)
	assert.True(t, arrow.TypeEqual(want, ReprOf(dtype.ArrayType{})))
	assert.True(t, arrow.TypeEqual(want, CanonicalRepr(dtype.Array(dtype.Null(), 0))))
}

// TestCanonicalReprRecursion checks that nested column types derive their
// backing layout from their element's canonical layout.
func TestCanonicalReprRecursion(t *testing.T) {
	got := CanonicalRepr(dtype.List(dtype.Int32()))
	assert.True(t, arrow.TypeEqual(arrow.LargeListOf(arrow.PrimitiveTypes.Int32), got))

	got = CanonicalRepr(dtype.Array(dtype.Float64(), 4))
	assert.True(t, arrow.TypeEqual(arrow.FixedSizeListOf(4, arrow.PrimitiveTypes.Float64), got))

	got = CanonicalRepr(dtype.List(dtype.List(dtype.String())))
	want := arrow.LargeListOf(arrow.LargeListOf(arrow.BinaryTypes.LargeString))
	assert.True(t, arrow.TypeEqual(want, got))
}

// TestLogicalOfRoundTrip checks schema ingestion against the canonical
// backing relation for the self-describing layouts.
func TestLogicalOfRoundTrip(t *testing.T) {
	for _, dt := range []dtype.DataType{
		dtype.Boolean(), dtype.Int8(), dtype.Int64(), dtype.UInt32(),
		dtype.Float32(), dtype.Float64(), dtype.String(), dtype.Binary(),
		dtype.Date(), dtype.Time(),
		dtype.Datetime(dtype.Microseconds, "UTC"),
		dtype.Duration(dtype.Milliseconds),
		dtype.Decimal(18, 4),
		dtype.List(dtype.Int32()),
		dtype.Array(dtype.Float64(), 3),
	} {
		got, err := LogicalOf(CanonicalRepr(dt))
		assert.NoError(t, err, dt.String())
		assert.True(t, got.Equal(dt), "round-trip changed %s into %s", dt, got)
	}
}

func TestLogicalOfRejectsUnsupported(t *testing.T) {
	_, err := LogicalOf(&arrow.MonthIntervalType{})
	assert.Error(t, err)
}
