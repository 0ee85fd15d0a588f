package dtype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataTypeEqual(t *testing.T) {
	tests := []struct {
		name  string
		a, b  DataType
		equal bool
	}{
		{"same scalar", Int32(), Int32(), true},
		{"different scalar", Int32(), Int64(), false},
		{"signedness matters", Int32(), UInt32(), false},
		{"list same element", List(Int32()), List(Int32()), true},
		{"list placeholder vs concrete", List(Null()), List(Int32()), false},
		{"list vs array", List(Int32()), Array(Int32(), 3), false},
		{"array same width", Array(Int32(), 3), Array(Int32(), 3), true},
		{"array different width", Array(Int32(), 3), Array(Int32(), 4), false},
		{"array different element", Array(Int32(), 3), Array(Int64(), 3), false},
		{"nested list", List(List(Float64())), List(List(Float64())), true},
		{"nested list mismatch", List(List(Float64())), List(List(Float32())), false},
		{"datetime same params", Datetime(Microseconds, "UTC"), Datetime(Microseconds, "UTC"), true},
		{"datetime unit mismatch", Datetime(Microseconds, "UTC"), Datetime(Nanoseconds, "UTC"), false},
		{"datetime zone mismatch", Datetime(Microseconds, "UTC"), Datetime(Microseconds, ""), false},
		{"duration same unit", Duration(Milliseconds), Duration(Milliseconds), true},
		{"duration unit mismatch", Duration(Milliseconds), Duration(Nanoseconds), false},
		{"decimal same params", Decimal(10, 2), Decimal(10, 2), true},
		{"decimal scale mismatch", Decimal(10, 2), Decimal(10, 3), false},
		{"decimal precision mismatch", Decimal(10, 2), Decimal(12, 2), false},
		{"object same name", Object("geometry"), Object("geometry"), true},
		{"object name mismatch", Object("geometry"), Object("sketch"), false},
		{"null vs unknown", Null(), Unknown(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, tt.a.Equal(tt.b))
			// Equality is symmetric.
			assert.Equal(t, tt.equal, tt.b.Equal(tt.a))
		})
	}
}

func TestDataTypeInner(t *testing.T) {
	inner, ok := List(Int64()).Inner()
	require.True(t, ok)
	assert.True(t, inner.Equal(Int64()))

	inner, ok = Array(Float32(), 8).Inner()
	require.True(t, ok)
	assert.True(t, inner.Equal(Float32()))

	_, ok = Int64().Inner()
	assert.False(t, ok)

	// The unknown-element placeholder is preserved, not erased.
	inner, ok = List(Null()).Inner()
	require.True(t, ok)
	assert.Equal(t, KindNull, inner.Kind())
}

func TestDataTypeParams(t *testing.T) {
	unit, zone, ok := Datetime(Milliseconds, "Europe/Berlin").DatetimeParams()
	require.True(t, ok)
	assert.Equal(t, Milliseconds, unit)
	assert.Equal(t, "Europe/Berlin", zone)

	_, _, ok = Date().DatetimeParams()
	assert.False(t, ok)

	prec, scale, ok := Decimal(18, 4).DecimalParams()
	require.True(t, ok)
	assert.Equal(t, 18, prec)
	assert.Equal(t, 4, scale)

	name, ok := Object("geometry").ObjectName()
	require.True(t, ok)
	assert.Equal(t, "geometry", name)

	width, ok := Array(Int8(), 16).ArrayWidth()
	require.True(t, ok)
	assert.Equal(t, 16, width)

	_, ok = List(Int8()).ArrayWidth()
	assert.False(t, ok)
}

func TestDataTypeClassification(t *testing.T) {
	for _, dt := range []DataType{Int8(), Int16(), Int32(), Int64(), UInt8(), UInt16(), UInt32(), UInt64()} {
		assert.True(t, dt.IsInteger(), dt.String())
		assert.True(t, dt.IsNumeric(), dt.String())
		assert.False(t, dt.IsFloat(), dt.String())
	}
	for _, dt := range []DataType{Float32(), Float64()} {
		assert.True(t, dt.IsFloat(), dt.String())
		assert.True(t, dt.IsNumeric(), dt.String())
		assert.False(t, dt.IsInteger(), dt.String())
	}
	for _, dt := range []DataType{Boolean(), String(), Binary(), Date(), Time(), List(Int32())} {
		assert.False(t, dt.IsNumeric(), dt.String())
	}
	assert.True(t, List(Int32()).IsNested())
	assert.True(t, Array(Int32(), 2).IsNested())
	assert.False(t, Int32().IsNested())
}

func TestDataTypeString(t *testing.T) {
	tests := []struct {
		dt   DataType
		want string
	}{
		{Int32(), "int32"},
		{UInt64(), "uint64"},
		{String(), "str"},
		{List(Int64()), "list[int64]"},
		{List(Null()), "list[null]"},
		{Array(Float64(), 4), "array[float64; 4]"},
		{Datetime(Nanoseconds, ""), "datetime[ns]"},
		{Datetime(Microseconds, "UTC"), "datetime[us, UTC]"},
		{Duration(Milliseconds), "duration[ms]"},
		{Decimal(10, 2), "decimal[10,2]"},
		{Decimal(0, 0), "decimal[*,0]"},
		{Object("geometry"), "object[geometry]"},
		{Unknown(), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.dt.String())
	}
}

func TestField(t *testing.T) {
	f := NewField("price", Float64())
	assert.Equal(t, "price", f.Name())
	assert.True(t, f.DType().Equal(Float64()))
	assert.Equal(t, "price: float64", f.String())

	assert.True(t, f.Equal(NewField("price", Float64())))
	assert.False(t, f.Equal(NewField("price", Float32())))
	assert.False(t, f.Equal(NewField("cost", Float64())))
}
