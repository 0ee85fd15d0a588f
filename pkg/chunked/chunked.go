// Package chunked provides the typed column containers of the Strata
// engine: thin immutable wrappers over one or more contiguous Arrow
// arrays ("chunks"), tagged with their logical type.
//
// Columns are immutable once published (copy-on-write at the column
// level), so concurrent reads from multiple goroutines are always safe
// without synchronization. Whoever constructs a column must uphold the
// physical backing guarantee declared in the physical package; the
// containers never re-verify it afterward, except for FromArrays which
// is the checked entry point for foreign chunks.
package chunked

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/strataframe/strata/pkg/dtype"
	"github.com/strataframe/strata/pkg/physical"
	"github.com/strataframe/strata/pkg/strataerrors"
)

// Chunked is a numeric column of native scalar N backed by Arrow
// primitive arrays. The zero value is not usable; construct with
// FromSlice, FromSliceWithValidity or FromArrays.
type Chunked[N dtype.Native] struct {
	name      string
	dt        dtype.DataType
	chunks    []arrow.Array
	length    int
	nullCount int
}

// FromSlice builds a single-chunk column from values, with no nulls.
func FromSlice[N dtype.Native](name string, vals []N) *Chunked[N] {
	return FromSliceWithValidity(name, vals, nil)
}

// FromSliceWithValidity builds a single-chunk column from values and a
// validity mask. A nil mask means all values are valid; otherwise
// valid[i] == false marks position i null (the value at i is ignored).
func FromSliceWithValidity[N dtype.Native](name string, vals []N, valid []bool) *Chunked[N] {
	mem := memory.NewGoAllocator()
	bldr := array.NewBuilder(mem, physical.ReprFor[N]())
	defer bldr.Release()

	bldr.Reserve(len(vals))
	for i, v := range vals {
		if valid != nil && !valid[i] {
			bldr.AppendNull()
			continue
		}
		appendPrimitive(bldr, v)
	}

	arr := bldr.NewArray()
	return &Chunked[N]{
		name:      name,
		dt:        dtype.DTypeOf[N](),
		chunks:    []arrow.Array{arr},
		length:    arr.Len(),
		nullCount: arr.NullN(),
	}
}

// FromArrays builds a column from existing Arrow chunks. Every chunk
// must already use the canonical backing representation for N; a foreign
// layout is rejected with an invariant fault since accepting it would
// let later unchecked reinterpretations corrupt memory.
func FromArrays[N dtype.Native](name string, chunks []arrow.Array) (*Chunked[N], error) {
	want := physical.ReprFor[N]()
	length, nulls := 0, 0
	for _, chunk := range chunks {
		if !arrow.TypeEqual(chunk.DataType(), want) {
			return nil, strataerrors.Newf(strataerrors.ErrorTypeInvariant,
				"chunk backed by %s, column requires %s", chunk.DataType(), want).
				WithDetail("column", name)
		}
		length += chunk.Len()
		nulls += chunk.NullN()
	}
	return &Chunked[N]{
		name:      name,
		dt:        dtype.DTypeOf[N](),
		chunks:    chunks,
		length:    length,
		nullCount: nulls,
	}, nil
}

// Name returns the column name.
func (c *Chunked[N]) Name() string { return c.name }

// DType returns the column's logical type.
func (c *Chunked[N]) DType() dtype.DataType { return c.dt }

// Len returns the total number of rows across all chunks.
func (c *Chunked[N]) Len() int { return c.length }

// NullCount returns the total number of null positions.
func (c *Chunked[N]) NullCount() int { return c.nullCount }

// Chunks returns the backing arrays. Callers must not mutate them.
func (c *Chunked[N]) Chunks() []arrow.Array { return c.chunks }

// Get returns the value at row i and whether it is non-null.
func (c *Chunked[N]) Get(i int) (N, bool) {
	for _, chunk := range c.chunks {
		if i < chunk.Len() {
			if chunk.IsNull(i) {
				var zero N
				return zero, false
			}
			return physical.PrimitiveValues[N](chunk)[i], true
		}
		i -= chunk.Len()
	}
	panic(strataerrors.Newf(strataerrors.ErrorTypeInvariant,
		"row %d out of range for column %q of length %d", i, c.name, c.length))
}

// Flatten returns the column as a contiguous value slice plus a validity
// mask. The mask is nil when the column has no nulls. Kernels use this
// as their uniform input; for a single-chunk all-valid column the value
// slice aliases the chunk's buffer, so callers must treat it as
// read-only.
func (c *Chunked[N]) Flatten() ([]N, []bool) {
	if len(c.chunks) == 1 && c.nullCount == 0 {
		return physical.PrimitiveValues[N](c.chunks[0]), nil
	}

	vals := make([]N, 0, c.length)
	var valid []bool
	if c.nullCount > 0 {
		valid = make([]bool, 0, c.length)
	}
	for _, chunk := range c.chunks {
		chunkVals := physical.PrimitiveValues[N](chunk)
		vals = append(vals, chunkVals...)
		if valid != nil {
			for i := 0; i < chunk.Len(); i++ {
				valid = append(valid, chunk.IsValid(i))
			}
		}
	}
	return vals, valid
}

// ForEach visits every row in order, passing the value and whether it is
// non-null.
func (c *Chunked[N]) ForEach(fn func(i int, v N, ok bool)) {
	row := 0
	for _, chunk := range c.chunks {
		vals := physical.PrimitiveValues[N](chunk)
		for i := 0; i < chunk.Len(); i++ {
			fn(row, vals[i], chunk.IsValid(i))
			row++
		}
	}
}

// Release releases the backing Arrow buffers. The column must not be
// used afterward.
func (c *Chunked[N]) Release() {
	for _, chunk := range c.chunks {
		chunk.Release()
	}
	c.chunks = nil
}

// appendPrimitive dispatches one value to the matching typed builder.
// The builder was created from the canonical representation of N, so the
// assertion pairs are total; a mismatch is a backing-contract violation.
func appendPrimitive[N dtype.Native](bldr array.Builder, v N) {
	switch b := bldr.(type) {
	case *array.Int8Builder:
		b.Append(any(v).(int8))
	case *array.Int16Builder:
		b.Append(any(v).(int16))
	case *array.Int32Builder:
		b.Append(any(v).(int32))
	case *array.Int64Builder:
		b.Append(any(v).(int64))
	case *array.Uint8Builder:
		b.Append(any(v).(uint8))
	case *array.Uint16Builder:
		b.Append(any(v).(uint16))
	case *array.Uint32Builder:
		b.Append(any(v).(uint32))
	case *array.Uint64Builder:
		b.Append(any(v).(uint64))
	case *array.Float32Builder:
		b.Append(any(v).(float32))
	case *array.Float64Builder:
		b.Append(any(v).(float64))
	default:
		panic(strataerrors.Newf(strataerrors.ErrorTypeInvariant,
			"builder %T does not match native scalar %T", bldr, v))
	}
}
