package chunked

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/strataframe/strata/pkg/dtype"
	"github.com/strataframe/strata/pkg/physical"
)

// BooleanChunked is a boolean column backed by Arrow bitmap arrays.
type BooleanChunked struct {
	name   string
	chunks []arrow.Array
	length int
}

// FromBools builds a boolean column. A nil validity mask means all
// values are valid.
func FromBools(name string, vals []bool, valid []bool) *BooleanChunked {
	b := array.NewBooleanBuilder(memory.NewGoAllocator())
	defer b.Release()
	b.AppendValues(vals, valid)
	arr := b.NewArray()
	return &BooleanChunked{name: name, chunks: []arrow.Array{arr}, length: arr.Len()}
}

// Name returns the column name.
func (c *BooleanChunked) Name() string { return c.name }

// DType returns Boolean.
func (c *BooleanChunked) DType() dtype.DataType { return dtype.Boolean() }

// Len returns the number of rows.
func (c *BooleanChunked) Len() int { return c.length }

// Get returns the value at row i and whether it is non-null.
func (c *BooleanChunked) Get(i int) (bool, bool) {
	for _, chunk := range c.chunks {
		if i < chunk.Len() {
			if chunk.IsNull(i) {
				return false, false
			}
			return physical.AsBoolean(chunk).Value(i), true
		}
		i -= chunk.Len()
	}
	return false, false
}

// Release releases the backing buffers.
func (c *BooleanChunked) Release() {
	for _, chunk := range c.chunks {
		chunk.Release()
	}
	c.chunks = nil
}

// StringChunked is a UTF-8 text column backed by Arrow large-string
// arrays.
type StringChunked struct {
	name   string
	chunks []arrow.Array
	length int
}

// FromStrings builds a text column. A nil validity mask means all values
// are valid.
func FromStrings(name string, vals []string, valid []bool) *StringChunked {
	b := array.NewLargeStringBuilder(memory.NewGoAllocator())
	defer b.Release()
	b.AppendValues(vals, valid)
	arr := b.NewArray()
	return &StringChunked{name: name, chunks: []arrow.Array{arr}, length: arr.Len()}
}

// Name returns the column name.
func (c *StringChunked) Name() string { return c.name }

// DType returns String.
func (c *StringChunked) DType() dtype.DataType { return dtype.String() }

// Len returns the number of rows.
func (c *StringChunked) Len() int { return c.length }

// Get returns the value at row i and whether it is non-null.
func (c *StringChunked) Get(i int) (string, bool) {
	for _, chunk := range c.chunks {
		if i < chunk.Len() {
			if chunk.IsNull(i) {
				return "", false
			}
			return physical.AsString(chunk).Value(i), true
		}
		i -= chunk.Len()
	}
	return "", false
}

// Release releases the backing buffers.
func (c *StringChunked) Release() {
	for _, chunk := range c.chunks {
		chunk.Release()
	}
	c.chunks = nil
}

// BinaryChunked is a byte-sequence column backed by Arrow large-binary
// arrays.
type BinaryChunked struct {
	name   string
	chunks []arrow.Array
	length int
}

// FromByteSlices builds a binary column. A nil validity mask means all
// values are valid.
func FromByteSlices(name string, vals [][]byte, valid []bool) *BinaryChunked {
	b := array.NewBinaryBuilder(memory.NewGoAllocator(), arrow.BinaryTypes.LargeBinary)
	defer b.Release()
	b.AppendValues(vals, valid)
	arr := b.NewArray()
	return &BinaryChunked{name: name, chunks: []arrow.Array{arr}, length: arr.Len()}
}

// Name returns the column name.
func (c *BinaryChunked) Name() string { return c.name }

// DType returns Binary.
func (c *BinaryChunked) DType() dtype.DataType { return dtype.Binary() }

// Len returns the number of rows.
func (c *BinaryChunked) Len() int { return c.length }

// Get returns the value at row i and whether it is non-null.
func (c *BinaryChunked) Get(i int) ([]byte, bool) {
	for _, chunk := range c.chunks {
		if i < chunk.Len() {
			if chunk.IsNull(i) {
				return nil, false
			}
			return physical.AsBinary(chunk).Value(i), true
		}
		i -= chunk.Len()
	}
	return nil, false
}

// Release releases the backing buffers.
func (c *BinaryChunked) Release() {
	for _, chunk := range c.chunks {
		chunk.Release()
	}
	c.chunks = nil
}
