package chunked

import (
	"github.com/strataframe/strata/pkg/dtype"
	"github.com/strataframe/strata/pkg/strataerrors"
)

// Element-wise arithmetic kernels over numeric columns: null propagation
// (a null operand yields a null result position) and scalar broadcasting.
// Written once over the Native constraint; every width monomorphizes to
// a tight loop. Integer division by zero yields null rather than a
// fault, matching the engine's null-propagation discipline for undefined
// element results.

type binOp uint8

const (
	opAdd binOp = iota
	opSub
	opMul
	opDiv
)

func applyOp[N dtype.Native](op binOp, a, b N) (N, bool) {
	switch op {
	case opAdd:
		return a + b, true
	case opSub:
		return a - b, true
	case opMul:
		return a * b, true
	default:
		var zero N
		if !dtype.IsFloatType[N]() && b == zero {
			return zero, false
		}
		return a / b, true
	}
}

func binary[N dtype.Native](op binOp, a, b *Chunked[N]) (*Chunked[N], error) {
	if a.Len() != b.Len() {
		return nil, strataerrors.Newf(strataerrors.ErrorTypeValidation,
			"column length mismatch: %d vs %d", a.Len(), b.Len()).
			WithDetail("left", a.Name()).
			WithDetail("right", b.Name())
	}

	avals, avalid := a.Flatten()
	bvals, bvalid := b.Flatten()

	out := make([]N, len(avals))
	valid := make([]bool, len(avals))
	for i := range avals {
		if (avalid != nil && !avalid[i]) || (bvalid != nil && !bvalid[i]) {
			continue
		}
		v, ok := applyOp(op, avals[i], bvals[i])
		out[i] = v
		valid[i] = ok
	}
	return FromSliceWithValidity(a.Name(), out, valid), nil
}

func broadcast[N dtype.Native](op binOp, a *Chunked[N], s N) *Chunked[N] {
	avals, avalid := a.Flatten()

	out := make([]N, len(avals))
	valid := make([]bool, len(avals))
	for i := range avals {
		if avalid != nil && !avalid[i] {
			continue
		}
		v, ok := applyOp(op, avals[i], s)
		out[i] = v
		valid[i] = ok
	}
	return FromSliceWithValidity(a.Name(), out, valid)
}

// Add returns the element-wise sum of two equal-length columns.
func Add[N dtype.Native](a, b *Chunked[N]) (*Chunked[N], error) {
	return binary(opAdd, a, b)
}

// Sub returns the element-wise difference of two equal-length columns.
func Sub[N dtype.Native](a, b *Chunked[N]) (*Chunked[N], error) {
	return binary(opSub, a, b)
}

// Mul returns the element-wise product of two equal-length columns.
func Mul[N dtype.Native](a, b *Chunked[N]) (*Chunked[N], error) {
	return binary(opMul, a, b)
}

// Div returns the element-wise quotient of two equal-length columns.
// Integer division by zero yields null at that position.
func Div[N dtype.Native](a, b *Chunked[N]) (*Chunked[N], error) {
	return binary(opDiv, a, b)
}

// AddScalar broadcasts s across the column.
func AddScalar[N dtype.Native](a *Chunked[N], s N) *Chunked[N] {
	return broadcast(opAdd, a, s)
}

// SubScalar broadcasts s across the column.
func SubScalar[N dtype.Native](a *Chunked[N], s N) *Chunked[N] {
	return broadcast(opSub, a, s)
}

// MulScalar broadcasts s across the column.
func MulScalar[N dtype.Native](a *Chunked[N], s N) *Chunked[N] {
	return broadcast(opMul, a, s)
}

// DivScalar broadcasts s across the column. An integer zero divisor
// yields an all-null column.
func DivScalar[N dtype.Native](a *Chunked[N], s N) *Chunked[N] {
	return broadcast(opDiv, a, s)
}
