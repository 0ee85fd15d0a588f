package rolling

import (
	"github.com/strataframe/strata/pkg/chunked"
	"github.com/strataframe/strata/pkg/dtype"
)

// Agg is the uniform windowed-aggregation surface the time-series
// operator layer consumes. Mean, variance, standard deviation, median
// and quantile promote to float64; sum, min and max preserve the
// column's native type.
type Agg[N dtype.Native] interface {
	RollingSum(o Options) (*chunked.Chunked[N], error)
	RollingMean(o Options) (*chunked.Chunked[float64], error)
	RollingMedian(o Options) (*chunked.Chunked[float64], error)
	RollingQuantile(p float64, o Options) (*chunked.Chunked[float64], error)
	RollingMin(o Options) (*chunked.Chunked[N], error)
	RollingMax(o Options) (*chunked.Chunked[N], error)
	RollingVar(o Options) (*chunked.Chunked[float64], error)
	RollingStd(o Options) (*chunked.Chunked[float64], error)
}

// intAgg adapts an integral column to the Agg surface.
type intAgg[N dtype.IntegerNative] struct {
	col *chunked.Chunked[N]
}

// OverInts exposes the rolling aggregation surface of an
// integer-marker column. The constraint is the membership check: only
// columns whose native scalar is an integer width satisfy it.
func OverInts[N dtype.IntegerNative](c *chunked.Chunked[N]) Agg[N] {
	return intAgg[N]{col: c}
}

func (a intAgg[N]) RollingSum(o Options) (*chunked.Chunked[N], error) {
	return Sum(a.col, o)
}

func (a intAgg[N]) RollingMean(o Options) (*chunked.Chunked[float64], error) {
	return Mean(a.col, o)
}

func (a intAgg[N]) RollingMedian(o Options) (*chunked.Chunked[float64], error) {
	return Median(a.col, o)
}

func (a intAgg[N]) RollingQuantile(p float64, o Options) (*chunked.Chunked[float64], error) {
	return Quantile(a.col, p, o)
}

func (a intAgg[N]) RollingMin(o Options) (*chunked.Chunked[N], error) {
	return Min(a.col, o)
}

func (a intAgg[N]) RollingMax(o Options) (*chunked.Chunked[N], error) {
	return Max(a.col, o)
}

func (a intAgg[N]) RollingVar(o Options) (*chunked.Chunked[float64], error) {
	return Var(a.col, o)
}

func (a intAgg[N]) RollingStd(o Options) (*chunked.Chunked[float64], error) {
	return Std(a.col, o)
}

// OverFloats exposes the same surface for float-marker columns; the
// kernels are shared, only the constraint differs.
func OverFloats[N dtype.FloatNative](c *chunked.Chunked[N]) Agg[N] {
	return floatAgg[N]{col: c}
}

type floatAgg[N dtype.FloatNative] struct {
	col *chunked.Chunked[N]
}

func (a floatAgg[N]) RollingSum(o Options) (*chunked.Chunked[N], error) {
	return Sum(a.col, o)
}

func (a floatAgg[N]) RollingMean(o Options) (*chunked.Chunked[float64], error) {
	return Mean(a.col, o)
}

func (a floatAgg[N]) RollingMedian(o Options) (*chunked.Chunked[float64], error) {
	return Median(a.col, o)
}

func (a floatAgg[N]) RollingQuantile(p float64, o Options) (*chunked.Chunked[float64], error) {
	return Quantile(a.col, p, o)
}

func (a floatAgg[N]) RollingMin(o Options) (*chunked.Chunked[N], error) {
	return Min(a.col, o)
}

func (a floatAgg[N]) RollingMax(o Options) (*chunked.Chunked[N], error) {
	return Max(a.col, o)
}

func (a floatAgg[N]) RollingVar(o Options) (*chunked.Chunked[float64], error) {
	return Var(a.col, o)
}

func (a floatAgg[N]) RollingStd(o Options) (*chunked.Chunked[float64], error) {
	return Std(a.col, o)
}
