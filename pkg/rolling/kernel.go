package rolling

import (
	"math"

	"github.com/strataframe/strata/pkg/chunked"
	"github.com/strataframe/strata/pkg/dtype"
	"github.com/strataframe/strata/pkg/strataerrors"
)

// walk drives every kernel: it slides the window across the column,
// forwarding non-null positions entering the window to add and those
// leaving it to remove, then calls emit once per output position with
// the window's start index and its current non-null count. Window
// bounds are monotone in the output position, so the total add/remove
// work is linear in the series length regardless of window size.
func walk[N dtype.Native](vals []N, valid []bool, o Options,
	add func(i int, v N),
	remove func(i int, v N),
	emit func(i, start, count int),
) {
	n := len(vals)
	curStart, curEnd, count := 0, 0, 0
	for i := 0; i < n; i++ {
		start, end := o.windowBounds(i, n)
		for ; curEnd < end; curEnd++ {
			if valid == nil || valid[curEnd] {
				count++
				if add != nil {
					add(curEnd, vals[curEnd])
				}
			}
		}
		for ; curStart < start; curStart++ {
			if valid == nil || valid[curStart] {
				count--
				if remove != nil {
					remove(curStart, vals[curStart])
				}
			}
		}
		emit(i, start, count)
	}
}

// Sum computes the rolling sum, preserving the column's native type.
func Sum[N dtype.Native](c *chunked.Chunked[N], o Options) (*chunked.Chunked[N], error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := rejectWeights(o, "sum"); err != nil {
		return nil, err
	}

	vals, valid := c.Flatten()
	out := make([]N, len(vals))
	outValid := make([]bool, len(vals))

	var sum N
	walk(vals, valid, o,
		func(_ int, v N) { sum += v },
		func(_ int, v N) { sum -= v },
		func(i, _, count int) {
			if count >= o.MinPeriods {
				out[i] = sum
				outValid[i] = true
			}
		})

	return chunked.FromSliceWithValidity(c.Name(), out, outValid), nil
}

// Mean computes the rolling mean as a float64 column. When Options
// carry weights, each window is the weighted mean of its values; the
// column must then contain no nulls.
func Mean[N dtype.Native](c *chunked.Chunked[N], o Options) (*chunked.Chunked[float64], error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if o.Weights != nil {
		return weightedMean(c, o)
	}

	vals, valid := c.Flatten()
	out := make([]float64, len(vals))
	outValid := make([]bool, len(vals))

	// Incremental mean update; stable under long series because the
	// running state is the mean itself, not an unbounded sum.
	mean, cnt := 0.0, 0
	walk(vals, valid, o,
		func(_ int, v N) {
			cnt++
			mean += (float64(v) - mean) / float64(cnt)
		},
		func(_ int, v N) {
			cnt--
			if cnt == 0 {
				mean = 0
			} else {
				mean -= (float64(v) - mean) / float64(cnt)
			}
		},
		func(i, _, count int) {
			if count >= o.MinPeriods {
				out[i] = mean
				outValid[i] = true
			}
		})

	return chunked.FromSliceWithValidity(c.Name(), out, outValid), nil
}

func weightedMean[N dtype.Native](c *chunked.Chunked[N], o Options) (*chunked.Chunked[float64], error) {
	if c.NullCount() > 0 {
		return nil, strataerrors.New(strataerrors.ErrorTypeCapability,
			"weighted rolling windows require a column without nulls").
			WithDetail("column", c.Name()).
			WithDetail("null_count", c.NullCount())
	}

	vals, _ := c.Flatten()
	out := make([]float64, len(vals))
	outValid := make([]bool, len(vals))

	for i := range vals {
		start, end := o.windowBounds(i, len(vals))
		width := end - start
		if width < o.MinPeriods {
			continue
		}
		// Truncated edge windows use the trailing end of the weight
		// vector so the newest position always gets the last weight.
		weights := o.Weights[o.WindowSize-width:]
		num, den := 0.0, 0.0
		for j := 0; j < width; j++ {
			num += float64(vals[start+j]) * weights[j]
			den += weights[j]
		}
		if den != 0 {
			out[i] = num / den
			outValid[i] = true
		}
	}

	return chunked.FromSliceWithValidity(c.Name(), out, outValid), nil
}

// Var computes the rolling sample variance (one delta degree of
// freedom) as a float64 column. Windows with fewer than two non-null
// values yield null.
func Var[N dtype.Native](c *chunked.Chunked[N], o Options) (*chunked.Chunked[float64], error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := rejectWeights(o, "var"); err != nil {
		return nil, err
	}

	vals, valid := c.Flatten()
	out := make([]float64, len(vals))
	outValid := make([]bool, len(vals))

	// Welford's update and its inverse: the add/remove pair keeps the
	// running mean and squared-deviation total without re-summing each
	// window.
	mean, m2 := 0.0, 0.0
	cnt := 0
	walk(vals, valid, o,
		func(_ int, v N) {
			cnt++
			d := float64(v) - mean
			mean += d / float64(cnt)
			m2 += d * (float64(v) - mean)
		},
		func(_ int, v N) {
			cnt--
			if cnt == 0 {
				mean, m2 = 0, 0
				return
			}
			x := float64(v)
			oldMean := mean
			mean -= (x - mean) / float64(cnt)
			m2 -= (x - mean) * (x - oldMean)
			if m2 < 0 {
				m2 = 0
			}
		},
		func(i, _, count int) {
			if count >= o.MinPeriods && count >= 2 {
				out[i] = m2 / float64(count-1)
				outValid[i] = true
			}
		})

	return chunked.FromSliceWithValidity(c.Name(), out, outValid), nil
}

// Std computes the rolling sample standard deviation as a float64
// column.
func Std[N dtype.Native](c *chunked.Chunked[N], o Options) (*chunked.Chunked[float64], error) {
	variance, err := Var(c, o)
	if err != nil {
		return nil, err
	}
	defer variance.Release()

	vals, valid := variance.Flatten()
	out := make([]float64, len(vals))
	outValid := make([]bool, len(vals))
	for i, v := range vals {
		if valid == nil || valid[i] {
			out[i] = math.Sqrt(v)
			outValid[i] = true
		}
	}
	return chunked.FromSliceWithValidity(variance.Name(), out, outValid), nil
}
