package rolling

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strataframe/strata/pkg/chunked"
	"github.com/strataframe/strata/pkg/dtype"
	"github.com/strataframe/strata/pkg/strataerrors"
)

// collect materializes a column as values plus a validity mask for
// assertion convenience.
func collect[N dtype.Native](c *chunked.Chunked[N]) ([]N, []bool) {
	vals := make([]N, c.Len())
	valid := make([]bool, c.Len())
	for i := 0; i < c.Len(); i++ {
		vals[i], valid[i] = c.Get(i)
	}
	return vals, valid
}

func TestRollingMeanTrailing(t *testing.T) {
	c := chunked.FromSlice("x", []int64{1, 2, 3, 4, 5})
	defer c.Release()

	out, err := Mean(c, Options{WindowSize: 3, MinPeriods: 1})
	require.NoError(t, err)
	defer out.Release()

	vals, valid := collect(out)
	assert.Equal(t, []bool{true, true, true, true, true}, valid)
	assert.Equal(t, []float64{1, 1.5, 2, 3, 4}, vals)
}

func TestRollingSumMinPeriods(t *testing.T) {
	c := chunked.FromSliceWithValidity("x",
		[]int64{1, 0, 3, 4}, []bool{true, false, true, true})
	defer c.Release()

	out, err := Sum(c, Options{WindowSize: 2, MinPeriods: 2})
	require.NoError(t, err)
	defer out.Release()

	vals, valid := collect(out)
	assert.Equal(t, []bool{false, false, false, true}, valid)
	assert.Equal(t, int64(7), vals[3])
}

func TestRollingMaxCentered(t *testing.T) {
	c := chunked.FromSlice("x", []int64{1, 5, 2, 8, 3})
	defer c.Release()

	out, err := Max(c, Options{WindowSize: 3, MinPeriods: 1, Center: true})
	require.NoError(t, err)
	defer out.Release()

	vals, valid := collect(out)
	assert.Equal(t, []bool{true, true, true, true, true}, valid)
	assert.Equal(t, []int64{5, 5, 8, 8, 8}, vals)
}

func TestRollingCenteredEvenWindowTieBreak(t *testing.T) {
	// Even window sizes take the extra element from the trailing side:
	// window 4 at position i covers [i-2, i+1].
	c := chunked.FromSlice("x", []int64{1, 2, 3, 4, 5})
	defer c.Release()

	out, err := Sum(c, Options{WindowSize: 4, MinPeriods: 1, Center: true})
	require.NoError(t, err)
	defer out.Release()

	vals, _ := collect(out)
	// i=2 covers {1,2,3,4}; i=3 covers {2,3,4,5}; edges truncate.
	assert.Equal(t, []int64{3, 6, 10, 14, 12}, vals)
}

func TestQuantileProbabilityValidation(t *testing.T) {
	c := chunked.FromSlice("x", []int64{1, 2, 3})
	defer c.Release()

	for _, p := range []float64{1.5, -0.1, math.NaN()} {
		_, err := Quantile(c, p, Options{WindowSize: 2, MinPeriods: 1})
		require.Error(t, err)
		assert.True(t, strataerrors.IsType(err, strataerrors.ErrorTypeValidation))
	}
}

func TestOptionsValidation(t *testing.T) {
	c := chunked.FromSlice("x", []int64{1, 2, 3})
	defer c.Release()

	tests := []struct {
		name string
		o    Options
	}{
		{"non-positive window", Options{WindowSize: 0, MinPeriods: 1}},
		{"negative window", Options{WindowSize: -3, MinPeriods: 1}},
		{"zero min periods", Options{WindowSize: 3, MinPeriods: 0}},
		{"min periods beyond window", Options{WindowSize: 3, MinPeriods: 4}},
		{"weights length mismatch", Options{WindowSize: 3, MinPeriods: 1, Weights: []float64{1, 2}}},
		{"weights with closed both", Options{WindowSize: 3, MinPeriods: 1, Weights: []float64{1, 1, 1}, Closed: ClosedBoth}},
		{"weights with closed left", Options{WindowSize: 3, MinPeriods: 1, Weights: []float64{1, 1, 1}, Closed: ClosedLeft}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Sum(c, tt.o)
			require.Error(t, err)
			assert.True(t, strataerrors.IsType(err, strataerrors.ErrorTypeValidation))
		})
	}
}

func TestRollingMin(t *testing.T) {
	c := chunked.FromSlice("x", []int32{3, 1, 4, 1, 5})
	defer c.Release()

	out, err := Min(c, Options{WindowSize: 2, MinPeriods: 1})
	require.NoError(t, err)
	defer out.Release()

	vals, _ := collect(out)
	assert.Equal(t, []int32{3, 1, 1, 1, 1}, vals)
}

func TestRollingMinMaxSkipNulls(t *testing.T) {
	c := chunked.FromSliceWithValidity("x",
		[]int64{9, 0, 2, 7}, []bool{true, false, true, true})
	defer c.Release()

	out, err := Max(c, Options{WindowSize: 3, MinPeriods: 1})
	require.NoError(t, err)
	defer out.Release()

	vals, valid := collect(out)
	assert.Equal(t, []bool{true, true, true, true}, valid)
	// The null at position 1 never contributes.
	assert.Equal(t, []int64{9, 9, 9, 7}, vals)
}

func TestRollingVarAndStd(t *testing.T) {
	c := chunked.FromSlice("x", []int64{1, 2, 3, 4})
	defer c.Release()

	variance, err := Var(c, Options{WindowSize: 3, MinPeriods: 3})
	require.NoError(t, err)
	defer variance.Release()

	vals, valid := collect(variance)
	assert.Equal(t, []bool{false, false, true, true}, valid)
	assert.InDelta(t, 1.0, vals[2], 1e-12)
	assert.InDelta(t, 1.0, vals[3], 1e-12)

	std, err := Std(c, Options{WindowSize: 3, MinPeriods: 3})
	require.NoError(t, err)
	defer std.Release()

	svals, svalid := collect(std)
	assert.Equal(t, []bool{false, false, true, true}, svalid)
	assert.InDelta(t, 1.0, svals[2], 1e-12)
}

func TestRollingVarSingleValueWindowIsNull(t *testing.T) {
	c := chunked.FromSlice("x", []int64{5, 6, 7})
	defer c.Release()

	variance, err := Var(c, Options{WindowSize: 2, MinPeriods: 1})
	require.NoError(t, err)
	defer variance.Release()

	_, valid := collect(variance)
	// Sample variance needs two values; the first window has one.
	assert.Equal(t, []bool{false, true, true}, valid)
}

func TestRollingMedian(t *testing.T) {
	c := chunked.FromSlice("x", []int64{1, 3, 2, 5, 4})
	defer c.Release()

	out, err := Median(c, Options{WindowSize: 3, MinPeriods: 3})
	require.NoError(t, err)
	defer out.Release()

	vals, valid := collect(out)
	assert.Equal(t, []bool{false, false, true, true, true}, valid)
	assert.Equal(t, []float64{0, 0, 2, 3, 4}, vals)
}

func TestRollingQuantileInterpolation(t *testing.T) {
	c := chunked.FromSlice("x", []int64{1, 2, 3, 4})
	defer c.Release()

	out, err := Quantile(c, 0.5, Options{WindowSize: 2, MinPeriods: 2})
	require.NoError(t, err)
	defer out.Release()

	vals, valid := collect(out)
	assert.Equal(t, []bool{false, true, true, true}, valid)
	assert.Equal(t, []float64{0, 1.5, 2.5, 3.5}, vals)
}

func TestRollingQuantileExtremes(t *testing.T) {
	c := chunked.FromSlice("x", []int64{4, 1, 3, 2})
	defer c.Release()

	lo, err := Quantile(c, 0, Options{WindowSize: 3, MinPeriods: 1})
	require.NoError(t, err)
	defer lo.Release()
	vals, _ := collect(lo)
	assert.Equal(t, []float64{4, 1, 1, 1}, vals)

	hi, err := Quantile(c, 1, Options{WindowSize: 3, MinPeriods: 1})
	require.NoError(t, err)
	defer hi.Release()
	vals, _ = collect(hi)
	assert.Equal(t, []float64{4, 4, 4, 3}, vals)
}

func TestWeightedMean(t *testing.T) {
	c := chunked.FromSlice("x", []int64{1, 2, 3, 4})
	defer c.Release()

	out, err := Mean(c, Options{WindowSize: 2, MinPeriods: 1, Weights: []float64{1, 3}})
	require.NoError(t, err)
	defer out.Release()

	vals, valid := collect(out)
	assert.Equal(t, []bool{true, true, true, true}, valid)
	assert.InDelta(t, 1.0, vals[0], 1e-12)
	assert.InDelta(t, 1.75, vals[1], 1e-12)
	assert.InDelta(t, 2.75, vals[2], 1e-12)
	assert.InDelta(t, 3.75, vals[3], 1e-12)
}

func TestWeightedMeanRejectsNonDefaultClosure(t *testing.T) {
	c := chunked.FromSlice("x", []int64{1, 2, 3, 4, 5})
	defer c.Release()

	// ClosedBoth widens windows past the weight vector; the combination
	// must fail validation instead of reaching the kernel.
	_, err := Mean(c, Options{
		WindowSize: 2, MinPeriods: 1,
		Weights: []float64{1, 1}, Closed: ClosedBoth,
	})
	require.Error(t, err)
	assert.True(t, strataerrors.IsType(err, strataerrors.ErrorTypeValidation))
}

func TestWeightedMeanRejectsNulls(t *testing.T) {
	c := chunked.FromSliceWithValidity("x", []int64{1, 2}, []bool{true, false})
	defer c.Release()

	_, err := Mean(c, Options{WindowSize: 2, MinPeriods: 1, Weights: []float64{1, 1}})
	require.Error(t, err)
	assert.True(t, strataerrors.IsType(err, strataerrors.ErrorTypeCapability))
}

func TestWeightsRejectedByOtherAggregations(t *testing.T) {
	c := chunked.FromSlice("x", []int64{1, 2, 3})
	defer c.Release()

	o := Options{WindowSize: 3, MinPeriods: 1, Weights: []float64{1, 1, 1}}

	_, err := Sum(c, o)
	assert.True(t, strataerrors.IsType(err, strataerrors.ErrorTypeCapability))
	_, err = Max(c, o)
	assert.True(t, strataerrors.IsType(err, strataerrors.ErrorTypeCapability))
	_, err = Var(c, o)
	assert.True(t, strataerrors.IsType(err, strataerrors.ErrorTypeCapability))
	_, err = Quantile(c, 0.5, o)
	assert.True(t, strataerrors.IsType(err, strataerrors.ErrorTypeCapability))
}

func TestClosedBoundaryPolicies(t *testing.T) {
	input := []int64{1, 2, 3, 4}

	tests := []struct {
		name      string
		closed    Closed
		wantVals  []int64
		wantValid []bool
	}{
		{"right", ClosedRight, []int64{1, 3, 5, 7}, []bool{true, true, true, true}},
		{"both", ClosedBoth, []int64{1, 3, 6, 9}, []bool{true, true, true, true}},
		{"left", ClosedLeft, []int64{0, 1, 3, 5}, []bool{false, true, true, true}},
		{"none", ClosedNone, []int64{0, 1, 2, 3}, []bool{false, true, true, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := chunked.FromSlice("x", input)
			defer c.Release()

			out, err := Sum(c, Options{WindowSize: 2, MinPeriods: 1, Closed: tt.closed})
			require.NoError(t, err)
			defer out.Release()

			vals, valid := collect(out)
			assert.Equal(t, tt.wantValid, valid)
			for i, ok := range valid {
				if ok {
					assert.Equal(t, tt.wantVals[i], vals[i], "position %d", i)
				}
			}
		})
	}
}

func TestRollingOnEmptyColumn(t *testing.T) {
	c := chunked.FromSlice("x", []int64{})
	defer c.Release()

	out, err := Sum(c, Options{WindowSize: 3, MinPeriods: 1})
	require.NoError(t, err)
	defer out.Release()
	assert.Equal(t, 0, out.Len())
}

func TestRollingOutputLengthMatchesInput(t *testing.T) {
	c := chunked.FromSliceWithValidity("x",
		[]uint16{5, 1, 0, 9, 2, 2}, []bool{true, true, false, true, true, true})
	defer c.Release()

	o := Options{WindowSize: 4, MinPeriods: 2}
	sum, err := Sum(c, o)
	require.NoError(t, err)
	defer sum.Release()
	assert.Equal(t, c.Len(), sum.Len())

	med, err := Median(c, o)
	require.NoError(t, err)
	defer med.Release()
	assert.Equal(t, c.Len(), med.Len())
}

func TestAggSurfaceOverInts(t *testing.T) {
	c := chunked.FromSlice("x", []int32{1, 2, 3, 4, 5})
	defer c.Release()

	agg := OverInts(c)
	o := Options{WindowSize: 3, MinPeriods: 1}

	mean, err := agg.RollingMean(o)
	require.NoError(t, err)
	defer mean.Release()
	vals, _ := collect(mean)
	assert.Equal(t, []float64{1, 1.5, 2, 3, 4}, vals)

	sum, err := agg.RollingSum(o)
	require.NoError(t, err)
	defer sum.Release()
	svals, _ := collect(sum)
	assert.Equal(t, []int32{1, 3, 6, 9, 12}, svals)

	q, err := agg.RollingQuantile(0.5, o)
	require.NoError(t, err)
	defer q.Release()

	mn, err := agg.RollingMin(o)
	require.NoError(t, err)
	defer mn.Release()
	mvals, _ := collect(mn)
	assert.Equal(t, []int32{1, 1, 1, 2, 3}, mvals)
}

func TestAggSurfaceOverFloats(t *testing.T) {
	c := chunked.FromSlice("x", []float64{1, 2, 4})
	defer c.Release()

	agg := OverFloats(c)
	out, err := agg.RollingMean(Options{WindowSize: 2, MinPeriods: 1})
	require.NoError(t, err)
	defer out.Release()

	vals, _ := collect(out)
	assert.Equal(t, []float64{1, 1.5, 3}, vals)
}
