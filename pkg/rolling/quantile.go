package rolling

import (
	"math"
	"sort"

	"github.com/strataframe/strata/pkg/chunked"
	"github.com/strataframe/strata/pkg/dtype"
	"github.com/strataframe/strata/pkg/strataerrors"
)

// Rolling quantiles keep an order-statistics structure over the window:
// the column's non-null values are rank-compressed once up front, a
// Fenwick tree counts how many of each rank the window holds, and the
// k-th smallest value is recovered by a binary lift over the tree. Both
// the per-step update and the per-step query are logarithmic in the
// number of distinct values.

type orderStats struct {
	sorted []float64 // distinct values, ascending
	tree   []int     // Fenwick counts, 1-based
	size   int       // values currently in the window
}

func newOrderStats(distinct []float64) *orderStats {
	return &orderStats{
		sorted: distinct,
		tree:   make([]int, len(distinct)+1),
	}
}

func (s *orderStats) rank(v float64) int {
	return sort.SearchFloat64s(s.sorted, v)
}

func (s *orderStats) update(rank, delta int) {
	s.size += delta
	for i := rank + 1; i < len(s.tree); i += i & (-i) {
		s.tree[i] += delta
	}
}

// kth returns the k-th smallest value in the window, 1-based.
func (s *orderStats) kth(k int) float64 {
	pos := 0
	step := 1
	for step < len(s.tree) {
		step <<= 1
	}
	for step >>= 1; step > 0; step >>= 1 {
		next := pos + step
		if next < len(s.tree) && s.tree[next] < k {
			pos = next
			k -= s.tree[next]
		}
	}
	return s.sorted[pos]
}

// interpolate returns the linear-interpolation quantile over the k
// values the window currently holds.
func (s *orderStats) interpolate(p float64) float64 {
	h := p * float64(s.size-1)
	lo := int(math.Floor(h))
	hi := int(math.Ceil(h))
	vLo := s.kth(lo + 1)
	if hi == lo {
		return vLo
	}
	vHi := s.kth(hi + 1)
	return vLo + (h-float64(lo))*(vHi-vLo)
}

// Quantile computes the rolling quantile at probability p as a float64
// column, with linear interpolation between adjacent order statistics.
// p must lie in [0, 1]; violation is rejected before any windowing
// work.
func Quantile[N dtype.Native](c *chunked.Chunked[N], p float64, o Options) (*chunked.Chunked[float64], error) {
	if p < 0 || p > 1 || math.IsNaN(p) {
		return nil, strataerrors.New(strataerrors.ErrorTypeValidation,
			"quantile probability must lie in [0, 1]").
			WithDetail("probability", p)
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := rejectWeights(o, "quantile"); err != nil {
		return nil, err
	}

	vals, valid := c.Flatten()

	// Rank-compress the non-null domain once.
	distinct := make([]float64, 0, len(vals))
	for i, v := range vals {
		if valid == nil || valid[i] {
			distinct = append(distinct, float64(v))
		}
	}
	sort.Float64s(distinct)
	distinct = dedupSorted(distinct)

	stats := newOrderStats(distinct)
	out := make([]float64, len(vals))
	outValid := make([]bool, len(vals))

	walk(vals, valid, o,
		func(_ int, v N) { stats.update(stats.rank(float64(v)), 1) },
		func(_ int, v N) { stats.update(stats.rank(float64(v)), -1) },
		func(i, _, count int) {
			if count >= o.MinPeriods {
				out[i] = stats.interpolate(p)
				outValid[i] = true
			}
		})

	return chunked.FromSliceWithValidity(c.Name(), out, outValid), nil
}

// Median computes the rolling median as a float64 column; it is the 0.5
// quantile.
func Median[N dtype.Native](c *chunked.Chunked[N], o Options) (*chunked.Chunked[float64], error) {
	return Quantile(c, 0.5, o)
}

func dedupSorted(vals []float64) []float64 {
	if len(vals) == 0 {
		return vals
	}
	out := vals[:1]
	for _, v := range vals[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
