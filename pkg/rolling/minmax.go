package rolling

import (
	"github.com/strataframe/strata/pkg/chunked"
	"github.com/strataframe/strata/pkg/dtype"
)

// Rolling min/max use a monotonic index deque: entering values evict
// dominated predecessors from the back, stale indices fall off the
// front as the window start advances. Every index enters and leaves the
// deque at most once, so the whole pass is amortized constant per step.

type monotonicDeque[N dtype.Native] struct {
	idx  []int
	vals []N
	// keep reports whether the incumbent back value beats the entering
	// one and should stay.
	keep func(back, entering N) bool
}

func (d *monotonicDeque[N]) push(i int, v N) {
	for len(d.idx) > 0 && !d.keep(d.vals[len(d.vals)-1], v) {
		d.idx = d.idx[:len(d.idx)-1]
		d.vals = d.vals[:len(d.vals)-1]
	}
	d.idx = append(d.idx, i)
	d.vals = append(d.vals, v)
}

func (d *monotonicDeque[N]) evictBefore(start int) {
	drop := 0
	for drop < len(d.idx) && d.idx[drop] < start {
		drop++
	}
	d.idx = d.idx[drop:]
	d.vals = d.vals[drop:]
}

func (d *monotonicDeque[N]) front() (N, bool) {
	if len(d.idx) == 0 {
		var zero N
		return zero, false
	}
	return d.vals[0], true
}

func extremum[N dtype.Native](c *chunked.Chunked[N], o Options, op string,
	keep func(back, entering N) bool) (*chunked.Chunked[N], error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := rejectWeights(o, op); err != nil {
		return nil, err
	}

	vals, valid := c.Flatten()
	out := make([]N, len(vals))
	outValid := make([]bool, len(vals))

	d := &monotonicDeque[N]{keep: keep}
	walk(vals, valid, o,
		func(i int, v N) { d.push(i, v) },
		nil, // stale entries are evicted by window start at emit time
		func(i, start, count int) {
			if count < o.MinPeriods {
				return
			}
			d.evictBefore(start)
			if v, ok := d.front(); ok {
				out[i] = v
				outValid[i] = true
			}
		})

	return chunked.FromSliceWithValidity(c.Name(), out, outValid), nil
}

// Min computes the rolling minimum, preserving the column's native
// type.
func Min[N dtype.Native](c *chunked.Chunked[N], o Options) (*chunked.Chunked[N], error) {
	return extremum(c, o, "min", func(back, entering N) bool { return back < entering })
}

// Max computes the rolling maximum, preserving the column's native
// type.
func Max[N dtype.Native](c *chunked.Chunked[N], o Options) (*chunked.Chunked[N], error) {
	return extremum(c, o, "max", func(back, entering N) bool { return back > entering })
}
