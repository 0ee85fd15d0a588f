// Package rolling implements the windowed-aggregation surface of the
// Strata engine: mean, sum, median, quantile, min, max, variance and
// standard deviation over a sliding window, callable on any numeric
// column.
//
// Each operation takes the source column and an Options value and
// returns a new column of equal length. A window aggregates exactly the
// non-null source values inside it; the output position is null when
// fewer than MinPeriods non-null values fall in the window. Nulls never
// contribute to an aggregate and never count toward MinPeriods.
//
// All parameter validation happens before any windowing work starts;
// invalid options are rejected with a validation error, never silently
// clamped.
package rolling

import (
	"github.com/strataframe/strata/pkg/strataerrors"
)

// Closed selects which endpoints of a trailing window's index interval
// (i-w, i] are included. The default, ClosedRight, reproduces the
// classic trailing window of the last w positions.
type Closed uint8

const (
	// ClosedRight includes the right endpoint only: positions
	// [i-w+1, i].
	ClosedRight Closed = iota
	// ClosedLeft includes the left endpoint only: positions
	// [i-w, i-1].
	ClosedLeft
	// ClosedBoth includes both endpoints: positions [i-w, i], one more
	// position than the window size.
	ClosedBoth
	// ClosedNone includes neither endpoint: positions [i-w+1, i-1].
	ClosedNone
)

// Options describes one rolling computation. It is an immutable
// per-call value and owns no resources.
type Options struct {
	// WindowSize is the window length in positions. Must be positive.
	WindowSize int

	// MinPeriods is the minimum count of non-null values a window must
	// contain for its aggregate to be non-null. Must be at least 1 and
	// at most WindowSize.
	MinPeriods int

	// Weights are optional per-position multipliers, one per window
	// slot. Honored by Mean; every other aggregation rejects configured
	// weights as a capability error. Weighted windows require a column
	// without nulls and the default ClosedRight closure.
	Weights []float64

	// Center places the window symmetrically around the output
	// position instead of trailing it: position i covers
	// [i - w/2, i + (w-1)/2], so for even window sizes the extra
	// element is taken from the trailing (past) side. Centered windows
	// ignore Closed.
	Center bool

	// Closed is the boundary-inclusivity policy for trailing windows.
	Closed Closed
}

// NewOptions returns trailing-window options with MinPeriods equal to
// the window size, mirroring the engine's default strictness.
func NewOptions(windowSize int) Options {
	return Options{WindowSize: windowSize, MinPeriods: windowSize}
}

// Validate rejects out-of-domain options. It runs before any windowing
// computation in every aggregation entry point.
func (o Options) Validate() error {
	if o.WindowSize <= 0 {
		return strataerrors.New(strataerrors.ErrorTypeValidation,
			"window size must be positive").
			WithDetail("window_size", o.WindowSize)
	}
	if o.MinPeriods < 1 {
		return strataerrors.New(strataerrors.ErrorTypeValidation,
			"min periods must be at least 1").
			WithDetail("min_periods", o.MinPeriods)
	}
	if o.MinPeriods > o.WindowSize {
		return strataerrors.New(strataerrors.ErrorTypeValidation,
			"min periods cannot exceed window size").
			WithDetail("min_periods", o.MinPeriods).
			WithDetail("window_size", o.WindowSize)
	}
	if o.Weights != nil && len(o.Weights) != o.WindowSize {
		return strataerrors.New(strataerrors.ErrorTypeValidation,
			"weights length must equal window size").
			WithDetail("weights", len(o.Weights)).
			WithDetail("window_size", o.WindowSize)
	}
	if o.Weights != nil && o.Closed != ClosedRight {
		// A non-default closure changes the window span, so the
		// one-weight-per-slot alignment no longer holds.
		return strataerrors.New(strataerrors.ErrorTypeValidation,
			"weights require the default window closure").
			WithDetail("closed", int(o.Closed))
	}
	return nil
}

// windowBounds returns the half-open index interval [start, end) the
// window covers at output position i, clamped to [0, n). Both bounds
// are non-decreasing in i, which is what lets every kernel maintain its
// state with incremental add/remove updates.
func (o Options) windowBounds(i, n int) (start, end int) {
	w := o.WindowSize
	if o.Center {
		start = i - w/2
		end = start + w
	} else {
		switch o.Closed {
		case ClosedRight:
			start, end = i-w+1, i+1
		case ClosedLeft:
			start, end = i-w, i
		case ClosedBoth:
			start, end = i-w, i+1
		case ClosedNone:
			start, end = i-w+1, i
		}
	}
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if end < start {
		end = start
	}
	return start, end
}

// rejectWeights is the shared guard for aggregations that do not
// support weighted windows.
func rejectWeights(o Options, op string) error {
	if o.Weights != nil {
		return strataerrors.Newf(strataerrors.ErrorTypeCapability,
			"rolling %s does not support weights", op)
	}
	return nil
}
