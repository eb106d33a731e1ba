// Package scale has linear scales and axis tick generation.
package scale

import "math"

// DefaultTickCount is the approximate number of ticks drawn on an axis.
const DefaultTickCount = 10

// Linear maps a continuous domain onto a continuous pixel range.
// A Linear is an immutable value; Apply has no side effects.
type Linear struct {
	d0, d1 float64
	r0, r1 float64
}

// NewLinear creates a linear scale mapping [d0, d1] to [r0, r1].
func NewLinear(d0, d1, r0, r1 float64) Linear {
	return Linear{d0: d0, d1: d1, r0: r0, r1: r1}
}

// Domain returns the input extent of the scale.
func (s Linear) Domain() (float64, float64) {
	return s.d0, s.d1
}

// Range returns the output extent of the scale.
func (s Linear) Range() (float64, float64) {
	return s.r0, s.r1
}

// Degenerate reports whether the domain has zero width.
func (s Linear) Degenerate() bool {
	return s.d0 == s.d1
}

// Apply maps a domain value to the range.
// NaN maps to NaN. A degenerate scale maps every other value to the middle of its range.
func (s Linear) Apply(v float64) float64 {
	if math.IsNaN(v) {
		return math.NaN()
	}
	if s.Degenerate() {
		return (s.r0 + s.r1) / 2
	}
	t := (v - s.d0) / (s.d1 - s.d0)
	return s.r0 + t*(s.r1-s.r0)
}

// Invert maps a range value back to the domain.
// A degenerate scale inverts every value to its single domain value.
func (s Linear) Invert(px float64) float64 {
	if math.IsNaN(px) {
		return math.NaN()
	}
	if s.Degenerate() || s.r0 == s.r1 {
		return s.d0
	}
	t := (px - s.r0) / (s.r1 - s.r0)
	return s.d0 + t*(s.d1-s.d0)
}

// Ticks returns roughly count human-friendly values inside the domain.
func (s Linear) Ticks(count int) []float64 {
	lo, hi := s.d0, s.d1
	if lo > hi {
		lo, hi = hi, lo
	}
	return Ticks(lo, hi, count)
}

// TickFormat returns a formatter suited to the tick step for count ticks.
func (s Linear) TickFormat(count int) func(float64) string {
	lo, hi := s.d0, s.d1
	if lo > hi {
		lo, hi = hi, lo
	}
	return fixedFormatter(Precision(TickStep(lo, hi, count)))
}
