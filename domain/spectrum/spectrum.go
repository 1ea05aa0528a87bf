// Package spectrum defines spectral data types and the numeric operations
// performed on them: loading measurement files, linear background removal,
// and trapezoidal intensity integration.
package spectrum

import "math"

// Sample is a single (x, y) measurement.
type Sample struct {
	X float64
	Y float64
}

// Point is a coordinate in data space, typically picked by the user on the plot.
type Point struct {
	X float64
	Y float64
}

// Spectrum is an ordered sequence of samples. X values are expected to be
// ascending; this is the convention of the measurement files, not an
// enforced invariant of the type.
type Spectrum []Sample

// Clone returns a deep copy of the spectrum.
func (s Spectrum) Clone() Spectrum {
	out := make(Spectrum, len(s))
	copy(out, s)
	return out
}

// Xs returns the x values as a fresh slice.
func (s Spectrum) Xs() []float64 {
	xs := make([]float64, len(s))
	for i, sm := range s {
		xs[i] = sm.X
	}
	return xs
}

// Ys returns the y values as a fresh slice.
func (s Spectrum) Ys() []float64 {
	ys := make([]float64, len(s))
	for i, sm := range s {
		ys[i] = sm.Y
	}
	return ys
}

// XRange returns the minimum and maximum x values.
// Returns (0, 0) for an empty spectrum.
func (s Spectrum) XRange() (min, max float64) {
	if len(s) == 0 {
		return 0, 0
	}
	min, max = s[0].X, s[0].X
	for _, sm := range s[1:] {
		if sm.X < min {
			min = sm.X
		}
		if sm.X > max {
			max = sm.X
		}
	}
	return min, max
}

// NearestIndex returns the index of the sample whose x value is closest to x.
// Returns -1 for an empty spectrum. Ties resolve to the lower index.
func (s Spectrum) NearestIndex(x float64) int {
	if len(s) == 0 {
		return -1
	}
	best := 0
	bestDist := math.Abs(s[0].X - x)
	for i, sm := range s[1:] {
		if d := math.Abs(sm.X - x); d < bestDist {
			best = i + 1
			bestDist = d
		}
	}
	return best
}
