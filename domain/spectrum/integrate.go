package spectrum

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/integrate"
)

// Intensity computes the trapezoidal-rule integral of y over x across the
// whole spectrum. At least two samples are required, and x must be ascending.
func Intensity(s Spectrum) (float64, error) {
	if len(s) < 2 {
		return 0, fmt.Errorf("need at least 2 samples, have %d: %w", len(s), ErrInsufficientData)
	}

	xs := s.Xs()
	if !sort.Float64sAreSorted(xs) {
		return 0, ErrUnsortedData
	}
	return integrate.Trapezoidal(xs, s.Ys()), nil
}

// IntensityBetween integrates the sub-range of the spectrum bounded by the
// samples nearest to x1 and x2. The bounds may arrive in either order; the
// returned xLow and xHigh are the x values of the resolved boundary samples.
// A range that collapses to fewer than two samples yields ErrInvalidSelection.
func IntensityBetween(s Spectrum, x1, x2 float64) (area, xLow, xHigh float64, err error) {
	if len(s) < 2 {
		return 0, 0, 0, fmt.Errorf("need at least 2 samples, have %d: %w", len(s), ErrInsufficientData)
	}
	if x1 > x2 {
		x1, x2 = x2, x1
	}

	lo := s.NearestIndex(x1)
	hi := s.NearestIndex(x2)
	if lo >= hi {
		return 0, 0, 0, fmt.Errorf("integration range collapses to a single sample at x=%g: %w", s[lo].X, ErrInvalidSelection)
	}

	area, err = Intensity(s[lo : hi+1])
	if err != nil {
		return 0, 0, 0, err
	}
	return area, s[lo].X, s[hi].X, nil
}
