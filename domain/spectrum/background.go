package spectrum

import "fmt"

// Line is a linear background model y = Slope*x + Intercept, fit through two
// user-picked points. It exists only for the duration of a removal operation.
type Line struct {
	Slope     float64
	Intercept float64
}

// At evaluates the line at x.
func (l Line) At(x float64) float64 {
	return l.Slope*x + l.Intercept
}

// FitLine computes the line through two picked points. The points may arrive
// in either x order. Two points with the same x value do not define a line
// and yield ErrInvalidSelection.
func FitLine(p1, p2 Point) (Line, error) {
	if p1.X > p2.X {
		p1, p2 = p2, p1
	}
	if p1.X == p2.X {
		return Line{}, fmt.Errorf("background points share x=%g: %w", p1.X, ErrInvalidSelection)
	}

	slope := (p2.Y - p1.Y) / (p2.X - p1.X)
	return Line{
		Slope:     slope,
		Intercept: p1.Y - slope*p1.X,
	}, nil
}

// RemoveBackground returns a new spectrum with the line's value at each
// sample x subtracted from y. The receiver is not modified.
func (s Spectrum) RemoveBackground(l Line) Spectrum {
	out := make(Spectrum, len(s))
	for i, sm := range s {
		out[i] = Sample{X: sm.X, Y: sm.Y - l.At(sm.X)}
	}
	return out
}
