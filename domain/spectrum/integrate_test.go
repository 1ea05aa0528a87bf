package spectrum

import (
	"errors"
	"math"
	"testing"
)

func TestIntensity(t *testing.T) {
	tests := []struct {
		name string
		s    Spectrum
		want float64
	}{
		{
			name: "linear ramp",
			s:    Spectrum{{0, 0}, {1, 2}, {2, 4}},
			want: 4.0,
		},
		{
			name: "constant",
			s:    Spectrum{{0, 3}, {2, 3}, {5, 3}},
			want: 15.0,
		},
		{
			name: "uneven spacing",
			s:    Spectrum{{0, 0}, {1, 1}, {4, 1}},
			want: 3.5,
		},
		{
			name: "negative values cancel",
			s:    Spectrum{{0, -1}, {1, 1}},
			want: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Intensity(tt.s)
			if err != nil {
				t.Fatalf("Intensity() error = %v", err)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Intensity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIntensityInsufficientData(t *testing.T) {
	for _, s := range []Spectrum{nil, {}, {{1, 1}}} {
		_, err := Intensity(s)
		if !errors.Is(err, ErrInsufficientData) {
			t.Errorf("Intensity(%v) error = %v, want ErrInsufficientData", s, err)
		}
	}
}

func TestIntensityUnsorted(t *testing.T) {
	_, err := Intensity(Spectrum{{2, 0}, {1, 0}, {3, 0}})
	if !errors.Is(err, ErrUnsortedData) {
		t.Errorf("Intensity() error = %v, want ErrUnsortedData", err)
	}
}

func TestIntensityBetween(t *testing.T) {
	s := Spectrum{{0, 0}, {1, 2}, {2, 4}, {3, 6}, {4, 8}}

	tests := []struct {
		name         string
		x1, x2       float64
		wantArea     float64
		wantLo, want float64
	}{
		{
			name:     "exact sample bounds",
			x1:       1,
			x2:       3,
			wantArea: 8.0,
			wantLo:   1,
			want:     3,
		},
		{
			name:     "bounds snap to nearest sample",
			x1:       0.9,
			x2:       3.2,
			wantArea: 8.0,
			wantLo:   1,
			want:     3,
		},
		{
			name:     "reversed bounds",
			x1:       3,
			x2:       1,
			wantArea: 8.0,
			wantLo:   1,
			want:     3,
		},
		{
			name:     "whole range",
			x1:       -10,
			x2:       10,
			wantArea: 16.0,
			wantLo:   0,
			want:     4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			area, lo, hi, err := IntensityBetween(s, tt.x1, tt.x2)
			if err != nil {
				t.Fatalf("IntensityBetween() error = %v", err)
			}
			if math.Abs(area-tt.wantArea) > 1e-12 {
				t.Errorf("area = %v, want %v", area, tt.wantArea)
			}
			if lo != tt.wantLo || hi != tt.want {
				t.Errorf("bounds = (%v, %v), want (%v, %v)", lo, hi, tt.wantLo, tt.want)
			}
		})
	}
}

func TestIntensityBetweenDegenerateRange(t *testing.T) {
	s := Spectrum{{0, 0}, {1, 2}, {2, 4}}
	_, _, _, err := IntensityBetween(s, 1.01, 0.99)
	if !errors.Is(err, ErrInvalidSelection) {
		t.Errorf("IntensityBetween() error = %v, want ErrInvalidSelection", err)
	}
}

func TestIntensityBetweenInsufficientData(t *testing.T) {
	_, _, _, err := IntensityBetween(Spectrum{{1, 1}}, 0, 2)
	if !errors.Is(err, ErrInsufficientData) {
		t.Errorf("IntensityBetween() error = %v, want ErrInsufficientData", err)
	}
}

func TestNearestIndex(t *testing.T) {
	s := Spectrum{{0, 0}, {1, 0}, {2, 0}}

	tests := []struct {
		x    float64
		want int
	}{
		{-5, 0},
		{0.4, 0},
		{0.6, 1},
		{1.5, 1}, // tie resolves to lower index
		{2.4, 2},
		{99, 2},
	}

	for _, tt := range tests {
		if got := s.NearestIndex(tt.x); got != tt.want {
			t.Errorf("NearestIndex(%v) = %d, want %d", tt.x, got, tt.want)
		}
	}

	if got := Spectrum(nil).NearestIndex(1); got != -1 {
		t.Errorf("NearestIndex on empty = %d, want -1", got)
	}
}
