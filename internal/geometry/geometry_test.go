package geometry

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"Zero", 0, 0},
		{"InRange", 123.5, 123.5},
		{"Exactly360", 360, 0},
		{"Over360", 370, 10},
		{"Negative", -10, 350},
		{"LargeNegative", -730, 350},
		{"MultipleWraps", 1085, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSignedDiff(t *testing.T) {
	tests := []struct {
		name     string
		from, to float64
		want     float64
	}{
		{"NoDiff", 10, 10, 0},
		{"SmallClockwise", 10, 40, 30},
		{"SmallCounter", 40, 10, -30},
		{"AcrossSeamClockwise", 350, 20, 30},
		{"AcrossSeamCounter", 20, 350, -30},
		{"Opposite", 0, 180, 180},
		{"OppositeIsPositive", 90, 270, 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SignedDiff(tt.from, tt.to)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("SignedDiff(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestSignedDiffRange(t *testing.T) {
	for a := 0.0; a < 360; a += 7.3 {
		for b := 0.0; b < 360; b += 11.1 {
			d := SignedDiff(a, b)
			if d <= -180 || d > 180 {
				t.Fatalf("SignedDiff(%v, %v) = %v outside (-180, 180]", a, b, d)
			}
			if got := Normalize(a + d); math.Abs(got-Normalize(b)) > 1e-9 {
				t.Fatalf("applying SignedDiff(%v, %v) lands on %v, want %v", a, b, got, Normalize(b))
			}
		}
	}
}

func TestAngleFromCenter(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want float64
	}{
		{"North", 0, -5, 0},
		{"East", 5, 0, 90},
		{"South", 0, 5, 180},
		{"West", -5, 0, 270},
		{"NorthEast", 5, -5, 45},
		{"SouthWest", -5, 5, 225},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AngleFromCenter(tt.x, tt.y, 0, 0, 1)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("AngleFromCenter(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestAngleFromCenterAspect(t *testing.T) {
	// Terminal cells are twice as tall as wide; a cell one row up and one
	// column right sits at 2:1 after correction, not on the diagonal.
	got := AngleFromCenter(1, -1, 0, 0, 0.5)
	want := math.Atan2(1, 2) * 180 / math.Pi
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("aspect-corrected angle = %v, want %v", got, want)
	}
}

func TestInCircle(t *testing.T) {
	if !InCircle(3, 0, 0, 0, 5, 1) {
		t.Error("point inside radius reported outside")
	}
	if InCircle(6, 0, 0, 0, 5, 1) {
		t.Error("point outside radius reported inside")
	}
	// One row in a 0.5-aspect grid counts double.
	if InCircle(0, 3, 0, 0, 5, 0.5) {
		t.Error("aspect correction not applied to rows")
	}
}
