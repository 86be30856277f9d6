package wheel

import (
	"errors"
	"math"
	"testing"
)

func TestComputeAnglesEqualWeights(t *testing.T) {
	angles, err := ComputeAngles([]Item{{Weight: 1}, {Weight: 1}}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []AngleRange{{0, 180}, {180, 360}}
	if len(angles) != len(want) {
		t.Fatalf("expected %d ranges, got %d", len(want), len(angles))
	}
	for i := range want {
		if angles[i] != want[i] {
			t.Errorf("range %d = %+v, want %+v", i, angles[i], want[i])
		}
	}
}

func TestComputeAnglesWeighted(t *testing.T) {
	angles, err := ComputeAngles([]Item{{Weight: 1}, {Weight: 2}, {Weight: 1}}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []AngleRange{{0, 90}, {90, 270}, {270, 360}}
	for i := range want {
		if math.Abs(angles[i].Start-want[i].Start) > 1e-9 || math.Abs(angles[i].End-want[i].End) > 1e-9 {
			t.Errorf("range %d = %+v, want %+v", i, angles[i], want[i])
		}
	}
}

func TestComputeAnglesRotationOffset(t *testing.T) {
	angles, err := ComputeAngles([]Item{{Weight: 1}, {Weight: 1}}, 45)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if angles[0].Start != 45 || angles[0].End != 225 {
		t.Errorf("first range = %+v, want {45 225}", angles[0])
	}
	if angles[1].End != 45+360 {
		t.Errorf("last end = %v, want %v", angles[1].End, 45+360.0)
	}
}

func TestComputeAnglesExactTiling(t *testing.T) {
	// Awkward weights accumulate floating-point drift; the final range
	// must still close the circle exactly.
	items := make([]Item, 37)
	for i := range items {
		items[i] = Item{Weight: 0.1}
	}
	angles, err := ComputeAngles(items, 123.456)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	span := angles[len(angles)-1].End - angles[0].Start
	if math.Abs(span-360) > 1e-9 {
		t.Errorf("total span = %v, want exactly 360", span)
	}
	for i, r := range angles {
		if r.End <= r.Start {
			t.Errorf("range %d is not increasing: %+v", i, r)
		}
		if i > 0 && math.Abs(r.Start-angles[i-1].End) > 1e-9 {
			t.Errorf("range %d start %v does not continue previous end %v", i, r.Start, angles[i-1].End)
		}
	}
}

func TestComputeAnglesSingleItem(t *testing.T) {
	angles, err := ComputeAngles([]Item{{Weight: 3}}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// A single item owns the whole circle at every pointer angle.
	for a := 0.0; a < 360; a += 17 {
		if !angles[0].Contains(a) {
			t.Errorf("single item does not contain %v", a)
		}
	}
}

func TestComputeAnglesDegenerate(t *testing.T) {
	tests := []struct {
		name  string
		items []Item
	}{
		{"Empty", nil},
		{"ZeroSum", []Item{{Weight: 0}, {Weight: 0}}},
		{"NegativeSum", []Item{{Weight: 1}, {Weight: -2}}},
		{"NaNWeight", []Item{{Weight: math.NaN()}}},
		{"InfWeight", []Item{{Weight: math.Inf(1)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeAngles(tt.items, 0)
			if !errors.Is(err, ErrDegenerateGeometry) {
				t.Errorf("expected ErrDegenerateGeometry, got %v", err)
			}
		})
	}
}

func TestAngleRangeContainsWrap(t *testing.T) {
	// A range spanning the 0/360 seam must use modulo membership.
	r := AngleRange{Start: 350, End: 370}
	for _, a := range []float64{350, 355, 0, 5, 9.99} {
		if !r.Contains(a) {
			t.Errorf("seam range should contain %v", a)
		}
	}
	for _, a := range []float64{10, 180, 349.99} {
		if r.Contains(a) {
			t.Errorf("seam range should not contain %v", a)
		}
	}
	// Half-open: the end is excluded, the start included.
	if !r.Contains(350) || r.Contains(10) {
		t.Error("membership must be half-open [start, end)")
	}
}
