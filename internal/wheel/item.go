package wheel

import (
	"fmt"
	"math"

	"spinwheel/internal/geometry"
)

// Item is one weighted sector of the wheel. Weight is its angular share
// relative to the other items; a wheel of equal weights has equal sectors.
type Item struct {
	Label  string
	Weight float64
}

// AngleRange is a sector's angular span in degrees. End is always greater
// than Start. Values can exceed 360 or be negative; comparisons against the
// pointer reduce modulo 360.
type AngleRange struct {
	Start float64
	End   float64
}

// Contains reports whether angle falls inside the range under half-open,
// wrap-aware membership [Start mod 360, End mod 360).
func (r AngleRange) Contains(angle float64) bool {
	return geometry.Normalize(angle-r.Start) < r.End-r.Start
}

// Center returns the midpoint angle of the range.
func (r AngleRange) Center() float64 {
	return r.Start + (r.End-r.Start)/2
}

// ComputeAngles tiles the full circle with one range per item, offset by the
// wheel rotation. Ranges are contiguous and monotonically increasing; with
// more than one item the final End is forced to Start[0]+360 so the tiling
// stays exact under floating-point accumulation.
func ComputeAngles(items []Item, rotation float64) ([]AngleRange, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no items", ErrDegenerateGeometry)
	}
	sum := 0.0
	for _, it := range items {
		sum += it.Weight
	}
	if math.IsNaN(sum) || math.IsInf(sum, 0) || sum <= 0 {
		return nil, fmt.Errorf("%w: weight sum %v", ErrDegenerateGeometry, sum)
	}

	unit := 360 / sum
	angles := make([]AngleRange, len(items))
	running := 0.0
	for i, it := range items {
		start := rotation + running
		running += it.Weight * unit
		angles[i] = AngleRange{Start: start, End: rotation + running}
	}
	if len(angles) > 1 {
		angles[len(angles)-1].End = angles[0].Start + 360
	}
	return angles, nil
}
