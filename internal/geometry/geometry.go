// Package geometry provides the angle math shared by the wheel core and its
// renderers. Angles are degrees, 0 = north (top of the wheel), increasing
// clockwise.
package geometry

import "math"

// Normalize wraps an angle to [0, 360).
func Normalize(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// SignedDiff returns the shortest signed rotation that carries `from` onto
// `to`, in (-180, 180]. Positive means clockwise.
func SignedDiff(from, to float64) float64 {
	d := Normalize(to - from)
	if d > 180 {
		d -= 360
	}
	return d
}

// Diff returns the shortest angular distance between two angles, in [0, 180].
func Diff(a, b float64) float64 {
	return math.Abs(SignedDiff(a, b))
}

// AngleFromCenter computes the angle from a center point to (x, y).
// aspect corrects for non-square cells (terminal chars are ~2:1 tall);
// pass 1 for square pixel coordinates.
func AngleFromCenter(x, y, cx, cy, aspect float64) float64 {
	dx := x - cx
	dy := (y - cy) / aspect
	angle := math.Atan2(dx, -dy) // 0=north, clockwise
	return Normalize(angle * 180 / math.Pi)
}

// Distance computes the aspect-corrected distance from a center point to (x, y).
func Distance(x, y, cx, cy, aspect float64) float64 {
	dx := x - cx
	dy := (y - cy) / aspect
	return math.Sqrt(dx*dx + dy*dy)
}

// InCircle reports whether (x, y) falls within radius of the center.
func InCircle(x, y, cx, cy, radius, aspect float64) bool {
	return Distance(x, y, cx, cy, aspect) <= radius
}
