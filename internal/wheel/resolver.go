package wheel

// NoItem is the current-index sentinel for a wheel with no items.
const NoItem = -1

// ResolveIndex returns the index of the range containing the pointer angle.
// The ranges tile the circle, so exactly one matches; rounding at the 360°
// seam can leave the pointer fractionally outside every range, in which case
// the last range owns it.
func ResolveIndex(angles []AngleRange, pointerAngle float64) int {
	if len(angles) == 0 {
		return NoItem
	}
	for i, r := range angles {
		if r.Contains(pointerAngle) {
			return i
		}
	}
	return len(angles) - 1
}
