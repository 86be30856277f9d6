package app

// SpeedRing is a circular buffer for rotation speed history values.
type SpeedRing struct {
	buf   []float64
	pos   int
	count int
}

// NewSpeedRing creates a new circular buffer with the given capacity.
func NewSpeedRing(capacity int) *SpeedRing {
	return &SpeedRing{
		buf: make([]float64, capacity),
	}
}

// Push adds a value to the ring buffer.
func (r *SpeedRing) Push(val float64) {
	r.buf[r.pos] = val
	r.pos = (r.pos + 1) % len(r.buf)
	if r.count < len(r.buf) {
		r.count++
	}
}

// Values returns all stored values in chronological order.
func (r *SpeedRing) Values() []float64 {
	if r.count == 0 {
		return nil
	}
	result := make([]float64, r.count)
	if r.count < len(r.buf) {
		copy(result, r.buf[:r.count])
	} else {
		start := r.pos
		n := copy(result, r.buf[start:])
		copy(result[n:], r.buf[:start])
	}
	return result
}

// Last returns the most recent value, or 0 if empty.
func (r *SpeedRing) Last() float64 {
	if r.count == 0 {
		return 0
	}
	idx := (r.pos - 1 + len(r.buf)) % len(r.buf)
	return r.buf[idx]
}

// Len returns the number of stored values.
func (r *SpeedRing) Len() int {
	return r.count
}

var sparkChars = []rune(" .:-=+*#%@")

// Sparkline renders the stored speeds as a fixed-width character strip,
// scaled against the given maximum speed.
func (r *SpeedRing) Sparkline(width int, maxSpeed float64) string {
	if width <= 0 || maxSpeed <= 0 {
		return ""
	}
	vals := r.Values()
	if len(vals) > width {
		vals = vals[len(vals)-width:]
	}
	out := make([]rune, 0, width)
	for _, v := range vals {
		if v < 0 {
			v = -v
		}
		ratio := v / maxSpeed
		if ratio > 1 {
			ratio = 1
		}
		idx := int(ratio * float64(len(sparkChars)-1))
		out = append(out, sparkChars[idx])
	}
	for len(out) < width {
		out = append([]rune{' '}, out...)
	}
	return string(out)
}
