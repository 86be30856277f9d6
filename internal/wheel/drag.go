package wheel

import (
	"time"

	"spinwheel/internal/geometry"
)

// dragSample records one drag movement: the signed angular delta since the
// previous sample and the absolute angle/time it was captured at.
type dragSample struct {
	delta float64 // shortest-path degrees since the previous sample
	angle float64 // angle from wheel center, degrees
	at    time.Time
}

// dragRecorder keeps a newest-first history of drag samples for release
// velocity estimation. It exists only while a drag gesture is active.
type dragRecorder struct {
	samples []dragSample // most recent first
	window  time.Duration
	limit   int // cap retained samples when > 0 (debug visualization only)
}

func newDragRecorder(window time.Duration, limit int) *dragRecorder {
	return &dragRecorder{window: window, limit: limit}
}

// start resets the history to a single zero-delta sample.
func (d *dragRecorder) start(angle float64, t time.Time) {
	d.samples = append(d.samples[:0], dragSample{angle: angle, at: t})
}

// addSample records a movement to the given angle and returns the
// shortest-path delta from the previous sample, in (-180, 180]. The caller
// nudges the wheel rotation by exactly this delta so the wheel tracks the
// cursor 1:1 during the drag.
func (d *dragRecorder) addSample(angle float64, t time.Time) float64 {
	delta := geometry.SignedDiff(d.samples[0].angle, angle)
	d.samples = append([]dragSample{{delta: delta, angle: angle, at: t}}, d.samples...)
	if d.limit > 0 && len(d.samples) > d.limit {
		d.samples = d.samples[:d.limit]
	}
	return delta
}

// end estimates the release velocity in degrees/s. Walking newest to oldest,
// it sums deltas until the first sample older than the capture window and
// truncates the history there; everything before a gap is stale by
// definition. A net-zero drag yields velocity 0.
func (d *dragRecorder) end(t time.Time) float64 {
	cutoff := t.Add(-d.window)
	total := 0.0
	kept := 0
	for _, s := range d.samples {
		if s.at.Before(cutoff) {
			break
		}
		total += s.delta
		kept++
	}
	d.samples = d.samples[:kept]
	return total / d.window.Seconds()
}
