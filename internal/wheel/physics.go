package wheel

import (
	"math"
	"time"
)

// session is the active driving mode. Exactly one is live at a time; starting
// a new session replaces the current one unconditionally.
type session interface {
	isSession()
}

// sessionIdle: no motion.
type sessionIdle struct{}

func (sessionIdle) isSession() {}

// sessionFreeSpin integrates a velocity that decays under a constant angular
// resistance. lastFrame stays zero until the baseline tick so the first
// frame after a spin starts applies no rotation.
type sessionFreeSpin struct {
	speed      float64 // degrees/s, signed
	direction  float64 // ±1, sign of the speed at spin start
	resistance float64 // degrees/s², signed
	lastFrame  time.Time
}

func (*sessionFreeSpin) isSession() {}

// sessionTimedAnim interpolates between two fixed rotations over a fixed
// wall-clock interval with an easing curve.
type sessionTimedAnim struct {
	startRotation float64
	endRotation   float64
	startTime     time.Time
	endTime       time.Time
	easing        EasingFunc
}

func (*sessionTimedAnim) isSession() {}

// advancePhysics moves the rotation forward by one tick. It returns the new
// rotation, the session to carry into the next tick, and whether the wheel
// came to rest on this tick.
func advancePhysics(s session, rotation float64, now time.Time) (float64, session, bool) {
	switch st := s.(type) {
	case *sessionTimedAnim:
		if !now.Before(st.endTime) {
			// Snap to the exact end value, not the eased approximation,
			// so no residual interpolation error survives the animation.
			return st.endRotation, sessionIdle{}, true
		}
		elapsed := now.Sub(st.startTime)
		if elapsed < 0 {
			// A frame can arrive before the nominal start time.
			elapsed = 0
		}
		t := elapsed.Seconds() / st.endTime.Sub(st.startTime).Seconds()
		return st.startRotation + (st.endRotation-st.startRotation)*st.easing(t), st, false

	case *sessionFreeSpin:
		if st.lastFrame.IsZero() {
			st.lastFrame = now
			return rotation, st, false
		}
		dt := now.Sub(st.lastFrame).Seconds()
		st.lastFrame = now
		rotation += math.Mod(dt*st.speed, 360)

		next := st.speed + st.resistance*dt*st.direction
		// Never overshoot into reverse rotation: flooring at exactly 0
		// when the decayed speed crosses zero against the direction.
		if (st.direction > 0 && next < 0) || (st.direction < 0 && next >= 0) {
			next = 0
		}
		st.speed = next
		if st.speed == 0 {
			return rotation, sessionIdle{}, true
		}
		return rotation, st, false

	default:
		return rotation, s, false
	}
}
