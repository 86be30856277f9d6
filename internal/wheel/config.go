package wheel

import (
	"fmt"
	"math"
	"time"

	"spinwheel/internal/config"
)

// Config holds the tunable physics and geometry parameters of a wheel.
// It is validated as a whole; setters on the Wheel reject an invalid Config
// and retain the previous valid one.
type Config struct {
	// PointerAngle is the fixed angle the current item is read at, in
	// degrees [0, 360). 0 is the top of the wheel.
	PointerAngle float64

	// RotationResistance decays a free spin, in degrees/s². Negative
	// values oppose the spin direction (the usual case); 0 spins forever.
	// Positive values accelerate instead of decaying; they are accepted
	// and produce degenerate but well-defined motion.
	RotationResistance float64

	// RotationSpeedMax clamps spin and drag-release speeds, degrees/s.
	RotationSpeedMax float64

	// CaptureWindow is the trailing interval of drag samples summed to
	// estimate release velocity.
	CaptureWindow time.Duration

	// DebugSampleLimit caps retained drag samples when > 0. Visualization
	// aid only; it does not affect release velocity inside the window.
	DebugSampleLimit int

	// Easing names the default curve for timed animations when the caller
	// passes none. Empty means sine-out. See EasingByName.
	Easing string
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		PointerAngle:       config.DefaultPointerAngle,
		RotationResistance: config.DefaultResistance,
		RotationSpeedMax:   config.DefaultSpeedMax,
		CaptureWindow:      config.DefaultCaptureWindow,
	}
}

// Validate checks every field and returns a descriptive error for the first
// violation. Resistance is intentionally unvalidated beyond finiteness.
func (c Config) Validate() error {
	if !isFinite(c.PointerAngle) || c.PointerAngle < 0 || c.PointerAngle >= 360 {
		return fmt.Errorf("%w: pointer angle %v outside [0, 360)", ErrInvalidConfiguration, c.PointerAngle)
	}
	if !isFinite(c.RotationResistance) {
		return fmt.Errorf("%w: rotation resistance %v is not finite", ErrInvalidConfiguration, c.RotationResistance)
	}
	if !isFinite(c.RotationSpeedMax) || c.RotationSpeedMax < 0 {
		return fmt.Errorf("%w: rotation speed max %v must be >= 0", ErrInvalidConfiguration, c.RotationSpeedMax)
	}
	if c.CaptureWindow <= 0 {
		return fmt.Errorf("%w: capture window %v must be positive", ErrInvalidConfiguration, c.CaptureWindow)
	}
	if c.DebugSampleLimit < 0 {
		return fmt.Errorf("%w: debug sample limit %d must be >= 0", ErrInvalidConfiguration, c.DebugSampleLimit)
	}
	if _, err := EasingByName(c.Easing); err != nil {
		return err
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
