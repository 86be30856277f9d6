package wheel

import (
	"fmt"
	"math"
)

// EasingFunc maps normalized animation time t in [0, 1] to progress in
// [0, 1]. It must satisfy f(0)=0 and f(1)=1.
type EasingFunc func(t float64) float64

// EaseLinear is constant-rate interpolation.
func EaseLinear(t float64) float64 { return t }

// EaseSineOut decelerates along a quarter sine wave. Default for timed spins.
func EaseSineOut(t float64) float64 { return math.Sin(t * math.Pi / 2) }

// EaseCubicOut decelerates cubically; a harder initial launch than sine.
func EaseCubicOut(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// EaseQuadInOut accelerates then decelerates quadratically.
func EaseQuadInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	u := -2*t + 2
	return 1 - u*u/2
}

// EasingByName resolves a CLI-friendly easing name.
func EasingByName(name string) (EasingFunc, error) {
	switch name {
	case "", "sine-out":
		return EaseSineOut, nil
	case "linear":
		return EaseLinear, nil
	case "cubic-out":
		return EaseCubicOut, nil
	case "quad-in-out":
		return EaseQuadInOut, nil
	}
	return nil, fmt.Errorf("%w: unknown easing %q", ErrInvalidConfiguration, name)
}
