package config

import "time"

const (
	// Wheel display
	AspectRatio = 0.5 // Terminal char aspect correction (chars are ~2:1 tall)
	TargetFPS   = 30  // Target frames per second
	MinRadius   = 3.0 // Smallest wheel radius the renderer will draw

	// Physics defaults
	DefaultPointerAngle  = 0.0   // Degrees, 0 = top of the wheel
	DefaultResistance    = -35.0 // Degrees/s²; opposes the spin direction
	DefaultSpeedMax      = 700.0 // Degrees/s clamp for spin and drag release
	DefaultCaptureWindow = 250 * time.Millisecond

	// Demo spins
	DemoSpinMin      = 180.0           // Minimum random spin speed in degrees/s
	DemoSpinMax      = 650.0           // Maximum random spin speed in degrees/s
	DemoSpinDuration = 3 * time.Second // Duration of animate-to-item spins
	DemoRevolutions  = 2               // Extra full turns for animate-to-item

	// Speed history
	SpeedHistoryLen = 48 // Samples kept for the status sparkline

	// App
	AppName    = "SPINWHEEL"
	AppVersion = "1.0"
)
