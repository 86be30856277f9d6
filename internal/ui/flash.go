package ui

import (
	"math"
	"strings"

	"spinwheel/internal/config"

	"github.com/charmbracelet/harmonica"
)

// WinnerFlash drives a spring-physics reveal of the winner banner.
// When the wheel comes to rest, Trigger starts the animation: the banner
// text unfolds character by character as the spring approaches its target,
// overshooting slightly for a bounce effect.
type WinnerFlash struct {
	spring  harmonica.Spring
	pos     float64
	vel     float64
	label   string
	active  bool
	settled bool
}

// NewWinnerFlash creates a flash animation tuned to the frame rate.
func NewWinnerFlash() *WinnerFlash {
	return &WinnerFlash{
		spring: harmonica.NewSpring(harmonica.FPS(config.TargetFPS), 6.0, 0.5),
	}
}

// Trigger starts (or restarts) the reveal for the given winner label.
func (f *WinnerFlash) Trigger(label string) {
	f.label = label
	f.pos = 0
	f.vel = 0
	f.active = true
	f.settled = false
}

// Reset hides the banner, e.g. when a new spin starts.
func (f *WinnerFlash) Reset() {
	f.active = false
	f.settled = false
	f.pos = 0
	f.vel = 0
}

// Tick advances the spring by one frame. Returns true while still animating.
func (f *WinnerFlash) Tick() bool {
	if !f.active || f.settled {
		return false
	}

	f.pos, f.vel = f.spring.Update(f.pos, f.vel, 1.0)

	if math.Abs(f.pos-1.0) < 0.001 && math.Abs(f.vel) < 0.001 {
		f.pos = 1.0
		f.vel = 0
		f.settled = true
	}

	return !f.settled
}

// Active reports whether the banner should be shown at all.
func (f *WinnerFlash) Active() bool {
	return f.active
}

// View renders the banner line, revealing characters in proportion to the
// spring position. Overshoot past 1.0 just shows the full text.
func (f *WinnerFlash) View() string {
	if !f.active {
		return ""
	}

	text := "*** " + f.label + " ***"
	runes := []rune(text)

	n := int(math.Round(f.pos * float64(len(runes))))
	if n < 0 {
		n = 0
	}
	if n > len(runes) {
		n = len(runes)
	}

	visible := string(runes[:n])
	hidden := strings.Repeat(" ", len(runes)-n)

	return StyleWinner.Render(visible) + hidden
}
