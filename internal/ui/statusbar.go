package ui

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, state string, rotation, speed, resistance float64, winner string, spark string) string {
	var stateStr string
	switch state {
	case "FREESPIN", "ANIMATING":
		stateStr = StyleStateSpinning.Render("[" + state + "]")
	case "DRAGGING":
		stateStr = StyleStateDragging.Render("[" + state + "]")
	default:
		stateStr = StyleStateIdle.Render("[" + state + "]")
	}

	rot := math.Mod(rotation, 360)
	if rot < 0 {
		rot += 360
	}

	info := fmt.Sprintf(" Rot: %ddeg  Speed: %.0fdeg/s  Resist: %.0f",
		int(rot), speed, resistance)

	content := stateStr + StyleStatusBar.Foreground(ColorGreen).Render(info)
	if winner != "" {
		content += StyleWinner.Render("  > " + winner)
	}
	if spark != "" {
		content += StyleSparkline.Render("  " + spark)
	}

	gap := width - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}

	return StyleStatusBar.Width(width).Render(content + padding)
}
