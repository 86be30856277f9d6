package ui

import (
	"fmt"

	"spinwheel/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// RenderMenuBar renders the top menu bar.
func RenderMenuBar(width int, state string) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"Space", " Spin"},
		{"T", "arget"},
		{"1-9", " Item"},
		{"S", "top"},
		{"+/-", " Resist"},
		{"Q", "uit"},
	}

	menu := ""
	for _, k := range keys {
		menu += "  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label)
	}

	status := ""
	switch state {
	case "FREESPIN", "ANIMATING":
		status = StyleStateSpinning.Render(state)
	case "DRAGGING":
		status = StyleStateDragging.Render(state)
	default:
		status = StyleStateIdle.Render(state)
	}

	left := StyleMenuKey.Render(title) + menu
	right := status + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}

	return StyleMenuBar.Width(width).Render(left + padding + right)
}
