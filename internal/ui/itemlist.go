package ui

import (
	"fmt"
	"strings"

	"spinwheel/internal/wheel"
)

// RenderItemList renders the sector list panel: one entry per item with its
// weight, share of the circle, a marker on the sector currently under the
// pointer, and the last item the wheel rested on.
func RenderItemList(items []wheel.Item, width, height, currentIndex, lastWinner int) string {
	innerW := width - 4
	if innerW < 10 {
		innerW = 10
	}

	title := StylePanelTitle.Render(fmt.Sprintf("SECTORS [%d]", len(items)))
	separator := StyleSeparator.Render(strings.Repeat("-", innerW))
	headerLines := []string{title, separator}

	innerH := height - 2
	if innerH < len(headerLines)+1 {
		innerH = len(headerLines) + 1
	}
	space := innerH - len(headerLines)

	var lines []string
	if len(items) == 0 {
		lines = append(lines, "")
		lines = append(lines, StyleHelp.Render(" No items..."))
	} else {
		var totalWeight float64
		for _, it := range items {
			totalWeight += it.Weight
		}

		for i, it := range items {
			if len(lines) >= space {
				break
			}
			lines = append(lines, renderItemEntry(i, it, totalWeight, innerW, i == currentIndex, i == lastWinner))
		}
	}

	if len(lines) > space {
		lines = lines[:space]
	}
	for len(lines) < space {
		lines = append(lines, "")
	}

	all := make([]string, 0, innerH)
	all = append(all, headerLines...)
	all = append(all, lines...)
	if len(all) > innerH {
		all = all[:innerH]
	}

	content := strings.Join(all, "\n")
	rendered := StylePanelBorder.Width(width - 2).Height(innerH).Render(content)

	// lipgloss Height() only sets a minimum; clamp to exactly `height` lines.
	outLines := strings.Split(rendered, "\n")
	if len(outLines) > height {
		outLines = outLines[:height]
	}
	for len(outLines) < height {
		outLines = append(outLines, "")
	}
	return strings.Join(outLines, "\n")
}

func renderItemEntry(i int, it wheel.Item, totalWeight float64, maxW int, isCurrent, isWinner bool) string {
	label := it.Label
	labelMax := maxW - 18
	if labelMax < 4 {
		labelMax = 4
	}
	if len(label) > labelMax {
		label = label[:labelMax]
	}

	share := 0.0
	if totalWeight > 0 {
		share = it.Weight / totalWeight * 100
	}

	marker := "  "
	if isCurrent {
		marker = ">>"
	}
	win := " "
	if isWinner {
		win = "*"
	}

	raw := fmt.Sprintf("%s %d %s %s w=%.1f %4.1f%%", marker, i+1, win, label, it.Weight, share)
	raw = truncRaw(raw, maxW)

	if isCurrent {
		return StyleItemCurrent.Render(raw)
	}
	if isWinner {
		return StyleWinner.Render(raw)
	}
	return StyleItemLabel.Render(raw)
}

// truncRaw pads or truncates a raw string to exactly w characters.
func truncRaw(s string, w int) string {
	if len(s) > w {
		return s[:w]
	}
	if len(s) < w {
		return s + strings.Repeat(" ", w-len(s))
	}
	return s
}
