// Package render draws the wheel. The terminal renderer paints sectors into
// a character grid from the core's computed angle ranges; the GIF renderer
// produces an offline animation. Neither contains decision logic: both read
// rotation, angles, and current index back out of the core.
package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"spinwheel/internal/config"
	"spinwheel/internal/geometry"
	"spinwheel/internal/wheel"
)

var (
	colorBright  = lipgloss.Color("#00FF41")
	colorMid     = lipgloss.Color("#008F11")
	colorDim     = lipgloss.Color("#004A0A")
	colorPointer = lipgloss.Color("#FFCC00")

	styleCenter  = lipgloss.NewStyle().Foreground(colorBright).Bold(true)
	styleRim     = lipgloss.NewStyle().Foreground(colorMid)
	styleRay     = lipgloss.NewStyle().Foreground(colorDim)
	stylePointer = lipgloss.NewStyle().Foreground(colorPointer).Bold(true)
	styleWinner  = lipgloss.NewStyle().Foreground(colorBright).Bold(true)

	// Sector fills cycle through the palette; the current sector renders
	// bright regardless of its slot.
	sectorColors = []lipgloss.Color{
		lipgloss.Color("#00CC33"),
		lipgloss.Color("#008F11"),
		lipgloss.Color("#00AA22"),
		lipgloss.Color("#005511"),
	}
	sectorChars = []byte{'.', ':', 'o', '*'}
)

const maxLabelLen = 6

type labelCell struct {
	itemIdx int
	ch      byte
}

// Wheel renders the spinning wheel into a width×height character grid.
func Wheel(width, height int, w *wheel.Wheel) string {
	if width < 10 || height < 5 {
		return ""
	}

	centerX := width / 2
	centerY := height / 2
	radius := math.Min(float64(centerX-1), float64(centerY-1)/config.AspectRatio)
	if radius < config.MinRadius {
		radius = config.MinRadius
	}

	angles := w.Angles()
	current := w.CurrentIndex()
	items := w.Items()
	pointer := w.Config().PointerAngle

	labels := buildLabels(items, angles, centerX, centerY, radius, width, height)

	// Pointer marker just outside the rim.
	pRad := pointer * math.Pi / 180
	pCol := centerX + int(math.Round((radius+1.5)*math.Sin(pRad)))
	pRow := centerY - int(math.Round((radius+1.5)*math.Cos(pRad)*config.AspectRatio))

	var sb strings.Builder
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			if col == pCol && row == pRow {
				sb.WriteString(stylePointer.Render(pointerChar(pointer)))
				continue
			}
			if lc, ok := labels[row*width+col]; ok {
				sb.WriteString(labelStyle(lc.itemIdx, current).Render(string(lc.ch)))
				continue
			}
			sb.WriteString(renderCell(col, row, centerX, centerY, radius, angles, current))
		}
		if row < height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Legend names the item currently under the pointer.
func Legend(width int, w *wheel.Wheel) string {
	items := w.Items()
	idx := w.CurrentIndex()
	line := "   no items"
	if idx != wheel.NoItem && idx < len(items) {
		label := items[idx].Label
		if label == "" {
			label = "item"
		}
		line = stylePointer.Render("> ") + styleWinner.Render(label)
	}
	pad := (width - lipgloss.Width(line)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + line
}

func renderCell(col, row, centerX, centerY int, radius float64, angles []wheel.AngleRange, current int) string {
	dist := geometry.Distance(float64(col), float64(row), float64(centerX), float64(centerY), config.AspectRatio)
	if dist > radius+0.5 {
		return " "
	}
	if col == centerX && row == centerY {
		return styleCenter.Render("+")
	}

	angle := geometry.AngleFromCenter(float64(col), float64(row), float64(centerX), float64(centerY), config.AspectRatio)

	if math.Abs(dist-radius) < 0.8 {
		return styleRim.Render(string(rimChar(angle)))
	}

	// Radial boundary rays between sectors. A cell at distance d subtends
	// roughly 57.3/d degrees; widen slightly so rays stay connected.
	if dist > 1.5 {
		for _, r := range angles {
			if geometry.Diff(angle, r.Start) < 34/dist {
				return styleRay.Render(string(rayChar(angle)))
			}
		}
	}

	idx := wheel.ResolveIndex(angles, angle)
	if idx == wheel.NoItem {
		return styleRay.Render(".")
	}
	ch := string(sectorChars[idx%len(sectorChars)])
	if idx == current {
		return styleWinner.Render(ch)
	}
	return lipgloss.NewStyle().Foreground(sectorColors[idx%len(sectorColors)]).Render(ch)
}

// buildLabels places each item's truncated label at the sector midpoint,
// keyed by row*width+col. Labels that would leave the grid are clipped to it.
func buildLabels(items []wheel.Item, angles []wheel.AngleRange, centerX, centerY int, radius float64, width, height int) map[int]labelCell {
	labels := make(map[int]labelCell)
	for i, r := range angles {
		if i >= len(items) || items[i].Label == "" {
			continue
		}
		// Sectors too thin for text keep their fill.
		if r.End-r.Start < 25 {
			continue
		}
		label := items[i].Label
		if len(label) > maxLabelLen {
			label = label[:maxLabelLen]
		}

		mid := geometry.Normalize(r.Center())
		midRad := mid * math.Pi / 180
		col := centerX + int(math.Round(radius*0.55*math.Sin(midRad))) - len(label)/2
		row := centerY - int(math.Round(radius*0.55*math.Cos(midRad)*config.AspectRatio))
		if row < 0 || row >= height {
			continue
		}
		if col < 0 {
			col = 0
		}
		if col+len(label) > width {
			col = width - len(label)
		}
		for ci := 0; ci < len(label); ci++ {
			labels[row*width+col+ci] = labelCell{itemIdx: i, ch: label[ci]}
		}
	}
	return labels
}

func labelStyle(itemIdx, current int) lipgloss.Style {
	if itemIdx == current {
		return styleWinner
	}
	return lipgloss.NewStyle().Foreground(sectorColors[itemIdx%len(sectorColors)]).Bold(true)
}

// rimChar picks the wheel border character for the rim tangent at the angle.
func rimChar(angle float64) rune {
	sector := int(math.Round(geometry.Normalize(angle)/45)) % 8
	switch sector {
	case 0, 4: // north, south
		return '-'
	case 1, 5: // NE, SW
		return '/'
	case 2, 6: // east, west
		return '|'
	default: // SE, NW
		return '\\'
	}
}

// rayChar picks the character for a radial ray heading outward at the angle.
func rayChar(angle float64) rune {
	sector := int(math.Round(geometry.Normalize(angle)/45)) % 8
	switch sector {
	case 0, 4: // north, south
		return '|'
	case 1, 5: // NE, SW
		return '/'
	case 2, 6: // east, west
		return '-'
	default: // SE, NW
		return '\\'
	}
}

// pointerChar orients the pointer marker toward the wheel center.
func pointerChar(pointerAngle float64) string {
	sector := int(math.Round(geometry.Normalize(pointerAngle)/90)) % 4
	switch sector {
	case 0:
		return "V"
	case 1:
		return "<"
	case 2:
		return "^"
	default:
		return ">"
	}
}
