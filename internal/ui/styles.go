package ui

import "github.com/charmbracelet/lipgloss"

// Matrix color palette with an amber accent for the pointer/winner.
var (
	ColorMatrixGreen  = lipgloss.Color("#00FF41")
	ColorGreen        = lipgloss.Color("#00CC33")
	ColorMidGreen     = lipgloss.Color("#008F11")
	ColorDimGreen     = lipgloss.Color("#004A0A")
	ColorAmber        = lipgloss.Color("#FFCC00")
	ColorError        = lipgloss.Color("#FF3300")
	ColorBorderBright = lipgloss.Color("#00FF41")
	ColorBorderNorm   = lipgloss.Color("#00AA22")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#002200")).
			Foreground(ColorMatrixGreen).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorMatrixGreen).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorGreen)

	StyleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#002200")).
			Foreground(ColorGreen).
			Padding(0, 1)

	StyleStateSpinning = lipgloss.NewStyle().
				Foreground(ColorMatrixGreen).
				Bold(true)

	StyleStateIdle = lipgloss.NewStyle().
			Foreground(ColorMidGreen).
			Bold(true)

	StyleStateDragging = lipgloss.NewStyle().
				Foreground(ColorAmber).
				Bold(true)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderNorm)

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorMatrixGreen).
			Bold(true).
			Padding(0, 1)

	StyleItemLabel = lipgloss.NewStyle().
			Foreground(ColorGreen)

	StyleItemCurrent = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#000000")).
				Background(ColorMatrixGreen).
				Bold(true)

	StyleItemWeight = lipgloss.NewStyle().
			Foreground(ColorMidGreen)

	StyleWinner = lipgloss.NewStyle().
			Foreground(ColorAmber).
			Bold(true)

	StyleSeparator = lipgloss.NewStyle().
			Foreground(ColorMidGreen)

	StyleSparkline = lipgloss.NewStyle().
			Foreground(ColorGreen)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorDimGreen)
)
