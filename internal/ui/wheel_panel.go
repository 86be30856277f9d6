package ui

// RenderWheelPanel wraps wheel content with a styled border.
// The actual wheel rendering is done externally to avoid import cycles.
func RenderWheelPanel(width, height int, wheelContent, legend string) string {
	content := wheelContent + "\n" + legend
	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(content)
}
