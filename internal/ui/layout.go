package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout joins the wheel panel and sector list horizontally,
// with menu bar on top and status bar on bottom.
func ComposeLayout(menuBar, wheelPanel, itemList, statusBar string) string {
	middle := lipgloss.JoinHorizontal(lipgloss.Top, wheelPanel, itemList)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}
