package bubbletea

import "github.com/charmbracelet/lipgloss"

// MessageBlock is a renderable element in the conversation. Blocks hold no
// interactive state; View takes a width so the root model controls layout
// and blocks are testable in isolation.
type MessageBlock interface {
	View(width int) string
}

// turnLabel renders the "Name · time" line above a turn.
func turnLabel(name string, nameStyle lipgloss.Style, muted lipgloss.Style, at string) string {
	return nameStyle.Render(name) + muted.Render(" · "+at)
}
