package bubbletea

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/chatbot"
)

// HeaderText exports headerText for testing.
func HeaderText(left, right string, width int) string {
	return headerText(left, right, width)
}

// RenderContent exports renderContent for testing.
func RenderContent(m Model) string {
	return m.renderContent()
}

// StatusLine exports statusLine for testing.
func StatusLine(m Model) string {
	return m.statusLine()
}

// Turns returns the transcript mirrored by the model.
func Turns(m Model) chatbot.Transcript {
	return m.turns
}

// Flash returns the transient status message, if any.
func Flash(m Model) string {
	return m.flash
}

// ExpireFlash delivers the flash timeout without waiting for it.
func ExpireFlash(m Model) Model {
	updated, _ := m.Update(flashResetMsg{seq: m.flashSeq})
	return updated.(Model)
}

// ListenForEvent returns the command that waits for the next controller
// event.
func ListenForEvent(m Model) tea.Cmd {
	return listenForEvent(m.events)
}

// Blocks returns the rendered blocks, one per mirrored turn.
func Blocks(m Model) []MessageBlock {
	return m.blocks
}
