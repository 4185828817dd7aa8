package bubbletea

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/chatbot"
)

// Styles maps a Theme to lipgloss styles for TUI rendering.
type Styles struct {
	UserMsg   lipgloss.Style
	Assistant lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Muted     lipgloss.Style
	Accent    lipgloss.Style
	Highlight lipgloss.Style
	Header    lipgloss.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t chatbot.Theme) Styles {
	return Styles{
		UserMsg:   lipgloss.NewStyle().Foreground(ansiColor(t.UserMsg)).Bold(true),
		Assistant: lipgloss.NewStyle().Foreground(ansiColor(t.Assistant)).Bold(true),
		Error:     lipgloss.NewStyle().Foreground(ansiColor(t.Error)),
		Success:   lipgloss.NewStyle().Foreground(ansiColor(t.Success)),
		Muted:     lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
		Accent:    lipgloss.NewStyle().Foreground(ansiColor(t.Accent)).Bold(true),
		Highlight: lipgloss.NewStyle().Foreground(ansiColor(t.Highlight)).Italic(true),
		Header: lipgloss.NewStyle().
			Foreground(ansiColor(t.HeaderFg)).
			Background(ansiColor(t.HeaderBg)).
			Bold(true),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
