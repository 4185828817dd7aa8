package bubbletea

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/chatbot"
)

var _ MessageBlock = (*UserMessageBlock)(nil)

// UserMessageBlock renders a user turn under a "You · time" label.
type UserMessageBlock struct {
	turn   chatbot.Turn
	layout string
	styles Styles
}

// NewUserMessageBlock creates a UserMessageBlock. layout formats the turn
// timestamp.
func NewUserMessageBlock(turn chatbot.Turn, layout string, styles Styles) *UserMessageBlock {
	return &UserMessageBlock{turn: turn, layout: layout, styles: styles}
}

func (b *UserMessageBlock) View(width int) string {
	label := turnLabel("You", b.styles.UserMsg, b.styles.Muted, b.turn.CreatedAt.Format(b.layout))
	body := lipgloss.NewStyle().Width(width).Render(b.turn.Text)
	return label + "\n" + body
}
