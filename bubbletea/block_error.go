package bubbletea

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/chatbot"
)

var _ MessageBlock = (*ErrorBlock)(nil)

// ErrorBlock renders an assistant turn that carries the failure reply.
// The text is shown verbatim in the error color, never as markdown.
type ErrorBlock struct {
	turn   chatbot.Turn
	layout string
	styles Styles
}

// NewErrorBlock creates an ErrorBlock.
func NewErrorBlock(turn chatbot.Turn, layout string, styles Styles) *ErrorBlock {
	return &ErrorBlock{turn: turn, layout: layout, styles: styles}
}

func (b *ErrorBlock) View(width int) string {
	label := turnLabel("AI", b.styles.Assistant, b.styles.Muted, b.turn.CreatedAt.Format(b.layout))
	body := lipgloss.NewStyle().Width(width).Render(b.styles.Error.Render(b.turn.Text))
	return label + "\n" + body
}
