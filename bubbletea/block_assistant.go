package bubbletea

import (
	"github.com/fwojciec/chatbot"
	"github.com/fwojciec/chatbot/goldmark"
)

var _ MessageBlock = (*AssistantTextBlock)(nil)

// AssistantTextBlock renders an assistant turn with markdown formatting.
// Turns are immutable, so the rendered body is cached per width.
type AssistantTextBlock struct {
	turn    chatbot.Turn
	layout  string
	theme   chatbot.Theme
	styles  Styles
	byWidth map[int]string
}

// NewAssistantTextBlock creates a block for an assistant turn.
func NewAssistantTextBlock(turn chatbot.Turn, layout string, theme chatbot.Theme, styles Styles) *AssistantTextBlock {
	return &AssistantTextBlock{
		turn:    turn,
		layout:  layout,
		theme:   theme,
		styles:  styles,
		byWidth: make(map[int]string),
	}
}

func (b *AssistantTextBlock) View(width int) string {
	label := turnLabel("AI", b.styles.Assistant, b.styles.Muted, b.turn.CreatedAt.Format(b.layout))
	return label + "\n" + b.body(width)
}

func (b *AssistantTextBlock) body(width int) string {
	if cached, ok := b.byWidth[width]; ok {
		return cached
	}
	rendered := goldmark.Render(b.turn.Text, width, b.theme)
	b.byWidth[width] = rendered
	return rendered
}
