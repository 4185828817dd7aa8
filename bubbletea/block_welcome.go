package bubbletea

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/chatbot"
)

var _ MessageBlock = (*WelcomeBlock)(nil)

// WelcomeBlock is shown in place of the conversation while the transcript
// is empty.
type WelcomeBlock struct {
	variant chatbot.Variant
	now     time.Time
	styles  Styles
}

// NewWelcomeBlock creates a WelcomeBlock greeting the user for the time of
// day at now.
func NewWelcomeBlock(variant chatbot.Variant, now time.Time, styles Styles) *WelcomeBlock {
	return &WelcomeBlock{variant: variant, now: now, styles: styles}
}

func (b *WelcomeBlock) View(width int) string {
	wrap := lipgloss.NewStyle().Width(width)
	lines := []string{
		wrap.Render(b.styles.Accent.Render(chatbot.Greeting(b.now))),
		wrap.Render(b.styles.Highlight.Render(b.variant.Tagline)),
	}
	if b.variant.Welcome != "" {
		lines = append(lines, "", wrap.Render(b.variant.Welcome))
	}
	if b.variant.EmptyHint != "" {
		lines = append(lines, "", wrap.Render(b.styles.Muted.Render(b.variant.EmptyHint)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
