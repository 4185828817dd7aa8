// Package bubbletea provides a Bubble Tea TUI for the chatbot.
package bubbletea

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/chatbot"
)

// Run creates and runs the Bubble Tea TUI program. It blocks until the program
// exits. The context is used for graceful shutdown: when cancelled, the
// program quits.
func Run(ctx context.Context, m Model) error {
	defer m.Close()
	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// ControllerEventMsg wraps a controller event for delivery to the model.
type ControllerEventMsg struct {
	Event chatbot.Event
}

// SubmitDoneMsg signals that a Submit call has returned. Accepted is false
// when the controller ignored the text.
type SubmitDoneMsg struct {
	Accepted bool
}

// TickMsg drives the header clock.
type TickMsg struct {
	Time time.Time
}

type flashResetMsg struct {
	seq int
}

type clipboardMsg struct {
	err error
}

type preferencesSavedMsg struct {
	err error
}
