package bubbletea_test

import (
	"context"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/chatbot"
	bt "github.com/fwojciec/chatbot/bubbletea"
	"github.com/fwojciec/chatbot/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// replyWith returns a generator that always answers with text.
func replyWith(text string) *mock.Generator {
	return &mock.Generator{
		GenerateFn: func(context.Context, string) (string, error) {
			return text, nil
		},
	}
}

// newController creates a controller stamped with fixedNow.
func newController(gen chatbot.Generator, opts ...chatbot.Option) *chatbot.Controller {
	return chatbot.NewController(gen, append([]chatbot.Option{chatbot.WithClock(fixedClock)}, opts...)...)
}

// newModel creates a model with a fixed clock and a recording-free config.
func newModel(t *testing.T, ctrl *chatbot.Controller, cfg bt.Config) bt.Model {
	t.Helper()
	if cfg.Now == nil {
		cfg.Now = fixedClock
	}
	if cfg.Clipboard == nil {
		cfg.Clipboard = func(string) error { return nil }
	}
	m := bt.New(ctrl, cfg)
	t.Cleanup(m.Close)
	return m
}

// initModel creates a model and sends a WindowSizeMsg to initialize the viewport.
func initModel(t *testing.T, ctrl *chatbot.Controller, cfg bt.Config) bt.Model {
	t.Helper()
	return initModelWithSize(t, ctrl, cfg, 80, 24)
}

// initModelWithSize creates a model with a custom terminal size.
func initModelWithSize(t *testing.T, ctrl *chatbot.Controller, cfg bt.Config, width, height int) bt.Model {
	t.Helper()
	return updateModel(t, newModel(t, ctrl, cfg), tea.WindowSizeMsg{Width: width, Height: height})
}

// updateModel sends a message and returns the updated Model.
func updateModel(t *testing.T, m bt.Model, msg tea.Msg) bt.Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model
}

// updateWithCmd sends a message and returns the updated Model and command.
func updateWithCmd(t *testing.T, m bt.Model, msg tea.Msg) (bt.Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model, cmd
}

// send types text into the draft and presses Enter, then runs the
// resulting submit command and delivers its result.
func send(t *testing.T, m bt.Model, text string) bt.Model {
	t.Helper()
	m.Input.SetValue(text)
	m, cmd := updateWithCmd(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg := cmd()
	done, ok := msg.(bt.SubmitDoneMsg)
	require.True(t, ok, "expected SubmitDoneMsg, got %T", msg)
	return updateModel(t, m, done)
}

// schedulesSpinnerTick reports whether cmd, or any command batched into it,
// yields a spinner.TickMsg within timeout. Commands still blocked at the
// deadline are abandoned; closing the model releases them.
func schedulesSpinnerTick(cmd tea.Cmd, timeout time.Duration) bool {
	msgs := make(chan tea.Msg, 16)
	var run func(tea.Cmd)
	run = func(c tea.Cmd) {
		if c == nil {
			return
		}
		go func() {
			msg := c()
			if batch, ok := msg.(tea.BatchMsg); ok {
				for _, sub := range batch {
					run(sub)
				}
				return
			}
			msgs <- msg
		}()
	}
	run(cmd)

	deadline := time.After(timeout)
	for {
		select {
		case msg := <-msgs:
			if _, ok := msg.(spinner.TickMsg); ok {
				return true
			}
		case <-deadline:
			return false
		}
	}
}
