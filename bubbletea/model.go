package bubbletea

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/chatbot"
	"github.com/fwojciec/chatbot/goldmark"
	"github.com/rs/zerolog"
)

const (
	maxInputLines = 5
	headerHeight  = 1
	statusHeight  = 1
	eventBuffer   = 256
	flashDuration = 1500 * time.Millisecond
	keyHints      = "Enter send · Alt+Enter newline · Ctrl+T theme · Ctrl+Y copy code · Ctrl+N new chat · Ctrl+C quit"
)

var _ tea.Model = Model{}

// Config configures the TUI.
type Config struct {
	// Variant supplies the wording, layouts and theme policy. The zero
	// value selects chatbot.ClassicVariant.
	Variant chatbot.Variant
	// Dark selects the initial theme.
	Dark bool
	// Preferences receives the theme choice when the variant persists it.
	// Nil disables persistence.
	Preferences chatbot.PreferenceStore
	// Clipboard writes text to the system clipboard. Defaults to
	// clipboard.WriteAll.
	Clipboard func(string) error
	// Now returns the time shown in the header. Defaults to time.Now.
	Now    func() time.Time
	Logger zerolog.Logger
}

// Model is the Bubble Tea model for the chatbot TUI.
type Model struct {
	// Input is the draft editor. Exported for test access.
	Input textarea.Model
	// Viewport is the scrollable conversation. Exported for test access.
	Viewport viewport.Model

	ctrl    *chatbot.Controller
	cfg     Config
	theme   chatbot.Theme
	styles  Styles
	spinner spinner.Model
	// spinning is true while a spinner tick chain is outstanding.
	spinning bool

	// turns mirrors the controller transcript; blocks[i] renders turns[i].
	turns   chatbot.Transcript
	blocks  []MessageBlock
	pending bool

	now      time.Time
	flash    string
	flashSeq int
	err      error

	events      chan chatbot.Event
	unsubscribe func()
	closeOnce   *sync.Once

	width  int
	height int
	ready  bool
}

// New creates a TUI Model bound to ctrl. The model subscribes to ctrl
// immediately; call Close to release the subscription.
func New(ctrl *chatbot.Controller, cfg Config) Model {
	if cfg.Variant.Name == "" {
		cfg.Variant = chatbot.ClassicVariant()
	}
	if cfg.Clipboard == nil {
		cfg.Clipboard = clipboard.WriteAll
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	ta := textarea.New()
	ta.Placeholder = cfg.Variant.Placeholder
	ta.Prompt = ""
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = maxInputLines
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("alt+enter", "ctrl+j"))
	ta.SetHeight(1)
	ta.Focus()

	theme := chatbot.ThemeFor(cfg.Dark)
	styles := NewStyles(theme)

	events := make(chan chatbot.Event, eventBuffer)
	unsubscribe := ctrl.Subscribe(func(e chatbot.Event) {
		// Never block the controller. A dropped event shows up as an index
		// gap and triggers a resync.
		select {
		case events <- e:
		default:
		}
	})

	m := Model{
		Input:       ta,
		ctrl:        ctrl,
		cfg:         cfg,
		theme:       theme,
		styles:      styles,
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.Assistant)),
		now:         cfg.Now(),
		events:      events,
		unsubscribe: unsubscribe,
		closeOnce:   &sync.Once{},
	}
	m = m.resync()
	// Init starts the tick chain for a model created mid-request.
	m.spinning = m.pending
	return m
}

// Close releases the controller subscription and ends the pending event
// listener. It is safe to call more than once.
func (m Model) Close() {
	if m.closeOnce == nil {
		return
	}
	m.closeOnce.Do(func() {
		// No handler runs after unsubscribe returns, so the close
		// cannot race a send.
		m.unsubscribe()
		close(m.events)
	})
}

// Pending reports whether the model is waiting for a reply.
func (m Model) Pending() bool { return m.pending }

// Dark reports whether the dark theme is active.
func (m Model) Dark() bool { return m.theme.Dark }

// Err returns the last presentation error, if any.
func (m Model) Err() error { return m.err }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textarea.Blink, listenForEvent(m.events), tick()}
	if m.pending {
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m.layout(), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ControllerEventMsg:
		m = m.applyEvent(msg.Event)
		m = m.refresh()
		cmds := []tea.Cmd{listenForEvent(m.events)}
		if m.pending && !m.spinning {
			m.spinning = true
			cmds = append(cmds, m.spinner.Tick)
		}
		return m, tea.Batch(cmds...)

	case SubmitDoneMsg:
		m = m.resync()
		return m.refresh(), nil

	case TickMsg:
		m.now = m.cfg.Now()
		if len(m.blocks) == 0 {
			// The welcome greeting follows the clock.
			m = m.refresh()
		}
		return m, tick()

	case spinner.TickMsg:
		if !m.pending {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case clipboardMsg:
		if msg.err != nil {
			m.cfg.Logger.Warn().Err(msg.err).Msg("copy to clipboard failed")
			m.err = fmt.Errorf("copy: %w", msg.err)
			return m, nil
		}
		return m.showFlash("Copied!")

	case flashResetMsg:
		if msg.seq == m.flashSeq {
			m.flash = ""
		}
		return m, nil

	case preferencesSavedMsg:
		if msg.err != nil {
			m.cfg.Logger.Warn().Err(msg.err).Msg("save preferences failed")
			m.err = msg.err
		}
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	cmds = append(cmds, cmd)
	m.Input, cmd = m.Input.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.Input.View())
	return b.String()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEnter:
		if msg.Alt {
			break
		}
		if m.pending {
			return m, nil
		}
		text := strings.TrimSpace(m.Input.Value())
		if text == "" {
			return m, nil
		}
		return m.submitInput(text)

	case tea.KeyCtrlT:
		return m.toggleTheme()

	case tea.KeyCtrlY:
		return m.copyLastCode()

	case tea.KeyCtrlN:
		if m.pending || !m.ctrl.Reset() {
			return m, nil
		}
		m.turns, m.blocks = nil, nil
		m.err = nil
		return m.refresh(), nil
	}

	// Only forward non-character keys to the viewport so typing 'j' or 'k'
	// does not scroll.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	if msg.Type != tea.KeyRunes {
		m.Viewport, cmd = m.Viewport.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.Input, cmd = m.Input.Update(msg)
	cmds = append(cmds, cmd)
	m = m.autoGrow()
	return m, tea.Batch(cmds...)
}

func (m Model) submitInput(text string) (tea.Model, tea.Cmd) {
	m.Input.Reset()
	m = m.autoGrow()
	m.err = nil
	// Set optimistically so a second Enter before the controller's events
	// arrive keeps its draft.
	m.pending = true
	return m, submit(m.ctrl, text)
}

func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	m.theme = chatbot.ThemeFor(!m.theme.Dark)
	m.styles = NewStyles(m.theme)
	m.spinner.Style = m.styles.Assistant
	m.blocks = m.buildBlocks(m.turns)
	m = m.refresh()
	if !m.cfg.Variant.PersistTheme || m.cfg.Preferences == nil {
		return m, nil
	}
	return m, savePreferences(m.cfg.Preferences, chatbot.Preferences{Dark: m.theme.Dark})
}

func (m Model) copyLastCode() (tea.Model, tea.Cmd) {
	last, ok := m.turns.LastBy(chatbot.AuthorAssistant)
	if !ok {
		return m.showFlash("No code to copy")
	}
	blocks := goldmark.CodeBlocks(last.Text)
	if len(blocks) == 0 {
		return m.showFlash("No code to copy")
	}
	return m, copyText(m.cfg.Clipboard, blocks[len(blocks)-1])
}

func (m Model) showFlash(text string) (tea.Model, tea.Cmd) {
	m.flash = text
	m.flashSeq++
	seq := m.flashSeq
	return m, tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashResetMsg{seq: seq}
	})
}

// applyEvent folds a controller event into the mirrored transcript. Turns
// are placed by index, so replays after a resync are ignored and gaps
// trigger a fresh resync.
func (m Model) applyEvent(evt chatbot.Event) Model {
	switch e := evt.(type) {
	case chatbot.EventTurnAppended:
		switch {
		case e.Index < len(m.turns):
		case e.Index == len(m.turns):
			m.turns = append(m.turns, e.Turn)
			m.blocks = append(m.blocks, m.newBlock(e.Turn))
		default:
			m = m.resync()
		}
	case chatbot.EventPendingChanged:
		m.pending = e.Pending
	case chatbot.EventReset:
		m.turns, m.blocks = nil, nil
	}
	return m
}

// resync rebuilds the mirrored state from the controller.
func (m Model) resync() Model {
	m.turns = m.ctrl.Transcript()
	m.blocks = m.buildBlocks(m.turns)
	m.pending = m.ctrl.Pending()
	return m
}

func (m Model) buildBlocks(turns chatbot.Transcript) []MessageBlock {
	blocks := make([]MessageBlock, 0, len(turns))
	for _, t := range turns {
		blocks = append(blocks, m.newBlock(t))
	}
	return blocks
}

func (m Model) newBlock(t chatbot.Turn) MessageBlock {
	layout := m.cfg.Variant.TurnLayout
	switch {
	case t.Author == chatbot.AuthorUser:
		return NewUserMessageBlock(t, layout, m.styles)
	case t.Failed:
		return NewErrorBlock(t, layout, m.styles)
	default:
		return NewAssistantTextBlock(t, layout, m.theme, m.styles)
	}
}

// layout sizes the viewport and input to the terminal.
func (m Model) layout() Model {
	if m.width == 0 || m.height == 0 {
		return m
	}
	m.Input.SetWidth(m.width)
	vpHeight := max(m.height-headerHeight-statusHeight-m.Input.Height(), 1)
	if !m.ready {
		m.Viewport = viewport.New(m.width, vpHeight)
		m.ready = true
	} else {
		m.Viewport.Width = m.width
		m.Viewport.Height = vpHeight
	}
	return m.refresh()
}

// autoGrow fits the input height to its line count, up to maxInputLines.
func (m Model) autoGrow() Model {
	h := min(max(m.Input.LineCount(), 1), maxInputLines)
	if h == m.Input.Height() {
		return m
	}
	m.Input.SetHeight(h)
	return m.layout()
}

// refresh re-renders the conversation and scrolls to the newest turn.
func (m Model) refresh() Model {
	if !m.ready {
		return m
	}
	m.Viewport.SetContent(m.renderContent())
	m.Viewport.GotoBottom()
	return m
}

func (m Model) renderContent() string {
	width := m.Viewport.Width
	if len(m.blocks) == 0 {
		return NewWelcomeBlock(m.cfg.Variant, m.now, m.styles).View(width)
	}
	var b strings.Builder
	for i, block := range m.blocks {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(block.View(width))
	}
	return b.String()
}

func (m Model) header() string {
	v := m.cfg.Variant
	left := v.Title + " · " + chatbot.Greeting(m.now)
	right := m.now.Format(v.DateLayout) + "  " + m.now.Format(v.ClockLayout)
	return m.styles.Header.Render(headerText(left, right, m.width))
}

func (m Model) statusLine() string {
	var state string
	switch {
	case m.err != nil:
		state = m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err))
	case m.flash != "":
		state = m.styles.Success.Render(m.flash)
	case m.pending:
		state = m.spinner.View() + " " + m.styles.Muted.Render("Typing...")
	default:
		state = m.styles.Success.Render("●") + " " + m.styles.Muted.Render("Online")
	}
	line := state + "  " + m.styles.Muted.Render(keyHints)
	return lipgloss.NewStyle().MaxWidth(m.width).Render(line)
}

// submit hands text to the controller. Submit blocks until the reply has
// been appended, so it runs as a command off the update loop.
func submit(ctrl *chatbot.Controller, text string) tea.Cmd {
	return func() tea.Msg {
		return SubmitDoneMsg{Accepted: ctrl.Submit(context.Background(), text)}
	}
}

func copyText(write func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{err: write(text)}
	}
}

func savePreferences(store chatbot.PreferenceStore, prefs chatbot.Preferences) tea.Cmd {
	return func() tea.Msg {
		return preferencesSavedMsg{err: store.Save(prefs)}
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

// listenForEvent waits for the next controller event.
func listenForEvent(ch <-chan chatbot.Event) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-ch
		if !ok {
			return nil
		}
		return ControllerEventMsg{Event: evt}
	}
}
