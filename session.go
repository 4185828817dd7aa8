package chatbot

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Default reply texts used when no variant overrides them.
const (
	DefaultFallbackText = "🤖 No response"
	DefaultErrorText    = "Error: Could not fetch response."
)

// Controller owns a session's transcript and its in-flight flag. It
// serializes the request/reply cycle with a Generator so that at most one
// request is outstanding at any time.
//
// The zero value is not usable; create controllers with NewController.
type Controller struct {
	gen          Generator
	fallbackText string
	errorText    string
	now          func() time.Time
	logger       zerolog.Logger

	mu          sync.Mutex
	transcript  Transcript
	pending     bool
	subscribers []subscriber
	nextSubID   int
}

type subscriber struct {
	id int
	fn func(Event)
}

// Option configures a Controller.
type Option func(*Controller)

// WithFallbackText sets the reply appended when the generator returns no
// candidate text. Empty strings are ignored.
func WithFallbackText(text string) Option {
	return func(c *Controller) {
		if text != "" {
			c.fallbackText = text
		}
	}
}

// WithErrorText sets the reply appended when the generator fails. Empty
// strings are ignored.
func WithErrorText(text string) Option {
	return func(c *Controller) {
		if text != "" {
			c.errorText = text
		}
	}
}

// WithClock sets the function used to timestamp turns.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Controller) { c.logger = logger }
}

// NewController creates an idle Controller with an empty transcript.
func NewController(gen Generator, opts ...Option) *Controller {
	c := &Controller{
		gen:          gen,
		fallbackText: DefaultFallbackText,
		errorText:    DefaultErrorText,
		now:          time.Now,
		logger:       zerolog.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Submit sends text to the generator and records the exchange. Surrounding
// whitespace is trimmed. Blank text and calls made while a reply is pending
// are ignored and return false without touching the transcript or the
// generator.
//
// An accepted call appends the user turn, blocks until the generator
// resolves, appends exactly one assistant turn, and returns true. The
// pending flag is cleared on every exit path, including a panicking
// generator.
func (c *Controller) Submit(ctx context.Context, text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}

	c.mu.Lock()
	if c.pending {
		c.mu.Unlock()
		c.logger.Debug().Msg("submit ignored: reply pending")
		return false
	}
	c.appendLocked(Turn{Author: AuthorUser, Text: text, CreatedAt: c.now()})
	c.setPendingLocked(true)
	turns := len(c.transcript)
	c.mu.Unlock()

	c.logger.Info().Int("turns", turns).Int("chars", len(text)).Msg("submit accepted")

	reply := Turn{Author: AuthorAssistant, Text: c.errorText, Failed: true}
	defer c.resolve(&reply)
	reply.Text, reply.Failed = c.generate(ctx, text)
	return true
}

// resolve appends the assistant turn and leaves the Awaiting state. It runs
// deferred so a panicking generator still releases the in-flight flag.
func (c *Controller) resolve(reply *Turn) {
	c.mu.Lock()
	defer c.mu.Unlock()
	reply.CreatedAt = c.now()
	c.appendLocked(*reply)
	c.setPendingLocked(false)
}

// generate returns the reply text and whether it is the error reply.
func (c *Controller) generate(ctx context.Context, prompt string) (string, bool) {
	start := time.Now()
	text, err := c.gen.Generate(ctx, prompt)
	elapsed := time.Since(start)
	switch {
	case err == nil && text != "":
		c.logger.Info().Str("outcome", "reply").Dur("elapsed", elapsed).Msg("reply received")
		return text, false
	case err == nil || errors.Is(err, ErrNoCandidate):
		c.logger.Warn().Err(err).Str("outcome", "fallback").Dur("elapsed", elapsed).Msg("reply had no candidate text")
		return c.fallbackText, false
	default:
		c.logger.Error().Err(err).Str("outcome", "error").Dur("elapsed", elapsed).Msg("generate failed")
		return c.errorText, true
	}
}

// Reset clears the transcript. It is refused while a reply is pending, so
// an in-flight reply can never land in a fresh transcript.
func (c *Controller) Reset() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending {
		return false
	}
	c.transcript = nil
	c.emitLocked(EventReset{})
	c.logger.Info().Msg("session reset")
	return true
}

// Transcript returns a copy of the turns recorded so far.
func (c *Controller) Transcript() Transcript {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.transcript)
}

// Pending reports whether a reply is outstanding.
func (c *Controller) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// Subscribe registers fn to receive every subsequent state change. Handlers
// run synchronously, in registration order, while the controller's lock is
// held: they must not block and must not call back into the Controller.
func (c *Controller) Subscribe(fn func(Event)) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextSubID
	c.nextSubID++
	c.subscribers = append(c.subscribers, subscriber{id: id, fn: fn})
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.subscribers = slices.DeleteFunc(c.subscribers, func(s subscriber) bool {
			return s.id == id
		})
	}
}

func (c *Controller) appendLocked(t Turn) {
	c.transcript = append(c.transcript, t)
	c.emitLocked(EventTurnAppended{Index: len(c.transcript) - 1, Turn: t})
}

func (c *Controller) setPendingLocked(pending bool) {
	c.pending = pending
	c.emitLocked(EventPendingChanged{Pending: pending})
}

func (c *Controller) emitLocked(e Event) {
	for _, s := range c.subscribers {
		s.fn(e)
	}
}
