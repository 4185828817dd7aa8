// Package mock provides test doubles for chatbot interfaces using function fields.
package mock

import (
	"context"

	"github.com/fwojciec/chatbot"
)

// Interface compliance checks.
var (
	_ chatbot.Generator       = (*Generator)(nil)
	_ chatbot.PreferenceStore = (*PreferenceStore)(nil)
)

// Generator is a test double for chatbot.Generator.
// Set GenerateFn before calling Generate.
type Generator struct {
	GenerateFn func(ctx context.Context, prompt string) (string, error)
}

// Generate delegates to GenerateFn.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	return g.GenerateFn(ctx, prompt)
}

// PreferenceStore is a test double for chatbot.PreferenceStore.
// LoadFn and SaveFn are nil-safe: Load returns zero Preferences and Save is
// a no-op when unset.
type PreferenceStore struct {
	LoadFn func() (chatbot.Preferences, error)
	SaveFn func(chatbot.Preferences) error
}

// Load delegates to LoadFn.
func (s *PreferenceStore) Load() (chatbot.Preferences, error) {
	if s.LoadFn == nil {
		return chatbot.Preferences{}, nil
	}
	return s.LoadFn()
}

// Save delegates to SaveFn.
func (s *PreferenceStore) Save(p chatbot.Preferences) error {
	if s.SaveFn == nil {
		return nil
	}
	return s.SaveFn(p)
}
