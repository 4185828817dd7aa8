// Package toml persists chatbot preferences in a TOML file.
package toml

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/fwojciec/chatbot"
)

// FileName is the preferences file name inside the config directory.
const FileName = "preferences.toml"

var _ chatbot.PreferenceStore = (*Store)(nil)

// Store reads and writes chatbot.Preferences at a fixed path.
type Store struct {
	path string
}

type document struct {
	Theme themeSection `toml:"theme"`
}

type themeSection struct {
	Dark bool `toml:"dark"`
}

// NewStore returns a Store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the preferences path under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("toml: config dir: %w", err)
	}
	return filepath.Join(dir, "chatbot", FileName), nil
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Load decodes the preferences file. A missing file yields zero
// Preferences and no error.
func (s *Store) Load() (chatbot.Preferences, error) {
	var doc document
	if _, err := toml.DecodeFile(s.path, &doc); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return chatbot.Preferences{}, nil
		}
		return chatbot.Preferences{}, fmt.Errorf("toml: decode %s: %w", s.path, err)
	}
	return chatbot.Preferences{Dark: doc.Theme.Dark}, nil
}

// Save writes prefs to a temporary file in the target directory and renames
// it into place, so readers never observe a partial file.
func (s *Store) Save(prefs chatbot.Preferences) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("toml: create dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".preferences-*.toml")
	if err != nil {
		return fmt.Errorf("toml: create temp: %w", err)
	}
	defer os.Remove(tmp.Name())

	doc := document{Theme: themeSection{Dark: prefs.Dark}}
	if err := toml.NewEncoder(tmp).Encode(doc); err != nil {
		tmp.Close()
		return fmt.Errorf("toml: encode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("toml: close temp: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("toml: rename: %w", err)
	}
	return nil
}
