package chatbot

// Preferences holds presentation settings that survive restarts.
type Preferences struct {
	Dark bool
}

// PreferenceStore loads and saves Preferences. Load returns zero
// Preferences and no error when nothing has been saved yet.
type PreferenceStore interface {
	Load() (Preferences, error)
	Save(Preferences) error
}

// InitialDark resolves the theme a variant starts with. Variants that
// persist the theme read it from store; others, and a nil store, use the
// variant default. A load failure also falls back to the default and is
// returned for logging.
func InitialDark(v Variant, store PreferenceStore) (bool, error) {
	if !v.PersistTheme || store == nil {
		return v.DefaultDark, nil
	}
	prefs, err := store.Load()
	if err != nil {
		return v.DefaultDark, err
	}
	return prefs.Dark, nil
}
