package chatbot

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so the app
// automatically matches any color scheme. A negative index means no color.
type Theme struct {
	Dark      bool
	UserMsg   int    // User turn label
	Assistant int    // Assistant turn label
	Error     int    // Error messages
	Success   int    // Success indicators
	Muted     int    // Status bar, timestamps, placeholders
	CodeBg    int    // Code block background
	Accent    int    // Headings, greeting
	Highlight int    // Tagline, links
	HeaderFg  int    // Header bar text
	HeaderBg  int    // Header bar background
	CodeStyle string // chroma style for fenced code
}

// DarkTheme returns the ANSI color mapping for dark mode.
func DarkTheme() Theme {
	return Theme{
		Dark:      true,
		UserMsg:   12,
		Assistant: 14,
		Error:     9,
		Success:   10,
		Muted:     8,
		CodeBg:    0,
		Accent:    13,
		Highlight: 14,
		HeaderFg:  15,
		HeaderBg:  0,
		CodeStyle: "monokai",
	}
}

// LightTheme returns the ANSI color mapping for light mode.
func LightTheme() Theme {
	return Theme{
		UserMsg:   4,
		Assistant: 6,
		Error:     1,
		Success:   2,
		Muted:     8,
		CodeBg:    7,
		Accent:    5,
		Highlight: 4,
		HeaderFg:  0,
		HeaderBg:  7,
		CodeStyle: "github",
	}
}

// ThemeFor returns DarkTheme when dark is true and LightTheme otherwise.
func ThemeFor(dark bool) Theme {
	if dark {
		return DarkTheme()
	}
	return LightTheme()
}
