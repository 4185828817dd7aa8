package chatbot

import "fmt"

// Variant bundles the wording and presentation policy of one flavour of the
// chat interface. All variants share the same Controller semantics.
type Variant struct {
	Name         string
	Title        string
	Tagline      string
	Welcome      string
	EmptyHint    string
	Placeholder  string
	FallbackText string
	ErrorText    string
	DateLayout   string
	ClockLayout  string
	TurnLayout   string
	PersistTheme bool
	DefaultDark  bool
}

// ClassicVariant is the single-page assistant: dark by default,
// long date, clock with seconds, theme choice not remembered.
func ClassicVariant() Variant {
	return Variant{
		Name:         "classic",
		Title:        "ChatBot",
		Tagline:      "Your AI Assistant",
		Welcome:      "I'm here to help with any questions you have. Ask me about coding, general knowledge, or anything else that comes to mind.",
		EmptyHint:    "Ask me anything!",
		Placeholder:  "Type your message...",
		FallbackText: DefaultFallbackText,
		ErrorText:    DefaultErrorText,
		DateLayout:   "Monday, January 2, 2006",
		ClockLayout:  "03:04:05 PM",
		TurnLayout:   "03:04 PM",
		DefaultDark:  true,
	}
}

// ModernVariant is the visualizer flavour: light by default with the theme
// choice remembered, short date, and a minute-resolution clock.
func ModernVariant() Variant {
	return Variant{
		Name:         "modern",
		Title:        "Chat - AI",
		Tagline:      "How can I assist your journey of discovery today?",
		EmptyHint:    "Start your conversation below.",
		Placeholder:  "Start your conversation here...",
		FallbackText: DefaultFallbackText,
		ErrorText:    "Apologies, I'm unable to process your request at the moment. Please try again later.",
		DateLayout:   "Mon, Jan 2, 2006",
		ClockLayout:  "03:04 PM",
		TurnLayout:   "03:04 PM",
		PersistTheme: true,
	}
}

// Variants returns every known variant in display order.
func Variants() []Variant {
	return []Variant{ClassicVariant(), ModernVariant()}
}

// LookupVariant returns the variant with the given name.
func LookupVariant(name string) (Variant, error) {
	for _, v := range Variants() {
		if v.Name == name {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// ControllerOptions returns the options that apply the variant's reply texts.
func (v Variant) ControllerOptions() []Option {
	return []Option{
		WithFallbackText(v.FallbackText),
		WithErrorText(v.ErrorText),
	}
}
