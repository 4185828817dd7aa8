package chatbot

import "time"

// Greeting returns the salutation for the local hour of t.
func Greeting(t time.Time) string {
	switch h := t.Hour(); {
	case h >= 5 && h < 12:
		return "Good Morning!"
	case h >= 12 && h < 17:
		return "Good Afternoon!"
	case h >= 17 && h < 21:
		return "Good Evening!"
	default:
		return "Good Night!"
	}
}
