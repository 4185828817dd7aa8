// Package gemini implements [chatbot.Generator] for the Google Gemini API.
//
// It wraps the google.golang.org/genai SDK. Every call is a single
// non-streaming generateContent request carrying one user prompt and no
// conversation history.
package gemini

const (
	defaultModel = "gemini-2.0-flash"
	apiVersion   = "v1beta"
)
