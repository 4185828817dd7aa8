package chatbot

// Author identifies who wrote a turn.
type Author string

const (
	AuthorUser      Author = "user"
	AuthorAssistant Author = "assistant"
)
