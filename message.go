package chatbot

import "time"

// Turn is one message exchanged in the conversation. A Turn is never
// modified once it has been appended to a Transcript.
type Turn struct {
	Author    Author
	Text      string
	CreatedAt time.Time
	// Failed marks an assistant turn that carries the error reply rather
	// than model output.
	Failed bool
}

// Transcript is the ordered history of turns in a session. Insertion order
// is conversation order.
type Transcript []Turn

// LastBy returns the most recent turn written by author.
func (t Transcript) LastBy(author Author) (Turn, bool) {
	for i := len(t) - 1; i >= 0; i-- {
		if t[i].Author == author {
			return t[i], true
		}
	}
	return Turn{}, false
}
