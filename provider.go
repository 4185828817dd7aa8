package chatbot

import "context"

// Generator is the remote text-generation collaborator. Each call carries a
// single prompt and no conversation history.
//
// Implementations return an error wrapping ErrNoCandidate when the reply
// arrived but the expected text was structurally absent. Any other error is
// treated as a transport failure.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
