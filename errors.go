package chatbot

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrNoCandidate indicates a reply arrived but carried no candidate text.
	ErrNoCandidate = errors.New("no candidate text in response")

	// ErrUnknownVariant indicates a variant name that LookupVariant does not know.
	ErrUnknownVariant = errors.New("unknown variant")
)
