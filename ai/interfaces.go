package ai

import "context"

// Responder produces a single textual reply for a fully built prompt.
// Implementations must be safe for concurrent use.
type Responder interface {
	// Respond sends the prompt to the backend and returns its reply.
	// A nil error with a non-empty string is always a usable reply; some
	// backends return a fixed substitute string instead of an error when
	// the service answered but produced no usable text.
	Respond(ctx context.Context, prompt string) (string, error)
}
