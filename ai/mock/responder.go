package mock

import (
	"context"
	"fmt"

	"github.com/anilreddy12001/portfolio-engine/ai"
)

// Responder is a test double for ai.Responder.
// It allows custom behavior injection via function fields.
type Responder struct {
	// RespondFunc is called by Respond if set.
	// If nil, canned responses registered with AddResponse are used.
	RespondFunc func(ctx context.Context, prompt string) (string, error)

	responses map[string]string
	callCount int
}

var _ ai.Responder = (*Responder)(nil)

// NewResponder creates a mock responder with default behavior.
func NewResponder() *Responder {
	return &Responder{responses: make(map[string]string)}
}

// AddResponse registers a deterministic canned reply for an exact prompt.
func (m *Responder) AddResponse(prompt, reply string) {
	m.responses[prompt] = reply
}

// Respond returns the injected behavior, a canned reply, or a synthetic
// reply derived from the prompt.
func (m *Responder) Respond(ctx context.Context, prompt string) (string, error) {
	m.callCount++

	if m.RespondFunc != nil {
		return m.RespondFunc(ctx, prompt)
	}
	if reply, ok := m.responses[prompt]; ok {
		return reply, nil
	}
	return fmt.Sprintf("Mock reply to: %s", prompt), nil
}

// CallCount returns how many times Respond has been invoked.
func (m *Responder) CallCount() int {
	return m.callCount
}
