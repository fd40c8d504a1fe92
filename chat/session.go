package chat

import (
	"slices"
	"sync"
	"time"

	"github.com/anilreddy12001/portfolio-engine/core"
	"github.com/google/uuid"
)

// Greeting seeds every new session as the first assistant message.
const Greeting = "Hi! Ask me anything about my projects, skills, or experience."

// Session is the ordered, append-only conversation history for one visit.
// It lives for the duration of the process and is never persisted.
// Safe for concurrent use; concurrent appends land in completion order.
type Session struct {
	id string

	mu       sync.Mutex
	messages []core.ChatMessage
}

// NewSession creates a session seeded with the assistant greeting.
func NewSession() *Session {
	return &Session{
		id: uuid.NewString(),
		messages: []core.ChatMessage{
			{Role: core.RoleAssistant, Content: Greeting, Timestamp: time.Now()},
		},
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Append validates and appends a message, stamping it with the current time
// when the timestamp is zero. History is never edited or truncated.
func (s *Session) Append(msg core.ChatMessage) error {
	if err := core.ValidateChatMessage(msg); err != nil {
		return err
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
	return nil
}

// History returns a copy of the conversation so far, oldest first.
func (s *Session) History() []core.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.messages)
}

// Last returns the most recent message and true, or false for a history
// that is somehow empty.
func (s *Session) Last() (core.ChatMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.messages) == 0 {
		return core.ChatMessage{}, false
	}
	return s.messages[len(s.messages)-1], true
}

// Len returns the number of messages in the history.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}
