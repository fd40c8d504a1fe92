package chat

import (
	"sync"
	"testing"

	"github.com/anilreddy12001/portfolio-engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession_SeededWithGreeting(t *testing.T) {
	session := NewSession()

	require.Equal(t, 1, session.Len())
	first := session.History()[0]
	assert.Equal(t, core.RoleAssistant, first.Role)
	assert.Equal(t, Greeting, first.Content)
	assert.NotEmpty(t, session.ID())
}

func TestSession_AppendOrder(t *testing.T) {
	session := NewSession()

	require.NoError(t, session.Append(core.ChatMessage{Role: core.RoleUser, Content: "hello"}))
	require.NoError(t, session.Append(core.ChatMessage{Role: core.RoleAssistant, Content: "hi"}))

	history := session.History()
	require.Len(t, history, 3)
	assert.Equal(t, "hello", history[1].Content)
	assert.Equal(t, "hi", history[2].Content)
	assert.False(t, history[1].Timestamp.IsZero())

	last, ok := session.Last()
	require.True(t, ok)
	assert.Equal(t, "hi", last.Content)
}

func TestSession_AppendValidates(t *testing.T) {
	session := NewSession()

	err := session.Append(core.ChatMessage{Role: core.RoleUser, Content: ""})
	assert.ErrorIs(t, err, core.ErrInvalidChatMessage)

	err = session.Append(core.ChatMessage{Role: core.Role("system"), Content: "x"})
	assert.ErrorIs(t, err, core.ErrInvalidRole)

	assert.Equal(t, 1, session.Len(), "rejected messages must not mutate history")
}

func TestSession_HistoryReturnsCopy(t *testing.T) {
	session := NewSession()
	require.NoError(t, session.Append(core.ChatMessage{Role: core.RoleUser, Content: "hello"}))

	history := session.History()
	history[0].Content = "mutated"
	assert.Equal(t, Greeting, session.History()[0].Content)
}

func TestSession_ConcurrentAppends(t *testing.T) {
	session := NewSession()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = session.Append(core.ChatMessage{Role: core.RoleAssistant, Content: "reply"})
		}()
	}
	wg.Wait()

	assert.Equal(t, 21, session.Len())
}
