package portfolioengine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anilreddy12001/portfolio-engine/ai"
	"github.com/anilreddy12001/portfolio-engine/ai/mock"
	"github.com/anilreddy12001/portfolio-engine/chat"
	"github.com/anilreddy12001/portfolio-engine/content"
	"github.com/anilreddy12001/portfolio-engine/core"
)

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		engine, err := New()
		require.NoError(t, err)
		require.NotNil(t, engine)

		assert.Len(t, engine.Store().Projects(), 4)
		assert.NotNil(t, engine.History())
	})

	t.Run("custom store", func(t *testing.T) {
		store := content.NewStore(
			[]content.Project{{ID: "p1", Title: "Solo Project", Description: "a thing"}},
			nil, nil, nil, content.Profile{},
		)
		engine, err := New(WithStore(store))
		require.NoError(t, err)

		assert.Len(t, engine.Store().Projects(), 1)
	})

	t.Run("invalid ai config", func(t *testing.T) {
		_, err := New(WithAIConfig(&ai.Config{}))
		assert.Error(t, err)
	})
}

func TestEngineQuery(t *testing.T) {
	engine, err := New()
	require.NoError(t, err)

	t.Run("empty query", func(t *testing.T) {
		assert.Empty(t, engine.Query("   "))
	})

	t.Run("ranked results", func(t *testing.T) {
		results := engine.Query("react")
		require.NotEmpty(t, results)
		assert.Equal(t, "React", results[0].Record.Title())
		for i := 1; i < len(results); i++ {
			assert.LessOrEqual(t, results[i].Score, results[i-1].Score)
		}
	})

	t.Run("max results cap", func(t *testing.T) {
		capped, err := New(WithMaxResults(2))
		require.NoError(t, err)
		assert.Len(t, capped.Query("react"), 2)
	})
}

func TestEngineAsk(t *testing.T) {
	t.Run("local fallback", func(t *testing.T) {
		engine, err := New()
		require.NoError(t, err)

		require.NoError(t, engine.Ask(context.Background(), "react"))

		history := engine.History()
		require.Len(t, history, 3)
		assert.Equal(t, chat.Greeting, history[0].Content)
		assert.Equal(t, core.RoleUser, history[1].Role)
		assert.Equal(t, core.RoleAssistant, history[2].Role)
		assert.Contains(t, history[2].Content, "React")
	})

	t.Run("responder tier", func(t *testing.T) {
		responder := mock.NewResponder()
		responder.RespondFunc = func(ctx context.Context, prompt string) (string, error) {
			return "generated answer", nil
		}

		engine, err := New(WithResponder(responder))
		require.NoError(t, err)

		require.NoError(t, engine.Ask(context.Background(), "hello"))
		assert.Equal(t, 1, responder.CallCount())

		history := engine.History()
		assert.Equal(t, "generated answer", history[len(history)-1].Content)
	})
}

func TestEngineClose(t *testing.T) {
	t.Run("no channel", func(t *testing.T) {
		engine, err := New()
		require.NoError(t, err)
		assert.NoError(t, engine.Close())
	})
}
