package openai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anilreddy12001/portfolio-engine/ai"
)

func newTestResponder(t *testing.T, handler http.HandlerFunc) *Responder {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := ai.NewConfig(
		ai.WithBaseURL(server.URL),
		ai.WithModel("test-model"),
		ai.WithAPIKey("test-key"),
	)
	responder, err := NewResponder(cfg)
	require.NoError(t, err)
	return responder
}

func completionBody(content string) string {
	return `{
		"id": "chatcmpl-1",
		"object": "chat.completion",
		"model": "test-model",
		"choices": [
			{
				"index": 0,
				"message": {"role": "assistant", "content": ` + jsonQuote(content) + `},
				"finish_reason": "stop"
			}
		],
		"usage": {"prompt_tokens": 1, "completion_tokens": 1, "total_tokens": 2}
	}`
}

func jsonQuote(s string) string {
	raw, _ := json.Marshal(s)
	return string(raw)
}

func TestRespond_Success(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody []byte

	responder := newTestResponder(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionBody("  The portfolio lists four projects.  ")))
	})

	reply, err := responder.Respond(context.Background(), "How many projects?")
	require.NoError(t, err)
	assert.Equal(t, "The portfolio lists four projects.", reply, "reply must be trimmed")

	assert.Equal(t, "/chat/completions", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(gotBody, &payload))
	assert.Equal(t, "test-model", payload["model"])
	assert.True(t, strings.Contains(string(gotBody), "How many projects?"),
		"the prompt must go out as the message content")
}

func TestRespond_EmptyChoices(t *testing.T) {
	responder := newTestResponder(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"chatcmpl-1","object":"chat.completion","model":"test-model","choices":[]}`))
	})

	_, err := responder.Respond(context.Background(), "anything")
	assert.Error(t, err)
}

func TestRespond_ServerError(t *testing.T) {
	responder := newTestResponder(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"boom"}}`, http.StatusInternalServerError)
	})

	_, err := responder.Respond(context.Background(), "anything")
	assert.Error(t, err)
}

func TestNewResponder_InvalidConfig(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		_, err := NewResponder(nil)
		assert.Equal(t, ai.ErrConfigRequired, err)
	})

	t.Run("missing base URL", func(t *testing.T) {
		_, err := NewResponder(&ai.Config{Model: "test-model"})
		assert.Equal(t, ai.ErrBaseURLRequired, err)
	})
}
