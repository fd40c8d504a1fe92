package openai

import (
	"context"
	"log/slog"
	"strings"

	"github.com/anilreddy12001/portfolio-engine/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Responder implements ai.Responder using an OpenAI-compatible chat API.
type Responder struct {
	client llms.Model
	logger *slog.Logger
}

var _ ai.Responder = (*Responder)(nil)

// NewResponder creates a responder for the configured backend.
// Use "none" as the API key for local services that don't require authentication.
func NewResponder(config *ai.Config) (*Responder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	token := config.APIKey
	if token == "" {
		token = "none"
	}

	client, err := openai.New(
		openai.WithBaseURL(config.BaseURL),
		openai.WithToken(token),
		openai.WithModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	return &Responder{
		client: client,
		logger: slog.Default().With("component", "openai-responder"),
	}, nil
}

// Respond implements ai.Responder. The prompt arrives fully built, so it is
// sent as a single human turn.
func (r *Responder) Respond(ctx context.Context, prompt string) (string, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(prompt),
			},
		},
	}

	response, err := r.client.GenerateContent(ctx, content, llms.WithTemperature(0.2))
	if err != nil {
		r.logger.Error("failed to generate content", "err", err)
		return "", err
	}

	if len(response.Choices) < 1 {
		r.logger.Debug("no choices returned from model")
		return "", ErrNoChoices
	}

	return strings.TrimSpace(response.Choices[0].Content), nil
}
