package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/anilreddy12001/portfolio-engine/ai"
)

// NoResponseReply is returned, with a nil error, when the backend answered
// but the expected text field is absent from the response.
const NoResponseReply = "Sorry, I could not generate a response."

// Client calls the generative-language generateContent endpoint.
type Client struct {
	config     *ai.Config
	httpClient *http.Client
	logger     *slog.Logger
}

var _ ai.Responder = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client, replacing the default one built
// from the config timeout. The injected client is used as-is: bring your own
// timeout and transport when proxying or testing.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a client for the configured endpoint. A missing API key
// is accepted; the resulting calls fail and the caller absorbs the failure.
func NewClient(config *ai.Config, opts ...Option) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		logger:     slog.Default().With("component", "gemini-client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Request/response wire shapes for generateContent.
type generateRequest struct {
	Contents []requestContent `json:"contents"`
}

type requestContent struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content candidateContent `json:"content"`
}

type candidateContent struct {
	Parts []part `json:"parts"`
}

// Respond implements ai.Responder. It POSTs the prompt as a single user turn
// and extracts the first candidate's first text part. A response without that
// field yields NoResponseReply with a nil error; transport, status, and
// decode failures are returned as errors.
func (c *Client) Respond(ctx context.Context, prompt string) (string, error) {
	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		c.config.BaseURL, c.config.Model, url.QueryEscape(c.config.APIKey))

	payload := generateRequest{
		Contents: []requestContent{
			{Role: "user", Parts: []part{{Text: prompt}}},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("generate call failed", "model", c.config.Model, "err", err)
		return "", fmt.Errorf("calling generate endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Error("generate call returned non-OK status",
			"status", resp.StatusCode, "body", string(snippet))
		return "", fmt.Errorf("generate endpoint returned status %d", resp.StatusCode)
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		c.logger.Error("error decoding generate response", "err", err)
		return "", fmt.Errorf("decoding response: %w", err)
	}

	text := firstText(decoded)
	if text == "" {
		c.logger.Warn("generate response carried no text candidate", "model", c.config.Model)
		return NoResponseReply, nil
	}
	return text, nil
}

// firstText extracts candidates[0].content.parts[0].text, tolerating any
// missing level of the nested structure.
func firstText(resp generateResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}
	parts := resp.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return ""
	}
	return parts[0].Text
}
