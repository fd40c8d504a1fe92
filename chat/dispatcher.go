package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anilreddy12001/portfolio-engine/ai"
	"github.com/anilreddy12001/portfolio-engine/content"
	"github.com/anilreddy12001/portfolio-engine/core"
	"github.com/anilreddy12001/portfolio-engine/search"
)

// DefaultModel is the model name advertised in outbound socket payloads.
const DefaultModel = "gpt-4"

// dispatchContext tags every outbound socket payload.
const dispatchContext = "portfolio_conversational_search"

// Fixed replies for the non-generative paths.
const (
	// replyHeader prefixes local search answers.
	replyHeader = "Here are some things I found:\n\n"

	// replyNoMatches is returned when local search finds nothing relevant.
	replyNoMatches = "I couldn't find anything relevant. Try keywords like React, projects, or a company name."

	// replyGenerationError substitutes for a failed generative call.
	replyGenerationError = "Sorry, there was an error processing your request."

	// localReplyLimit caps how many results a local answer lists.
	localReplyLimit = 5
)

// outboundMessage is the wire shape sent on the socket channel.
type outboundMessage struct {
	Type    string `json:"type"`
	Model   string `json:"model"`
	Content string `json:"content"`
	Context string `json:"context"`
}

// Dispatcher routes each user message to the first available reply strategy
// and owns the session history. Construction wires the inbound socket
// handler so remote replies land in the session as assistant messages.
type Dispatcher struct {
	searcher  *search.Searcher
	prompts   *ai.PromptBuilder
	session   *Session
	channel   Channel
	responder ai.Responder
	model     string
	logger    *slog.Logger
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithChannel injects the socket channel. The dispatcher installs its
// inbound handler on it; the caller keeps ownership of the lifecycle.
func WithChannel(channel Channel) DispatcherOption {
	return func(d *Dispatcher) {
		d.channel = channel
	}
}

// WithResponder injects the generative backend tried when the socket
// channel is not usable.
func WithResponder(responder ai.Responder) DispatcherOption {
	return func(d *Dispatcher) {
		d.responder = responder
	}
}

// WithModel overrides the model name advertised on the socket channel.
func WithModel(model string) DispatcherOption {
	return func(d *Dispatcher) {
		if model != "" {
			d.model = model
		}
	}
}

// WithSession replaces the freshly seeded session, e.g. for tests.
func WithSession(session *Session) DispatcherOption {
	return func(d *Dispatcher) {
		if session != nil {
			d.session = session
		}
	}
}

// WithDispatcherLogger sets a custom logger.
// Default is slog.Default().
func WithDispatcherLogger(logger *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// NewDispatcher creates a dispatcher over the given content store and
// searcher. With no options it answers purely from local search.
func NewDispatcher(store *content.Store, searcher *search.Searcher, opts ...DispatcherOption) (*Dispatcher, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if searcher == nil {
		return nil, ErrSearcherRequired
	}

	d := &Dispatcher{
		searcher: searcher,
		prompts:  ai.NewPromptBuilder(store),
		session:  NewSession(),
		model:    DefaultModel,
		logger:   slog.Default().With("component", "dispatcher"),
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.channel != nil {
		d.channel.SetHandler(d.handleInbound)
	}

	return d, nil
}

// Session returns the dispatcher's session.
func (d *Dispatcher) Session() *Session { return d.session }

// History returns a copy of the conversation so far.
func (d *Dispatcher) History() []core.ChatMessage { return d.session.History() }

// Send dispatches one user message. Empty or whitespace-only text is a
// no-op. Otherwise exactly one user message is appended, and exactly one
// assistant reply follows it: immediately for the generative and local
// paths, asynchronously via the socket's inbound handler for the socket
// path. The first usable channel wins; an attempted dispatch is never
// retried on another channel.
func (d *Dispatcher) Send(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	if err := d.session.Append(core.ChatMessage{Role: core.RoleUser, Content: text}); err != nil {
		return err
	}

	// Socket channel first: fire and forget, the reply is asynchronous.
	if d.channel != nil && d.channel.IsOpen() {
		payload := outboundMessage{
			Type:    "chat",
			Model:   d.model,
			Content: text,
			Context: dispatchContext,
		}
		err := d.channel.Send(payload)
		if err == nil {
			d.logger.Debug("dispatched to socket channel", "session", d.session.ID())
			return nil
		}
		// A rejected write means the channel was never usable for this
		// dispatch; fall through to the next tier.
		d.logger.Warn("socket send rejected, falling back", "err", err)
	}

	// Generative backend second. Failures are absorbed into a substitute
	// reply; they never propagate and never re-dispatch elsewhere.
	if d.responder != nil {
		reply, err := d.responder.Respond(ctx, d.prompts.Build(text))
		if err != nil {
			d.logger.Error("generative call failed", "err", err)
			reply = replyGenerationError
		}
		return d.session.Append(core.ChatMessage{Role: core.RoleAssistant, Content: reply})
	}

	// Local lexical fallback.
	return d.session.Append(core.ChatMessage{Role: core.RoleAssistant, Content: d.localAnswer(text)})
}

// localAnswer renders the top search hits as a numbered list, or the fixed
// no-match reply.
func (d *Dispatcher) localAnswer(text string) string {
	results := d.searcher.SearchAll(text)
	if len(results) == 0 {
		return replyNoMatches
	}
	if len(results) > localReplyLimit {
		results = results[:localReplyLimit]
	}

	lines := make([]string, 0, len(results))
	for i, res := range results {
		lines = append(lines, fmt.Sprintf("%d. [%s] %s — %s",
			i+1, res.Record.Kind(), res.Record.Title(), res.Record.Description()))
	}
	return replyHeader + strings.Join(lines, "\n")
}

// handleInbound appends a remote reply to the session. Installed on the
// channel at construction; runs on the socket read loop.
func (d *Dispatcher) handleInbound(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	if err := d.session.Append(core.ChatMessage{Role: core.RoleAssistant, Content: text}); err != nil {
		d.logger.Warn("dropping inbound socket message", "err", err)
	}
}
