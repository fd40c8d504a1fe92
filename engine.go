// Copyright 2025 Anil Kumar Reddy K
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package portfolioengine ties the portfolio content, lexical search, and
// conversational dispatch together behind one facade for presentation
// layers and the CLI.
package portfolioengine

import (
	"context"
	"log/slog"

	"github.com/anilreddy12001/portfolio-engine/ai"
	"github.com/anilreddy12001/portfolio-engine/ai/gemini"
	"github.com/anilreddy12001/portfolio-engine/chat"
	"github.com/anilreddy12001/portfolio-engine/content"
	"github.com/anilreddy12001/portfolio-engine/core"
	"github.com/anilreddy12001/portfolio-engine/search"
)

// Engine is the assembled portfolio core: content store, search index, and
// the conversational dispatcher sharing one session.
type Engine struct {
	store      *content.Store
	searcher   *search.Searcher
	dispatcher *chat.Dispatcher
	channel    chat.Channel
	logger     *slog.Logger
}

// Option configures an Engine.
type Option func(*engineOptions)

type engineOptions struct {
	store      *content.Store
	aiConfig   *ai.Config
	responder  ai.Responder
	channel    chat.Channel
	model      string
	maxResults int
	logger     *slog.Logger
}

// WithStore replaces the default portfolio dataset.
func WithStore(store *content.Store) Option {
	return func(o *engineOptions) {
		if store != nil {
			o.store = store
		}
	}
}

// WithAIConfig enables the generative tier using the generative-language
// backend described by the config.
func WithAIConfig(cfg *ai.Config) Option {
	return func(o *engineOptions) {
		o.aiConfig = cfg
	}
}

// WithResponder injects a ready generative backend, overriding WithAIConfig.
func WithResponder(responder ai.Responder) Option {
	return func(o *engineOptions) {
		o.responder = responder
	}
}

// WithChannel injects an open socket channel. The engine closes it on Close.
func WithChannel(channel chat.Channel) Option {
	return func(o *engineOptions) {
		o.channel = channel
	}
}

// WithModel overrides the model name advertised on the socket channel.
func WithModel(model string) Option {
	return func(o *engineOptions) {
		o.model = model
	}
}

// WithMaxResults caps the number of results Query returns. Chat fallback
// replies keep their own fixed listing limit regardless of this cap.
func WithMaxResults(n int) Option {
	return func(o *engineOptions) {
		o.maxResults = n
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *engineOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// New assembles an Engine. With no options it serves the default dataset
// with local search only.
func New(opts ...Option) (*Engine, error) {
	options := &engineOptions{
		store:  content.DefaultStore(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	searchOpts := []search.Option{search.WithLogger(options.logger)}
	if options.maxResults > 0 {
		searchOpts = append(searchOpts, search.WithMaxResults(options.maxResults))
	}
	searcher, err := search.NewSearcher(options.store, searchOpts...)
	if err != nil {
		return nil, err
	}

	responder := options.responder
	if responder == nil && options.aiConfig != nil {
		client, err := gemini.NewClient(options.aiConfig, gemini.WithLogger(options.logger))
		if err != nil {
			return nil, err
		}
		responder = client
	}

	dispatchOpts := []chat.DispatcherOption{chat.WithDispatcherLogger(options.logger)}
	if options.channel != nil {
		dispatchOpts = append(dispatchOpts, chat.WithChannel(options.channel))
	}
	if responder != nil {
		dispatchOpts = append(dispatchOpts, chat.WithResponder(responder))
	}
	if options.model != "" {
		dispatchOpts = append(dispatchOpts, chat.WithModel(options.model))
	}
	dispatcher, err := chat.NewDispatcher(options.store, searcher, dispatchOpts...)
	if err != nil {
		return nil, err
	}

	return &Engine{
		store:      options.store,
		searcher:   searcher,
		dispatcher: dispatcher,
		channel:    options.channel,
		logger:     options.logger,
	}, nil
}

// Store returns the content store the engine serves.
func (e *Engine) Store() *content.Store { return e.store }

// Query runs a lexical search. Empty or whitespace-only queries return an
// empty result set.
func (e *Engine) Query(text string) []core.SearchResult {
	return e.searcher.Search(text)
}

// Ask dispatches one chat message through the socket/generative/local chain.
func (e *Engine) Ask(ctx context.Context, text string) error {
	return e.dispatcher.Send(ctx, text)
}

// History returns a copy of the chat session so far.
func (e *Engine) History() []core.ChatMessage {
	return e.dispatcher.History()
}

// Close releases the socket channel, if one was injected.
func (e *Engine) Close() error {
	if e.channel == nil {
		return nil
	}
	return e.channel.Close()
}
