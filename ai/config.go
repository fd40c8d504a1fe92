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


package ai

import (
	"errors"
	"strings"
	"time"
)

// Defaults for the generative-language backend.
const (
	// DefaultBaseURL is the generative-language API host.
	DefaultBaseURL = "https://generativelanguage.googleapis.com"

	// DefaultModel is the model identifier used when none is configured.
	DefaultModel = "gemini-2.5-flash"

	// DefaultTimeout bounds a single generate call.
	DefaultTimeout = 30 * time.Second
)

// Config holds configuration for generative backends.
type Config struct {
	// BaseURL is the base URL of the backend API, without a trailing slash.
	// Example: "https://generativelanguage.googleapis.com"
	BaseURL string

	// Model is the model identifier to generate replies with.
	// Example: "gemini-2.5-flash", "gpt-4o-mini"
	Model string

	// APIKey is the credential passed to the backend. An empty key is not a
	// configuration error: the call will fail and the dispatcher absorbs
	// the failure into a substitute reply.
	APIKey string

	// Timeout bounds a single generate call. Default: DefaultTimeout.
	Timeout time.Duration
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithBaseURL sets the backend base URL.
func WithBaseURL(baseURL string) ConfigOption {
	return func(c *Config) {
		c.BaseURL = baseURL
	}
}

// WithModel sets the model identifier.
func WithModel(model string) ConfigOption {
	return func(c *Config) {
		c.Model = model
	}
}

// WithAPIKey sets the backend credential.
func WithAPIKey(key string) ConfigOption {
	return func(c *Config) {
		c.APIKey = key
	}
}

// WithTimeout sets the per-call timeout.
func WithTimeout(timeout time.Duration) ConfigOption {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// DefaultConfig returns a Config targeting the hosted generative-language API.
func DefaultConfig() *Config {
	return &Config{
		BaseURL: DefaultBaseURL,
		Model:   DefaultModel,
		Timeout: DefaultTimeout,
	}
}

// NewConfig creates a Config with the default values and applies the provided
// options. This is the recommended way to create a Config with custom settings.
//
// Example:
//
//	cfg := ai.NewConfig(
//	    ai.WithAPIKey(os.Getenv("GEMINI_API_KEY")),
//	    ai.WithModel("gemini-2.5-flash"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Validate checks the config and normalizes the base URL.
// The API key is deliberately not required; see the APIKey field docs.
func (c *Config) Validate() error {
	if c == nil {
		return ErrConfigRequired
	}
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.BaseURL == "" {
		return ErrBaseURLRequired
	}
	if strings.TrimSpace(c.Model) == "" {
		return ErrModelRequired
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return nil
}

// Errors returned by config validation.
var (
	// ErrConfigRequired is returned when a nil config is supplied.
	ErrConfigRequired = errors.New("config required")

	// ErrBaseURLRequired is returned when the base URL is empty.
	ErrBaseURLRequired = errors.New("base URL required")

	// ErrModelRequired is returned when the model identifier is empty.
	ErrModelRequired = errors.New("model required")
)
