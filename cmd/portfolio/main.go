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


package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	portfolioengine "github.com/anilreddy12001/portfolio-engine"
	"github.com/anilreddy12001/portfolio-engine/ai"
	"github.com/anilreddy12001/portfolio-engine/ai/openai"
	"github.com/anilreddy12001/portfolio-engine/chat"
	"github.com/anilreddy12001/portfolio-engine/core"
)

func main() {
	// Missing .env is fine, flags and the process environment still apply.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "portfolio",
		Usage: "Conversational search over portfolio content",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:  "backend",
				Usage: "Generative backend (gemini, openai)",
				Value: "gemini",
			},
			&cli.StringFlag{
				Name:    "gemini-key",
				Usage:   "API key for the generative-language backend",
				EnvVars: []string{"GEMINI_API_KEY"},
			},
			&cli.StringFlag{
				Name:  "gemini-model",
				Usage: "Generative model name",
				Value: ai.DefaultModel,
			},
			&cli.StringFlag{
				Name:    "openai-url",
				Usage:   "OpenAI-compatible endpoint base URL",
				EnvVars: []string{"OPENAI_BASE_URL"},
				Value:   "https://api.openai.com/v1",
			},
			&cli.StringFlag{
				Name:    "openai-key",
				Usage:   "API key for the OpenAI-compatible backend (omit for keyless local services)",
				EnvVars: []string{"OPENAI_API_KEY"},
			},
			&cli.StringFlag{
				Name:  "openai-model",
				Usage: "Model name for the OpenAI-compatible backend",
				Value: "gpt-4",
			},
			&cli.StringFlag{
				Name:    "socket-url",
				Usage:   "WebSocket chat endpoint (ws:// or wss://)",
				EnvVars: []string{"PORTFOLIO_SOCKET_URL"},
			},
			&cli.IntFlag{
				Name:  "top",
				Usage: "Maximum number of search results (0 = unlimited)",
				Value: 10,
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Run a ranked lexical search over the portfolio",
				ArgsUsage: "<terms...>",
				Action:    searchCommand,
			},
			{
				Name:      "ask",
				Usage:     "Ask a single question and print the reply",
				ArgsUsage: "<question...>",
				Action:    askCommand,
			},
			{
				Name:   "chat",
				Usage:  "Start an interactive chat session",
				Action: chatCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

// buildEngine assembles the engine from root flags. The socket channel is
// dialed only for the chat-style commands that can use it.
func buildEngine(ctx context.Context, c *cli.Context, dialSocket bool) (*portfolioengine.Engine, error) {
	opts := []portfolioengine.Option{
		portfolioengine.WithMaxResults(c.Int("top")),
	}

	switch backend := c.String("backend"); backend {
	case "gemini":
		// No key means no generative tier; dispatch falls back to local search.
		if key := c.String("gemini-key"); key != "" {
			cfg := ai.NewConfig(
				ai.WithAPIKey(key),
				ai.WithModel(c.String("gemini-model")),
			)
			opts = append(opts, portfolioengine.WithAIConfig(cfg))
		}
	case "openai":
		cfg := ai.NewConfig(
			ai.WithBaseURL(c.String("openai-url")),
			ai.WithAPIKey(c.String("openai-key")),
			ai.WithModel(c.String("openai-model")),
		)
		responder, err := openai.NewResponder(cfg)
		if err != nil {
			return nil, err
		}
		opts = append(opts, portfolioengine.WithResponder(responder))
	default:
		return nil, fmt.Errorf("unknown backend %q: must be gemini or openai", backend)
	}

	if socketURL := c.String("socket-url"); dialSocket && socketURL != "" {
		channel, err := chat.DialSocket(ctx, socketURL)
		if err != nil {
			slog.Warn("socket unavailable, falling back", "url", socketURL, "error", err)
		} else {
			opts = append(opts, portfolioengine.WithChannel(channel))
		}
	}

	return portfolioengine.New(opts...)
}

func searchCommand(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("search requires at least one term")
	}

	engine, err := buildEngine(c.Context, c, false)
	if err != nil {
		return err
	}

	results := engine.Query(query)
	if len(results) == 0 {
		fmt.Println("No matches.")
		return nil
	}

	for i, result := range results {
		fmt.Printf("%2d. %s %s (score %d)\n", i+1, kindIcon(result.Record.Kind()), result.Record.Title(), result.Score)
		fmt.Printf("      %s\n", result.Record.Description())
	}

	return nil
}

func askCommand(c *cli.Context) error {
	question := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(question) == "" {
		return fmt.Errorf("ask requires a question")
	}

	engine, err := buildEngine(c.Context, c, true)
	if err != nil {
		return err
	}
	defer engine.Close()

	if err := engine.Ask(c.Context, question); err != nil {
		return err
	}

	history := engine.History()
	last := history[len(history)-1]
	if last.Role == core.RoleAssistant {
		fmt.Println(last.Content)
	}

	return nil
}

func chatCommand(c *cli.Context) error {
	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		fmt.Println("\nShutting down...")
		cancel()
	}()

	engine, err := buildEngine(ctx, c, true)
	if err != nil {
		return err
	}
	defer engine.Close()

	boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
	boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()

	fmt.Println(boldGreen("Portfolio chat"))
	fmt.Println(boldCyan("Me:"), chat.Greeting)
	fmt.Println("Try:", strings.Join(chat.Suggestions(), " | "))
	fmt.Println("Type your message and press Enter. Type 'exit' or press Ctrl+C to quit.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(boldGreen("You: "))
		if !scanner.Scan() {
			break
		}
		input := scanner.Text()
		if strings.ToLower(strings.TrimSpace(input)) == "exit" {
			break
		}

		before := len(engine.History())
		if err := engine.Ask(ctx, input); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			continue
		}

		for _, msg := range engine.History()[before:] {
			if msg.Role == core.RoleAssistant {
				fmt.Println(boldCyan("Me:"), msg.Content)
			}
		}
		fmt.Println()

		if ctx.Err() != nil {
			break
		}
	}

	return scanner.Err()
}

func kindIcon(kind core.RecordKind) string {
	switch kind {
	case core.KindProject:
		return "🚀"
	case core.KindSkill:
		return "💻"
	case core.KindExperience:
		return "💼"
	case core.KindProfile:
		return "👤"
	default:
		return "🔗"
	}
}
