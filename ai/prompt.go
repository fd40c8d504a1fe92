package ai

import (
	"strings"

	"github.com/anilreddy12001/portfolio-engine/content"
)

// systemInstruction is the fixed assistant-role preamble placed at the top of
// every generative prompt.
const systemInstruction = "You are a helpful assistant that can answer questions about the user's portfolio. " +
	"You are also able to search the user's portfolio for information and respond as the user himself instead of as a chat bot."

// PromptBuilder renders portfolio content into the context block sent to a
// generative backend. The context is assembled once at construction; the
// store is immutable so the block never goes stale.
type PromptBuilder struct {
	context string
}

// NewPromptBuilder derives the context block from the store: the assistant
// instruction, all project descriptions, all skill summaries, all experience
// descriptions, and the profile description, each group newline-joined.
func NewPromptBuilder(store *content.Store) *PromptBuilder {
	if store == nil {
		return &PromptBuilder{context: systemInstruction}
	}

	var projects []string
	for _, p := range store.Projects() {
		projects = append(projects, p.Description)
	}

	var skills []string
	for _, s := range store.Skills() {
		skills = append(skills, s.Summary())
	}

	var experiences []string
	for _, e := range store.Experiences() {
		experiences = append(experiences, e.Description)
	}

	sections := []string{
		systemInstruction,
		strings.Join(projects, "\n"),
		strings.Join(skills, "\n"),
		strings.Join(experiences, "\n"),
		store.Profile().Description,
	}

	return &PromptBuilder{context: strings.Join(sections, "\n")}
}

// Build combines the portfolio context with the literal user question.
func (b *PromptBuilder) Build(question string) string {
	return "Context:\n" + b.context + "\n\nQuestion: " + question
}
