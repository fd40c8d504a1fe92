package ai

import (
	"strings"
	"testing"

	"github.com/anilreddy12001/portfolio-engine/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptBuilder_Build(t *testing.T) {
	builder := NewPromptBuilder(content.DefaultStore())
	prompt := builder.Build("What are your top React projects?")

	require.True(t, strings.HasPrefix(prompt, "Context:\n"))
	assert.True(t, strings.HasSuffix(prompt, "\n\nQuestion: What are your top React projects?"))

	// The context carries the assistant instruction and every content group.
	assert.Contains(t, prompt, "You are a helpful assistant")
	assert.Contains(t, prompt, "An e-commerce application for customizing selected suit")
	assert.Contains(t, prompt, "React — frontend (Level 5/5)")
	assert.Contains(t, prompt, "Leading the frontend team in developing modern web applications")
	assert.Contains(t, prompt, "passionate frontend lead developer")
}

func TestPromptBuilder_ContextIsStable(t *testing.T) {
	builder := NewPromptBuilder(content.DefaultStore())

	first := builder.Build("q")
	second := builder.Build("q")
	assert.Equal(t, first, second)
}

func TestPromptBuilder_NilStore(t *testing.T) {
	builder := NewPromptBuilder(nil)
	prompt := builder.Build("hello")

	assert.Contains(t, prompt, "You are a helpful assistant")
	assert.Contains(t, prompt, "Question: hello")
}
