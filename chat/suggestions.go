package chat

// Suggestions returns canned prompts a presentation layer can offer before
// the visitor types their own question.
func Suggestions() []string {
	return []string{
		"What are your top React projects?",
		"Do you have experience with TypeScript?",
		"Tell me about your lead roles.",
		"Where are you based and are you available?",
	}
}
