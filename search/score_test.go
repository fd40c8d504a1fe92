package search

import (
	"testing"

	"github.com/anilreddy12001/portfolio-engine/core"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{name: "trims whitespace", query: "  React  ", want: "react"},
		{name: "lowercases", query: "TypeScript", want: "typescript"},
		{name: "empty", query: "", want: ""},
		{name: "whitespace only", query: "   \t\n", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.query))
		})
	}
}

func TestScore_TitleMatch(t *testing.T) {
	skill := core.SkillRecord{Name: "React", Category: "frontend", Level: 5}

	// Title match plus the catch-all concatenation bonus.
	assert.Equal(t, weightTitle+weightCatchAll, Score(skill, "react"))
}

func TestScore_TagMatch(t *testing.T) {
	project := core.ProjectRecord{
		Name:    "Designer Apparel",
		Summary: "An e-commerce application for customizing selected suit, cart functionality, and secure payment processing.",
		Tags:    []string{"React", "Node.js", "MongoDB", "Stripe"},
	}

	// Tag match plus catch-all; neither title nor description contains "react".
	assert.Equal(t, weightTags+weightCatchAll, Score(project, "react"))
}

func TestScore_SkillOutranksTagOnlyProject(t *testing.T) {
	skill := core.SkillRecord{Name: "React", Category: "frontend", Level: 5}
	project := core.ProjectRecord{
		Name:    "Designer Apparel",
		Summary: "An e-commerce application for customizing selected suit, cart functionality, and secure payment processing.",
		Tags:    []string{"React", "Node.js", "MongoDB", "Stripe"},
	}

	assert.Greater(t, Score(skill, "react"), Score(project, "react"))
}

func TestScore_ExperienceFields(t *testing.T) {
	exp := core.ExperienceRecord{
		Company:      "Sterlite Technologies Ltd",
		Position:     "Senior Lead Developer",
		Summary:      "Developed and maintained full-stack applications. Created RESTful APIs and implemented real-time features using WebSockets.",
		Technologies: []string{"Reactjs", "Node.js", "Express", "MongoDB", "Websockets"},
	}

	// Company matches the composite title too, so both weights accrue.
	assert.Equal(t, weightTitle+weightCompany+weightCatchAll, Score(exp, "sterlite"))

	// Description is weighted higher for experiences than the generic weight.
	assert.Equal(t, weightExperience+weightTechnologies+weightCatchAll, Score(exp, "websocket"))
}

func TestScore_ProfileFields(t *testing.T) {
	profile := core.ProfileRecord{
		Name:         "Anil Kumar Reddy K",
		Role:         "Frontend Lead Developer",
		Summary:      "I'm a passionate frontend lead developer with over 14 years of experience.",
		Location:     "Bengaluru, India",
		Availability: "Available for freelance work",
	}

	assert.Equal(t, weightLocation+weightCatchAll, Score(profile, "bengaluru"))
	assert.Equal(t, weightAvailability+weightCatchAll, Score(profile, "freelance"))
	// "frontend" hits both the role and the description.
	assert.Equal(t, weightRole+weightDescription+weightCatchAll, Score(profile, "frontend lead developer"))
}

func TestScore_NoMatch(t *testing.T) {
	skill := core.SkillRecord{Name: "Docker", Category: "tools", Level: 3}
	assert.Zero(t, Score(skill, "nonexistentxyz123"))
}

func TestScore_Deterministic(t *testing.T) {
	project := core.ProjectRecord{
		Name:    "AI Face Detector",
		Summary: "An application that leverages completely client side tensorflow.js library to detect faces.",
		Tags:    []string{"React", "TypeScript", "Tensorflowjs"},
	}

	first := Score(project, "tensorflow")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Score(project, "tensorflow"))
	}
}
