package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "same content produces same ID",
			content: "test content",
		},
		{
			name:    "empty string",
			content: "",
		},
		{
			name:    "long content",
			content: "This is a much longer piece of content that should still hash consistently",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("content1")
	id2 := IDFromContent("content2")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestSkillRecord_Description(t *testing.T) {
	r := SkillRecord{Name: "React", Category: "frontend", Level: 5}
	want := "frontend skill (Level 5/5)"
	if got := r.Description(); got != want {
		t.Errorf("Description() = %q, want %q", got, want)
	}
}

func TestExperienceRecord_Title(t *testing.T) {
	r := ExperienceRecord{Company: "Nokia Networks", Position: "Frontend Developer"}
	want := "Frontend Developer at Nokia Networks"
	if got := r.Title(); got != want {
		t.Errorf("Title() = %q, want %q", got, want)
	}
}

func TestSocialRecord_Description(t *testing.T) {
	r := SocialRecord{Name: "GitHub", URL: "https://github.com/anilreddy12001"}
	want := "Connect with me on GitHub"
	if got := r.Description(); got != want {
		t.Errorf("Description() = %q, want %q", got, want)
	}
}

func TestRecord_SearchFields(t *testing.T) {
	tests := []struct {
		name       string
		record     Record
		kind       RecordKind
		wantFields []string
	}{
		{
			name: "project",
			record: ProjectRecord{
				Name:    "Designer Apparel",
				Summary: "An e-commerce application",
				Tags:    []string{"React", "Node.js"},
			},
			kind:       KindProject,
			wantFields: []string{FieldTitle, FieldDescription, FieldTags},
		},
		{
			name:       "skill",
			record:     SkillRecord{Name: "Docker", Category: "tools", Level: 3},
			kind:       KindSkill,
			wantFields: []string{FieldTitle, FieldDescription, FieldCategory},
		},
		{
			name: "experience",
			record: ExperienceRecord{
				Company:      "Capgemini",
				Position:     "Frontend Developer",
				Summary:      "Network management",
				Technologies: []string{"JavaScript"},
			},
			kind:       KindExperience,
			wantFields: []string{FieldTitle, FieldDescription, FieldTechnologies, FieldCompany, FieldPosition},
		},
		{
			name: "profile",
			record: ProfileRecord{
				Name:         "Anil Kumar Reddy K",
				Role:         "Frontend Lead Developer",
				Summary:      "Passionate frontend lead developer",
				Location:     "Bengaluru, India",
				Availability: "Available for freelance work",
			},
			kind: KindProfile,
			wantFields: []string{
				FieldTitle, FieldDescription, FieldName, FieldRole, FieldLocation, FieldAvailability,
			},
		},
		{
			name:       "social",
			record:     SocialRecord{Name: "LinkedIn"},
			kind:       KindSocial,
			wantFields: []string{FieldTitle, FieldDescription},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.Kind(); got != tt.kind {
				t.Errorf("Kind() = %q, want %q", got, tt.kind)
			}
			fields := tt.record.SearchFields()
			if len(fields) != len(tt.wantFields) {
				t.Fatalf("SearchFields() returned %d fields, want %d", len(fields), len(tt.wantFields))
			}
			for i, f := range fields {
				if f.Name != tt.wantFields[i] {
					t.Errorf("SearchFields()[%d].Name = %q, want %q", i, f.Name, tt.wantFields[i])
				}
			}
		})
	}
}
