package content

import (
	"fmt"
	"slices"
)

// Project is a portfolio project entry.
type Project struct {
	ID          string
	Title       string
	Description string
	ImageURL    string
	Tags        []string
	DemoURL     string
	GitHubURL   string
}

// Skill is a single technology or practice with a proficiency level from 1 to 5.
type Skill struct {
	Name     string
	Level    int
	Category string
}

// Summary renders the skill the way both the search index and generative
// prompts present it, e.g. "React — frontend (Level 5/5)".
func (s Skill) Summary() string {
	return fmt.Sprintf("%s — %s (Level %d/5)", s.Name, s.Category, s.Level)
}

// Experience is one work history entry. EndDate is empty for the current role.
type Experience struct {
	ID           string
	Company      string
	Position     string
	StartDate    string
	EndDate      string
	Description  string
	Technologies []string
}

// Social is an outbound social or contact link.
type Social struct {
	Name string
	URL  string
	Icon string
}

// Profile describes the portfolio owner.
type Profile struct {
	Name         string
	Title        string
	Description  string
	Location     string
	Availability string
}

// Store is the read-only source dataset the engine operates over.
type Store struct {
	projects    []Project
	skills      []Skill
	experiences []Experience
	socials     []Social
	profile     Profile
}

// NewStore builds a Store from the given collections. The inputs are copied;
// later mutation of the arguments does not affect the store.
func NewStore(projects []Project, skills []Skill, experiences []Experience, socials []Social, profile Profile) *Store {
	return &Store{
		projects:    slices.Clone(projects),
		skills:      slices.Clone(skills),
		experiences: slices.Clone(experiences),
		socials:     slices.Clone(socials),
		profile:     profile,
	}
}

// Projects returns a copy of the project collection in declaration order.
func (s *Store) Projects() []Project { return slices.Clone(s.projects) }

// Skills returns a copy of the skill collection in declaration order.
func (s *Store) Skills() []Skill { return slices.Clone(s.skills) }

// Experiences returns a copy of the work history in declaration order.
func (s *Store) Experiences() []Experience { return slices.Clone(s.experiences) }

// Socials returns a copy of the social link collection in declaration order.
func (s *Store) Socials() []Social { return slices.Clone(s.socials) }

// Profile returns the portfolio owner's profile.
func (s *Store) Profile() Profile { return s.profile }
