package core

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing, so identical content always
// produces the same identifier.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// RecordKind discriminates the source collection a search record was built from.
type RecordKind string

const (
	// KindProject marks records built from portfolio projects.
	KindProject RecordKind = "project"
	// KindSkill marks records built from skills.
	KindSkill RecordKind = "skill"
	// KindExperience marks records built from work experience entries.
	KindExperience RecordKind = "experience"
	// KindProfile marks the single record built from the profile.
	KindProfile RecordKind = "profile"
	// KindSocial marks records built from social links.
	KindSocial RecordKind = "social"
)

// Canonical names for searchable fields. The scorer maps these to weights;
// record variants only declare which fields they carry.
const (
	FieldTitle        = "title"
	FieldDescription  = "description"
	FieldTags         = "tags"
	FieldCategory     = "category"
	FieldTechnologies = "technologies"
	FieldCompany      = "company"
	FieldPosition     = "position"
	FieldName         = "name"
	FieldRole         = "role"
	FieldLocation     = "location"
	FieldAvailability = "availability"
)

// Field is the projection of one searchable aspect of a record: a canonical
// field name and the values the scorer matches the query against. List-valued
// fields (tags, technologies) carry one value per element.
type Field struct {
	Name   string
	Values []string
}

// Record is one searchable unit of the portfolio index. Each source
// collection has its own variant carrying only its own fields; the scorer
// consumes records uniformly through this projection.
type Record interface {
	// Kind identifies the source collection.
	Kind() RecordKind

	// Title is the primary display heading for the record.
	Title() string

	// Description is the display summary for the record.
	Description() string

	// SearchFields returns every searchable field of the record, including
	// title and description, in a stable order.
	SearchFields() []Field
}

// ProjectRecord is the search projection of a portfolio project.
type ProjectRecord struct {
	Id        ID
	Name      string
	Summary   string
	Tags      []string
	DemoURL   string
	GitHubURL string
}

// Kind implements Record.
func (r ProjectRecord) Kind() RecordKind { return KindProject }

// Title implements Record.
func (r ProjectRecord) Title() string { return r.Name }

// Description implements Record.
func (r ProjectRecord) Description() string { return r.Summary }

// SearchFields implements Record.
func (r ProjectRecord) SearchFields() []Field {
	return []Field{
		{Name: FieldTitle, Values: []string{r.Name}},
		{Name: FieldDescription, Values: []string{r.Summary}},
		{Name: FieldTags, Values: r.Tags},
	}
}

// SkillRecord is the search projection of a skill.
type SkillRecord struct {
	Id       ID
	Name     string
	Category string
	Level    int
}

// Kind implements Record.
func (r SkillRecord) Kind() RecordKind { return KindSkill }

// Title implements Record.
func (r SkillRecord) Title() string { return r.Name }

// Description implements Record.
func (r SkillRecord) Description() string {
	return fmt.Sprintf("%s skill (Level %d/5)", r.Category, r.Level)
}

// SearchFields implements Record.
func (r SkillRecord) SearchFields() []Field {
	return []Field{
		{Name: FieldTitle, Values: []string{r.Name}},
		{Name: FieldDescription, Values: []string{r.Description()}},
		{Name: FieldCategory, Values: []string{r.Category}},
	}
}

// ExperienceRecord is the search projection of a work experience entry.
type ExperienceRecord struct {
	Id           ID
	Company      string
	Position     string
	Summary      string
	Technologies []string
	StartDate    string
	EndDate      string
}

// Kind implements Record.
func (r ExperienceRecord) Kind() RecordKind { return KindExperience }

// Title implements Record.
func (r ExperienceRecord) Title() string { return r.Position + " at " + r.Company }

// Description implements Record.
func (r ExperienceRecord) Description() string { return r.Summary }

// SearchFields implements Record.
func (r ExperienceRecord) SearchFields() []Field {
	return []Field{
		{Name: FieldTitle, Values: []string{r.Title()}},
		{Name: FieldDescription, Values: []string{r.Summary}},
		{Name: FieldTechnologies, Values: r.Technologies},
		{Name: FieldCompany, Values: []string{r.Company}},
		{Name: FieldPosition, Values: []string{r.Position}},
	}
}

// ProfileRecord is the single search projection of the profile.
type ProfileRecord struct {
	Id           ID
	Name         string
	Role         string
	Summary      string
	Location     string
	Availability string
}

// Kind implements Record.
func (r ProfileRecord) Kind() RecordKind { return KindProfile }

// Title implements Record.
func (r ProfileRecord) Title() string { return "About Me" }

// Description implements Record.
func (r ProfileRecord) Description() string { return r.Summary }

// SearchFields implements Record.
func (r ProfileRecord) SearchFields() []Field {
	return []Field{
		{Name: FieldTitle, Values: []string{r.Title()}},
		{Name: FieldDescription, Values: []string{r.Summary}},
		{Name: FieldName, Values: []string{r.Name}},
		{Name: FieldRole, Values: []string{r.Role}},
		{Name: FieldLocation, Values: []string{r.Location}},
		{Name: FieldAvailability, Values: []string{r.Availability}},
	}
}

// SocialRecord is the search projection of a social link.
type SocialRecord struct {
	Id   ID
	Name string
	URL  string
}

// Kind implements Record.
func (r SocialRecord) Kind() RecordKind { return KindSocial }

// Title implements Record.
func (r SocialRecord) Title() string { return r.Name }

// Description implements Record.
func (r SocialRecord) Description() string { return "Connect with me on " + r.Name }

// SearchFields implements Record.
func (r SocialRecord) SearchFields() []Field {
	return []Field{
		{Name: FieldTitle, Values: []string{r.Name}},
		{Name: FieldDescription, Values: []string{r.Description()}},
	}
}

// SearchResult pairs a record with its relevance score for one query.
// Results are transient; they are produced per query and never stored.
type SearchResult struct {
	Record Record
	Score  int
}

// Role identifies the author of a chat message.
type Role string

const (
	// RoleUser marks messages typed by the visitor.
	RoleUser Role = "user"
	// RoleAssistant marks replies produced by the dispatcher.
	RoleAssistant Role = "assistant"
)

// ChatMessage is one entry in a session's conversation history.
// History is ordered and append-only; messages are never edited or removed.
type ChatMessage struct {
	Role      Role
	Content   string
	Timestamp time.Time
}
