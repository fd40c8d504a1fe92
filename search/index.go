package search

import (
	"github.com/anilreddy12001/portfolio-engine/content"
	"github.com/anilreddy12001/portfolio-engine/core"
)

// BuildIndex flattens the content store into a single ordered sequence of
// search records: projects, then skills, then experiences, then the profile,
// then social links. The order carries no meaning beyond serving as a stable
// tie-break during ranking.
//
// BuildIndex is pure and idempotent. The index is not updated incrementally;
// rebuild it whenever the store changes.
func BuildIndex(store *content.Store) []core.Record {
	if store == nil {
		return nil
	}

	projects := store.Projects()
	skills := store.Skills()
	experiences := store.Experiences()
	socials := store.Socials()

	records := make([]core.Record, 0, len(projects)+len(skills)+len(experiences)+len(socials)+1)

	for _, p := range projects {
		records = append(records, core.ProjectRecord{
			Id:        core.IDFromContent(string(core.KindProject) + "/" + p.ID + "/" + p.Title),
			Name:      p.Title,
			Summary:   p.Description,
			Tags:      p.Tags,
			DemoURL:   p.DemoURL,
			GitHubURL: p.GitHubURL,
		})
	}

	for _, s := range skills {
		records = append(records, core.SkillRecord{
			Id:       core.IDFromContent(string(core.KindSkill) + "/" + s.Name),
			Name:     s.Name,
			Category: s.Category,
			Level:    s.Level,
		})
	}

	for _, e := range experiences {
		records = append(records, core.ExperienceRecord{
			Id:           core.IDFromContent(string(core.KindExperience) + "/" + e.ID + "/" + e.Company),
			Company:      e.Company,
			Position:     e.Position,
			Summary:      e.Description,
			Technologies: e.Technologies,
			StartDate:    e.StartDate,
			EndDate:      e.EndDate,
		})
	}

	profile := store.Profile()
	records = append(records, core.ProfileRecord{
		Id:           core.IDFromContent(string(core.KindProfile) + "/" + profile.Name),
		Name:         profile.Name,
		Role:         profile.Title,
		Summary:      profile.Description,
		Location:     profile.Location,
		Availability: profile.Availability,
	})

	for _, s := range socials {
		records = append(records, core.SocialRecord{
			Id:   core.IDFromContent(string(core.KindSocial) + "/" + s.Name),
			Name: s.Name,
			URL:  s.URL,
		})
	}

	return records
}
