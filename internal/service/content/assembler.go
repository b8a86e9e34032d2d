package content

import (
	"portfolio/internal/config"
	"portfolio/internal/domain/models"
	"portfolio/internal/presentation"
)

// Assembler shapes fetched collections into view models. It has no side
// effects and the same input always yields the same view.
type Assembler struct {
	styles *presentation.Registry
}

// NewAssembler creates an assembler that labels groups through styles.
func NewAssembler(styles *presentation.Registry) *Assembler {
	return &Assembler{styles: styles}
}

// Landing builds the public page view.
func (a *Assembler) Landing(data *LandingData) *models.LandingView {
	featured := data.Featured.Items
	if len(featured) > config.LandingFeaturedLimit {
		featured = featured[:config.LandingFeaturedLimit]
	}

	return &models.LandingView{
		FeaturedProjects: nonNil(featured),
		SkillGroups:      a.skillGroups(data.Skills.Items),
		AboutSections:    a.aboutGroups(data.About.Items),
		Status: map[string]models.SectionStatus{
			models.CollectionProjects: data.Featured.Status,
			models.CollectionSkills:   data.Skills.Status,
			models.CollectionAbout:    data.About.Status,
		},
	}
}

// Dashboard builds the admin dashboard view. Identity is left zero; the
// caller attaches it.
func (a *Assembler) Dashboard(data *DashboardData) *models.DashboardView {
	projects := data.Projects.Items
	skills := data.Skills.Items
	contacts := data.Contacts.Items

	stats := models.DashboardStats{
		TotalProjects:    len(projects),
		FeaturedProjects: Count(projects, func(p models.Project) bool { return p.Featured }),
		TotalSkills:      len(skills),
		UnreadMessages: Count(contacts, func(c models.ContactSubmission) bool {
			return c.Status == models.ContactUnread
		}),
		TotalMessages: len(contacts),
		AboutEntries:  len(data.About.Items),
	}

	return &models.DashboardView{
		Stats: stats,
		RecentProjects: TopN(projects, config.DashboardTopN, func(x, y models.Project) bool {
			return x.CreatedAt.After(y.CreatedAt)
		}),
		TopSkills: TopN(skills, config.DashboardTopN, func(x, y models.Skill) bool {
			return x.Proficiency > y.Proficiency
		}),
		Projects:      nonNil(projects),
		SkillGroups:   a.skillGroups(skills),
		AboutSections: a.aboutGroups(data.About.Items),
		Contacts:      nonNil(contacts),
		Status: map[string]models.SectionStatus{
			models.CollectionProjects: data.Projects.Status,
			models.CollectionSkills:   data.Skills.Status,
			models.CollectionAbout:    data.About.Status,
			models.CollectionContacts: data.Contacts.Status,
		},
	}
}

func (a *Assembler) skillGroups(skills []models.Skill) []models.SkillGroup {
	buckets := GroupBy(skills, func(s models.Skill) string { return s.Category })
	groups := make([]models.SkillGroup, 0, len(buckets))
	for _, b := range buckets {
		// buckets are never empty, so ok is always true here
		avg, _ := Mean(b.Items, func(s models.Skill) int { return s.Proficiency })
		style := a.styles.Category(b.Key)
		groups = append(groups, models.SkillGroup{
			Category:           b.Key,
			Title:              style.Title,
			Icon:               style.Icon,
			Accent:             style.Accent,
			Count:              len(b.Items),
			AverageProficiency: avg,
			Skills:             b.Items,
		})
	}
	return groups
}

func (a *Assembler) aboutGroups(entries []models.AboutEntry) []models.AboutGroup {
	buckets := GroupByOrdered(entries,
		func(e models.AboutEntry) string { return e.Section },
		func(e models.AboutEntry) int { return e.OrderIndex },
	)
	groups := make([]models.AboutGroup, 0, len(buckets))
	for _, b := range buckets {
		style := a.styles.Section(b.Key)
		groups = append(groups, models.AboutGroup{
			Section: b.Key,
			Title:   style.Title,
			Icon:    style.Icon,
			Entries: b.Items,
		})
	}
	return groups
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
