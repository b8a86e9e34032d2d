package content

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/domain/models"
	"portfolio/internal/presentation"
)

func newAssembler(t *testing.T) *Assembler {
	t.Helper()
	styles, err := presentation.NewRegistry()
	require.NoError(t, err)
	return NewAssembler(styles)
}

func okSection[T any](items ...T) Section[T] {
	if items == nil {
		items = []T{}
	}
	return Section[T]{Items: items, Status: models.SectionOK}
}

func TestAssembler_Landing(t *testing.T) {
	a := newAssembler(t)

	data := &LandingData{
		Featured: okSection(
			models.Project{ID: "p1"}, models.Project{ID: "p2"}, models.Project{ID: "p3"},
			models.Project{ID: "p4"}, models.Project{ID: "p5"},
		),
		Skills: okSection(
			skill("Go", "backend", 95),
			skill("React", "frontend", 90),
			skill("Postgres", "backend", 80),
			skill("Figma", "design", 50),
		),
		About: okSection(
			about("edu", "education", 0),
			about("exp2", "experience", 2),
			about("exp1", "experience", 1),
		),
	}

	view := a.Landing(data)

	assert.Len(t, view.FeaturedProjects, 4)

	require.Len(t, view.SkillGroups, 3)
	backend := view.SkillGroups[0]
	assert.Equal(t, "backend", backend.Category)
	assert.Equal(t, "Backend", backend.Title)
	assert.Equal(t, "⚙️", backend.Icon)
	assert.Equal(t, 2, backend.Count)
	assert.Equal(t, 88, backend.AverageProficiency) // 87.5 rounds up
	assert.Equal(t, []string{"Go", "Postgres"}, names(backend.Skills))

	assert.Equal(t, "Frontend", view.SkillGroups[1].Title)

	unknown := view.SkillGroups[2]
	assert.Equal(t, "design", unknown.Title)
	assert.Equal(t, "💻", unknown.Icon)

	require.Len(t, view.AboutSections, 2)
	assert.Equal(t, "🎓", view.AboutSections[0].Icon)
	assert.Equal(t, "experience", view.AboutSections[1].Section)
	assert.Equal(t, []string{"exp1", "exp2"}, ids(view.AboutSections[1].Entries))

	assert.True(t, models.Complete(view.Status))
	assert.Len(t, view.Status, 3)
}

func TestAssembler_Landing_Empty(t *testing.T) {
	a := newAssembler(t)

	view := a.Landing(&LandingData{
		Featured: okSection[models.Project](),
		Skills:   okSection[models.Skill](),
		About:    okSection[models.AboutEntry](),
	})

	assert.NotNil(t, view.FeaturedProjects)
	assert.Empty(t, view.FeaturedProjects)
	assert.NotNil(t, view.SkillGroups)
	assert.Empty(t, view.SkillGroups, "no category is manufactured for empty input")
	assert.Empty(t, view.AboutSections)
}

func TestAssembler_Dashboard(t *testing.T) {
	a := newAssembler(t)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	var projects []models.Project
	for i := 0; i < 7; i++ {
		projects = append(projects, models.Project{
			ID:        string(rune('a' + i)),
			Featured:  i%3 == 0,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}

	data := &DashboardData{
		Projects: okSection(projects...),
		Skills: okSection(
			skill("s1", "frontend", 10),
			skill("s2", "frontend", 100),
			skill("s3", "backend", 60),
			skill("s4", "devops", 60),
			skill("s5", "devops", 0),
			skill("s6", "backend", 75),
		),
		About: okSection(about("x", "personal", 0)),
		Contacts: okSection(
			models.ContactSubmission{ID: "c1", Status: models.ContactUnread},
			models.ContactSubmission{ID: "c2", Status: models.ContactRead},
			models.ContactSubmission{ID: "c3", Status: models.ContactUnread},
		),
	}

	view := a.Dashboard(data)

	assert.Equal(t, models.DashboardStats{
		TotalProjects:    7,
		FeaturedProjects: 3, // 0, 3, 6
		TotalSkills:      6,
		UnreadMessages:   2,
		TotalMessages:    3,
		AboutEntries:     1,
	}, view.Stats)

	require.Len(t, view.RecentProjects, 5)
	assert.Equal(t, "g", view.RecentProjects[0].ID)
	assert.Equal(t, "c", view.RecentProjects[4].ID)

	require.Len(t, view.TopSkills, 5)
	assert.Equal(t, []string{"s2", "s6", "s3", "s4", "s1"}, names(view.TopSkills))

	assert.Len(t, view.Projects, 7)
	assert.Len(t, view.SkillGroups, 3)
	assert.True(t, view.Identity.IsZero())
	assert.Len(t, view.Status, 4)
}

func TestAssembler_Dashboard_EmptyContacts(t *testing.T) {
	a := newAssembler(t)

	view := a.Dashboard(&DashboardData{
		Projects: okSection[models.Project](),
		Skills:   okSection[models.Skill](),
		About:    okSection[models.AboutEntry](),
		Contacts: okSection[models.ContactSubmission](),
	})

	assert.Equal(t, 0, view.Stats.UnreadMessages)
	assert.Equal(t, 0, view.Stats.TotalMessages)
	assert.NotNil(t, view.Contacts)
	assert.Empty(t, view.Contacts)
	assert.Empty(t, view.RecentProjects)
	assert.Empty(t, view.TopSkills)
}

func TestAssembler_Dashboard_CarriesUnavailableStatus(t *testing.T) {
	a := newAssembler(t)

	view := a.Dashboard(&DashboardData{
		Projects: okSection[models.Project](),
		Skills:   okSection[models.Skill](),
		About:    okSection[models.AboutEntry](),
		Contacts: Section[models.ContactSubmission]{Items: []models.ContactSubmission{}, Status: models.SectionUnavailable},
	})

	assert.Equal(t, models.SectionUnavailable, view.Status[models.CollectionContacts])
	assert.False(t, models.Complete(view.Status))
	assert.Equal(t, 0, view.Stats.TotalMessages)
}

func TestAssembler_Deterministic(t *testing.T) {
	a := newAssembler(t)
	data := &DashboardData{
		Projects: okSection(models.Project{ID: "p"}),
		Skills:   okSection(skill("a", "backend", 50), skill("b", "frontend", 50)),
		About:    okSection(about("x", "personal", 1), about("y", "personal", 1)),
		Contacts: okSection[models.ContactSubmission](),
	}

	assert.Equal(t, a.Dashboard(data), a.Dashboard(data))
}
