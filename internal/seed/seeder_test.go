package seed

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/domain/models"
	"portfolio/internal/domain/repositories"
)

type memProjects struct {
	rows []models.Project
	fail string
}

func (m *memProjects) List(ctx context.Context, opts repositories.ProjectListOptions) ([]models.Project, error) {
	return m.rows, nil
}

func (m *memProjects) Create(ctx context.Context, p *models.Project) error {
	if p.Title == m.fail {
		return errors.New("check constraint")
	}
	m.rows = append(m.rows, *p)
	return nil
}

func (m *memProjects) Update(ctx context.Context, p *models.Project) error { return nil }
func (m *memProjects) Delete(ctx context.Context, id string) error         { return nil }

type memSkills struct{ rows []models.Skill }

func (m *memSkills) List(ctx context.Context, order repositories.SkillOrder) ([]models.Skill, error) {
	return m.rows, nil
}

func (m *memSkills) Create(ctx context.Context, s *models.Skill) error {
	m.rows = append(m.rows, *s)
	return nil
}

func (m *memSkills) Update(ctx context.Context, s *models.Skill) error { return nil }
func (m *memSkills) Delete(ctx context.Context, id string) error       { return nil }

type memAbout struct{ rows []models.AboutEntry }

func (m *memAbout) List(ctx context.Context) ([]models.AboutEntry, error) { return m.rows, nil }

func (m *memAbout) Create(ctx context.Context, e *models.AboutEntry) error {
	m.rows = append(m.rows, *e)
	return nil
}

func (m *memAbout) Update(ctx context.Context, e *models.AboutEntry) error { return nil }
func (m *memAbout) Delete(ctx context.Context, id string) error            { return nil }

type memContacts struct{ rows []models.ContactSubmission }

func (m *memContacts) List(ctx context.Context, opts repositories.ContactListOptions) ([]models.ContactSubmission, error) {
	return m.rows, nil
}

func (m *memContacts) Create(ctx context.Context, c *models.ContactSubmission) error {
	m.rows = append(m.rows, *c)
	return nil
}

// passthroughTx runs fn directly and counts calls.
type passthroughTx struct{ calls int }

func (p *passthroughTx) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	p.calls++
	return fn(ctx)
}

func newTestSeeder() (*Seeder, *memProjects, *memSkills, *memAbout, *memContacts, *passthroughTx) {
	projects, skills, about, contacts := &memProjects{}, &memSkills{}, &memAbout{}, &memContacts{}
	tx := &passthroughTx{}
	s := NewSeeder(projects, skills, about, contacts, tx, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.now = func() time.Time { return time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC) }
	return s, projects, skills, about, contacts, tx
}

func TestDefaultFixtures(t *testing.T) {
	f, err := DefaultFixtures()
	require.NoError(t, err)

	assert.NotEmpty(t, f.Projects)
	assert.NotEmpty(t, f.Skills)
	assert.NotEmpty(t, f.About)

	for _, s := range f.Skills {
		assert.Contains(t, models.SkillCategories, s.Category, s.Name)
		assert.GreaterOrEqual(t, s.Proficiency, 0, s.Name)
		assert.LessOrEqual(t, s.Proficiency, 100, s.Name)
	}
	for _, a := range f.About {
		assert.Contains(t, models.AboutSections, a.Section, a.Title)
	}
}

func TestParseFixtures_RejectsUnknownKeys(t *testing.T) {
	_, err := ParseFixtures([]byte("projects:\n  - titel: typo\n"))
	assert.Error(t, err)
}

func TestSeeder_Seed(t *testing.T) {
	s, projects, skills, about, contacts, tx := newTestSeeder()
	f := &Fixtures{
		Projects: []ProjectFixture{
			{Title: "First", Description: "d", TechStack: []string{"Go"}, GithubURL: "https://g", ImageURL: "https://img"},
			{Title: "Second", Description: "d", Status: "planned"},
		},
		Skills:   []SkillFixture{{Name: "Go", Category: "backend", Proficiency: 90}},
		About:    []AboutFixture{{Section: "personal", Title: "Hi", Content: "c", OrderIndex: 2}},
		Contacts: []ContactFixture{{Name: "Ada", Email: "ada@example.com", Subject: "s", Message: "m"}},
	}

	counts, err := s.Seed(context.Background(), f)
	require.NoError(t, err)

	assert.Equal(t, Counts{Projects: 2, Skills: 1, About: 1, Contacts: 1}, counts)
	assert.Equal(t, 1, tx.calls)

	require.Len(t, projects.rows, 2)
	assert.Equal(t, models.DefaultProjectStatus, projects.rows[0].Status)
	assert.Equal(t, "planned", projects.rows[1].Status)
	assert.True(t, projects.rows[0].CreatedAt.After(projects.rows[1].CreatedAt))
	require.NotNil(t, projects.rows[0].GithubURL)
	assert.Nil(t, projects.rows[0].LiveURL)
	require.NotNil(t, projects.rows[0].ImageURL)
	assert.Nil(t, projects.rows[1].ImageURL)
	assert.Equal(t, []string{}, projects.rows[1].TechStack)

	assert.Nil(t, skills.rows[0].Icon)
	assert.Equal(t, 2, about.rows[0].OrderIndex)
	assert.Equal(t, models.ContactUnread, contacts.rows[0].Status)
}

func TestSeeder_SeedStopsOnFirstError(t *testing.T) {
	s, projects, skills, _, _, _ := newTestSeeder()
	projects.fail = "Bad"
	f := &Fixtures{
		Projects: []ProjectFixture{{Title: "Good"}, {Title: "Bad"}},
		Skills:   []SkillFixture{{Name: "Go", Category: "backend", Proficiency: 90}},
	}

	counts, err := s.Seed(context.Background(), f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `project "Bad"`)
	assert.Equal(t, Counts{}, counts)
	assert.Empty(t, skills.rows)
}
