package mutation

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"portfolio/internal/domain/models"
	"portfolio/internal/domain/repositories"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type recordingInvalidator struct {
	mu     sync.Mutex
	routes [][]string
}

func (r *recordingInvalidator) Invalidate(routes ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, routes)
}

type fakeProjectRepo struct {
	created []*models.Project
	updated []*models.Project
	deleted []string
	err     error
	panic   bool
}

func (f *fakeProjectRepo) List(context.Context, repositories.ProjectListOptions) ([]models.Project, error) {
	return nil, nil
}

func (f *fakeProjectRepo) Create(_ context.Context, p *models.Project) error {
	if f.panic {
		panic("driver exploded")
	}
	if f.err != nil {
		return f.err
	}
	p.ID = "new-project"
	f.created = append(f.created, p)
	return nil
}

func (f *fakeProjectRepo) Update(_ context.Context, p *models.Project) error {
	if f.err != nil {
		return f.err
	}
	f.updated = append(f.updated, p)
	return nil
}

func (f *fakeProjectRepo) Delete(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeSkillRepo struct {
	created []*models.Skill
	updated []*models.Skill
	deleted []string
	err     error
}

func (f *fakeSkillRepo) List(context.Context, repositories.SkillOrder) ([]models.Skill, error) {
	return nil, nil
}

func (f *fakeSkillRepo) Create(_ context.Context, s *models.Skill) error {
	if f.err != nil {
		return f.err
	}
	s.ID = "new-skill"
	f.created = append(f.created, s)
	return nil
}

func (f *fakeSkillRepo) Update(_ context.Context, s *models.Skill) error {
	if f.err != nil {
		return f.err
	}
	f.updated = append(f.updated, s)
	return nil
}

func (f *fakeSkillRepo) Delete(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeAboutRepo struct {
	created []*models.AboutEntry
	deleted []string
	err     error
}

func (f *fakeAboutRepo) List(context.Context) ([]models.AboutEntry, error) { return nil, nil }

func (f *fakeAboutRepo) Create(_ context.Context, e *models.AboutEntry) error {
	if f.err != nil {
		return f.err
	}
	e.ID = "new-about"
	f.created = append(f.created, e)
	return nil
}

func (f *fakeAboutRepo) Update(_ context.Context, e *models.AboutEntry) error { return f.err }

func (f *fakeAboutRepo) Delete(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeContactRepo struct {
	created []*models.ContactSubmission
	err     error
}

func (f *fakeContactRepo) List(context.Context, repositories.ContactListOptions) ([]models.ContactSubmission, error) {
	return nil, nil
}

func (f *fakeContactRepo) Create(_ context.Context, c *models.ContactSubmission) error {
	if f.err != nil {
		return f.err
	}
	c.ID = "new-contact"
	f.created = append(f.created, c)
	return nil
}
