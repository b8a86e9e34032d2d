package content

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"

	"portfolio/internal/domain/models"
	"portfolio/internal/domain/repositories"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeProjects struct {
	items []models.Project
	err   error
	calls atomic.Int32
	last  repositories.ProjectListOptions

	// when gate is set, List snapshots its rows, reports on entered and
	// waits for gate to close
	gate    chan struct{}
	entered chan struct{}
}

func (f *fakeProjects) List(_ context.Context, opts repositories.ProjectListOptions) ([]models.Project, error) {
	f.calls.Add(1)
	f.last = opts
	items, err := f.items, f.err
	if f.gate != nil {
		f.entered <- struct{}{}
		<-f.gate
	}
	if err != nil {
		return nil, err
	}
	return items, nil
}
func (f *fakeProjects) Create(context.Context, *models.Project) error { return nil }
func (f *fakeProjects) Update(context.Context, *models.Project) error { return nil }
func (f *fakeProjects) Delete(context.Context, string) error          { return nil }

type fakeSkills struct {
	items []models.Skill
	err   error
	calls atomic.Int32
	last  repositories.SkillOrder
}

func (f *fakeSkills) List(_ context.Context, order repositories.SkillOrder) ([]models.Skill, error) {
	f.calls.Add(1)
	f.last = order
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}
func (f *fakeSkills) Create(context.Context, *models.Skill) error { return nil }
func (f *fakeSkills) Update(context.Context, *models.Skill) error { return nil }
func (f *fakeSkills) Delete(context.Context, string) error        { return nil }

type fakeAbout struct {
	items []models.AboutEntry
	err   error
	panic bool
	calls atomic.Int32
}

func (f *fakeAbout) List(context.Context) ([]models.AboutEntry, error) {
	f.calls.Add(1)
	if f.panic {
		panic("boom")
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}
func (f *fakeAbout) Create(context.Context, *models.AboutEntry) error { return nil }
func (f *fakeAbout) Update(context.Context, *models.AboutEntry) error { return nil }
func (f *fakeAbout) Delete(context.Context, string) error             { return nil }

type fakeContacts struct {
	items []models.ContactSubmission
	err   error
	calls atomic.Int32
	last  repositories.ContactListOptions
}

func (f *fakeContacts) List(_ context.Context, opts repositories.ContactListOptions) ([]models.ContactSubmission, error) {
	f.calls.Add(1)
	f.last = opts
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}
func (f *fakeContacts) Create(context.Context, *models.ContactSubmission) error { return nil }
