package content

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"portfolio/internal/config"
	"portfolio/internal/domain/models"
	"portfolio/internal/domain/repositories"
)

// Section is one fetched collection together with whether the fetch worked.
// When Status is unavailable, Items is empty because of the failure.
type Section[T any] struct {
	Items  []T
	Status models.SectionStatus
}

// LandingData is the raw input of the public page.
type LandingData struct {
	Featured Section[models.Project]
	Skills   Section[models.Skill]
	About    Section[models.AboutEntry]
}

// DashboardData is the raw input of the admin dashboard.
type DashboardData struct {
	Projects Section[models.Project]
	Skills   Section[models.Skill]
	About    Section[models.AboutEntry]
	Contacts Section[models.ContactSubmission]
}

// Fetcher reads the collections behind a view concurrently.
type Fetcher struct {
	projects repositories.ProjectRepository
	skills   repositories.SkillRepository
	about    repositories.AboutRepository
	contacts repositories.ContactRepository
	logger   *slog.Logger
}

// NewFetcher creates a fetcher over the four content repositories
func NewFetcher(
	projects repositories.ProjectRepository,
	skills repositories.SkillRepository,
	about repositories.AboutRepository,
	contacts repositories.ContactRepository,
	logger *slog.Logger,
) *Fetcher {
	return &Fetcher{
		projects: projects,
		skills:   skills,
		about:    about,
		contacts: contacts,
		logger:   logger,
	}
}

// FetchLanding loads featured projects, skills and about entries.
// It always returns once every query has settled.
func (f *Fetcher) FetchLanding(ctx context.Context) *LandingData {
	var (
		g    errgroup.Group
		data LandingData
	)

	fetch(ctx, &g, f.logger, models.CollectionProjects, &data.Featured, func(ctx context.Context) ([]models.Project, error) {
		return f.projects.List(ctx, repositories.ProjectListOptions{
			FeaturedOnly: true,
			Limit:        config.LandingFeaturedLimit,
		})
	})
	fetch(ctx, &g, f.logger, models.CollectionSkills, &data.Skills, func(ctx context.Context) ([]models.Skill, error) {
		return f.skills.List(ctx, repositories.SkillsByProficiency)
	})
	fetch(ctx, &g, f.logger, models.CollectionAbout, &data.About, f.about.List)

	_ = g.Wait()
	return &data
}

// FetchDashboard loads all four collections in full.
func (f *Fetcher) FetchDashboard(ctx context.Context) *DashboardData {
	var (
		g    errgroup.Group
		data DashboardData
	)

	fetch(ctx, &g, f.logger, models.CollectionProjects, &data.Projects, func(ctx context.Context) ([]models.Project, error) {
		return f.projects.List(ctx, repositories.ProjectListOptions{})
	})
	fetch(ctx, &g, f.logger, models.CollectionSkills, &data.Skills, func(ctx context.Context) ([]models.Skill, error) {
		return f.skills.List(ctx, repositories.SkillsByProficiency)
	})
	fetch(ctx, &g, f.logger, models.CollectionAbout, &data.About, f.about.List)
	fetch(ctx, &g, f.logger, models.CollectionContacts, &data.Contacts, func(ctx context.Context) ([]models.ContactSubmission, error) {
		return f.contacts.List(ctx, repositories.ContactListOptions{})
	})

	_ = g.Wait()
	return &data
}

// fetch runs load on g and stores the outcome in dst. The goroutine never
// returns an error, so a failing collection does not cancel its siblings.
func fetch[T any](
	ctx context.Context,
	g *errgroup.Group,
	logger *slog.Logger,
	collection string,
	dst *Section[T],
	load func(context.Context) ([]T, error),
) {
	g.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic: %v", r)
			}
			if err != nil {
				logger.Error("failed to fetch collection",
					"collection", collection,
					"error", err,
				)
				*dst = Section[T]{Items: []T{}, Status: models.SectionUnavailable}
			}
			err = nil
		}()

		items, err := load(ctx)
		if err != nil {
			return err
		}
		if items == nil {
			items = []T{}
		}
		*dst = Section[T]{Items: items, Status: models.SectionOK}
		return nil
	})
}
