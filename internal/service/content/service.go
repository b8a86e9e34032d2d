package content

import (
	"context"
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"portfolio/internal/domain"
	"portfolio/internal/domain/models"
	"portfolio/internal/domain/repositories"
	"portfolio/internal/domain/services"
	"portfolio/internal/viewcache"
)

// service implements services.ContentService
type service struct {
	fetcher   *Fetcher
	assembler *Assembler
	cache     *viewcache.Cache
	projects  repositories.ProjectRepository
	skills    repositories.SkillRepository
	about     repositories.AboutRepository
	contacts  repositories.ContactRepository
	logger    *slog.Logger
}

// NewService creates the content service. cache may be nil.
func NewService(
	projects repositories.ProjectRepository,
	skills repositories.SkillRepository,
	about repositories.AboutRepository,
	contacts repositories.ContactRepository,
	assembler *Assembler,
	cache *viewcache.Cache,
	logger *slog.Logger,
) services.ContentService {
	return &service{
		fetcher:   NewFetcher(projects, skills, about, contacts, logger),
		assembler: assembler,
		cache:     cache,
		projects:  projects,
		skills:    skills,
		about:     about,
		contacts:  contacts,
		logger:    logger,
	}
}

func (s *service) Landing(ctx context.Context) *models.LandingView {
	if cached, ok := s.cache.Get(viewcache.RouteLanding); ok {
		if view, ok := cached.(*models.LandingView); ok {
			return view
		}
	}

	gen := s.cache.Generation(viewcache.RouteLanding)
	view := s.assembler.Landing(s.fetcher.FetchLanding(ctx))
	if models.Complete(view.Status) {
		s.cache.Set(viewcache.RouteLanding, view, gen)
	} else {
		s.logger.Warn("serving partial landing view", "status", view.Status)
	}
	return view
}

func (s *service) Dashboard(ctx context.Context, who models.Identity) *models.DashboardView {
	var base *models.DashboardView
	if cached, ok := s.cache.Get(viewcache.RouteDashboard); ok {
		base, _ = cached.(*models.DashboardView)
	}

	if base == nil {
		gen := s.cache.Generation(viewcache.RouteDashboard)
		base = s.assembler.Dashboard(s.fetcher.FetchDashboard(ctx))
		if models.Complete(base.Status) {
			s.cache.Set(viewcache.RouteDashboard, base, gen)
		} else {
			s.logger.Warn("serving partial dashboard view", "status", base.Status, "user_id", who.UserID)
		}
	}

	// copy so the cached value never carries an identity
	view := *base
	view.Identity = who
	return &view
}

func (s *service) ListProjects(ctx context.Context) ([]models.Project, error) {
	projects, err := s.projects.List(ctx, repositories.ProjectListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return nonNil(projects), nil
}

func (s *service) ListSkills(ctx context.Context) ([]models.Skill, error) {
	skills, err := s.skills.List(ctx, repositories.SkillsByCategory)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	return nonNil(skills), nil
}

func (s *service) ListAbout(ctx context.Context) ([]models.AboutEntry, error) {
	entries, err := s.about.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list about entries: %w", err)
	}
	return nonNil(entries), nil
}

func (s *service) ListContacts(ctx context.Context, status string) ([]models.ContactSubmission, error) {
	if err := validation.Validate(status, validation.In(models.ContactStatuses...)); err != nil {
		return nil, fmt.Errorf("%w: status %q: %v", domain.ErrValidation, status, err)
	}

	contacts, err := s.contacts.List(ctx, repositories.ContactListOptions{Status: status})
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return nonNil(contacts), nil
}
