package mutation

import (
	"context"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"portfolio/internal/config"
	"portfolio/internal/domain/models"
	"portfolio/internal/domain/repositories"
	"portfolio/internal/domain/services"
)

// aboutService implements services.AboutMutations
type aboutService struct {
	repo repositories.AboutRepository
	guard
}

// NewAboutService creates the about-entry mutation handlers
func NewAboutService(
	repo repositories.AboutRepository,
	invalidator services.Invalidator,
	logger *slog.Logger,
) services.AboutMutations {
	return &aboutService{
		repo:  repo,
		guard: newGuard("about entry", invalidator, logger, contentRoutes...),
	}
}

func (s *aboutService) CreateAbout(ctx context.Context, who models.Identity, in *services.AboutInput) services.Result {
	return s.run(ctx, verbCreate, who, true, func(ctx context.Context) services.Result {
		if res := s.validateInput(in); res != nil {
			return *res
		}

		now := time.Now()
		entry := aboutFromInput(in)
		entry.CreatedAt = now
		entry.UpdatedAt = now

		if err := s.repo.Create(ctx, entry); err != nil {
			return s.backendFailed(verbCreate, "", err)
		}
		return s.succeeded(verbCreate, entry.ID)
	})
}

func (s *aboutService) UpdateAbout(ctx context.Context, who models.Identity, id string, in *services.AboutInput) services.Result {
	return s.run(ctx, verbUpdate, who, true, func(ctx context.Context) services.Result {
		if res := requireID(id); res != nil {
			return *res
		}
		if res := s.validateInput(in); res != nil {
			return *res
		}

		entry := aboutFromInput(in)
		entry.ID = id
		entry.UpdatedAt = time.Now()

		if err := s.repo.Update(ctx, entry); err != nil {
			return s.backendFailed(verbUpdate, id, err)
		}
		return s.succeeded(verbUpdate, id)
	})
}

func (s *aboutService) DeleteAbout(ctx context.Context, who models.Identity, id string) services.Result {
	return s.run(ctx, verbDelete, who, true, func(ctx context.Context) services.Result {
		if res := requireID(id); res != nil {
			return *res
		}
		if err := s.repo.Delete(ctx, id); err != nil {
			return s.backendFailed(verbDelete, id, err)
		}
		return s.succeeded(verbDelete, id)
	})
}

func (s *aboutService) validateInput(in *services.AboutInput) *services.Result {
	if in == nil {
		in = &services.AboutInput{}
	}
	return validate(
		func() error {
			return validation.ValidateStruct(in,
				validation.Field(&in.Section, validation.Required),
				validation.Field(&in.Title, validation.Required),
				validation.Field(&in.Content, validation.Required),
			)
		},
		"Section, title, and content are required",
		func() error {
			return validation.ValidateStruct(in,
				validation.Field(&in.Section,
					validation.In(models.AboutSections...).Error("section must be one of personal, education, experience"),
				),
				validation.Field(&in.Title,
					validation.Length(1, config.MaxTitleLength).Error("title must be at most 255 characters"),
				),
			)
		},
	)
}

func aboutFromInput(in *services.AboutInput) *models.AboutEntry {
	entry := &models.AboutEntry{
		Section: in.Section,
		Title:   in.Title,
		Content: in.Content,
	}
	if in.OrderIndex != nil {
		entry.OrderIndex = *in.OrderIndex
	}
	return entry
}
