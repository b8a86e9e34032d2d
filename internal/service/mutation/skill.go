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

const msgProficiencyRange = "Proficiency must be between 0 and 100"

// skillService implements services.SkillMutations
type skillService struct {
	repo repositories.SkillRepository
	guard
}

// NewSkillService creates the skill mutation handlers
func NewSkillService(
	repo repositories.SkillRepository,
	invalidator services.Invalidator,
	logger *slog.Logger,
) services.SkillMutations {
	return &skillService{
		repo:  repo,
		guard: newGuard("skill", invalidator, logger, contentRoutes...),
	}
}

func (s *skillService) CreateSkill(ctx context.Context, who models.Identity, in *services.SkillInput) services.Result {
	return s.run(ctx, verbCreate, who, true, func(ctx context.Context) services.Result {
		if res := s.validateInput(in); res != nil {
			return *res
		}

		now := time.Now()
		skill := skillFromInput(in)
		skill.CreatedAt = now
		skill.UpdatedAt = now

		if err := s.repo.Create(ctx, skill); err != nil {
			return s.backendFailed(verbCreate, "", err)
		}
		return s.succeeded(verbCreate, skill.ID)
	})
}

func (s *skillService) UpdateSkill(ctx context.Context, who models.Identity, id string, in *services.SkillInput) services.Result {
	return s.run(ctx, verbUpdate, who, true, func(ctx context.Context) services.Result {
		if res := requireID(id); res != nil {
			return *res
		}
		if res := s.validateInput(in); res != nil {
			return *res
		}

		skill := skillFromInput(in)
		skill.ID = id
		skill.UpdatedAt = time.Now()

		if err := s.repo.Update(ctx, skill); err != nil {
			return s.backendFailed(verbUpdate, id, err)
		}
		return s.succeeded(verbUpdate, id)
	})
}

func (s *skillService) DeleteSkill(ctx context.Context, who models.Identity, id string) services.Result {
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

// validateInput checks presence, then range. Proficiency is a pointer so
// that a supplied 0 counts as present.
func (s *skillService) validateInput(in *services.SkillInput) *services.Result {
	if in == nil {
		in = &services.SkillInput{}
	}
	return validate(
		func() error {
			return validation.ValidateStruct(in,
				validation.Field(&in.Name, validation.Required),
				validation.Field(&in.Category, validation.Required),
				validation.Field(&in.Proficiency, validation.NotNil),
			)
		},
		"Name, category, and proficiency are required",
		func() error {
			return validation.ValidateStruct(in,
				validation.Field(&in.Proficiency,
					validation.Min(config.MinProficiency).Error(msgProficiencyRange),
					validation.Max(config.MaxProficiency).Error(msgProficiencyRange),
				),
				validation.Field(&in.Name,
					validation.Length(1, config.MaxSkillNameLength).Error("name must be at most 100 characters"),
				),
				validation.Field(&in.Category,
					validation.In(models.SkillCategories...).Error("category must be one of frontend, backend, devops"),
				),
			)
		},
	)
}

func skillFromInput(in *services.SkillInput) *models.Skill {
	return &models.Skill{
		Name:        in.Name,
		Category:    in.Category,
		Proficiency: *in.Proficiency,
		Icon:        nullable(in.Icon),
	}
}
