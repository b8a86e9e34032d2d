package mutation

import (
	"context"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"portfolio/internal/config"
	"portfolio/internal/domain/models"
	"portfolio/internal/domain/repositories"
	"portfolio/internal/domain/services"
)

// projectService implements services.ProjectMutations
type projectService struct {
	repo repositories.ProjectRepository
	guard
}

// NewProjectService creates the project mutation handlers
func NewProjectService(
	repo repositories.ProjectRepository,
	invalidator services.Invalidator,
	logger *slog.Logger,
) services.ProjectMutations {
	return &projectService{
		repo:  repo,
		guard: newGuard("project", invalidator, logger, contentRoutes...),
	}
}

func (s *projectService) CreateProject(ctx context.Context, who models.Identity, in *services.ProjectInput) services.Result {
	return s.run(ctx, verbCreate, who, true, func(ctx context.Context) services.Result {
		if res := s.validateInput(in); res != nil {
			return *res
		}

		now := time.Now()
		project := projectFromInput(in)
		project.CreatedAt = now
		project.UpdatedAt = now

		if err := s.repo.Create(ctx, project); err != nil {
			return s.backendFailed(verbCreate, "", err)
		}
		return s.succeeded(verbCreate, project.ID)
	})
}

func (s *projectService) UpdateProject(ctx context.Context, who models.Identity, id string, in *services.ProjectInput) services.Result {
	return s.run(ctx, verbUpdate, who, true, func(ctx context.Context) services.Result {
		if res := requireID(id); res != nil {
			return *res
		}
		if res := s.validateInput(in); res != nil {
			return *res
		}

		project := projectFromInput(in)
		project.ID = id
		project.UpdatedAt = time.Now()

		if err := s.repo.Update(ctx, project); err != nil {
			return s.backendFailed(verbUpdate, id, err)
		}
		return s.succeeded(verbUpdate, id)
	})
}

func (s *projectService) DeleteProject(ctx context.Context, who models.Identity, id string) services.Result {
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

func (s *projectService) validateInput(in *services.ProjectInput) *services.Result {
	if in == nil {
		in = &services.ProjectInput{}
	}
	return validate(
		func() error {
			return validation.ValidateStruct(in,
				validation.Field(&in.Title, validation.Required),
				validation.Field(&in.Description, validation.Required),
				validation.Field(&in.TechStack, validation.Required),
			)
		},
		"Title, description, and tech stack are required",
		func() error {
			return validation.ValidateStruct(in,
				validation.Field(&in.Title,
					validation.Length(1, config.MaxTitleLength).Error("title must be at most 255 characters"),
				),
			)
		},
	)
}

func projectFromInput(in *services.ProjectInput) *models.Project {
	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = models.DefaultProjectStatus
	}
	return &models.Project{
		Title:       in.Title,
		Description: in.Description,
		TechStack:   SplitTechStack(in.TechStack),
		GithubURL:   nullable(in.GithubURL),
		LiveURL:     nullable(in.LiveURL),
		ImageURL:    nullable(in.ImageURL),
		Status:      status,
		Featured:    in.Featured,
	}
}

// SplitTechStack turns "React, Next.js , TypeScript" into its trimmed
// segments. Order is kept and empty segments are not dropped.
func SplitTechStack(raw string) []string {
	parts := strings.Split(raw, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
