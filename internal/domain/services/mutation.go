package services

import (
	"context"

	"portfolio/internal/domain/models"
)

// ProjectInput is the typed form of a project create/update submission.
// TechStack is the raw comma-separated string; Featured is already a bool.
type ProjectInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	TechStack   string `json:"tech_stack"`
	GithubURL   string `json:"github_url"`
	LiveURL     string `json:"live_url"`
	ImageURL    string `json:"image_url"`
	Status      string `json:"status"`
	Featured    bool   `json:"featured"`
}

// SkillInput is the typed form of a skill submission. A nil Proficiency
// means the field was not supplied.
type SkillInput struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Proficiency *int   `json:"proficiency"`
	Icon        string `json:"icon"`
}

// AboutInput is the typed form of an about-entry submission.
type AboutInput struct {
	Section    string `json:"section"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	OrderIndex *int   `json:"order_index"`
}

// ContactInput is the typed form of a public contact-form submission.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ProjectMutations manages projects on behalf of an administrator.
type ProjectMutations interface {
	CreateProject(ctx context.Context, who models.Identity, in *ProjectInput) Result
	UpdateProject(ctx context.Context, who models.Identity, id string, in *ProjectInput) Result
	DeleteProject(ctx context.Context, who models.Identity, id string) Result
}

// SkillMutations manages skills on behalf of an administrator.
type SkillMutations interface {
	CreateSkill(ctx context.Context, who models.Identity, in *SkillInput) Result
	UpdateSkill(ctx context.Context, who models.Identity, id string, in *SkillInput) Result
	DeleteSkill(ctx context.Context, who models.Identity, id string) Result
}

// AboutMutations manages about entries on behalf of an administrator.
type AboutMutations interface {
	CreateAbout(ctx context.Context, who models.Identity, in *AboutInput) Result
	UpdateAbout(ctx context.Context, who models.Identity, id string, in *AboutInput) Result
	DeleteAbout(ctx context.Context, who models.Identity, id string) Result
}

// ContactMutations accepts public contact-form submissions. No identity is required.
type ContactMutations interface {
	SubmitContact(ctx context.Context, in *ContactInput) Result
}

// Invalidator receives the signal that cached views for routes are stale.
type Invalidator interface {
	Invalidate(routes ...string)
}
