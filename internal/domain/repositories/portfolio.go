package repositories

import (
	"context"

	"portfolio/internal/domain/models"
)

// ProjectListOptions narrows a project listing
type ProjectListOptions struct {
	FeaturedOnly bool
	Limit        int // 0 = no limit
}

// ProjectRepository defines data access operations for projects
type ProjectRepository interface {
	// List returns projects ordered by created_at DESC
	List(ctx context.Context, opts ProjectListOptions) ([]models.Project, error)

	// Create inserts a project and fills in its ID and timestamps
	Create(ctx context.Context, project *models.Project) error

	// Update overwrites the editable columns of an existing project
	Update(ctx context.Context, project *models.Project) error

	// Delete removes a project by ID
	Delete(ctx context.Context, id string) error
}

// SkillOrder selects how skills are ordered
type SkillOrder int

const (
	// SkillsByProficiency orders by proficiency DESC
	SkillsByProficiency SkillOrder = iota
	// SkillsByCategory orders by category ASC, then proficiency DESC
	SkillsByCategory
)

// SkillRepository defines data access operations for skills
type SkillRepository interface {
	List(ctx context.Context, order SkillOrder) ([]models.Skill, error)
	Create(ctx context.Context, skill *models.Skill) error
	Update(ctx context.Context, skill *models.Skill) error
	Delete(ctx context.Context, id string) error
}

// AboutRepository defines data access operations for about entries
type AboutRepository interface {
	// List returns entries ordered by section ASC, order_index ASC
	List(ctx context.Context) ([]models.AboutEntry, error)
	Create(ctx context.Context, entry *models.AboutEntry) error
	Update(ctx context.Context, entry *models.AboutEntry) error
	Delete(ctx context.Context, id string) error
}

// ContactListOptions filters a contact listing. Empty Status returns everything.
type ContactListOptions struct {
	Status string
}

// ContactRepository defines data access operations for contact submissions
type ContactRepository interface {
	// List returns submissions ordered by created_at DESC
	List(ctx context.Context, opts ContactListOptions) ([]models.ContactSubmission, error)
	Create(ctx context.Context, submission *models.ContactSubmission) error
}
