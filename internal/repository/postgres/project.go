package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio/internal/domain/models"
	"portfolio/internal/domain/repositories"
)

const projectColumns = `id, title, description, tech_stack, github_url, live_url, image_url, status, featured, created_at, updated_at`

// PostgresProjectRepository implements the ProjectRepository interface
type PostgresProjectRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(config *RepositoryConfig) repositories.ProjectRepository {
	return &PostgresProjectRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// List retrieves projects ordered by created_at DESC
func (r *PostgresProjectRepository) List(ctx context.Context, opts repositories.ProjectListOptions) ([]models.Project, error) {
	query, args := projectListQuery(r.tables.Projects, opts)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.Description,
			&p.TechStack,
			&p.GithubURL,
			&p.LiveURL,
			&p.ImageURL,
			&p.Status,
			&p.Featured,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}

	return projects, nil
}

// projectListQuery builds the listing query; placeholders are numbered
// in the order args are appended.
func projectListQuery(table string, opts repositories.ProjectListOptions) (string, []interface{}) {
	query := fmt.Sprintf(`SELECT %s FROM %s`, projectColumns, table)
	args := []interface{}{}
	if opts.FeaturedOnly {
		query += ` WHERE featured = true`
	}
	query += ` ORDER BY created_at DESC`
	if opts.Limit > 0 {
		args = append(args, opts.Limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}
	return query, args
}

// Create inserts a project
func (r *PostgresProjectRepository) Create(ctx context.Context, project *models.Project) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (title, description, tech_stack, github_url, live_url, image_url, status, featured, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`, r.tables.Projects)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		project.Title,
		project.Description,
		project.TechStack,
		project.GithubURL,
		project.LiveURL,
		project.ImageURL,
		project.Status,
		project.Featured,
		project.CreatedAt,
		project.UpdatedAt,
	).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)
	if err != nil {
		return wrapWriteError("create", "project", "", err)
	}

	return nil
}

// Update overwrites the editable columns of a project
func (r *PostgresProjectRepository) Update(ctx context.Context, project *models.Project) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET title = $1, description = $2, tech_stack = $3, github_url = $4, live_url = $5,
		    image_url = $6, status = $7, featured = $8, updated_at = $9
		WHERE id = $10
		RETURNING created_at
	`, r.tables.Projects)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		project.Title,
		project.Description,
		project.TechStack,
		project.GithubURL,
		project.LiveURL,
		project.ImageURL,
		project.Status,
		project.Featured,
		project.UpdatedAt,
		project.ID,
	).Scan(&project.CreatedAt)
	if err != nil {
		return wrapWriteError("update", "project", project.ID, err)
	}

	return nil
}

// Delete removes a project
func (r *PostgresProjectRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, GetExecutor(ctx, r.pool), r.tables.Projects, "project", id)
}

// deleteByID hard-deletes one row and reports ErrNotFound when nothing matched.
func deleteByID(ctx context.Context, executor repositories.DBTX, table, entity, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1 RETURNING id`, table)

	var deleted string
	if err := executor.QueryRow(ctx, query, id).Scan(&deleted); err != nil {
		return wrapWriteError("delete", entity, id, err)
	}
	return nil
}
