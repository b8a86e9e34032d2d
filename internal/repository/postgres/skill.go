package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio/internal/domain/models"
	"portfolio/internal/domain/repositories"
)

// PostgresSkillRepository implements the SkillRepository interface
type PostgresSkillRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewSkillRepository creates a new skill repository
func NewSkillRepository(config *RepositoryConfig) repositories.SkillRepository {
	return &PostgresSkillRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// List retrieves all skills in the requested order
func (r *PostgresSkillRepository) List(ctx context.Context, order repositories.SkillOrder) ([]models.Skill, error) {
	orderBy := "proficiency DESC"
	if order == repositories.SkillsByCategory {
		orderBy = "category ASC, proficiency DESC"
	}

	query := fmt.Sprintf(`
		SELECT id, name, category, proficiency, icon, created_at, updated_at
		FROM %s
		ORDER BY %s
	`, r.tables.Skills, orderBy)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	defer rows.Close()

	skills := []models.Skill{}
	for rows.Next() {
		var s models.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Proficiency, &s.Icon, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan skill: %w", err)
		}
		skills = append(skills, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate skills: %w", err)
	}

	return skills, nil
}

// Create inserts a skill
func (r *PostgresSkillRepository) Create(ctx context.Context, skill *models.Skill) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, category, proficiency, icon, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, r.tables.Skills)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		skill.Name,
		skill.Category,
		skill.Proficiency,
		skill.Icon,
		skill.CreatedAt,
		skill.UpdatedAt,
	).Scan(&skill.ID, &skill.CreatedAt, &skill.UpdatedAt)
	if err != nil {
		return wrapWriteError("create", "skill", "", err)
	}

	return nil
}

// Update overwrites the editable columns of a skill
func (r *PostgresSkillRepository) Update(ctx context.Context, skill *models.Skill) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, category = $2, proficiency = $3, icon = $4, updated_at = $5
		WHERE id = $6
		RETURNING created_at
	`, r.tables.Skills)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		skill.Name,
		skill.Category,
		skill.Proficiency,
		skill.Icon,
		skill.UpdatedAt,
		skill.ID,
	).Scan(&skill.CreatedAt)
	if err != nil {
		return wrapWriteError("update", "skill", skill.ID, err)
	}

	return nil
}

// Delete removes a skill
func (r *PostgresSkillRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, GetExecutor(ctx, r.pool), r.tables.Skills, "skill", id)
}
