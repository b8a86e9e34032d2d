package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio/internal/domain/models"
	"portfolio/internal/domain/repositories"
)

// PostgresAboutRepository implements the AboutRepository interface
type PostgresAboutRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewAboutRepository creates a new about-entry repository
func NewAboutRepository(config *RepositoryConfig) repositories.AboutRepository {
	return &PostgresAboutRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// List retrieves all entries ordered by section, then order_index
func (r *PostgresAboutRepository) List(ctx context.Context) ([]models.AboutEntry, error) {
	query := fmt.Sprintf(`
		SELECT id, section, title, content, order_index, created_at, updated_at
		FROM %s
		ORDER BY section ASC, order_index ASC
	`, r.tables.About)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list about entries: %w", err)
	}
	defer rows.Close()

	entries := []models.AboutEntry{}
	for rows.Next() {
		var e models.AboutEntry
		if err := rows.Scan(&e.ID, &e.Section, &e.Title, &e.Content, &e.OrderIndex, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan about entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate about entries: %w", err)
	}

	return entries, nil
}

// Create inserts an about entry
func (r *PostgresAboutRepository) Create(ctx context.Context, entry *models.AboutEntry) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (section, title, content, order_index, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, r.tables.About)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		entry.Section,
		entry.Title,
		entry.Content,
		entry.OrderIndex,
		entry.CreatedAt,
		entry.UpdatedAt,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return wrapWriteError("create", "about entry", "", err)
	}

	return nil
}

// Update overwrites the editable columns of an about entry
func (r *PostgresAboutRepository) Update(ctx context.Context, entry *models.AboutEntry) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET section = $1, title = $2, content = $3, order_index = $4, updated_at = $5
		WHERE id = $6
		RETURNING created_at
	`, r.tables.About)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		entry.Section,
		entry.Title,
		entry.Content,
		entry.OrderIndex,
		entry.UpdatedAt,
		entry.ID,
	).Scan(&entry.CreatedAt)
	if err != nil {
		return wrapWriteError("update", "about entry", entry.ID, err)
	}

	return nil
}

// Delete removes an about entry
func (r *PostgresAboutRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, GetExecutor(ctx, r.pool), r.tables.About, "about entry", id)
}
