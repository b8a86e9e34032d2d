package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio/internal/domain/models"
	"portfolio/internal/domain/repositories"
)

// PostgresContactRepository implements the ContactRepository interface
type PostgresContactRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewContactRepository creates a new contact submission repository
func NewContactRepository(config *RepositoryConfig) repositories.ContactRepository {
	return &PostgresContactRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// List retrieves submissions, newest first
func (r *PostgresContactRepository) List(ctx context.Context, opts repositories.ContactListOptions) ([]models.ContactSubmission, error) {
	query, args := contactListQuery(r.tables.Contacts, opts)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list contact submissions: %w", err)
	}
	defer rows.Close()

	submissions := []models.ContactSubmission{}
	for rows.Next() {
		var c models.ContactSubmission
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.Status, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contact submission: %w", err)
		}
		submissions = append(submissions, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contact submissions: %w", err)
	}

	return submissions, nil
}

func contactListQuery(table string, opts repositories.ContactListOptions) (string, []interface{}) {
	query := fmt.Sprintf(`
		SELECT id, name, email, subject, message, status, created_at
		FROM %s`, table)
	args := []interface{}{}
	if opts.Status != "" {
		args = append(args, opts.Status)
		query += ` WHERE status = $1`
	}
	query += ` ORDER BY created_at DESC`
	return query, args
}

// Create inserts a contact submission
func (r *PostgresContactRepository) Create(ctx context.Context, submission *models.ContactSubmission) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, email, subject, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, r.tables.Contacts)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		submission.Name,
		submission.Email,
		submission.Subject,
		submission.Message,
		submission.Status,
		submission.CreatedAt,
	).Scan(&submission.ID, &submission.CreatedAt)
	if err != nil {
		return wrapWriteError("create", "contact submission", "", err)
	}

	return nil
}
