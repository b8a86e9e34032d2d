package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SchemaSQL returns the DDL for all content tables under the given names.
func SchemaSQL(t *TableNames) string {
	return fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %[1]s (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			tech_stack TEXT[] NOT NULL DEFAULT '{}',
			github_url TEXT,
			live_url TEXT,
			image_url TEXT,
			status TEXT NOT NULL DEFAULT 'completed',
			featured BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE TABLE IF NOT EXISTS %[2]s (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			category TEXT NOT NULL CHECK (category IN ('frontend', 'backend', 'devops')),
			proficiency INTEGER NOT NULL CHECK (proficiency >= 0 AND proficiency <= 100),
			icon TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE TABLE IF NOT EXISTS %[3]s (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			section TEXT NOT NULL CHECK (section IN ('personal', 'education', 'experience')),
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			order_index INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE TABLE IF NOT EXISTS %[4]s (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			subject TEXT NOT NULL,
			message TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'unread' CHECK (status IN ('unread', 'read', 'replied')),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE INDEX IF NOT EXISTS %[1]s_created_at_idx ON %[1]s (created_at DESC);
		CREATE INDEX IF NOT EXISTS %[3]s_section_order_idx ON %[3]s (section, order_index);
		CREATE INDEX IF NOT EXISTS %[4]s_status_idx ON %[4]s (status);
	`, t.Projects, t.Skills, t.About, t.Contacts)
}

// EnsureSchema creates any missing content tables.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, t *TableNames) error {
	if _, err := pool.Exec(ctx, SchemaSQL(t)); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// TruncateAll removes every row from the content tables.
func TruncateAll(ctx context.Context, pool *pgxpool.Pool, t *TableNames) error {
	for _, table := range t.All() {
		if _, err := pool.Exec(ctx, fmt.Sprintf(`TRUNCATE TABLE %s`, table)); err != nil {
			return fmt.Errorf("truncate %s: %w", table, err)
		}
	}
	return nil
}

// DropAll drops the content tables.
func DropAll(ctx context.Context, pool *pgxpool.Pool, t *TableNames) error {
	for _, table := range t.All() {
		if _, err := pool.Exec(ctx, fmt.Sprintf(`DROP TABLE IF EXISTS %s CASCADE`, table)); err != nil {
			return fmt.Errorf("drop %s: %w", table, err)
		}
	}
	return nil
}
