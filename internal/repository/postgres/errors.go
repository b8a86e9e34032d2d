package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"portfolio/internal/domain"
)

// IsPgNoRowsError checks if error is a "no rows" error
func IsPgNoRowsError(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IsPgCheckViolation checks if error is a CHECK constraint violation
func IsPgCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23514 = check_violation
		return pgErr.Code == "23514"
	}
	return false
}

// IsPgInvalidText checks if error is a malformed input value (e.g. a non-uuid id)
func IsPgInvalidText(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 22P02 = invalid_text_representation
		return pgErr.Code == "22P02"
	}
	return false
}

// wrapWriteError classifies a driver error from an insert/update/delete.
func wrapWriteError(op, entity, id string, err error) error {
	switch {
	case IsPgNoRowsError(err), IsPgInvalidText(err):
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	case IsPgCheckViolation(err):
		return fmt.Errorf("%s %s: %w", op, entity, domain.ErrValidation)
	default:
		return fmt.Errorf("%s %s: %w: %v", op, entity, domain.ErrUpstream, err)
	}
}
