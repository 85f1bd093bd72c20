package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/newsdesk-backend/internal/domain"
)

// Postgres error codes the repositories care about.
const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
	CodeCheckViolation      = "23514"
)

// MapError converts pgx/pgconn errors to domain errors.
// key identifies the row (an id, a username, a keyword list); it may be empty.
// context.DeadlineExceeded and context.Canceled are NOT mapped, they pass through.
func MapError(err error, entity, key string) error {
	if err == nil {
		return nil
	}

	prefix := entity
	if key != "" {
		prefix = entity + " " + key
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", prefix, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", prefix, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case CodeUniqueViolation:
			return fmt.Errorf("%s: %w", prefix, domain.ErrAlreadyExists)
		case CodeForeignKeyViolation:
			return fmt.Errorf("%s: %w", prefix, domain.ErrNotFound)
		case CodeCheckViolation:
			return fmt.Errorf("%s: %w", prefix, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s: %w", prefix, err)
}

// IsUniqueViolation reports whether err is a unique_violation, optionally on
// the named constraint.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != CodeUniqueViolation {
		return false
	}
	return constraint == "" || strings.EqualFold(pgErr.ConstraintName, constraint)
}
