// Package user implements the User repository using PostgreSQL.
// It also owns the per-user token ledger used to gate voting actions.
package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/newsdesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/newsdesk-backend/internal/domain"
)

const table = "users"

var columns = []string{"id", "username", "password_hash", "tokens", "role", "created_at"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

// Create inserts a new user and returns the persisted domain.User.
// Returns domain.ErrAlreadyExists if the username is taken.
func (r *Repo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	id := u.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	role := u.Role
	if role == "" {
		role = domain.UserRoleUser
	}

	query := postgres.Builder().
		Insert(table).
		Columns("id", "username", "password_hash", "tokens", "role").
		Values(id, u.Username, u.PasswordHash, u.Tokens, string(role)).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	created, err := r.getOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Username)
	}
	return created, nil
}

// GetByUsername returns a user by username.
// Returns domain.ErrNotFound if no such user exists.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"username": username})

	u, err := r.getOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "user", username)
	}
	return u, nil
}

// SetRole changes a user's role. Returns domain.ErrNotFound for an unknown user.
func (r *Repo) SetRole(ctx context.Context, username string, role domain.UserRole) (*domain.User, error) {
	query := postgres.Builder().
		Update(table).
		Set("role", string(role)).
		Where(sq.Eq{"username": username}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	u, err := r.getOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "user", username)
	}
	return u, nil
}

// ---------------------------------------------------------------------------
// Token ledger
// ---------------------------------------------------------------------------

// UseToken spends one token with a single conditional UPDATE, so concurrent
// spends can never take the balance below zero. Returns the remaining
// balance, domain.ErrInsufficientTokens when the balance is zero and
// domain.ErrNotFound for an unknown user.
func (r *Repo) UseToken(ctx context.Context, username string) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var remaining int
	err := q.QueryRow(ctx,
		`UPDATE users SET tokens = tokens - 1 WHERE username = $1 AND tokens > 0 RETURNING tokens`,
		username,
	).Scan(&remaining)
	if err == nil {
		return remaining, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, postgres.MapError(err, "user", username)
	}

	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists); err != nil {
		return 0, postgres.MapError(err, "user", username)
	}
	if !exists {
		return 0, fmt.Errorf("user %s: %w", username, domain.ErrNotFound)
	}
	return 0, fmt.Errorf("user %s: %w", username, domain.ErrInsufficientTokens)
}

// ResetAll sets every user's balance to tokens and returns how many rows changed.
func (r *Repo) ResetAll(ctx context.Context, tokens int) (int64, error) {
	sql, args, err := postgres.Builder().
		Update(table).
		Set("tokens", tokens).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build reset tokens query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "users", "")
	}
	return tag.RowsAffected(), nil
}

func (r *Repo) getOne(ctx context.Context, query sq.Sqlizer) (*domain.User, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	u, err := pgx.CollectExactlyOneRow(rows, scanUser)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func scanUser(row pgx.CollectableRow) (domain.User, error) {
	var (
		u    domain.User
		role string
	)
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Tokens, &role, &u.CreatedAt)
	u.Role = domain.UserRole(role)
	return u, err
}
