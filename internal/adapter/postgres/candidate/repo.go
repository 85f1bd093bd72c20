// Package candidate implements the voting candidate repository using PostgreSQL.
package candidate

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/newsdesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/newsdesk-backend/internal/domain"
)

const table = "voting_candidates"

var columns = []string{"id", "seq", "keyword", "votes", "created_by", "created_at"}

// ranking order: most votes first, then earliest proposal
var ranking = []string{"votes DESC", "created_at ASC", "seq ASC"}

// Repo provides candidate persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new candidate repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a candidate carrying its proposer's vote.
func (r *Repo) Create(ctx context.Context, keyword, createdBy string) (*domain.VotingCandidate, error) {
	query := postgres.Builder().
		Insert(table).
		Columns("id", "keyword", "votes", "created_by").
		Values(uuid.New(), keyword, 1, createdBy).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	c, err := r.getOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "candidate", keyword)
	}
	return c, nil
}

// IncrementVotes adds one vote and returns the updated candidate.
// Returns domain.ErrNotFound if the candidate does not exist.
func (r *Repo) IncrementVotes(ctx context.Context, id uuid.UUID) (*domain.VotingCandidate, error) {
	query := postgres.Builder().
		Update(table).
		Set("votes", sq.Expr("votes + 1")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	c, err := r.getOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "candidate", id.String())
	}
	return c, nil
}

// Top returns at most n candidates in ranking order.
func (r *Repo) Top(ctx context.Context, n int) ([]domain.VotingCandidate, error) {
	if n <= 0 {
		return []domain.VotingCandidate{}, nil
	}
	return r.list(ctx, postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy(ranking...).
		Limit(uint64(n)))
}

// List returns every candidate in ranking order.
func (r *Repo) List(ctx context.Context) ([]domain.VotingCandidate, error) {
	return r.list(ctx, postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy(ranking...))
}

// DeleteAll removes every candidate and returns how many were deleted.
func (r *Repo) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, "DELETE FROM "+table)
	if err != nil {
		return 0, fmt.Errorf("delete candidates: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *Repo) list(ctx context.Context, query sq.SelectBuilder) ([]domain.VotingCandidate, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list candidates query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}

	out, err := pgx.CollectRows(rows, scanCandidate)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	if out == nil {
		out = []domain.VotingCandidate{}
	}
	return out, nil
}

func (r *Repo) getOne(ctx context.Context, query sq.Sqlizer) (*domain.VotingCandidate, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build candidate query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	c, err := pgx.CollectExactlyOneRow(rows, scanCandidate)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanCandidate(row pgx.CollectableRow) (domain.VotingCandidate, error) {
	var c domain.VotingCandidate
	err := row.Scan(&c.ID, &c.Seq, &c.Keyword, &c.Votes, &c.CreatedBy, &c.CreatedAt)
	return c, err
}
