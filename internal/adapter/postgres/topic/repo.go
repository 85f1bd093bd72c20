// Package topic implements the Topic repository using PostgreSQL.
// A topic's identity is its exact keyword array; the topics_keywords_key
// unique index enforces it.
package topic

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

const table = "topics"

var columns = []string{"id", "keywords", "created_by", "created_at"}

// Repo provides topic persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new topic repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a topic by primary key.
// Returns domain.ErrNotFound if the topic does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id})

	t, err := r.getOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "topic", id.String())
	}
	return t, nil
}

// FindByKeywords returns the topic whose keyword array equals keywords
// element-for-element. Returns domain.ErrNotFound when there is none.
func (r *Repo) FindByKeywords(ctx context.Context, keywords []string) (*domain.Topic, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where("keywords = ?::text[]", keywords)

	t, err := r.getOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "topic", strings.Join(keywords, ","))
	}
	return t, nil
}

// Create inserts a new topic. Returns domain.ErrAlreadyExists when a topic
// with the same keyword array already exists.
func (r *Repo) Create(ctx context.Context, t *domain.Topic) (*domain.Topic, error) {
	id := t.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query := postgres.Builder().
		Insert(table).
		Columns("id", "keywords", "created_by").
		Values(id, t.Keywords, t.CreatedBy).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	created, err := r.getOne(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "topic", strings.Join(t.Keywords, ","))
	}
	return created, nil
}

// List returns topics ordered by (created_at, id) for stable batch iteration.
// Returns an empty slice (not nil) past the end.
func (r *Repo) List(ctx context.Context, offset, limit int) ([]domain.Topic, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("created_at ASC", "id ASC").
		Offset(uint64(max(offset, 0))).
		Limit(uint64(max(limit, 0)))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list topics query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	topics, err := pgx.CollectRows(rows, scanTopic)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	if topics == nil {
		topics = []domain.Topic{}
	}
	return topics, nil
}

func (r *Repo) getOne(ctx context.Context, query sq.Sqlizer) (*domain.Topic, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build topic query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	t, err := pgx.CollectExactlyOneRow(rows, scanTopic)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func scanTopic(row pgx.CollectableRow) (domain.Topic, error) {
	var t domain.Topic
	err := row.Scan(&t.ID, &t.Keywords, &t.CreatedBy, &t.CreatedAt)
	return t, err
}
