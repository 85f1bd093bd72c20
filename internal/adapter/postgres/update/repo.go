// Package update implements the append-only Update store using PostgreSQL.
// Only the score of a stored update ever changes.
package update

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

var updateColumns = []string{
	"u.id", "u.seq", "u.topic_id", "u.grp", "u.headline", "u.summary", "u.body",
	"u.sources", "u.score", "u.created_by", "u.created_at", "u.sanitized_at",
}

var articleColumns = append(append([]string{}, updateColumns...),
	"t.id", "t.keywords", "t.created_by", "t.created_at",
)

// newest first; seq breaks created_at ties
var newestFirst = []string{"u.created_at DESC", "u.seq DESC"}

// Repo provides update persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new update repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Append inserts u and returns it with id, seq and created_at filled in.
// Returns domain.ErrNotFound when the topic does not exist.
func (r *Repo) Append(ctx context.Context, u *domain.Update) (*domain.Update, error) {
	id := u.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	sources := u.Sources
	if sources == nil {
		sources = []string{}
	}

	query := postgres.Builder().
		Insert("updates AS u").
		Columns("id", "topic_id", "grp", "headline", "summary", "body", "sources", "score", "created_by", "sanitized_at").
		Values(id, u.TopicID, u.Group, u.Headline, u.Summary, u.Body, sources, u.Score, u.CreatedBy, u.SanitizedAt).
		Suffix("RETURNING " + strings.Join(updateColumns, ", "))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build append update query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "update", id.String())
	}
	created, err := pgx.CollectExactlyOneRow(rows, scanUpdate)
	if err != nil {
		return nil, postgres.MapError(err, "update for topic", u.TopicID.String())
	}
	return &created, nil
}

// SetScore overwrites the relevance score of an update.
// Returns a validation error for a score outside [0,1] and domain.ErrNotFound
// when the update does not exist.
func (r *Repo) SetScore(ctx context.Context, id uuid.UUID, score float64) error {
	if err := domain.ValidateScore(score); err != nil {
		return err
	}

	sql, args, err := postgres.Builder().
		Update("updates").
		Set("score", score).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build set score query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "update", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Latest returns the newest update of a topic.
// Returns domain.ErrNotFound when the topic has no updates.
func (r *Repo) Latest(ctx context.Context, topicID uuid.UUID) (*domain.Update, error) {
	query := postgres.Builder().
		Select(updateColumns...).
		From("updates u").
		Where(sq.Eq{"u.topic_id": topicID}).
		OrderBy(newestFirst...).
		Limit(1)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build latest update query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "latest update of topic", topicID.String())
	}
	u, err := pgx.CollectExactlyOneRow(rows, scanUpdate)
	if err != nil {
		return nil, postgres.MapError(err, "latest update of topic", topicID.String())
	}
	return &u, nil
}

// GetByID returns an update together with its topic.
// Returns domain.ErrNotFound if the update does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	query := articleSelect().Where(sq.Eq{"u.id": id})

	articles, err := r.queryArticles(ctx, query)
	if err != nil {
		return nil, postgres.MapError(err, "update", id.String())
	}
	if len(articles) == 0 {
		return nil, fmt.Errorf("update %s: %w", id, domain.ErrNotFound)
	}
	return &articles[0], nil
}

// Page returns one page of the feed. The filter is normalized first: unknown
// sort keys fall back to created_at and the limit is capped.
func (r *Repo) Page(ctx context.Context, filter domain.UpdateFilter) ([]domain.Article, error) {
	f := filter.Normalized()

	query := articleSelect()
	if f.Group != nil {
		query = query.Where(sq.Eq{"u.grp": *f.Group})
	}
	if f.SortBy == domain.SortByScore {
		query = query.OrderBy("u.score DESC NULLS LAST")
	}
	query = query.OrderBy(newestFirst...).
		Offset(uint64(f.Skip)).
		Limit(uint64(f.Limit))

	articles, err := r.queryArticles(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("page updates: %w", err)
	}
	return articles, nil
}

// FindByKeyword returns the updates of every topic whose keyword array
// contains keyword, newest first. keyword must already be normalized.
func (r *Repo) FindByKeyword(ctx context.Context, keyword string) ([]domain.Article, error) {
	query := articleSelect().
		Where("t.keywords @> ARRAY[?]::text[]", keyword).
		OrderBy(newestFirst...)

	articles, err := r.queryArticles(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("find updates by keyword: %w", err)
	}
	return articles, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func articleSelect() sq.SelectBuilder {
	return postgres.Builder().
		Select(articleColumns...).
		From("updates u").
		Join("topics t ON t.id = u.topic_id")
}

// queryArticles returns an empty slice (not nil) when nothing matches.
func (r *Repo) queryArticles(ctx context.Context, query sq.SelectBuilder) ([]domain.Article, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	articles, err := pgx.CollectRows(rows, scanArticle)
	if err != nil {
		return nil, err
	}
	if articles == nil {
		articles = []domain.Article{}
	}
	return articles, nil
}

func updateDest(u *domain.Update) []any {
	return []any{
		&u.ID, &u.Seq, &u.TopicID, &u.Group, &u.Headline, &u.Summary, &u.Body,
		&u.Sources, &u.Score, &u.CreatedBy, &u.CreatedAt, &u.SanitizedAt,
	}
}

func scanUpdate(row pgx.CollectableRow) (domain.Update, error) {
	var u domain.Update
	err := row.Scan(updateDest(&u)...)
	return u, err
}

func scanArticle(row pgx.CollectableRow) (domain.Article, error) {
	var a domain.Article
	dest := append(updateDest(&a.Update),
		&a.Topic.ID, &a.Topic.Keywords, &a.Topic.CreatedBy, &a.Topic.CreatedAt,
	)
	err := row.Scan(dest...)
	return a, err
}
