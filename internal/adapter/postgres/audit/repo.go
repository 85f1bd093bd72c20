// Package audit implements the append-only audit log using PostgreSQL.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/newsdesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/newsdesk-backend/internal/domain"
)

const table = "audit_log"

var columns = []string{"id", "actor", "entity_type", "entity_id", "action", "changes", "created_at"}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a record and returns it as persisted. Inside RunInTx the
// insert joins the caller's transaction.
func (r *Repo) Create(ctx context.Context, record domain.AuditRecord) (*domain.AuditRecord, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.Changes == nil {
		record.Changes = map[string]any{}
	}

	changes, err := json.Marshal(record.Changes)
	if err != nil {
		return nil, fmt.Errorf("audit_record marshal changes: %w", err)
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "actor", "entity_type", "entity_id", "action", "changes").
		Values(record.ID, record.Actor, string(record.EntityType), record.EntityID, string(record.Action), changes).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create audit_record query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "audit_record", record.ID.String())
	}
	rec, err := pgx.CollectExactlyOneRow(rows, scanRecord)
	if err != nil {
		return nil, postgres.MapError(err, "audit_record", record.ID.String())
	}
	return &rec, nil
}

// Log creates a record without returning it.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	_, err := r.Create(ctx, record)
	return err
}

// ListByEntity returns the history of one entity, newest first.
func (r *Repo) ListByEntity(ctx context.Context, entityType domain.AuditEntity, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	return r.list(ctx, sq.Eq{"entity_type": string(entityType), "entity_id": entityID}, limit)
}

// ListByActor returns the records one actor produced, newest first.
func (r *Repo) ListByActor(ctx context.Context, actor string, limit int) ([]domain.AuditRecord, error) {
	return r.list(ctx, sq.Eq{"actor": actor}, limit)
}

func (r *Repo) list(ctx context.Context, where sq.Eq, limit int) ([]domain.AuditRecord, error) {
	if limit <= 0 {
		return []domain.AuditRecord{}, nil
	}

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list audit_records query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit_records: %w", err)
	}
	out, err := pgx.CollectRows(rows, scanRecord)
	if err != nil {
		return nil, fmt.Errorf("list audit_records: %w", err)
	}
	if out == nil {
		out = []domain.AuditRecord{}
	}
	return out, nil
}

func scanRecord(row pgx.CollectableRow) (domain.AuditRecord, error) {
	var (
		rec                domain.AuditRecord
		entityType, action string
		changes            []byte
	)
	if err := row.Scan(&rec.ID, &rec.Actor, &entityType, &rec.EntityID, &action, &changes, &rec.CreatedAt); err != nil {
		return domain.AuditRecord{}, err
	}
	rec.EntityType = domain.AuditEntity(entityType)
	rec.Action = domain.AuditAction(action)

	if len(changes) > 0 {
		rec.Changes = make(map[string]any)
		if err := json.Unmarshal(changes, &rec.Changes); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_record %s unmarshal changes: %w", rec.ID, err)
		}
	}
	return rec, nil
}
