// Package topic is the Topic Registry: it resolves a keyword list to exactly
// one Topic, creating it on first sight.
package topic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/newsdesk-backend/internal/domain"
)

type topicRepo interface {
	FindByKeywords(ctx context.Context, keywords []string) (*domain.Topic, error)
	Create(ctx context.Context, t *domain.Topic) (*domain.Topic, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error)
	List(ctx context.Context, offset, limit int) ([]domain.Topic, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides topic registry operations.
type Service struct {
	topics topicRepo
	audit  auditLogger
	tx     txManager
	log    *slog.Logger
}

// NewService creates a new Topic service.
func NewService(log *slog.Logger, topics topicRepo, audit auditLogger, tx txManager) *Service {
	return &Service{
		topics: topics,
		audit:  audit,
		tx:     tx,
		log:    log.With("service", "topic"),
	}
}

// GetOrCreate returns the topic identified by keywords and whether it was
// created by this call. keywords must already be validated and normalized.
//
// Two callers racing on the same new keyword list both reach Create; the
// unique index lets exactly one win and the loser re-reads the winner's row
// once its transaction has rolled back. A creation is audited in the same
// transaction as the insert.
func (s *Service) GetOrCreate(ctx context.Context, keywords []string, createdBy *string) (*domain.Topic, bool, error) {
	if len(keywords) == 0 {
		return nil, false, domain.NewValidationError("keywords", "required")
	}

	existing, err := s.topics.FindByKeywords(ctx, keywords)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("topic.GetOrCreate find: %w", err)
	}

	actor := domain.SystemActor
	if createdBy != nil {
		actor = *createdBy
	}

	var created *domain.Topic
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		t, err := s.topics.Create(txCtx, &domain.Topic{
			ID:        uuid.New(),
			Keywords:  keywords,
			CreatedBy: createdBy,
		})
		if err != nil {
			return err
		}

		err = s.audit.Log(txCtx, domain.AuditRecord{
			Actor:      actor,
			EntityType: domain.AuditEntityTopic,
			EntityID:   &t.ID,
			Action:     domain.AuditActionCreate,
			Changes:    map[string]any{"keywords": keywords},
		})
		if err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		created = t
		return nil
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		s.log.DebugContext(ctx, "topic created concurrently, re-reading",
			slog.String("keywords", domain.JoinKeywords(keywords)))
		winner, err := s.topics.FindByKeywords(ctx, keywords)
		if err != nil {
			return nil, false, fmt.Errorf("topic.GetOrCreate re-read: %w", err)
		}
		return winner, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("topic.GetOrCreate create: %w", err)
	}

	s.log.InfoContext(ctx, "topic created",
		slog.String("topic_id", created.ID.String()),
		slog.String("keywords", domain.JoinKeywords(keywords)),
	)
	return created, true, nil
}

// Get returns a topic by id. Returns domain.ErrNotFound if absent.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
	t, err := s.topics.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("topic.Get: %w", err)
	}
	return t, nil
}

// List returns one page of topics in stable (created_at, id) order.
func (s *Service) List(ctx context.Context, offset, limit int) ([]domain.Topic, error) {
	if limit <= 0 {
		return nil, domain.NewValidationError("limit", "must be positive")
	}
	topics, err := s.topics.List(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("topic.List: %w", err)
	}
	return topics, nil
}
