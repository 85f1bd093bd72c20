// Package generation is the Generation Pipeline: it resolves a topic, asks the
// generative service for an article, sanitizes the reply and stores it as a
// new Update.
package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/newsdesk-backend/internal/config"
	"github.com/heartmarshall/newsdesk-backend/internal/domain"
	"github.com/heartmarshall/newsdesk-backend/internal/metrics"
	"github.com/heartmarshall/newsdesk-backend/internal/validate"
)

// Generation triggers, used as a metrics label.
const (
	TriggerSubmit    = "submit"
	TriggerRefresh   = "refresh"
	TriggerPromotion = "promotion"
)

type topicRegistry interface {
	GetOrCreate(ctx context.Context, keywords []string, createdBy *string) (*domain.Topic, bool, error)
}

type updateStore interface {
	Append(ctx context.Context, u *domain.Update) (*domain.Update, error)
}

type scorer interface {
	Score(ctx context.Context, topicID uuid.UUID) (float64, error)
}

type textGenerator interface {
	Generate(ctx context.Context, system, user string) (string, error)
}

type feedInvalidator interface {
	Invalidate(ctx context.Context) error
}

// Service generates and stores Updates.
type Service struct {
	log     *slog.Logger
	cfg     config.GenerationConfig
	topics  topicRegistry
	updates updateStore
	scorer  scorer
	llm     textGenerator
	feed    feedInvalidator
	metrics *metrics.Metrics
}

// NewService creates a new generation service.
func NewService(
	logger *slog.Logger,
	cfg config.GenerationConfig,
	topics topicRegistry,
	updates updateStore,
	scorer scorer,
	llm textGenerator,
	feed feedInvalidator,
	m *metrics.Metrics,
) *Service {
	return &Service{
		log:     logger.With("service", "generation"),
		cfg:     cfg,
		topics:  topics,
		updates: updates,
		scorer:  scorer,
		llm:     llm,
		feed:    feed,
		metrics: m,
	}
}

// Generate resolves the topic for in.Keywords, re-scores its latest Update if
// the topic already existed, and writes a fresh Update for it.
func (s *Service) Generate(ctx context.Context, in GenerateInput) (*domain.Update, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	topic, isNew, err := s.topics.GetOrCreate(ctx, in.Keywords, in.CreatedBy)
	if err != nil {
		return nil, fmt.Errorf("generation.Generate topic: %w", err)
	}

	if !isNew {
		s.rescore(ctx, topic.ID)
	}

	trigger := in.Trigger
	if trigger == "" {
		trigger = TriggerSubmit
	}

	score := s.cfg.InitialScore
	if in.InitialScore != nil {
		score = *in.InitialScore
	}

	upd, err := s.write(ctx, *topic, in.CreatedBy, score, trigger)
	if err != nil {
		return nil, fmt.Errorf("generation.Generate: %w", err)
	}
	return upd, nil
}

// Regenerate writes a fresh Update for an already resolved topic. It does not
// re-score: callers use it right after scoring.
func (s *Service) Regenerate(ctx context.Context, topic domain.Topic) (*domain.Update, error) {
	upd, err := s.write(ctx, topic, nil, s.cfg.InitialScore, TriggerRefresh)
	if err != nil {
		return nil, fmt.Errorf("generation.Regenerate: %w", err)
	}
	return upd, nil
}

func (s *Service) rescore(ctx context.Context, topicID uuid.UUID) {
	score, err := s.scorer.Score(ctx, topicID)
	switch {
	case errors.Is(err, domain.ErrNoUpdateAvailable):
		s.log.DebugContext(ctx, "existing topic has no update to re-score",
			slog.String("topic_id", topicID.String()))
	case err != nil:
		s.log.WarnContext(ctx, "re-score of existing topic failed",
			slog.String("topic_id", topicID.String()),
			slog.String("kind", domain.ErrorKind(err)),
			slog.String("error", err.Error()))
	default:
		s.log.InfoContext(ctx, "existing topic re-scored",
			slog.String("topic_id", topicID.String()),
			slog.Float64("score", score))
	}
}

func (s *Service) write(ctx context.Context, topic domain.Topic, createdBy *string, score float64, trigger string) (*domain.Update, error) {
	reply, err := s.llm.Generate(ctx, systemPrompt(s.cfg), buildUserPrompt(topic.Keywords))
	if err != nil {
		return nil, err
	}

	parsed := parseArticle(reply)
	group, _ := s.cfg.HasGroup(parsed.Group)

	clean := validate.SanitizeGenerated(group, parsed.Headline, parsed.Summary, parsed.Body)
	upd := &domain.Update{
		ID:          uuid.New(),
		TopicID:     topic.ID,
		Group:       clean.Group,
		Headline:    clean.Headline,
		Summary:     clean.Summary,
		Body:        clean.Body,
		Sources:     validate.SanitizeSources(parsed.Sources),
		Score:       &score,
		CreatedBy:   createdBy,
		CreatedAt:   time.Now().UTC(),
		SanitizedAt: clean.SanitizedAt,
	}

	stored, err := s.updates.Append(ctx, upd)
	if err != nil {
		return nil, fmt.Errorf("append update: %w", err)
	}

	if err := s.feed.Invalidate(ctx); err != nil {
		s.log.WarnContext(ctx, "feed cache invalidation failed", slog.String("error", err.Error()))
	}

	s.metrics.UpdateGenerated(trigger)
	s.log.InfoContext(ctx, "update generated",
		slog.String("topic_id", topic.ID.String()),
		slog.String("update_id", stored.ID.String()),
		slog.String("group", stored.Group),
		slog.String("trigger", trigger),
	)
	return stored, nil
}
