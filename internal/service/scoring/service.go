// Package scoring is the Relevance Scorer: it asks the generative service how
// current a topic's latest update still is and stores the answer.
package scoring

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/newsdesk-backend/internal/domain"
)

type updateRepo interface {
	Latest(ctx context.Context, topicID uuid.UUID) (*domain.Update, error)
	SetScore(ctx context.Context, updateID uuid.UUID, score float64) error
}

type textGenerator interface {
	Generate(ctx context.Context, system, user string) (string, error)
}

// Service scores updates for relevance.
type Service struct {
	updates updateRepo
	llm     textGenerator
	log     *slog.Logger
}

// NewService creates a new scoring service.
func NewService(log *slog.Logger, updates updateRepo, llm textGenerator) *Service {
	return &Service{
		updates: updates,
		llm:     llm,
		log:     log.With("service", "scoring"),
	}
}

// Score rates the latest update of topicID, persists the score on that update
// and returns it.
//
// Errors: domain.ErrNoUpdateAvailable when the topic has no update,
// domain.ErrGenerationFailed when the call fails, domain.ErrScoreParse when
// the reply is not a number in [0,1]. A bad reply is never clamped.
func (s *Service) Score(ctx context.Context, topicID uuid.UUID) (float64, error) {
	latest, err := s.updates.Latest(ctx, topicID)
	if errors.Is(err, domain.ErrNotFound) {
		return 0, fmt.Errorf("scoring.Score topic %s: %w", topicID, domain.ErrNoUpdateAvailable)
	}
	if err != nil {
		return 0, fmt.Errorf("scoring.Score latest: %w", err)
	}

	reply, err := s.llm.Generate(ctx, systemPrompt, buildUserPrompt(latest))
	if err != nil {
		return 0, fmt.Errorf("scoring.Score: %w", err)
	}

	score, err := ParseScore(reply)
	if err != nil {
		s.log.WarnContext(ctx, "unusable score reply",
			slog.String("topic_id", topicID.String()),
			slog.String("reply", reply),
		)
		return 0, fmt.Errorf("scoring.Score topic %s: %w", topicID, err)
	}

	if err := s.updates.SetScore(ctx, latest.ID, score); err != nil {
		return 0, fmt.Errorf("scoring.Score persist: %w", err)
	}

	s.log.InfoContext(ctx, "update scored",
		slog.String("topic_id", topicID.String()),
		slog.String("update_id", latest.ID.String()),
		slog.Float64("score", score),
	)
	return score, nil
}

// ParseScore reads a relevance score from a reply: surrounding whitespace is
// ignored, the value is rounded to two decimals and must be within [0,1].
func ParseScore(reply string) (float64, error) {
	raw := strings.TrimSpace(reply)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", domain.ErrScoreParse, raw)
	}

	v = domain.RoundScore(v)
	if domain.ValidateScore(v) != nil {
		return 0, fmt.Errorf("%w: %q is outside [0,1]", domain.ErrScoreParse, raw)
	}
	return v, nil
}
