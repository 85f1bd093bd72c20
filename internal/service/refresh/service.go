// Package refresh drives the periodic relevance pass over every topic: each
// latest Update is scored and stale ones are regenerated.
package refresh

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/newsdesk-backend/internal/config"
	"github.com/heartmarshall/newsdesk-backend/internal/domain"
	"github.com/heartmarshall/newsdesk-backend/internal/metrics"
)

type topicLister interface {
	List(ctx context.Context, offset, limit int) ([]domain.Topic, error)
}

type scorer interface {
	Score(ctx context.Context, topicID uuid.UUID) (float64, error)
}

type regenerator interface {
	Regenerate(ctx context.Context, topic domain.Topic) (*domain.Update, error)
}

// Failure is one topic the pass could not process.
type Failure struct {
	TopicID uuid.UUID `json:"topic_id"`
	Kind    string    `json:"kind"`
	Err     error     `json:"-"`
}

// Report summarizes one refresh pass.
type Report struct {
	Scanned   int       `json:"scanned"`
	Skipped   int       `json:"skipped"`
	Kept      int       `json:"kept"`
	Refreshed int       `json:"refreshed"`
	Failures  []Failure `json:"failures"`
}

// Service runs refresh passes. Only one pass runs at a time.
type Service struct {
	log       *slog.Logger
	cfg       config.RefreshConfig
	topics    topicLister
	scorer    scorer
	generator regenerator
	metrics   *metrics.Metrics

	running sync.Mutex
}

// NewService creates a new refresh service.
func NewService(
	logger *slog.Logger,
	cfg config.RefreshConfig,
	topics topicLister,
	scorer scorer,
	generator regenerator,
	m *metrics.Metrics,
) *Service {
	return &Service{
		log:       logger.With("service", "refresh"),
		cfg:       cfg,
		topics:    topics,
		scorer:    scorer,
		generator: generator,
		metrics:   m,
	}
}

// Run scores every topic's latest Update and regenerates those at or below the
// configured threshold. Per-topic failures are collected in the report and
// never stop the pass. A listing error or a cancelled ctx ends the pass early;
// the partial report is returned with the error.
func (s *Service) Run(ctx context.Context) (Report, error) {
	report := Report{Failures: []Failure{}}

	if !s.running.TryLock() {
		return report, fmt.Errorf("refresh.Run: pass already running: %w", domain.ErrConflict)
	}
	defer s.running.Unlock()

	start := time.Now()
	s.log.InfoContext(ctx, "refresh pass started", slog.Float64("threshold", s.cfg.Threshold))

	err := s.run(ctx, &report)

	s.metrics.RefreshRun()
	s.log.InfoContext(ctx, "refresh pass finished",
		slog.Int("scanned", report.Scanned),
		slog.Int("skipped", report.Skipped),
		slog.Int("kept", report.Kept),
		slog.Int("refreshed", report.Refreshed),
		slog.Int("failed", len(report.Failures)),
		slog.Duration("duration", time.Since(start)),
	)

	if err != nil {
		return report, fmt.Errorf("refresh.Run: %w", err)
	}
	return report, nil
}

func (s *Service) run(ctx context.Context, report *Report) error {
	batch := s.cfg.BatchSize
	if batch <= 0 {
		batch = 100
	}

	for offset := 0; ; offset += batch {
		if err := ctx.Err(); err != nil {
			return err
		}

		topics, err := s.topics.List(ctx, offset, batch)
		if err != nil {
			return fmt.Errorf("list topics at %d: %w", offset, err)
		}

		for _, topic := range topics {
			if err := ctx.Err(); err != nil {
				return err
			}
			report.Scanned++
			s.refreshTopic(ctx, topic, report)
		}

		if len(topics) < batch {
			return nil
		}
	}
}

func (s *Service) refreshTopic(ctx context.Context, topic domain.Topic, report *Report) {
	score, err := s.scorer.Score(ctx, topic.ID)
	if errors.Is(err, domain.ErrNoUpdateAvailable) {
		report.Skipped++
		s.metrics.RefreshTopic(metrics.RefreshSkipped)
		return
	}
	if err != nil {
		s.fail(ctx, topic.ID, err, report)
		return
	}

	if score > s.cfg.Threshold {
		report.Kept++
		s.metrics.RefreshTopic(metrics.RefreshKept)
		return
	}

	if _, err := s.generator.Regenerate(ctx, topic); err != nil {
		s.fail(ctx, topic.ID, err, report)
		return
	}
	report.Refreshed++
	s.metrics.RefreshTopic(metrics.RefreshRefreshed)
}

func (s *Service) fail(ctx context.Context, topicID uuid.UUID, err error, report *Report) {
	f := Failure{TopicID: topicID, Kind: domain.ErrorKind(err), Err: err}
	report.Failures = append(report.Failures, f)
	s.metrics.RefreshTopic(metrics.RefreshFailed)
	s.log.WarnContext(ctx, "refresh failed for topic",
		slog.String("topic_id", topicID.String()),
		slog.String("kind", f.Kind),
		slog.String("error", err.Error()),
	)
}
