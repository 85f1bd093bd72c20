package voting

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/newsdesk-backend/internal/domain"
	"github.com/heartmarshall/newsdesk-backend/internal/service/generation"
	"github.com/heartmarshall/newsdesk-backend/internal/validate"
)

// Promotion is a candidate that became a topic update.
type Promotion struct {
	CandidateID uuid.UUID `json:"candidate_id"`
	Keyword     string    `json:"keyword"`
	Votes       int       `json:"votes"`
	UpdateID    uuid.UUID `json:"update_id"`
}

// PromotionFailure is a winning candidate that could not be promoted.
type PromotionFailure struct {
	CandidateID uuid.UUID `json:"candidate_id"`
	Keyword     string    `json:"keyword"`
	Kind        string    `json:"kind"`
	Err         error     `json:"-"`
}

// ConsolidationReport summarizes one consolidation.
type ConsolidationReport struct {
	Promoted          []Promotion        `json:"promoted"`
	Failures          []PromotionFailure `json:"failures"`
	TokensReset       int64              `json:"tokens_reset"`
	CandidatesCleared int64              `json:"candidates_cleared"`
}

// Consolidate promotes the top candidates into topics, then resets every
// user's tokens and clears all candidates. A failed promotion is recorded and
// does not stop the rest; the reset runs regardless of promotion failures.
// If the winners cannot be read nothing is reset. The reset and its audit
// record commit together.
func (s *Service) Consolidate(ctx context.Context) (_ ConsolidationReport, err error) {
	report := ConsolidationReport{Promoted: []Promotion{}, Failures: []PromotionFailure{}}

	if !s.consolidating.TryLock() {
		return report, fmt.Errorf("voting.Consolidate: already running: %w", domain.ErrConflict)
	}
	defer s.consolidating.Unlock()
	defer func() { s.record(ActionConsolidate, err) }()

	top, err := s.candidates.Top(ctx, s.cfg.PromoteTop)
	if err != nil {
		return report, fmt.Errorf("voting.Consolidate top: %w", err)
	}

	for _, c := range top {
		updateID, err := s.promote(ctx, c)
		if err != nil {
			report.Failures = append(report.Failures, PromotionFailure{
				CandidateID: c.ID,
				Keyword:     c.Keyword,
				Kind:        domain.ErrorKind(err),
				Err:         err,
			})
			s.log.WarnContext(ctx, "candidate promotion failed",
				slog.String("candidate_id", c.ID.String()),
				slog.String("keyword", c.Keyword),
				slog.String("error", err.Error()))
			continue
		}
		report.Promoted = append(report.Promoted, Promotion{
			CandidateID: c.ID,
			Keyword:     c.Keyword,
			Votes:       c.Votes,
			UpdateID:    updateID,
		})
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		reset, err := s.ledger.ResetAll(txCtx, s.cfg.StartingTokens)
		if err != nil {
			return fmt.Errorf("reset tokens: %w", err)
		}
		cleared, err := s.candidates.DeleteAll(txCtx)
		if err != nil {
			return fmt.Errorf("clear candidates: %w", err)
		}
		report.TokensReset = reset
		report.CandidatesCleared = cleared

		promoted := make([]string, 0, len(report.Promoted))
		for _, p := range report.Promoted {
			promoted = append(promoted, p.Keyword)
		}
		err = s.audit.Log(txCtx, domain.AuditRecord{
			Actor:      domain.SystemActor,
			EntityType: domain.AuditEntityRound,
			Action:     domain.AuditActionReset,
			Changes: map[string]any{
				"promoted":           promoted,
				"failed":             len(report.Failures),
				"tokens_reset":       reset,
				"candidates_cleared": cleared,
			},
		})
		if err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return report, fmt.Errorf("voting.Consolidate: %w", err)
	}

	s.log.InfoContext(ctx, "voting consolidated",
		slog.Int("promoted", len(report.Promoted)),
		slog.Int("failed", len(report.Failures)),
		slog.Int64("tokens_reset", report.TokensReset),
		slog.Int64("candidates_cleared", report.CandidatesCleared))

	return report, nil
}

func (s *Service) promote(ctx context.Context, c domain.VotingCandidate) (uuid.UUID, error) {
	keywords, err := validate.TopicList(c.Keyword)
	if err != nil {
		return uuid.Nil, err
	}

	createdBy := c.CreatedBy
	score := s.cfg.PromotionScore
	upd, err := s.generator.Generate(ctx, generation.GenerateInput{
		Keywords:     keywords,
		CreatedBy:    &createdBy,
		InitialScore: &score,
		Trigger:      generation.TriggerPromotion,
	})
	if err != nil {
		return uuid.Nil, err
	}
	return upd.ID, nil
}
