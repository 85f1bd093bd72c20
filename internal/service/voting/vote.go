package voting

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/newsdesk-backend/internal/domain"
)

// Vote adds one vote to a candidate and spends one of username's tokens in
// the same transaction. Without a token the vote is rolled back.
func (s *Service) Vote(ctx context.Context, username string, candidateID uuid.UUID) (_ *domain.VotingCandidate, err error) {
	defer func() { s.record(ActionVote, err) }()

	if username == "" {
		return nil, domain.ErrUnauthorized
	}

	var voted *domain.VotingCandidate
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.candidates.IncrementVotes(txCtx, candidateID)
		if err != nil {
			return fmt.Errorf("increment votes: %w", err)
		}

		left, err := s.ledger.UseToken(txCtx, username)
		if err != nil {
			return fmt.Errorf("use token: %w", err)
		}

		err = s.audit.Log(txCtx, domain.AuditRecord{
			Actor:      username,
			EntityType: domain.AuditEntityCandidate,
			EntityID:   &c.ID,
			Action:     domain.AuditActionVote,
			Changes:    map[string]any{"votes": c.Votes, "tokens_left": left},
		})
		if err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		voted = c
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("voting.Vote: %w", err)
	}

	s.log.InfoContext(ctx, "vote cast",
		slog.String("username", username),
		slog.String("candidate_id", candidateID.String()),
		slog.Int("votes", voted.Votes))

	return voted, nil
}

// TopCandidates returns the n leading candidates: most votes first, earlier
// proposals winning ties.
func (s *Service) TopCandidates(ctx context.Context, n int) ([]domain.VotingCandidate, error) {
	if n <= 0 {
		return nil, domain.NewValidationError("n", "must be positive")
	}
	top, err := s.candidates.Top(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("voting.TopCandidates: %w", err)
	}
	return top, nil
}

// List returns every candidate in ranking order.
func (s *Service) List(ctx context.Context) ([]domain.VotingCandidate, error) {
	all, err := s.candidates.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("voting.List: %w", err)
	}
	return all, nil
}
