package voting

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/newsdesk-backend/internal/domain"
	"github.com/heartmarshall/newsdesk-backend/internal/validate"
)

// Propose spends one of username's tokens to add a candidate keyword with a
// single vote. The keyword is validated before anything is written.
func (s *Service) Propose(ctx context.Context, username, rawKeyword string) (_ *domain.VotingCandidate, err error) {
	defer func() { s.record(ActionPropose, err) }()

	if username == "" {
		return nil, domain.ErrUnauthorized
	}

	keyword, err := validate.Keyword(rawKeyword)
	if err != nil {
		return nil, err
	}

	var created *domain.VotingCandidate
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		left, err := s.ledger.UseToken(txCtx, username)
		if err != nil {
			return fmt.Errorf("use token: %w", err)
		}

		c, err := s.candidates.Create(txCtx, keyword, username)
		if err != nil {
			return fmt.Errorf("create candidate: %w", err)
		}

		err = s.audit.Log(txCtx, domain.AuditRecord{
			Actor:      username,
			EntityType: domain.AuditEntityCandidate,
			EntityID:   &c.ID,
			Action:     domain.AuditActionCreate,
			Changes:    map[string]any{"keyword": c.Keyword, "tokens_left": left},
		})
		if err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		created = c
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("voting.Propose: %w", err)
	}

	s.log.InfoContext(ctx, "candidate proposed",
		slog.String("username", username),
		slog.String("candidate_id", created.ID.String()),
		slog.String("keyword", created.Keyword))

	return created, nil
}
