// Package voting implements the token-gated candidate keyword workflow:
// proposals, votes and the periodic promotion of winners into topics.
package voting

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/newsdesk-backend/internal/config"
	"github.com/heartmarshall/newsdesk-backend/internal/domain"
	"github.com/heartmarshall/newsdesk-backend/internal/metrics"
	"github.com/heartmarshall/newsdesk-backend/internal/service/generation"
)

// Voting actions, used as a metrics label.
const (
	ActionPropose     = "propose"
	ActionVote        = "vote"
	ActionConsolidate = "consolidate"
)

type candidateRepo interface {
	Create(ctx context.Context, keyword, createdBy string) (*domain.VotingCandidate, error)
	IncrementVotes(ctx context.Context, id uuid.UUID) (*domain.VotingCandidate, error)
	Top(ctx context.Context, n int) ([]domain.VotingCandidate, error)
	List(ctx context.Context) ([]domain.VotingCandidate, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type tokenLedger interface {
	UseToken(ctx context.Context, username string) (int, error)
	ResetAll(ctx context.Context, tokens int) (int64, error)
}

type generator interface {
	Generate(ctx context.Context, in generation.GenerateInput) (*domain.Update, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements voting operations.
type Service struct {
	log        *slog.Logger
	cfg        config.VotingConfig
	candidates candidateRepo
	ledger     tokenLedger
	generator  generator
	audit      auditLogger
	tx         txManager
	metrics    *metrics.Metrics

	consolidating sync.Mutex
}

// NewService creates a new voting service.
func NewService(
	logger *slog.Logger,
	cfg config.VotingConfig,
	candidates candidateRepo,
	ledger tokenLedger,
	generator generator,
	audit auditLogger,
	tx txManager,
	m *metrics.Metrics,
) *Service {
	return &Service{
		log:        logger.With("service", "voting"),
		cfg:        cfg,
		candidates: candidates,
		ledger:     ledger,
		generator:  generator,
		audit:      audit,
		tx:         tx,
		metrics:    m,
	}
}

func (s *Service) record(action string, err error) {
	outcome := metrics.OutcomeSuccess
	if err != nil {
		outcome = domain.ErrorKind(err)
	}
	s.metrics.VotingAction(action, outcome)
}
