// Package user manages accounts, credentials and the per-user token budget.
package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/newsdesk-backend/internal/config"
	"github.com/heartmarshall/newsdesk-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	UseToken(ctx context.Context, username string) (int, error)
	ResetAll(ctx context.Context, tokens int) (int64, error)
	SetRole(ctx context.Context, username string, role domain.UserRole) (*domain.User, error)
}

// tokenIssuer signs access tokens.
type tokenIssuer interface {
	GenerateAccessToken(username, role string) (string, error)
}

// Service implements account operations.
type Service struct {
	log            *slog.Logger
	users          userRepo
	jwt            tokenIssuer
	cfg            config.AuthConfig
	startingTokens int
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	jwt tokenIssuer,
	cfg config.AuthConfig,
	startingTokens int,
) *Service {
	return &Service{
		log:            logger.With("service", "user"),
		users:          users,
		jwt:            jwt,
		cfg:            cfg,
		startingTokens: startingTokens,
	}
}

// Get returns the account for username.
func (s *Service) Get(ctx context.Context, username string) (*domain.User, error) {
	u, err := s.users.GetByUsername(ctx, normalizeUsername(username))
	if err != nil {
		return nil, fmt.Errorf("user.Get: %w", err)
	}
	return u, nil
}

// UseToken spends one token and returns the remaining balance.
func (s *Service) UseToken(ctx context.Context, username string) (int, error) {
	left, err := s.users.UseToken(ctx, normalizeUsername(username))
	if err != nil {
		return 0, fmt.Errorf("user.UseToken: %w", err)
	}
	return left, nil
}

// ResetAll restores every account to the starting budget.
func (s *Service) ResetAll(ctx context.Context) (int64, error) {
	n, err := s.users.ResetAll(ctx, s.startingTokens)
	if err != nil {
		return 0, fmt.Errorf("user.ResetAll: %w", err)
	}
	s.log.InfoContext(ctx, "token budgets reset",
		slog.Int64("users", n),
		slog.Int("tokens", s.startingTokens))
	return n, nil
}

// Promote grants the admin role to an existing account.
func (s *Service) Promote(ctx context.Context, username string) (*domain.User, error) {
	u, err := s.users.SetRole(ctx, normalizeUsername(username), domain.UserRoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("user.Promote: %w", err)
	}
	s.log.InfoContext(ctx, "user promoted to admin", slog.String("username", u.Username))
	return u, nil
}
