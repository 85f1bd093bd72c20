package user

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/newsdesk-backend/internal/domain"
)

// Register creates an account with the starting token budget.
// Returns ErrAlreadyExists if the username is taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	input.Username = normalizeUsername(input.Username)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("user.Register hash password: %w", err)
	}

	role := domain.UserRoleUser
	if s.cfg.IsAdmin(input.Username) {
		role = domain.UserRoleAdmin
	}

	// Username uniqueness is enforced by the DB constraint.
	created, err := s.users.Create(ctx, domain.User{
		ID:           uuid.New(),
		Username:     input.Username,
		PasswordHash: string(hash),
		Tokens:       s.startingTokens,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("user.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("username", created.Username),
		slog.String("role", string(created.Role)))

	return created, nil
}
