package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/newsdesk-backend/internal/domain"
)

// LoginResult is returned by a successful login.
type LoginResult struct {
	AccessToken string
	User        *domain.User
}

// Login checks the password and issues an access token.
// Returns ErrUnauthorized if the user is unknown or the password is wrong.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	input.Username = normalizeUsername(input.Username)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	u, err := s.users.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("user.Login get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	role := u.Role
	if s.cfg.IsAdmin(u.Username) {
		role = domain.UserRoleAdmin
	}

	token, err := s.jwt.GenerateAccessToken(u.Username, string(role))
	if err != nil {
		return nil, fmt.Errorf("user.Login issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.String("username", u.Username))

	return &LoginResult{AccessToken: token, User: u}, nil
}
