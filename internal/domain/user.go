package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserRole is the authorization role carried in access tokens.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

// IsAdmin reports whether the role grants maintenance actions.
func (r UserRole) IsAdmin() bool { return r == UserRoleAdmin }

// DefaultStartingTokens is the token budget of a fresh account and the value
// restored by every consolidation.
const DefaultStartingTokens = 3

// User is an account with a per-user token budget for gated voting actions.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	Tokens       int
	Role         UserRole
	CreatedAt    time.Time
}

// HasTokens reports whether the user can perform one more gated action.
func (u *User) HasTokens() bool {
	return u.Tokens > 0
}
