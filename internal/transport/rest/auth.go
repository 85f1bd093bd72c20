package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/newsdesk-backend/internal/domain"
	"github.com/heartmarshall/newsdesk-backend/internal/service/user"
)

// userService defines the minimal interface needed by AuthHandler.
type userService interface {
	Register(ctx context.Context, input user.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, input user.LoginInput) (*user.LoginResult, error)
	Get(ctx context.Context, username string) (*domain.User, error)
}

// AuthHandler serves account REST endpoints.
type AuthHandler struct {
	svc userService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc userService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string       `json:"accessToken"`
	User        userResponse `json:"user"`
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	u, err := h.svc.Register(r.Context(), user.RegisterInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(u))
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.Login(r.Context(), user.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		AccessToken: result.AccessToken,
		User:        toUserResponse(result.User),
	})
}

// Me handles GET /auth/me: the caller's account and token balance.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	username, ok := requireUser(w, r)
	if !ok {
		return
	}

	u, err := h.svc.Get(r.Context(), username)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}
