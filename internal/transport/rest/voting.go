package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/newsdesk-backend/internal/domain"
	"github.com/heartmarshall/newsdesk-backend/internal/validate"
)

type votingService interface {
	Propose(ctx context.Context, username, rawKeyword string) (*domain.VotingCandidate, error)
	Vote(ctx context.Context, username string, candidateID uuid.UUID) (*domain.VotingCandidate, error)
	TopCandidates(ctx context.Context, n int) ([]domain.VotingCandidate, error)
	List(ctx context.Context) ([]domain.VotingCandidate, error)
}

// VotingHandler serves the candidate keyword endpoints.
type VotingHandler struct {
	svc        votingService
	promoteTop int
	log        *slog.Logger
}

// NewVotingHandler creates a VotingHandler. promoteTop is the default size
// of the winners list.
func NewVotingHandler(svc votingService, promoteTop int, logger *slog.Logger) *VotingHandler {
	return &VotingHandler{svc: svc, promoteTop: promoteTop, log: logger.With("handler", "voting")}
}

// List handles GET /api/voting.
func (h *VotingHandler) List(w http.ResponseWriter, r *http.Request) {
	all, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCandidateResponses(all))
}

// Winners handles GET /api/voting/top?n=.
func (h *VotingHandler) Winners(w http.ResponseWriter, r *http.Request) {
	n := h.promoteTop
	if v := r.URL.Query().Get("n"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("n", "must be an integer"))
			return
		}
		n = parsed
	}

	top, err := h.svc.TopCandidates(r.Context(), n)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCandidateResponses(top))
}

type proposeRequest struct {
	Keyword string `json:"keyword"`
}

// Propose handles POST /api/voting/candidates.
func (h *VotingHandler) Propose(w http.ResponseWriter, r *http.Request) {
	username, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req proposeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.Propose(r.Context(), username, req.Keyword)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCandidateResponse(*c))
}

// Vote handles POST /api/voting/candidates/{id}/vote.
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	username, ok := requireUser(w, r)
	if !ok {
		return
	}

	id, err := validate.EntityID(r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.Vote(r.Context(), username, id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCandidateResponse(*c))
}
