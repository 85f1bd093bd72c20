package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/newsdesk-backend/internal/service/refresh"
	"github.com/heartmarshall/newsdesk-backend/internal/service/voting"
)

type refresher interface {
	Run(ctx context.Context) (refresh.Report, error)
}

type consolidator interface {
	Consolidate(ctx context.Context) (voting.ConsolidationReport, error)
}

// AdminHandler serves maintenance endpoints. Routes are wrapped in
// middleware.AdminOnly.
type AdminHandler struct {
	refresh     refresher
	consolidate consolidator
	log         *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(refresh refresher, consolidate consolidator, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		refresh:     refresh,
		consolidate: consolidate,
		log:         logger.With("handler", "admin"),
	}
}

// Refresh runs a relevance refresh pass.
// POST /api/admin/refresh
func (h *AdminHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	report, err := h.refresh.Run(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// Consolidate promotes the voting winners and resets the voting round.
// POST /api/admin/consolidate
func (h *AdminHandler) Consolidate(w http.ResponseWriter, r *http.Request) {
	report, err := h.consolidate.Consolidate(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
