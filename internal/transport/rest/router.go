package rest

import (
	"net/http"

	"github.com/heartmarshall/newsdesk-backend/internal/transport/middleware"
)

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Health  *HealthHandler
	Auth    *AuthHandler
	News    *NewsHandler
	Voting  *VotingHandler
	Admin   *AdminHandler
	Metrics http.Handler
}

// NewRouter registers all routes on a new ServeMux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	if h.Metrics != nil {
		mux.Handle("GET /metrics", h.Metrics)
	}

	mux.HandleFunc("POST /auth/register", h.Auth.Register)
	mux.HandleFunc("POST /auth/login", h.Auth.Login)
	mux.HandleFunc("GET /auth/me", h.Auth.Me)

	mux.HandleFunc("GET /api/news", h.News.Feed)
	mux.HandleFunc("GET /api/search", h.News.Search)
	mux.HandleFunc("GET /api/articles/{id}", h.News.Article)
	mux.HandleFunc("POST /api/topics", h.News.SubmitTopic)

	mux.HandleFunc("GET /api/voting", h.Voting.List)
	mux.HandleFunc("GET /api/voting/top", h.Voting.Winners)
	mux.HandleFunc("POST /api/voting/candidates", h.Voting.Propose)
	mux.HandleFunc("POST /api/voting/candidates/{id}/vote", h.Voting.Vote)

	mux.Handle("POST /api/admin/refresh", middleware.AdminOnly(http.HandlerFunc(h.Admin.Refresh)))
	mux.Handle("POST /api/admin/consolidate", middleware.AdminOnly(http.HandlerFunc(h.Admin.Consolidate)))

	return mux
}
