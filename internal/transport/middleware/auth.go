package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/newsdesk-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (username string, role string, err error)
}

// Auth resolves a bearer access token into the request context. Requests
// without a token pass through anonymously; a bad token is rejected.
func Auth(validator tokenValidator, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			username, role, err := validator.ValidateAccessToken(token)
			if err != nil {
				logger.DebugContext(r.Context(), "access token rejected", slog.String("error", err.Error()))
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := ctxutil.WithUsername(r.Context(), username)
			ctx = ctxutil.WithUserRole(ctx, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
