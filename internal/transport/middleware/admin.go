package middleware

import (
	"context"
	"net/http"

	"github.com/heartmarshall/newsdesk-backend/internal/domain"
	"github.com/heartmarshall/newsdesk-backend/pkg/ctxutil"
)

// RequireAdmin returns domain.ErrForbidden if the context user is not admin
// and domain.ErrUnauthorized if there is no user at all.
func RequireAdmin(ctx context.Context) error {
	if _, ok := ctxutil.UsernameFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}

// AdminOnly rejects requests whose context user is not an admin.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch RequireAdmin(r.Context()) {
		case nil:
			next.ServeHTTP(w, r)
		case domain.ErrUnauthorized:
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		default:
			http.Error(w, "forbidden", http.StatusForbidden)
		}
	})
}
