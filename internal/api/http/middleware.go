package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/CaL7598/Goodlife-gym/internal/domain"
	"github.com/CaL7598/Goodlife-gym/internal/security"
)

type contextKey string

const staffContextKey contextKey = "staff"

// staffFromContext returns the authenticated staff member, or nil when the
// request came through an unauthenticated route.
func staffFromContext(ctx context.Context) *domain.StaffMember {
	staff, _ := ctx.Value(staffContextKey).(*domain.StaffMember)
	return staff
}

// AuthMiddleware validates the bearer token and attaches the staff
// identity to the request context.
type AuthMiddleware struct {
	tokens security.TokenManager
}

func NewAuthMiddleware(tokens security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), staffContextKey, claims.Staff())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requirePrivilege wraps a handler so only staff holding the privilege
// reach it.
func requirePrivilege(p domain.Privilege, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		staff := staffFromContext(r.Context())
		if staff == nil {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		if !staff.HasPrivilege(p) {
			writeError(w, http.StatusForbidden, "insufficient privileges")
			return
		}
		next(w, r)
	}
}
