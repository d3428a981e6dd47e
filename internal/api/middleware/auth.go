package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/eventsnow/backend/internal/auth"
	"github.com/eventsnow/backend/internal/domain"
	"github.com/eventsnow/backend/internal/utils"
)

type contextKey string

const claimsKey contextKey = "claims"

// Auth gates a route behind a bearer token. It is authentication only:
// signature and expiry are checked, nothing is read from persistence.
// Handlers that need fresh user data must re-fetch it by the claims'
// user id.
func Auth(tokens *auth.Tokens) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				utils.WriteError(w, http.StatusUnauthorized, "authorization required")
				return
			}

			parts := strings.Split(header, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.WriteError(w, http.StatusUnauthorized, "invalid authorization header")
				return
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					utils.WriteError(w, http.StatusUnauthorized, "token expired")
					return
				}
				utils.WriteError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFrom returns the claims the Auth middleware attached to the
// request context.
func ClaimsFrom(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}
