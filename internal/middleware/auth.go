package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/moneybridge/backend/internal/auth"
	"github.com/moneybridge/backend/internal/http/respond"
	"github.com/moneybridge/backend/internal/models"
	"github.com/moneybridge/backend/internal/storage"
)

// unauthorizedMessage is returned for every authentication failure: missing
// header, bad signature, expired token, or unknown subject. The boundary
// never reveals which half failed.
const unauthorizedMessage = "could not validate credentials"

type contextKey struct{}

var userKey contextKey

// Auth resolves bearer tokens to live user records for protected routes.
type Auth struct {
	tokens *auth.TokenManager
	users  storage.UserStore
}

// NewAuth constructs the gate.
func NewAuth(tokens *auth.TokenManager, users storage.UserStore) *Auth {
	return &Auth{tokens: tokens, users: users}
}

// Require verifies the Authorization header, loads the subject's user
// document, and stashes it in the request context.
func (a *Auth) Require(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
			respond.Error(w, http.StatusUnauthorized, unauthorizedMessage)
			return
		}

		email, err := a.tokens.Verify(token)
		if err != nil {
			respond.Error(w, http.StatusUnauthorized, unauthorizedMessage)
			return
		}

		user, err := a.users.FindByEmail(r.Context(), email)
		if err != nil {
			respond.Error(w, http.StatusUnauthorized, unauthorizedMessage)
			return
		}

		next(w, r.WithContext(context.WithValue(r.Context(), userKey, user)))
	}
}

// RequireAdmin is Require plus an admin-flag check.
func (a *Auth) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return a.Require(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFrom(r.Context())
		if !ok || !user.IsAdmin {
			respond.Error(w, http.StatusForbidden, "admin access required")
			return
		}
		next(w, r)
	})
}

// UserFrom extracts the authenticated user placed by Require.
func UserFrom(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(userKey).(models.User)
	return user, ok
}
