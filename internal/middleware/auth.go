package middleware

import (
	"context"
	"net/http"

	"github.com/ayush/inventory-tracker/internal/auth"
	"github.com/ayush/inventory-tracker/internal/models"
)

const userKey = "user"

// RequireLogin redirects to /login unless the request carries a resolvable
// session cookie. The resolved user is injected into the request context.
func RequireLogin(identity *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(auth.SessionCookie)
			if err != nil {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}

			user, err := identity.Resolve(r.Context(), cookie.Value)
			if err != nil || user == nil {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// WithUser returns a context carrying the resolved user.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFrom returns the user injected by RequireLogin, or nil.
func UserFrom(ctx context.Context) *models.User {
	u, _ := ctx.Value(userKey).(*models.User)
	return u
}
