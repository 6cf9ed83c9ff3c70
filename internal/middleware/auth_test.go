package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayush/inventory-tracker/internal/auth"
	"github.com/ayush/inventory-tracker/internal/models"
	"github.com/ayush/inventory-tracker/internal/session"
)

func gated(identity *auth.Service, next http.HandlerFunc) http.Handler {
	return RequireLogin(identity)(next)
}

func TestRequireLoginNoCookie(t *testing.T) {
	identity := auth.NewService(session.NewMemoryStore())
	called := false
	h := gated(identity, func(w http.ResponseWriter, r *http.Request) { called = true })

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/form", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.False(t, called)
}

func TestRequireLoginUnknownSession(t *testing.T) {
	identity := auth.NewService(session.NewMemoryStore())
	called := false
	h := gated(identity, func(w http.ResponseWriter, r *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodGet, "/form", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: "stale"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.False(t, called)
}

func TestRequireLoginInjectsUser(t *testing.T) {
	identity := auth.NewService(session.NewMemoryStore())
	user := &models.User{Username: "alice"}
	sid, err := identity.RegisterSession(context.Background(), user)
	require.NoError(t, err)

	var seen *models.User
	h := gated(identity, func(w http.ResponseWriter, r *http.Request) {
		seen = UserFrom(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/form", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: sid})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Same(t, user, seen)
}

func TestUserFromEmptyContext(t *testing.T) {
	assert.Nil(t, UserFrom(context.Background()))
}
