package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bloglist-app/backend/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticateMiddleware(t *testing.T) {
	issuer := auth.NewTokenIssuer([]byte("secret"), time.Hour)
	middleware := newAuthMiddleware(issuer)

	var seenPrincipalID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, err := ctxGetPrincipal(r.Context())
		require.NoError(t, err)
		seenPrincipalID = principal.ID
		w.WriteHeader(http.StatusOK)
	})
	handler := middleware.authenticate(next)

	t.Run("missing header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("POST", "/api/blogs", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non-bearer header", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/blogs", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/blogs", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token resolves the principal", func(t *testing.T) {
		token, err := issuer.Issue("user-123", "mluukkai")
		require.NoError(t, err)

		req := httptest.NewRequest("POST", "/api/blogs", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user-123", seenPrincipalID)
	})
}
