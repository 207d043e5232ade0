package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_MintAndValidate(t *testing.T) {
	issuer := NewTokenIssuer("signing-key", time.Hour)
	now := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	token, err := issuer.Mint("ops", now)
	require.NoError(t, err)

	claims, err := issuer.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.Actor)
	assert.NotEmpty(t, claims.ID)
}

func TestTokenIssuer_RejectsExpiredToken(t *testing.T) {
	issuer := NewTokenIssuer("signing-key", time.Minute)

	token, err := issuer.Mint("ops", time.Now().Add(-time.Hour))
	require.NoError(t, err)

	_, err = issuer.Validate(token)
	assert.Error(t, err)
}

func TestTokenIssuer_RejectsForeignKey(t *testing.T) {
	token, err := NewTokenIssuer("key-one", time.Hour).Mint("ops", time.Now())
	require.NoError(t, err)

	_, err = NewTokenIssuer("key-two", time.Hour).Validate(token)
	assert.Error(t, err)
}

func TestRequireAdmin(t *testing.T) {
	issuer := NewTokenIssuer("signing-key", time.Hour)
	logger := slog.New(slog.DiscardHandler)

	var seenActor string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenActor = GetAdminActor(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	guarded := RequireAdmin(issuer, logger)(next)

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		guarded.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/issuers", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/issuers", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		w := httptest.NewRecorder()
		guarded.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token passes the actor through", func(t *testing.T) {
		token, err := issuer.Mint("ops", time.Now())
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/admin/issuers", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		guarded.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "ops", seenActor)
	})
}
