package auth_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendortrack/internal/auth"
	"vendortrack/internal/tracker/models"
	dErrors "vendortrack/pkg/domainerrors"
	"vendortrack/pkg/requestcontext"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

var testUser = models.User{
	ID:    "u1",
	Email: "admin@acme.com",
	Name:  "Admin User",
	Role:  models.RoleAdmin,
}

func TestIssueAndVerify(t *testing.T) {
	svc := auth.NewJWTService("test-key", time.Hour)

	token, err := svc.Issue(testUser)
	require.NoError(t, err)

	actor, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", actor.UserID)
	assert.Equal(t, "admin@acme.com", actor.Email)
	assert.Equal(t, "Admin User", actor.Name)
	assert.Equal(t, "admin", actor.Role)
}

func TestVerifyExpiredToken(t *testing.T) {
	svc := auth.NewJWTService("test-key", -time.Minute)

	token, err := svc.Issue(testUser)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func TestVerifyWrongKey(t *testing.T) {
	issuer := auth.NewJWTService("key-a", time.Hour)
	verifier := auth.NewJWTService("key-b", time.Hour)

	token, err := issuer.Issue(testUser)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func TestRequireAuth(t *testing.T) {
	svc := auth.NewJWTService("test-key", time.Hour)
	var seen requestcontext.Actor
	handler := auth.RequireAuth(svc, testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestcontext.ActorFrom(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("missing header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/stats", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := svc.Issue(testUser)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/stats", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "u1", seen.UserID)
	})
}
