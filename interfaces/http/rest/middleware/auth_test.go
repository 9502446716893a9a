package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gogarvis-backend/pkg/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testSecret = "test-secret"
	testIssuer = "gogarvis-backend"
)

func signToken(t *testing.T, secret, issuer string, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-1",
		Issuer:    issuer,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newProtectedHandler(t *testing.T) http.Handler {
	t.Helper()
	validator, err := auth.NewJWTValidator(auth.JWTConfig{SecretKey: testSecret, Issuer: testIssuer})
	require.NoError(t, err)

	var next http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := auth.GetUserFromContext(r.Context())
		require.NoError(t, err)
		assert.Equal(t, "user-1", user.UserID)
		w.WriteHeader(http.StatusOK)
	})
	return RequireAuth(validator, zap.NewNop())(next)
}

func TestRequireAuth(t *testing.T) {
	handler := newProtectedHandler(t)

	do := func(authorization string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/audit-log", nil)
		if authorization != "" {
			req.Header.Set("Authorization", authorization)
		}
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	t.Run("valid bearer token passes", func(t *testing.T) {
		token := signToken(t, testSecret, testIssuer, time.Now().Add(time.Hour))
		assert.Equal(t, http.StatusOK, do("Bearer "+token).Code)
	})

	t.Run("missing header is 401", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do("").Code)
	})

	t.Run("garbage token is 401", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do("Bearer not-a-token").Code)
	})

	t.Run("wrong signing key is 401", func(t *testing.T) {
		token := signToken(t, "other-secret", testIssuer, time.Now().Add(time.Hour))
		assert.Equal(t, http.StatusUnauthorized, do("Bearer "+token).Code)
	})

	t.Run("wrong issuer is 401", func(t *testing.T) {
		token := signToken(t, testSecret, "someone-else", time.Now().Add(time.Hour))
		assert.Equal(t, http.StatusUnauthorized, do("Bearer "+token).Code)
	})

	t.Run("expired token is 401", func(t *testing.T) {
		token := signToken(t, testSecret, testIssuer, time.Now().Add(-time.Hour))
		assert.Equal(t, http.StatusUnauthorized, do("Bearer "+token).Code)
	})
}
