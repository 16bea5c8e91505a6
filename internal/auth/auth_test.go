package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"staffing-backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMiddleware(secret string) *Middleware {
	return NewMiddleware(&config.Config{JWTSecret: secret})
}

func TestTokenRoundTrip(t *testing.T) {
	m := newTestMiddleware("test-secret")

	token, err := m.GenerateToken("scheduler@example.com", "Scheduler", time.Hour)
	require.NoError(t, err)

	claims, err := m.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "scheduler@example.com", claims.Email)
	assert.Equal(t, "Scheduler", claims.Name)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	issuer := newTestMiddleware("secret-a")
	verifier := newTestMiddleware("secret-b")

	token, err := issuer.GenerateToken("scheduler@example.com", "", time.Hour)
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	m := newTestMiddleware("test-secret")

	token, err := m.GenerateToken("scheduler@example.com", "", -time.Minute)
	require.NoError(t, err)

	_, err = m.ParseToken(token)
	assert.Error(t, err)
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := newTestMiddleware("test-secret")

	router := gin.New()
	router.GET("/protected", m.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString("user_email")})
	})

	t.Run("missing token", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token abc")
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := m.GenerateToken("scheduler@example.com", "", time.Hour)
		require.NoError(t, err)

		recorder := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(recorder, req)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "scheduler@example.com")
	})
}
