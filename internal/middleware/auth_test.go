package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"gamevault/internal/models"
	"gamevault/internal/security"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func authEngine() *gin.Engine {
	engine := gin.New()
	engine.GET("/protected", Auth(testSecret), func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no claims"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID, "role": claims.Role})
	})
	return engine
}

func issueTestToken(t *testing.T, role models.Role, ttl time.Duration) string {
	t.Helper()
	tok, err := security.IssueToken(testSecret, models.User{
		ID:       "user-1",
		Email:    "ada@example.com",
		Username: "ada",
		Role:     role,
	}, ttl)
	require.NoError(t, err)
	return tok
}

func doRequest(engine *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestAuth_MissingToken(t *testing.T) {
	engine := authEngine()

	rec := doRequest(engine, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"error":"missing_token"}`, rec.Body.String())

	// Non-bearer schemes count as missing.
	rec = doRequest(engine, "Basic YWRhOnNlY3JldA==")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"error":"missing_token"}`, rec.Body.String())
}

func TestAuth_InvalidToken(t *testing.T) {
	engine := authEngine()

	rec := doRequest(engine, "Bearer not.a.jwt")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"error":"invalid_token"}`, rec.Body.String())
}

func TestAuth_ExpiredToken(t *testing.T) {
	engine := authEngine()
	tok := issueTestToken(t, models.RoleUser, -time.Minute)

	rec := doRequest(engine, "Bearer "+tok)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"error":"invalid_token"}`, rec.Body.String())
}

func TestAuth_ValidToken(t *testing.T) {
	engine := authEngine()
	tok := issueTestToken(t, models.RoleAdmin, time.Hour)

	rec := doRequest(engine, "Bearer "+tok)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"user_id":"user-1","role":"ADMIN"}`, rec.Body.String())
}

func TestAuth_WrongSecret(t *testing.T) {
	engine := authEngine()
	tok, err := security.IssueToken("other-secret", models.User{ID: "user-1", Role: models.RoleUser}, time.Hour)
	require.NoError(t, err)

	rec := doRequest(engine, "Bearer "+tok)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"error":"invalid_token"}`, rec.Body.String())
}
