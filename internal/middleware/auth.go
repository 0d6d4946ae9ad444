package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gamevault/internal/security"
)

const claimsContextKey = "access_claims"

// Auth verifies the bearer token and attaches the embedded claims to
// the request. Tokens are self-contained: the middleware never reads
// the user store, so a role change only takes effect once the caller
// obtains a fresh token. That staleness window is intentional.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_token"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := security.ParseToken(tokenStr, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		c.Set(claimsContextKey, *claims)

		c.Next()
	}
}

// ClaimsFromContext returns the verified claims the Auth middleware
// attached to the request.
func ClaimsFromContext(c *gin.Context) (security.Claims, bool) {
	val, exists := c.Get(claimsContextKey)
	if !exists {
		return security.Claims{}, false
	}
	claims, ok := val.(security.Claims)
	return claims, ok
}
