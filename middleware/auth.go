package middleware

import (
	"net/http"
	"strings"

	"cantina-api/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by OptionalAuth
const (
	UsernameKey  = "username"
	AccountIDKey = "accountID"
)

// TokenValidator checks a signed token and returns its claims
type TokenValidator interface {
	ValidateToken(token string) (*utils.JWTClaim, error)
}

// OptionalAuth reads a bearer token when one is sent. Requests without an
// Authorization header pass through anonymously; a bad token is rejected.
func OptionalAuth(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		// Extract token from "Bearer <token>"
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token format"})
			c.Abort()
			return
		}

		claims, err := tokens.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(AccountIDKey, claims.AccountID)
		c.Set(UsernameKey, claims.Username)

		c.Next()
	}
}
