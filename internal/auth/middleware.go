package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const identityKey = "auth.identity"

// RequireAuth validates the bearer token and stores the claims on the
// request context
func RequireAuth(tokens *TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token is not valid"})
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token is not valid"})
			return
		}

		c.Set(identityKey, claims)
		c.Next()
	}
}

// RequirePermission gates a route on a capability from the role map
func RequirePermission(p Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := Identity(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}
		if !HasPermission(claims.Role, p) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}

// Identity returns the authenticated claims, or nil outside an
// authenticated request
func Identity(c *gin.Context) *Claims {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	claims, ok := v.(*Claims)
	if !ok {
		return nil
	}
	return claims
}
