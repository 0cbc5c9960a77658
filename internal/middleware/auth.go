package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medibook/medibook-api/internal/config"
	"github.com/medibook/medibook-api/internal/utils"
)

// Auth validates the bearer token and sets userID/userRole into the
// request context. In bypass mode it injects a fixed admin principal
// instead; the mode is injected through startup configuration so it
// cannot be flipped at runtime.
func Auth(mode string) gin.HandlerFunc {
	if mode == config.AuthModeBypass {
		return func(c *gin.Context) {
			c.Set("userID", primitive.NilObjectID.Hex())
			c.Set("userRole", "admin")
			c.Next()
		}
	}

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateJWT(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userRole", claims.Role)

		c.Next()
	}
}

// RequireRole rejects requests whose authenticated role is not in the
// allowed set.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, _ := c.Get("userRole")
		for _, role := range roles {
			if userRole == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Permission denied."})
	}
}
