package middlewares

import (
	"log"
	"net/http"
	"strings"

	authUtils "maduraiclean-be/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and exposes the embedded identity
// to downstream handlers. A missing token is 401, an invalid or expired one
// is 403; role and ward are trusted as-is for the token's lifetime.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No authorization token provided"})
			c.Abort()
			return
		}

		// Extracting token from "Bearer <token>" format
		tokenString := authHeader
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = authHeader[7:]
		}

		claims, err := authUtils.ParseToken(tokenString)
		if err != nil {
			log.Printf("Token validation failed: %v", err)
			c.JSON(http.StatusForbidden, gin.H{"error": "Invalid authorization token"})
			c.Abort()
			return
		}

		if claims.UserID == "" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Invalid token claims"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_role", claims.Role)
		c.Set("user_ward_id", claims.WardID)

		c.Next()
	}
}
