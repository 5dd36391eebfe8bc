package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole rejects the request with 403 unless the authenticated caller's
// role is one of the allowed roles. Must run after AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		roleVal, _ := c.Get("user_role")
		role, ok := roleVal.(string)
		if !ok || !allowed[role] {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient role for this action"})
			c.Abort()
			return
		}
		c.Next()
	}
}
