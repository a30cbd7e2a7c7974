package middleware

import (
	"github.com/gin-gonic/gin"

	"watchitup-backend/internal/shared/response"
)

// RoleAdmin is the JWT role claim the admin surface requires.
const RoleAdmin = "admin"

// AdminMiddleware rejects requests whose role claim is not admin. It
// runs after AuthMiddleware, which extracts the role from the token.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("role")
		if r, ok := role.(string); !ok || r != RoleAdmin {
			response.Forbidden(c, "Admin role required")
			c.Abort()
			return
		}

		c.Next()
	}
}
