package middleware

import (
	"net/http"

	"lms-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// RequireRoles rejects authenticated requests whose role claim is not in the
// route's allow-list. This is deliberately distinct from the middleware's 401
// (bad token) and from per-handler ownership checks.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}

		for _, role := range roles {
			if principal.Role == role {
				c.Next()
				return
			}
		}

		utils.ErrorResponse(c, http.StatusForbidden, "Insufficient role for this action")
		c.Abort()
	}
}
