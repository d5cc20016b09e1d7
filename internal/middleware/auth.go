package middleware

import (
	"net/http"
	"strings"

	"lms-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const principalKey = "principal"

// Principal is the authenticated identity derived from the bearer token,
// threaded explicitly from the middleware into handlers and services.
type Principal struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

// AuthMiddleware validates the JWT bearer token and stores the resulting
// Principal in the request context. Missing, malformed, expired or otherwise
// invalid tokens are rejected uniformly before any handler runs.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid authorization format. Use: Bearer <token>")
			c.Abort()
			return
		}

		claims, err := utils.ValidateAccessToken(parts[1])
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(principalKey, Principal{
			UserID: userID,
			Email:  claims.Email,
			Role:   claims.Role,
		})

		c.Next()
	}
}

// GetPrincipal returns the Principal set by AuthMiddleware.
func GetPrincipal(c *gin.Context) (Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}
