package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/jvaler-dev/sga-console-api/internal/models"
	appErrors "github.com/jvaler-dev/sga-console-api/pkg/errors"
	"github.com/jvaler-dev/sga-console-api/pkg/response"
)

// RequireRoles lets the request through only when the authenticated role is
// among the allowed ones.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	allowed := make(map[models.UserRole]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		claimsValue, exists := c.Get(ContextUserKey)
		if !exists {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		claims := claimsValue.(*models.JWTClaims)

		if _, ok := allowed[claims.Role]; ok {
			c.Next()
			return
		}

		response.Error(c, appErrors.ErrForbidden)
		c.Abort()
	}
}
