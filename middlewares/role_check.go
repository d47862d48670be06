package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/i-gichachi/kuhama-app/utils"
)

// RequireRole gates a route group on the role resolved by AuthMiddleware.
// Customer routes and admin routes each get exactly one of these; no
// handler repeats its own role check.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("role")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
			c.Abort()
			return
		}

		if userRole != role {
			utils.RespondError(c, http.StatusForbidden, errors.New("access denied"))
			c.Abort()
			return
		}

		c.Next()
	}
}
