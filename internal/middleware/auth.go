package middleware

import (
	"net/http"
	"strings"

	jwtsvc "portfolio/internal/pkg/jwt"
	"portfolio/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// TokenVerifier is implemented by the JWT service and, in local mode,
// by the localstore token authority.
type TokenVerifier interface {
	ValidateToken(tokenStr string) (*jwtsvc.Claims, error)
}

// BearerAuth guards the admin group. Auth failures short-circuit before
// any store access; the three failure classes get distinct codes so a
// client can tell a missing credential from a rejected one.
func BearerAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "AUTH_HEADER_MISSING", "Authorization header is required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Error(c, http.StatusUnauthorized, "INVALID_AUTH_FORMAT", "Authorization header must be 'Bearer <token>'")
			c.Abort()
			return
		}

		claims, err := verifier.ValidateToken(strings.TrimSpace(parts[1]))
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("admin_id", claims.AdminID)
		c.Set("username", claims.Username)
		c.Next()
	}
}
