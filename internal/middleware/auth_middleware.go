package middleware

import (
	"net/http"
	"strings"

	"github.com/azimmemon2002/socialhub/internal/httpapi"
	"github.com/azimmemon2002/socialhub/internal/token"
	"github.com/gin-gonic/gin"
)

// Context keys populated by RequireAuth.
const (
	ContextUsername = "username"
	ContextRoles    = "roles"
)

// RequireAuth verifies the bearer token locally and injects the subject and
// mapped authorization roles into the request context. Role membership is
// taken from the token as issued; there is no lookup against the auth
// service.
func RequireAuth(tokenService token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httpapi.Abort(c, http.StatusUnauthorized, "authorization header is missing")
			return
		}

		// Expect format: "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			httpapi.Abort(c, http.StatusUnauthorized, "invalid token format")
			return
		}

		claims, err := tokenService.Verify(parts[1])
		if err != nil {
			httpapi.Abort(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		c.Set(ContextUsername, claims.Subject)
		c.Set(ContextRoles, claims.GrantedRoles())

		c.Next()
	}
}

// RequireRole gates a route on one of the roles mapped from the token claim.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roles, _ := c.Get(ContextRoles)
		granted, _ := roles.([]string)
		for _, r := range granted {
			if r == role {
				c.Next()
				return
			}
		}
		httpapi.Abort(c, http.StatusForbidden, "insufficient permissions")
	}
}

// Username returns the authenticated subject set by RequireAuth.
func Username(c *gin.Context) string {
	return c.GetString(ContextUsername)
}
