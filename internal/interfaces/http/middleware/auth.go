package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	domainerrors "swea-cms.backend/internal/domain/errors"
	"swea-cms.backend/internal/interfaces/http/response"
	"swea-cms.backend/pkg/jwt"
)

// Context keys set by AuthMiddleware.
const (
	UserIDKey    = "user_id"
	UserEmailKey = "user_email"
	UserRoleKey  = "user_role"
)

// AuthMiddleware validates the bearer token and stores the caller's identity
// on the context.
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, domainerrors.Unauthorized("missing authorization header"))
			c.Abort()
			return
		}

		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			response.Error(c, domainerrors.Unauthorized("authorization header must be a bearer token"))
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			response.Error(c, domainerrors.Unauthorized("invalid or expired token"))
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UserEmailKey, claims.Email)
		c.Set(UserRoleKey, claims.Role)
		c.Next()
	}
}

// RequireRole rejects callers whose token role is not in the allowed set.
// Must run after AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		role := c.GetString(UserRoleKey)
		if !allowed[role] {
			response.Error(c, domainerrors.Forbidden("insufficient permissions"))
			c.Abort()
			return
		}
		c.Next()
	}
}
