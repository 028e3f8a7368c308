package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/newwork/staffhub/internal/core/domain"
	portssvc "github.com/newwork/staffhub/internal/core/ports/services"
)

// SessionAuthMiddleware creates a Gin middleware handler that resolves the
// bearer session token to its user and stores the user in the request
// context. Requests without a live session are rejected with 401.
func SessionAuthMiddleware(authSvc portssvc.AuthSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		token, ok := BearerToken(c)
		if !ok {
			logger.Warn("Authorization header missing or malformed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authorization header format must be Bearer {token}"})
			return
		}

		user, err := authSvc.SessionUser(c.Request.Context(), token)
		if err != nil || user == nil {
			logger.Warn("Invalid or expired session token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid or expired session"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), sessionUserKey, *user)

		enrichedLogger := logger.With(slog.String("user_id", user.ID), slog.String("role", string(user.Role)))
		ctx = context.WithValue(ctx, loggerCtxKey, enrichedLogger)

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireRoles creates a middleware that rejects authenticated users whose
// session role is not in the allowed set. It must run after
// SessionAuthMiddleware.
func RequireRoles(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetSessionUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authentication required"})
			return
		}
		for _, r := range roles {
			if user.Role == r {
				c.Next()
				return
			}
		}
		GetLoggerFromCtx(c.Request.Context()).Warn("Insufficient role for route",
			slog.String("required", rolesString(roles)))
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "Insufficient permissions"})
	}
}

// BearerToken extracts the bearer token from the Authorization header.
func BearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func rolesString(roles []domain.Role) string {
	parts := make([]string, len(roles))
	for i, r := range roles {
		parts[i] = string(r)
	}
	return strings.Join(parts, ",")
}
