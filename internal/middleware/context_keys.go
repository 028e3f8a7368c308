package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/newwork/staffhub/internal/core/domain"
)

// sessionUserKey is the key used to store the authenticated user in the
// request context.
const sessionUserKey = contextKey("sessionUser")

// GetSessionUser retrieves the authenticated user from the Gin request
// context. It returns the user and a boolean indicating if it was found.
func GetSessionUser(c *gin.Context) (domain.User, bool) {
	return SessionUserFromCtx(c.Request.Context())
}

// SessionUserFromCtx retrieves the authenticated user from a standard
// context.
func SessionUserFromCtx(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(sessionUserKey).(domain.User)
	return u, ok
}
