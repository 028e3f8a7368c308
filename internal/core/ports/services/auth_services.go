package services

import (
	"context"

	"github.com/newwork/staffhub/internal/core/domain"
)

// AuthSvcFacade exposes login, logout and session resolution over the
// volatile session store.
type AuthSvcFacade interface {
	// Login authenticates by email and returns the stored user with an
	// opaque session token. The role argument must name a known role but the
	// session always carries the stored user's role.
	Login(ctx context.Context, email string, role domain.Role) (*domain.User, string, error)

	// Logout removes the session, reporting whether it existed.
	Logout(ctx context.Context, token string) bool

	// SessionUser resolves a token to its user. Expired or unknown tokens
	// yield apperrors.ErrUnauthorized.
	SessionUser(ctx context.Context, token string) (*domain.User, error)
}
