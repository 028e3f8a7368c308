package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/newwork/staffhub/internal/apperrors"
	"github.com/newwork/staffhub/internal/core/domain"
	portsrepo "github.com/newwork/staffhub/internal/core/ports/repositories"
	portssvc "github.com/newwork/staffhub/internal/core/ports/services"
	"github.com/newwork/staffhub/internal/utils"
)

// AuthService implements the session store: login, logout and token
// resolution over a volatile token map with TTL-based expiry.
type AuthService struct {
	BaseService
	userRepo      portsrepo.UserRepository
	sessionRepo   portsrepo.SessionRepository
	sessionTTL    time.Duration
	sweepInterval time.Duration
	now           func() time.Time
}

var _ portssvc.AuthSvcFacade = (*AuthService)(nil)

// NewAuthService creates the session service.
func NewAuthService(userRepo portsrepo.UserRepository, sessionRepo portsrepo.SessionRepository, sessionTTL, sweepInterval time.Duration) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		sessionRepo:   sessionRepo,
		sessionTTL:    sessionTTL,
		sweepInterval: sweepInterval,
		now:           time.Now,
	}
}

// Login authenticates by email and opens a session. The role field is still
// required on the wire and must name a known role, but the session always
// carries the stored user's role; the declared role never grants access.
func (s *AuthService) Login(ctx context.Context, email string, role domain.Role) (*domain.User, string, error) {
	if !role.IsValid() {
		return nil, "", fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, role)
	}

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		s.LogDebug(ctx, "Login rejected: unknown email", slog.String("email", email))
		return nil, "", apperrors.ErrUnauthorized
	}

	sessionUser := *user

	token, err := s.createSession(ctx, sessionUser)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create session: %w", err)
	}

	s.LogInfo(ctx, "Session created", slog.String("user_id", sessionUser.ID), slog.String("role", string(sessionUser.Role)))
	return &sessionUser, token, nil
}

// createSession generates an opaque token from a timestamp plus a secure
// random suffix and stores it with the configured TTL.
func (s *AuthService) createSession(ctx context.Context, user domain.User) (string, error) {
	suffix, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		return "", err
	}
	token := fmt.Sprintf("session_%d_%s", s.now().UnixMilli(), suffix)

	if err := s.sessionRepo.SaveSession(ctx, token, user, s.now().Add(s.sessionTTL)); err != nil {
		return "", err
	}
	return token, nil
}

// SessionUser resolves a token to its user. Expired sessions are treated as
// absent.
func (s *AuthService) SessionUser(ctx context.Context, token string) (*domain.User, error) {
	user, err := s.sessionRepo.FindSession(ctx, token, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// Logout removes the session, reporting whether it existed.
func (s *AuthService) Logout(ctx context.Context, token string) bool {
	existed, err := s.sessionRepo.DeleteSession(ctx, token)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete session")
		return false
	}
	return existed
}

// RunSessionSweeper evicts expired sessions on the configured interval until
// the context is cancelled. Intended to run in its own goroutine.
func (s *AuthService) RunSessionSweeper(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.sessionRepo.DeleteExpired(ctx, s.now())
			if err != nil {
				s.LogError(ctx, err, "Session sweep failed")
				continue
			}
			if n > 0 {
				s.LogDebug(ctx, "Swept expired sessions", slog.Int("count", n))
			}
		}
	}
}
