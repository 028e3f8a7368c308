package memory

import (
	"context"
	"time"

	"github.com/newwork/staffhub/internal/core/domain"
	portsrepo "github.com/newwork/staffhub/internal/core/ports/repositories"
)

// SessionRepository maps opaque tokens to authenticated identities.
type SessionRepository struct {
	store *Store
}

// NewSessionRepository creates a session repository over the store.
func NewSessionRepository(store *Store) *SessionRepository {
	return &SessionRepository{store: store}
}

var _ portsrepo.SessionRepository = (*SessionRepository)(nil)

func (r *SessionRepository) SaveSession(ctx context.Context, token string, user domain.User, expiresAt time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.sessions[token] = session{user: user, expiresAt: expiresAt}
	return nil
}

func (r *SessionRepository) FindSession(ctx context.Context, token string, now time.Time) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	s, ok := r.store.sessions[token]
	if !ok || now.After(s.expiresAt) {
		return nil, nil
	}
	u := s.user
	return &u, nil
}

func (r *SessionRepository) DeleteSession(ctx context.Context, token string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	_, ok := r.store.sessions[token]
	delete(r.store.sessions, token)
	return ok, nil
}

func (r *SessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	n := 0
	for token, s := range r.store.sessions {
		if now.After(s.expiresAt) {
			delete(r.store.sessions, token)
			n++
		}
	}
	return n, nil
}
