package memory

import (
	"context"

	"github.com/newwork/staffhub/internal/apperrors"
	"github.com/newwork/staffhub/internal/core/domain"
	portsrepo "github.com/newwork/staffhub/internal/core/ports/repositories"
)

// UserRepository reads the seeded user directory.
type UserRepository struct {
	store *Store
}

// NewUserRepository creates a user repository over the store.
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

var _ portsrepo.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	u, ok := r.store.users[userID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, id := range r.store.userOrder {
		if u := r.store.users[id]; u.Email == email {
			return &u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}
