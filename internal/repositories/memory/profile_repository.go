package memory

import (
	"context"

	"github.com/newwork/staffhub/internal/apperrors"
	"github.com/newwork/staffhub/internal/core/domain"
	portsrepo "github.com/newwork/staffhub/internal/core/ports/repositories"
)

// ProfileRepository reads and writes employee profiles.
type ProfileRepository struct {
	store *Store
}

// NewProfileRepository creates a profile repository over the store.
func NewProfileRepository(store *Store) *ProfileRepository {
	return &ProfileRepository{store: store}
}

var _ portsrepo.ProfileRepository = (*ProfileRepository)(nil)

func (r *ProfileRepository) FindProfileByID(ctx context.Context, profileID string) (*domain.EmployeeProfile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.profiles[profileID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := p.Clone()
	return &cp, nil
}

func (r *ProfileRepository) ListProfiles(ctx context.Context) ([]domain.EmployeeProfile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.EmployeeProfile, 0, len(r.store.profileOrder))
	for _, id := range r.store.profileOrder {
		out = append(out, r.store.profiles[id].Clone())
	}
	return out, nil
}

func (r *ProfileRepository) UpdateProfile(ctx context.Context, profile domain.EmployeeProfile) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.profiles[profile.ID]
	if !ok {
		return apperrors.ErrNotFound
	}
	cp := profile.Clone()
	// Absence requests are written through the absence repository only; a
	// profile update based on an earlier read must not clobber requests
	// appended since.
	cp.AbsenceRequests = existing.AbsenceRequests
	r.store.profiles[profile.ID] = &cp
	return nil
}
