package memory

import (
	"context"

	"github.com/newwork/staffhub/internal/apperrors"
	"github.com/newwork/staffhub/internal/core/domain"
	portsrepo "github.com/newwork/staffhub/internal/core/ports/repositories"
)

// AbsenceRepository reads and writes absence requests, which live on their
// owning employee profile.
type AbsenceRepository struct {
	store *Store
}

// NewAbsenceRepository creates an absence repository over the store.
func NewAbsenceRepository(store *Store) *AbsenceRepository {
	return &AbsenceRepository{store: store}
}

var _ portsrepo.AbsenceRepository = (*AbsenceRepository)(nil)

func (r *AbsenceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]domain.AbsenceRequest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.profiles[employeeID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return append([]domain.AbsenceRequest(nil), p.AbsenceRequests...), nil
}

func (r *AbsenceRepository) ListAll(ctx context.Context) ([]domain.AbsenceRequest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []domain.AbsenceRequest
	for _, id := range r.store.profileOrder {
		out = append(out, r.store.profiles[id].AbsenceRequests...)
	}
	return out, nil
}

func (r *AbsenceRepository) AppendRequest(ctx context.Context, employeeID string, req domain.AbsenceRequest) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.profiles[employeeID]
	if !ok {
		return apperrors.ErrNotFound
	}
	p.AbsenceRequests = append(p.AbsenceRequests, req)
	return nil
}

func (r *AbsenceRepository) FindRequestByID(ctx context.Context, requestID string) (*domain.AbsenceRequest, string, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, id := range r.store.profileOrder {
		p := r.store.profiles[id]
		for _, req := range p.AbsenceRequests {
			if req.ID == requestID {
				cp := req
				return &cp, p.ID, nil
			}
		}
	}
	return nil, "", apperrors.ErrNotFound
}

func (r *AbsenceRepository) ReplaceRequest(ctx context.Context, employeeID string, req domain.AbsenceRequest) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.profiles[employeeID]
	if !ok {
		return apperrors.ErrNotFound
	}
	for i := range p.AbsenceRequests {
		if p.AbsenceRequests[i].ID == req.ID {
			p.AbsenceRequests[i] = req
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (r *AbsenceRepository) RemoveRequest(ctx context.Context, employeeID string, requestID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.profiles[employeeID]
	if !ok {
		return apperrors.ErrNotFound
	}
	for i := range p.AbsenceRequests {
		if p.AbsenceRequests[i].ID == requestID {
			p.AbsenceRequests = append(p.AbsenceRequests[:i], p.AbsenceRequests[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}
