package memory

import (
	"context"

	"github.com/newwork/staffhub/internal/apperrors"
	"github.com/newwork/staffhub/internal/core/domain"
	portsrepo "github.com/newwork/staffhub/internal/core/ports/repositories"
)

// FeedbackRepository reads and writes peer feedback entries.
type FeedbackRepository struct {
	store *Store
}

// NewFeedbackRepository creates a feedback repository over the store.
func NewFeedbackRepository(store *Store) *FeedbackRepository {
	return &FeedbackRepository{store: store}
}

var _ portsrepo.FeedbackRepository = (*FeedbackRepository)(nil)

func (r *FeedbackRepository) SaveFeedback(ctx context.Context, f domain.Feedback) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.feedback[f.ID]; ok {
		return apperrors.ErrDuplicate
	}
	r.store.addFeedback(f)
	return nil
}

func (r *FeedbackRepository) FindFeedbackByID(ctx context.Context, feedbackID string) (*domain.Feedback, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	f, ok := r.store.feedback[feedbackID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &f, nil
}

func (r *FeedbackRepository) ListFeedbackForProfile(ctx context.Context, profileID string) ([]domain.Feedback, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []domain.Feedback
	for _, id := range r.store.feedbackOrder {
		if f := r.store.feedback[id]; f.ToUserID == profileID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *FeedbackRepository) ListAllFeedback(ctx context.Context) ([]domain.Feedback, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.Feedback, 0, len(r.store.feedbackOrder))
	for _, id := range r.store.feedbackOrder {
		out = append(out, r.store.feedback[id])
	}
	return out, nil
}

func (r *FeedbackRepository) UpdateFeedback(ctx context.Context, f domain.Feedback) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.feedback[f.ID]; !ok {
		return apperrors.ErrNotFound
	}
	r.store.feedback[f.ID] = f
	return nil
}

func (r *FeedbackRepository) DeleteFeedback(ctx context.Context, feedbackID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.feedback[feedbackID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.store.feedback, feedbackID)
	for i, id := range r.store.feedbackOrder {
		if id == feedbackID {
			r.store.feedbackOrder = append(r.store.feedbackOrder[:i], r.store.feedbackOrder[i+1:]...)
			break
		}
	}
	return nil
}
