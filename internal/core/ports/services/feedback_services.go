package services

import (
	"context"

	"github.com/newwork/staffhub/internal/core/domain"
	"github.com/newwork/staffhub/internal/dto"
)

// TextEnhancer rewrites feedback text via an external model. Implementations
// may fail; the feedback service converts every failure into a pass-through.
type TextEnhancer interface {
	Enhance(ctx context.Context, text string, employeeName string) (string, error)
}

// FeedbackSvcFacade exposes the peer-feedback lifecycle.
type FeedbackSvcFacade interface {
	// CreateFeedback files feedback under the recipient profile on behalf of
	// the authenticated author.
	CreateFeedback(ctx context.Context, author domain.User, profileID string, req dto.CreateFeedbackRequest) (*domain.Feedback, error)

	// GetFeedbackByID retrieves a single feedback entry.
	GetFeedbackByID(ctx context.Context, feedbackID string) (*domain.Feedback, error)

	// ListForProfile returns the feedback on a profile visible to the viewer.
	ListForProfile(ctx context.Context, viewer domain.User, profileID string) ([]domain.Feedback, error)

	// ListReceived returns feedback addressed to the viewer; managers see
	// every entry in the organisation.
	ListReceived(ctx context.Context, viewer domain.User) ([]domain.Feedback, error)

	// UpdateFeedback applies a partial update and refreshes UpdatedAt.
	UpdateFeedback(ctx context.Context, feedbackID string, req dto.UpdateFeedbackRequest) (*domain.Feedback, error)

	// DeleteFeedback removes an entry if the viewer is a manager or the
	// original author.
	DeleteFeedback(ctx context.Context, viewer domain.User, feedbackID string) error

	// Enhance returns the AI rewrite of text, or text unchanged on any
	// upstream failure. It never returns an error.
	Enhance(ctx context.Context, text string, employeeName string) string
}
