package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/newwork/staffhub/internal/apperrors"
	"github.com/newwork/staffhub/internal/core/domain"
	"github.com/newwork/staffhub/internal/core/policy"
	portsrepo "github.com/newwork/staffhub/internal/core/ports/repositories"
	portssvc "github.com/newwork/staffhub/internal/core/ports/services"
	"github.com/newwork/staffhub/internal/dto"
)

// FeedbackService implements the peer-feedback lifecycle with role-based
// read filtering and best-effort AI enhancement.
type FeedbackService struct {
	BaseService
	feedbackRepo portsrepo.FeedbackRepository
	profileRepo  portsrepo.ProfileRepository
	enhancer     portssvc.TextEnhancer
}

var _ portssvc.FeedbackSvcFacade = (*FeedbackService)(nil)

// NewFeedbackService creates a feedback service. The enhancer may be nil, in
// which case Enhance is a pass-through.
func NewFeedbackService(feedbackRepo portsrepo.FeedbackRepository, profileRepo portsrepo.ProfileRepository, enhancer portssvc.TextEnhancer) *FeedbackService {
	return &FeedbackService{feedbackRepo: feedbackRepo, profileRepo: profileRepo, enhancer: enhancer}
}

// CreateFeedback files feedback under the recipient profile. The recipient
// is always the path profile, regardless of anything the client sends.
func (s *FeedbackService) CreateFeedback(ctx context.Context, author domain.User, profileID string, req dto.CreateFeedbackRequest) (*domain.Feedback, error) {
	if _, err := s.profileRepo.FindProfileByID(ctx, profileID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: recipient profile not found", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load recipient profile: %w", err)
	}

	enhanced := req.EnhancedContent
	if enhanced == "" {
		enhanced = req.Content
	}

	now := s.nowUTC()
	f := domain.Feedback{
		ID:              uuid.NewString(),
		FromUserID:      author.ID,
		FromUserName:    strings.TrimSpace(author.FirstName + " " + author.LastName),
		ToUserID:        profileID,
		Content:         req.Content,
		EnhancedContent: enhanced,
		IsEnhanced:      req.IsEnhanced,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.feedbackRepo.SaveFeedback(ctx, f); err != nil {
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}

	s.LogInfo(ctx, "Feedback created",
		slog.String("feedback_id", f.ID),
		slog.String("from_user_id", author.ID),
		slog.String("to_user_id", profileID))
	return &f, nil
}

// GetFeedbackByID retrieves a single feedback entry.
func (s *FeedbackService) GetFeedbackByID(ctx context.Context, feedbackID string) (*domain.Feedback, error) {
	f, err := s.feedbackRepo.FindFeedbackByID(ctx, feedbackID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: feedback not found", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get feedback: %w", err)
	}
	return f, nil
}

// ListForProfile returns the feedback on a profile visible to the viewer per
// the visibility policy.
func (s *FeedbackService) ListForProfile(ctx context.Context, viewer domain.User, profileID string) ([]domain.Feedback, error) {
	feedback, err := s.feedbackRepo.ListFeedbackForProfile(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list profile feedback: %w", err)
	}
	return policy.VisibleFeedback(viewer, profileID, feedback), nil
}

// ListReceived returns feedback addressed to the viewer. Managers see every
// entry in the organisation.
func (s *FeedbackService) ListReceived(ctx context.Context, viewer domain.User) ([]domain.Feedback, error) {
	if viewer.Role == domain.RoleManager {
		all, err := s.feedbackRepo.ListAllFeedback(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list feedback: %w", err)
		}
		return all, nil
	}
	received, err := s.feedbackRepo.ListFeedbackForProfile(ctx, viewer.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list received feedback: %w", err)
	}
	return received, nil
}

// UpdateFeedback applies a partial merge and refreshes UpdatedAt.
func (s *FeedbackService) UpdateFeedback(ctx context.Context, feedbackID string, req dto.UpdateFeedbackRequest) (*domain.Feedback, error) {
	f, err := s.GetFeedbackByID(ctx, feedbackID)
	if err != nil {
		return nil, err
	}

	if req.Content != nil {
		f.Content = *req.Content
	}
	if req.EnhancedContent != nil {
		f.EnhancedContent = *req.EnhancedContent
	}
	if req.IsEnhanced != nil {
		f.IsEnhanced = *req.IsEnhanced
	}
	f.UpdatedAt = s.nowUTC()

	if err := s.feedbackRepo.UpdateFeedback(ctx, *f); err != nil {
		return nil, fmt.Errorf("failed to update feedback: %w", err)
	}
	return f, nil
}

// DeleteFeedback removes an entry if the viewer is a manager or the original
// author.
func (s *FeedbackService) DeleteFeedback(ctx context.Context, viewer domain.User, feedbackID string) error {
	f, err := s.GetFeedbackByID(ctx, feedbackID)
	if err != nil {
		return err
	}
	if !policy.CanDeleteFeedback(viewer, *f) {
		return apperrors.ErrForbidden
	}
	if err := s.feedbackRepo.DeleteFeedback(ctx, feedbackID); err != nil {
		return fmt.Errorf("failed to delete feedback: %w", err)
	}
	s.LogInfo(ctx, "Feedback deleted", slog.String("feedback_id", feedbackID), slog.String("deleter_id", viewer.ID))
	return nil
}

// Enhance returns the AI rewrite of text, or text unchanged on any upstream
// failure. Enhancement is best-effort and never blocks feedback submission.
func (s *FeedbackService) Enhance(ctx context.Context, text string, employeeName string) string {
	if s.enhancer == nil {
		return text
	}
	enhanced, err := s.enhancer.Enhance(ctx, text, employeeName)
	if err != nil {
		s.LogError(ctx, err, "AI enhancement failed, returning original text")
		return text
	}
	if strings.TrimSpace(enhanced) == "" {
		return text
	}
	return enhanced
}

func (s *FeedbackService) nowUTC() time.Time {
	return time.Now().UTC()
}
