package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/newwork/staffhub/internal/apperrors"
	"github.com/newwork/staffhub/internal/core/domain"
	"github.com/newwork/staffhub/internal/core/policy"
	portsrepo "github.com/newwork/staffhub/internal/core/ports/repositories"
	portssvc "github.com/newwork/staffhub/internal/core/ports/services"
	"github.com/newwork/staffhub/internal/dto"
)

// ProfileService implements profile lookup and editing with the visibility
// policy applied on every read.
type ProfileService struct {
	BaseService
	profileRepo  portsrepo.ProfileRepository
	feedbackRepo portsrepo.FeedbackRepository
}

var _ portssvc.ProfileSvcFacade = (*ProfileService)(nil)

// NewProfileService creates a profile service.
func NewProfileService(profileRepo portsrepo.ProfileRepository, feedbackRepo portsrepo.FeedbackRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo, feedbackRepo: feedbackRepo}
}

// GetProfile returns the viewer's policy-filtered view of a profile.
func (s *ProfileService) GetProfile(ctx context.Context, viewer domain.User, profileID string) (*policy.ProfileView, error) {
	if !policy.CanViewProfile(viewer, profileID) {
		return nil, apperrors.ErrForbidden
	}

	profile, err := s.profileRepo.FindProfileByID(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	feedback, err := s.feedbackRepo.ListFeedbackForProfile(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list profile feedback: %w", err)
	}

	view := policy.ViewProfile(viewer, *profile, feedback)
	return &view, nil
}

// UpdateProfile applies a partial update on behalf of the viewer. Managers
// may update any profile; owners may update their own except for
// compensation fields.
func (s *ProfileService) UpdateProfile(ctx context.Context, viewer domain.User, profileID string, req dto.UpdateProfileRequest) (*policy.ProfileView, error) {
	if !policy.CanEditProfile(viewer, profileID) {
		s.LogDebug(ctx, "Profile update forbidden", slog.String("profile_id", profileID))
		return nil, apperrors.ErrForbidden
	}
	if (req.Salary != nil || req.PerformanceRating != nil) && !policy.CanEditCompensation(viewer) {
		return nil, fmt.Errorf("%w: compensation fields are manager-only", apperrors.ErrForbidden)
	}

	profile, err := s.profileRepo.FindProfileByID(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile for update: %w", err)
	}

	applyProfilePatch(profile, req)

	if err := s.profileRepo.UpdateProfile(ctx, *profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	s.LogInfo(ctx, "Profile updated", slog.String("profile_id", profileID), slog.String("updater_id", viewer.ID))
	return s.GetProfile(ctx, viewer, profileID)
}

func applyProfilePatch(p *domain.EmployeeProfile, req dto.UpdateProfileRequest) {
	if req.FirstName != nil {
		p.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		p.LastName = *req.LastName
	}
	if req.Position != nil {
		p.Position = *req.Position
	}
	if req.Department != nil {
		p.Department = *req.Department
	}
	if req.ProfileImage != nil {
		p.ProfileImage = *req.ProfileImage
	}
	if req.Bio != nil {
		p.Bio = *req.Bio
	}
	if req.Skills != nil {
		p.Skills = req.Skills
	}
	if req.Email != nil {
		p.Email = *req.Email
	}
	if req.Phone != nil {
		p.Phone = *req.Phone
	}
	if req.Salary != nil {
		p.Salary = *req.Salary
	}
	if req.Address != nil {
		p.Address = *req.Address
	}
	if req.EmergencyContact != nil {
		p.EmergencyContact = *req.EmergencyContact
	}
	if req.PerformanceRating != nil {
		p.PerformanceRating = *req.PerformanceRating
	}
	if req.Certifications != nil {
		p.Certifications = req.Certifications
	}
	if req.WorkHistory != nil {
		p.WorkHistory = req.WorkHistory
	}
}

// ListProfiles returns every profile for the manager list view.
func (s *ProfileService) ListProfiles(ctx context.Context) ([]domain.EmployeeProfile, error) {
	profiles, err := s.profileRepo.ListProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

// BrowseProfiles returns every profile for the browse page in seed order.
// The handler reduces each record to its public card.
func (s *ProfileService) BrowseProfiles(ctx context.Context) ([]domain.EmployeeProfile, error) {
	return s.ListProfiles(ctx)
}

// ListDepartments returns the sorted set of department names.
func (s *ProfileService) ListDepartments(ctx context.Context) ([]string, error) {
	profiles, err := s.profileRepo.ListProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	seen := make(map[string]bool, len(profiles))
	var departments []string
	for _, p := range profiles {
		if p.Department != "" && !seen[p.Department] {
			seen[p.Department] = true
			departments = append(departments, p.Department)
		}
	}
	sort.Strings(departments)
	return departments, nil
}
