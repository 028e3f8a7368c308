package services

import (
	"context"

	"github.com/newwork/staffhub/internal/core/domain"
	"github.com/newwork/staffhub/internal/core/policy"
	"github.com/newwork/staffhub/internal/dto"
)

// ProfileReaderSvc defines read operations over employee profiles.
type ProfileReaderSvc interface {
	// GetProfile returns the viewer's policy-filtered view of a profile.
	GetProfile(ctx context.Context, viewer domain.User, profileID string) (*policy.ProfileView, error)

	// ListProfiles returns every profile for the manager list view.
	ListProfiles(ctx context.Context) ([]domain.EmployeeProfile, error)

	// BrowseProfiles returns every profile for the browse page, in seed order.
	BrowseProfiles(ctx context.Context) ([]domain.EmployeeProfile, error)

	// ListDepartments returns the sorted set of department names.
	ListDepartments(ctx context.Context) ([]string, error)
}

// ProfileWriterSvc defines write operations over employee profiles.
type ProfileWriterSvc interface {
	// UpdateProfile applies a partial update on behalf of the viewer and
	// returns the viewer's refreshed view.
	UpdateProfile(ctx context.Context, viewer domain.User, profileID string, req dto.UpdateProfileRequest) (*policy.ProfileView, error)
}

// ProfileSvcFacade combines all profile-related service interfaces.
type ProfileSvcFacade interface {
	ProfileReaderSvc
	ProfileWriterSvc
}
