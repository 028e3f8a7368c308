package repositories

import (
	"context"
	"time"

	"github.com/newwork/staffhub/internal/core/domain"
)

// UserRepository defines read operations over the seeded user directory.
type UserRepository interface {
	// FindUserByID retrieves a user by their unique identifier.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email address.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// ProfileRepository defines operations over employee profiles.
type ProfileRepository interface {
	// FindProfileByID retrieves a profile by its unique identifier.
	FindProfileByID(ctx context.Context, profileID string) (*domain.EmployeeProfile, error)

	// ListProfiles retrieves every profile in seed order.
	ListProfiles(ctx context.Context) ([]domain.EmployeeProfile, error)

	// UpdateProfile replaces the stored profile record. The stored absence
	// requests are kept as-is; AbsenceRepository owns that slice.
	UpdateProfile(ctx context.Context, profile domain.EmployeeProfile) error
}

// AbsenceRepository defines operations over absence requests, which are owned
// by employee profiles. Each operation is atomic with respect to the store.
type AbsenceRepository interface {
	// ListByEmployee returns an employee's requests in insertion order.
	ListByEmployee(ctx context.Context, employeeID string) ([]domain.AbsenceRequest, error)

	// ListAll flattens every profile's requests in profile seed order.
	ListAll(ctx context.Context) ([]domain.AbsenceRequest, error)

	// AppendRequest adds a request to the employee's profile.
	AppendRequest(ctx context.Context, employeeID string, req domain.AbsenceRequest) error

	// FindRequestByID locates a request across all profiles and returns it
	// together with the owning employee's ID.
	FindRequestByID(ctx context.Context, requestID string) (*domain.AbsenceRequest, string, error)

	// ReplaceRequest swaps a request in place on the owning profile.
	ReplaceRequest(ctx context.Context, employeeID string, req domain.AbsenceRequest) error

	// RemoveRequest deletes a request from the owning profile.
	RemoveRequest(ctx context.Context, employeeID string, requestID string) error
}

// FeedbackRepository defines operations over peer feedback entries.
type FeedbackRepository interface {
	// SaveFeedback persists a new feedback entry.
	SaveFeedback(ctx context.Context, f domain.Feedback) error

	// FindFeedbackByID retrieves a feedback entry by its identifier.
	FindFeedbackByID(ctx context.Context, feedbackID string) (*domain.Feedback, error)

	// ListFeedbackForProfile returns feedback addressed to the profile in
	// insertion order.
	ListFeedbackForProfile(ctx context.Context, profileID string) ([]domain.Feedback, error)

	// ListAllFeedback returns every feedback entry in insertion order.
	ListAllFeedback(ctx context.Context) ([]domain.Feedback, error)

	// UpdateFeedback replaces the stored feedback entry.
	UpdateFeedback(ctx context.Context, f domain.Feedback) error

	// DeleteFeedback removes a feedback entry.
	DeleteFeedback(ctx context.Context, feedbackID string) error
}

// SessionRepository defines the token to identity mapping backing the
// session store.
type SessionRepository interface {
	// SaveSession stores a session token with its expiry.
	SaveSession(ctx context.Context, token string, user domain.User, expiresAt time.Time) error

	// FindSession returns the session user if the token exists and has not
	// expired.
	FindSession(ctx context.Context, token string, now time.Time) (*domain.User, error)

	// DeleteSession removes a session, reporting whether it existed.
	DeleteSession(ctx context.Context, token string) (bool, error)

	// DeleteExpired evicts every session expiring at or before now and
	// returns the eviction count.
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}
