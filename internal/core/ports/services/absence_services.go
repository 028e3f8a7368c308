package services

import (
	"context"

	"github.com/newwork/staffhub/internal/core/domain"
	"github.com/newwork/staffhub/internal/dto"
)

// AbsenceSvcFacade exposes the absence request lifecycle.
type AbsenceSvcFacade interface {
	// ListByEmployee returns an employee's requests in insertion order.
	ListByEmployee(ctx context.Context, employeeID string) ([]domain.AbsenceRequest, error)

	// ListAll returns every request across profiles, most recent first.
	ListAll(ctx context.Context) ([]domain.AbsenceRequest, error)

	// CreateRequest validates and stores a new pending request.
	CreateRequest(ctx context.Context, employeeID string, req dto.CreateAbsenceRequest) (*domain.AbsenceRequest, error)

	// UpdateStatus locates a request by ID across all profiles and replaces
	// its status, refreshing UpdatedAt.
	UpdateStatus(ctx context.Context, requestID string, status domain.AbsenceStatus, managerID string) (*domain.AbsenceRequest, error)

	// DeleteRequest removes a request; only pending requests may be deleted.
	DeleteRequest(ctx context.Context, requestID string, employeeID string) error

	// Statistics summarises an employee's requests.
	Statistics(ctx context.Context, employeeID string) (*domain.AbsenceStatistics, error)
}
