package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/newwork/staffhub/internal/apperrors"
	"github.com/newwork/staffhub/internal/core/domain"
	portsrepo "github.com/newwork/staffhub/internal/core/ports/repositories"
	portssvc "github.com/newwork/staffhub/internal/core/ports/services"
	"github.com/newwork/staffhub/internal/dto"
)

// absenceDateLayout is the calendar-date form used on the wire.
const absenceDateLayout = "2006-01-02"

// AbsenceService implements the absence request lifecycle.
type AbsenceService struct {
	BaseService
	absenceRepo portsrepo.AbsenceRepository
	now         func() time.Time
}

var _ portssvc.AbsenceSvcFacade = (*AbsenceService)(nil)

// NewAbsenceService creates an absence service.
func NewAbsenceService(absenceRepo portsrepo.AbsenceRepository) *AbsenceService {
	return &AbsenceService{absenceRepo: absenceRepo, now: time.Now}
}

// ListByEmployee returns an employee's requests in insertion order.
func (s *AbsenceService) ListByEmployee(ctx context.Context, employeeID string) ([]domain.AbsenceRequest, error) {
	requests, err := s.absenceRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: employee profile not found", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to list absence requests: %w", err)
	}
	return requests, nil
}

// ListAll flattens every profile's requests sorted by creation time, most
// recent first. Ties keep their original order.
func (s *AbsenceService) ListAll(ctx context.Context) ([]domain.AbsenceRequest, error) {
	requests, err := s.absenceRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list all absence requests: %w", err)
	}
	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})
	return requests, nil
}

// CreateRequest validates and stores a new pending absence request.
func (s *AbsenceService) CreateRequest(ctx context.Context, employeeID string, req dto.CreateAbsenceRequest) (*domain.AbsenceRequest, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	now := s.now()
	request := domain.AbsenceRequest{
		ID:        uuid.NewString(),
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    strings.TrimSpace(req.Reason),
		Status:    domain.AbsencePending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.absenceRepo.AppendRequest(ctx, employeeID, request); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: employee profile not found", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to create absence request: %w", err)
	}

	s.LogInfo(ctx, "Absence request created",
		slog.String("request_id", request.ID),
		slog.String("employee_id", employeeID))
	return &request, nil
}

// validateRequest applies the creation rules fail-fast; the first violated
// rule wins and its message is returned verbatim.
func (s *AbsenceService) validateRequest(req dto.CreateAbsenceRequest) error {
	start, startErr := time.Parse(absenceDateLayout, req.StartDate)
	end, endErr := time.Parse(absenceDateLayout, req.EndDate)
	if startErr != nil || endErr != nil {
		return fmt.Errorf("%w: Invalid date format", apperrors.ErrValidation)
	}

	today := dateOnly(s.now())
	if start.Before(today) {
		return fmt.Errorf("%w: Start date cannot be in the past", apperrors.ErrValidation)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: End date cannot be before start date", apperrors.ErrValidation)
	}
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return fmt.Errorf("%w: Reason is required", apperrors.ErrValidation)
	}
	// The limit counts characters, not bytes.
	if utf8.RuneCountInString(reason) > domain.MaxAbsenceReasonLength {
		return fmt.Errorf("%w: Reason cannot exceed %d characters", apperrors.ErrValidation, domain.MaxAbsenceReasonLength)
	}
	if start.After(today.AddDate(domain.MaxAdvanceBookingYears, 0, 0)) {
		return fmt.Errorf("%w: Cannot request absence more than %d year in advance", apperrors.ErrValidation, domain.MaxAdvanceBookingYears)
	}
	return nil
}

// UpdateStatus locates a request by ID across all profiles and replaces it
// with the new status, refreshing UpdatedAt.
func (s *AbsenceService) UpdateStatus(ctx context.Context, requestID string, status domain.AbsenceStatus, managerID string) (*domain.AbsenceRequest, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: Invalid status. Must be pending, approved, or rejected", apperrors.ErrValidation)
	}

	request, employeeID, err := s.absenceRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: absence request not found", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find absence request: %w", err)
	}

	request.Status = status
	request.UpdatedAt = s.now()

	if err := s.absenceRepo.ReplaceRequest(ctx, employeeID, *request); err != nil {
		return nil, fmt.Errorf("failed to update absence request: %w", err)
	}

	s.LogInfo(ctx, "Absence request status updated",
		slog.String("request_id", requestID),
		slog.String("status", string(status)),
		slog.String("manager_id", managerID))
	return request, nil
}

// DeleteRequest removes a request from the employee's profile. Only pending
// requests may be deleted.
func (s *AbsenceService) DeleteRequest(ctx context.Context, requestID string, employeeID string) error {
	requests, err := s.absenceRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: employee profile not found", apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to load absence requests: %w", err)
	}

	var found *domain.AbsenceRequest
	for i := range requests {
		if requests[i].ID == requestID {
			found = &requests[i]
			break
		}
	}
	if found == nil {
		return fmt.Errorf("%w: absence request not found", apperrors.ErrNotFound)
	}
	if found.Status != domain.AbsencePending {
		return fmt.Errorf("%w: Can only delete pending absence requests", apperrors.ErrValidation)
	}

	if err := s.absenceRepo.RemoveRequest(ctx, employeeID, requestID); err != nil {
		return fmt.Errorf("failed to delete absence request: %w", err)
	}

	s.LogInfo(ctx, "Absence request deleted",
		slog.String("request_id", requestID),
		slog.String("employee_id", employeeID))
	return nil
}

// Statistics counts requests per status and sums inclusive calendar days
// over approved requests.
func (s *AbsenceService) Statistics(ctx context.Context, employeeID string) (*domain.AbsenceStatistics, error) {
	requests, err := s.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	stats := &domain.AbsenceStatistics{TotalRequests: len(requests)}
	for _, req := range requests {
		switch req.Status {
		case domain.AbsencePending:
			stats.PendingRequests++
		case domain.AbsenceApproved:
			stats.ApprovedRequests++
			stats.TotalDaysRequested += inclusiveDays(req.StartDate, req.EndDate)
		case domain.AbsenceRejected:
			stats.RejectedRequests++
		}
	}
	return stats, nil
}

// inclusiveDays counts calendar days from start to end inclusive; a request
// covering a single day counts as one.
func inclusiveDays(startDate, endDate string) int {
	start, err := time.Parse(absenceDateLayout, startDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse(absenceDateLayout, endDate)
	if err != nil {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
