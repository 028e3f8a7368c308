package dto

import "github.com/newwork/staffhub/internal/core/domain"

// CreateAbsenceRequest carries a new time-off request. Dates are calendar
// dates in "2006-01-02" form; full validation happens in the service so the
// caller gets the exact rule message.
type CreateAbsenceRequest struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
}

// UpdateAbsenceStatusRequest carries a status decision for a request.
type UpdateAbsenceStatusRequest struct {
	Status domain.AbsenceStatus `json:"status" binding:"required,oneof=pending approved rejected"`
}
