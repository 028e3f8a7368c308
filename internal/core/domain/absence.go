package domain

import "time"

// AbsenceStatus is the lifecycle state of an absence request.
type AbsenceStatus string

const (
	AbsencePending  AbsenceStatus = "pending"
	AbsenceApproved AbsenceStatus = "approved"
	AbsenceRejected AbsenceStatus = "rejected"
)

// IsValid reports whether the status is one of the three lifecycle states.
func (s AbsenceStatus) IsValid() bool {
	switch s {
	case AbsencePending, AbsenceApproved, AbsenceRejected:
		return true
	}
	return false
}

// AbsenceRequest is a time-off request owned by exactly one employee profile.
// Start and end dates are calendar dates in "2006-01-02" form.
type AbsenceRequest struct {
	ID        string        `json:"id"`
	StartDate string        `json:"startDate"`
	EndDate   string        `json:"endDate"`
	Reason    string        `json:"reason"`
	Status    AbsenceStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// AbsenceStatistics summarises an employee's requests. TotalDaysRequested
// counts inclusive calendar days over approved requests only.
type AbsenceStatistics struct {
	TotalRequests      int `json:"totalRequests"`
	PendingRequests    int `json:"pendingRequests"`
	ApprovedRequests   int `json:"approvedRequests"`
	RejectedRequests   int `json:"rejectedRequests"`
	TotalDaysRequested int `json:"totalDaysRequested"`
}
