package domain

import "github.com/shopspring/decimal"

// EmergencyContact is the person to notify for an employee.
type EmergencyContact struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

// WorkHistoryEntry is a previous role held by an employee.
type WorkHistoryEntry struct {
	Company  string `json:"company"`
	Position string `json:"position"`
	Duration string `json:"duration"`
}

// EmployeeProfile is the employee record. Public fields are visible to any
// authenticated viewer; the remaining fields are restricted to the profile
// owner and managers. There is exactly one profile per user, sharing its ID.
type EmployeeProfile struct {
	ID string `json:"id"`

	// Public data
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Position     string   `json:"position"`
	Department   string   `json:"department"`
	ProfileImage string   `json:"profileImage,omitempty"`
	Bio          string   `json:"bio,omitempty"`
	Skills       []string `json:"skills"`

	// Sensitive data (manager/owner only)
	Email            string           `json:"email"`
	Phone            string           `json:"phone"`
	Salary           decimal.Decimal  `json:"salary"`
	StartDate        string           `json:"startDate"`
	EmployeeID       string           `json:"employeeId"`
	Address          string           `json:"address"`
	EmergencyContact EmergencyContact `json:"emergencyContact"`

	// Additional professional info (manager/owner only)
	PerformanceRating float64            `json:"performanceRating,omitempty"`
	Certifications    []string           `json:"certifications,omitempty"`
	WorkHistory       []WorkHistoryEntry `json:"workHistory,omitempty"`

	AbsenceRequests []AbsenceRequest `json:"absenceRequests"`
}

// Clone returns a deep copy so callers can filter or mutate a view without
// touching the stored record.
func (p EmployeeProfile) Clone() EmployeeProfile {
	c := p
	c.Skills = append([]string(nil), p.Skills...)
	c.Certifications = append([]string(nil), p.Certifications...)
	c.WorkHistory = append([]WorkHistoryEntry(nil), p.WorkHistory...)
	c.AbsenceRequests = append([]AbsenceRequest(nil), p.AbsenceRequests...)
	return c
}
