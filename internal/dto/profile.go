package dto

import (
	"github.com/shopspring/decimal"

	"github.com/newwork/staffhub/internal/core/domain"
	"github.com/newwork/staffhub/internal/core/policy"
)

// ProfileResponse is a role-filtered profile view. Sensitive fields use
// pointers so a restricted view omits them from the payload entirely rather
// than serialising zero values.
type ProfileResponse struct {
	ID           string   `json:"id"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Position     string   `json:"position"`
	Department   string   `json:"department"`
	ProfileImage string   `json:"profileImage,omitempty"`
	Bio          string   `json:"bio,omitempty"`
	Skills       []string `json:"skills"`

	Email             *string                    `json:"email,omitempty"`
	Phone             *string                    `json:"phone,omitempty"`
	Salary            *decimal.Decimal           `json:"salary,omitempty"`
	StartDate         *string                    `json:"startDate,omitempty"`
	EmployeeID        *string                    `json:"employeeId,omitempty"`
	Address           *string                    `json:"address,omitempty"`
	EmergencyContact  *domain.EmergencyContact   `json:"emergencyContact,omitempty"`
	PerformanceRating *float64                   `json:"performanceRating,omitempty"`
	Certifications    []string                   `json:"certifications,omitempty"`
	WorkHistory       []domain.WorkHistoryEntry  `json:"workHistory,omitempty"`

	Feedback        []domain.Feedback        `json:"feedback"`
	AbsenceRequests []domain.AbsenceRequest  `json:"absenceRequests"`
}

// ToProfileResponse converts a policy-filtered view into a response payload,
// including only the fields present in the view's field set.
func ToProfileResponse(v policy.ProfileView) ProfileResponse {
	p := v.Profile
	resp := ProfileResponse{
		ID:         p.ID,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Position:   p.Position,
		Department: p.Department,
		Skills:     p.Skills,
	}
	if v.Fields.Has(policy.FieldProfileImage) {
		resp.ProfileImage = p.ProfileImage
	}
	if v.Fields.Has(policy.FieldBio) {
		resp.Bio = p.Bio
	}
	if v.Fields.Has(policy.FieldEmail) {
		resp.Email = &p.Email
	}
	if v.Fields.Has(policy.FieldPhone) {
		resp.Phone = &p.Phone
	}
	if v.Fields.Has(policy.FieldSalary) {
		resp.Salary = &p.Salary
	}
	if v.Fields.Has(policy.FieldStartDate) {
		resp.StartDate = &p.StartDate
	}
	if v.Fields.Has(policy.FieldEmployeeID) {
		resp.EmployeeID = &p.EmployeeID
	}
	if v.Fields.Has(policy.FieldAddress) {
		resp.Address = &p.Address
	}
	if v.Fields.Has(policy.FieldEmergencyContact) {
		resp.EmergencyContact = &p.EmergencyContact
	}
	if v.Fields.Has(policy.FieldPerformanceRating) {
		resp.PerformanceRating = &p.PerformanceRating
	}
	if v.Fields.Has(policy.FieldCertifications) {
		resp.Certifications = p.Certifications
	}
	if v.Fields.Has(policy.FieldWorkHistory) {
		resp.WorkHistory = p.WorkHistory
	}
	if v.Fields.Has(policy.FieldFeedback) {
		resp.Feedback = v.Feedback
	}
	if v.Fields.Has(policy.FieldAbsenceRequests) {
		resp.AbsenceRequests = p.AbsenceRequests
	}
	if resp.Feedback == nil {
		resp.Feedback = []domain.Feedback{}
	}
	if resp.AbsenceRequests == nil {
		resp.AbsenceRequests = []domain.AbsenceRequest{}
	}
	return resp
}

// UpdateProfileRequest defines the fields a profile update may change.
// Pointers differentiate omitted fields from zero values.
type UpdateProfileRequest struct {
	FirstName         *string                    `json:"firstName"`
	LastName          *string                    `json:"lastName"`
	Position          *string                    `json:"position"`
	Department        *string                    `json:"department"`
	ProfileImage      *string                    `json:"profileImage"`
	Bio               *string                    `json:"bio"`
	Skills            []string                   `json:"skills"`
	Email             *string                    `json:"email"`
	Phone             *string                    `json:"phone"`
	Salary            *decimal.Decimal           `json:"salary"`
	Address           *string                    `json:"address"`
	EmergencyContact  *domain.EmergencyContact   `json:"emergencyContact"`
	PerformanceRating *float64                   `json:"performanceRating"`
	Certifications    []string                   `json:"certifications"`
	WorkHistory       []domain.WorkHistoryEntry  `json:"workHistory"`
}

// ProfileSummary is the manager-facing list row.
type ProfileSummary struct {
	ID         string `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Email      string `json:"email"`
	StartDate  string `json:"startDate"`
	EmployeeID string `json:"employeeId"`
}

// ToProfileSummary converts a full profile into a list row.
func ToProfileSummary(p domain.EmployeeProfile) ProfileSummary {
	return ProfileSummary{
		ID:         p.ID,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Position:   p.Position,
		Department: p.Department,
		Email:      p.Email,
		StartDate:  p.StartDate,
		EmployeeID: p.EmployeeID,
	}
}

// ProfileCard is the public browse card shown to any authenticated role.
type ProfileCard struct {
	ID           string   `json:"id"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Position     string   `json:"position"`
	Department   string   `json:"department"`
	ProfileImage string   `json:"profileImage,omitempty"`
	Bio          string   `json:"bio,omitempty"`
	Skills       []string `json:"skills"`
}

// ToProfileCard converts a profile into its public browse card.
func ToProfileCard(p domain.EmployeeProfile) ProfileCard {
	return ProfileCard{
		ID:           p.ID,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Position:     p.Position,
		Department:   p.Department,
		ProfileImage: p.ProfileImage,
		Bio:          p.Bio,
		Skills:       p.Skills,
	}
}
