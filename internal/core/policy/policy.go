// Package policy holds the role-based visibility and authorization rules
// applied uniformly across profile, feedback and absence records. All
// functions are pure: they take the viewing identity and the target record
// and never touch storage.
package policy

import (
	"github.com/shopspring/decimal"

	"github.com/newwork/staffhub/internal/core/domain"
)

// Profile field names as they appear on the wire.
const (
	FieldID           = "id"
	FieldFirstName    = "firstName"
	FieldLastName     = "lastName"
	FieldPosition     = "position"
	FieldDepartment   = "department"
	FieldProfileImage = "profileImage"
	FieldBio          = "bio"
	FieldSkills       = "skills"

	FieldEmail             = "email"
	FieldPhone             = "phone"
	FieldSalary            = "salary"
	FieldStartDate         = "startDate"
	FieldEmployeeID        = "employeeId"
	FieldAddress           = "address"
	FieldEmergencyContact  = "emergencyContact"
	FieldPerformanceRating = "performanceRating"
	FieldCertifications    = "certifications"
	FieldWorkHistory       = "workHistory"

	FieldFeedback        = "feedback"
	FieldAbsenceRequests = "absenceRequests"
)

// FieldSet is a set of visible profile field names.
type FieldSet map[string]bool

// Has reports whether the field is in the set.
func (fs FieldSet) Has(field string) bool { return fs[field] }

func fieldSet(fields ...string) FieldSet {
	fs := make(FieldSet, len(fields))
	for _, f := range fields {
		fs[f] = true
	}
	return fs
}

var publicFields = fieldSet(
	FieldID, FieldFirstName, FieldLastName, FieldPosition, FieldDepartment,
	FieldProfileImage, FieldBio, FieldSkills,
	// The restricted view keeps the feedback and absence arrays; their
	// contents are filtered separately by the feedback policy.
	FieldFeedback, FieldAbsenceRequests,
)

var allFields = func() FieldSet {
	fs := fieldSet(
		FieldEmail, FieldPhone, FieldSalary, FieldStartDate, FieldEmployeeID,
		FieldAddress, FieldEmergencyContact, FieldPerformanceRating,
		FieldCertifications, FieldWorkHistory,
	)
	for f := range publicFields {
		fs[f] = true
	}
	return fs
}()

type visibilityKey struct {
	role  domain.Role
	owner bool
}

// profileVisibility maps (viewer role, ownership) to the set of profile
// fields the viewer may read.
var profileVisibility = map[visibilityKey]FieldSet{
	{domain.RoleManager, true}:   allFields,
	{domain.RoleManager, false}:  allFields,
	{domain.RoleEmployee, true}:  allFields,
	{domain.RoleEmployee, false}: publicFields,
	{domain.RoleCoworker, true}:  allFields,
	{domain.RoleCoworker, false}: publicFields,
}

// VisibleFields returns the profile fields a viewer may read on the target
// profile.
func VisibleFields(viewer domain.User, profileID string) FieldSet {
	return profileVisibility[visibilityKey{viewer.Role, viewer.ID == profileID}]
}

// CanViewProfile reports whether the viewer may read the target profile at
// all. Employees are limited to their own full profile; every other
// combination resolves to at least the public view.
func CanViewProfile(viewer domain.User, profileID string) bool {
	if viewer.Role == domain.RoleEmployee && viewer.ID != profileID {
		return false
	}
	return true
}

// CanEditProfile reports whether the viewer may update the target profile.
func CanEditProfile(viewer domain.User, profileID string) bool {
	return viewer.Role == domain.RoleManager || viewer.ID == profileID
}

// CanEditCompensation reports whether the viewer may change salary and
// performance rating. Owners may edit their own profile but not these fields.
func CanEditCompensation(viewer domain.User) bool {
	return viewer.Role == domain.RoleManager
}

// FilterProfile zeroes every field outside the given set and returns the
// filtered copy. Applying the same set twice yields an identical result.
func FilterProfile(p domain.EmployeeProfile, fields FieldSet) domain.EmployeeProfile {
	out := p.Clone()
	if !fields.Has(FieldProfileImage) {
		out.ProfileImage = ""
	}
	if !fields.Has(FieldBio) {
		out.Bio = ""
	}
	if !fields.Has(FieldEmail) {
		out.Email = ""
	}
	if !fields.Has(FieldPhone) {
		out.Phone = ""
	}
	if !fields.Has(FieldSalary) {
		out.Salary = decimal.Zero
	}
	if !fields.Has(FieldStartDate) {
		out.StartDate = ""
	}
	if !fields.Has(FieldEmployeeID) {
		out.EmployeeID = ""
	}
	if !fields.Has(FieldAddress) {
		out.Address = ""
	}
	if !fields.Has(FieldEmergencyContact) {
		out.EmergencyContact = domain.EmergencyContact{}
	}
	if !fields.Has(FieldPerformanceRating) {
		out.PerformanceRating = 0
	}
	if !fields.Has(FieldCertifications) {
		out.Certifications = nil
	}
	if !fields.Has(FieldWorkHistory) {
		out.WorkHistory = nil
	}
	if !fields.Has(FieldAbsenceRequests) {
		out.AbsenceRequests = nil
	}
	return out
}

// VisibleFeedback filters a recipient profile's feedback list for a viewer.
// Managers see everything; a viewer on their own profile sees feedback
// addressed to them; a viewer on someone else's profile sees only the
// feedback they personally authored for it.
func VisibleFeedback(viewer domain.User, profileID string, feedback []domain.Feedback) []domain.Feedback {
	out := make([]domain.Feedback, 0, len(feedback))
	for _, f := range feedback {
		if f.ToUserID != profileID {
			continue
		}
		if viewer.Role == domain.RoleManager || viewer.ID == profileID || f.FromUserID == viewer.ID {
			out = append(out, f)
		}
	}
	return out
}

// CanDeleteFeedback reports whether the viewer may delete the feedback entry:
// managers always, otherwise only the original author.
func CanDeleteFeedback(viewer domain.User, f domain.Feedback) bool {
	return viewer.Role == domain.RoleManager || f.FromUserID == viewer.ID
}

// CanManageAbsence reports whether the viewer may change absence statuses.
func CanManageAbsence(viewer domain.User) bool {
	return viewer.Role == domain.RoleManager
}

// CanDeleteAbsence reports whether the viewer may delete an absence request
// owned by employeeID. The pending-only rule is enforced by the service.
func CanDeleteAbsence(viewer domain.User, employeeID string) bool {
	return viewer.Role == domain.RoleManager || viewer.ID == employeeID
}
