package policy

import "github.com/newwork/staffhub/internal/core/domain"

// ProfileView is a profile as seen by a particular viewer: the filtered
// record, the feedback entries visible to the viewer, and the field set the
// filtering was computed from.
type ProfileView struct {
	Profile  domain.EmployeeProfile
	Feedback []domain.Feedback
	Fields   FieldSet
}

// ViewProfile applies the full visibility policy for a viewer against a
// profile and its feedback list.
func ViewProfile(viewer domain.User, p domain.EmployeeProfile, feedback []domain.Feedback) ProfileView {
	fields := VisibleFields(viewer, p.ID)
	return ProfileView{
		Profile:  FilterProfile(p, fields),
		Feedback: VisibleFeedback(viewer, p.ID, feedback),
		Fields:   fields,
	}
}
