package domain

// Role is the access level a user authenticates with.
type Role string

const (
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
	RoleCoworker Role = "coworker"
)

// IsValid reports whether the role is one of the three known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleManager, RoleEmployee, RoleCoworker:
		return true
	}
	return false
}

// User represents an authenticated identity. Users are seeded at startup and
// never mutated; the EmployeeProfile is the record being viewed or edited.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
