package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/newwork/staffhub/internal/core/domain"
)

// Seed loads the demo directory: one manager, one employee, one coworker,
// with matching profiles, a couple of feedback entries and one decided
// absence request.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.addUser(domain.User{ID: "1", Email: "manager@newwork.com", Role: domain.RoleManager, FirstName: "Sarah", LastName: "Johnson"})
	s.addUser(domain.User{ID: "2", Email: "employee@newwork.com", Role: domain.RoleEmployee, FirstName: "Michael", LastName: "Chen"})
	s.addUser(domain.User{ID: "3", Email: "coworker@newwork.com", Role: domain.RoleCoworker, FirstName: "Emily", LastName: "Davis"})

	s.addProfile(domain.EmployeeProfile{
		ID:           "1",
		FirstName:    "Sarah",
		LastName:     "Johnson",
		Position:     "Senior HR Manager",
		Department:   "Human Resources",
		ProfileImage: "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=150&h=150&fit=crop&crop=face",
		Bio:          "Experienced HR professional with 8+ years in talent management and employee development.",
		Skills:       []string{"Talent Management", "Employee Relations", "HR Strategy", "Performance Management"},
		Email:        "sarah.johnson@newwork.com",
		Phone:        "+1-555-0123",
		Salary:       decimal.NewFromInt(85000),
		StartDate:    "2020-03-15",
		EmployeeID:   "EMP001",
		Address:      "123 Business Ave, Tech City, TC 12345",
		EmergencyContact: domain.EmergencyContact{
			Name:         "David Johnson",
			Phone:        "+1-555-0124",
			Relationship: "Spouse",
		},
		AbsenceRequests: []domain.AbsenceRequest{},
	})

	s.addProfile(domain.EmployeeProfile{
		ID:           "2",
		FirstName:    "Michael",
		LastName:     "Chen",
		Position:     "Software Engineer",
		Department:   "Engineering",
		ProfileImage: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face",
		Bio:          "Full-stack developer passionate about clean code and user experience.",
		Skills:       []string{"React", "Node.js", "TypeScript", "Python", "AWS"},
		Email:        "michael.chen@newwork.com",
		Phone:        "+1-555-0125",
		Salary:       decimal.NewFromInt(75000),
		StartDate:    "2021-06-10",
		EmployeeID:   "EMP002",
		Address:      "456 Tech Street, Innovation City, IC 67890",
		EmergencyContact: domain.EmergencyContact{
			Name:         "Lisa Chen",
			Phone:        "+1-555-0126",
			Relationship: "Sister",
		},
		AbsenceRequests: []domain.AbsenceRequest{
			{
				ID:        "1",
				StartDate: "2024-02-15",
				EndDate:   "2024-02-16",
				Reason:    "Personal day",
				Status:    domain.AbsenceApproved,
				CreatedAt: mustParseTime("2024-01-20T09:00:00Z"),
				UpdatedAt: mustParseTime("2024-01-21T14:30:00Z"),
			},
		},
	})

	s.addProfile(domain.EmployeeProfile{
		ID:           "3",
		FirstName:    "Emily",
		LastName:     "Davis",
		Position:     "Product Designer",
		Department:   "Design",
		ProfileImage: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop&crop=face",
		Bio:          "Creative designer focused on user-centered design and accessibility.",
		Skills:       []string{"UI/UX Design", "Figma", "Prototyping", "User Research", "Accessibility"},
		Email:        "emily.davis@newwork.com",
		Phone:        "+1-555-0127",
		Salary:       decimal.NewFromInt(70000),
		StartDate:    "2022-01-20",
		EmployeeID:   "EMP003",
		Address:      "789 Design Lane, Creative City, CC 11111",
		EmergencyContact: domain.EmergencyContact{
			Name:         "Robert Davis",
			Phone:        "+1-555-0128",
			Relationship: "Father",
		},
		AbsenceRequests: []domain.AbsenceRequest{},
	})

	s.addFeedback(domain.Feedback{
		ID:              "1",
		FromUserID:      "3",
		FromUserName:    "Emily Davis",
		ToUserID:        "2",
		Content:         "Great team player and always willing to help with debugging issues.",
		EnhancedContent: "Michael is an exceptional team player who consistently demonstrates a collaborative spirit and is always willing to assist with debugging complex technical issues.",
		IsEnhanced:      true,
		CreatedAt:       mustParseTime("2024-01-15T10:00:00Z"),
		UpdatedAt:       mustParseTime("2024-01-15T10:00:00Z"),
	})
	s.addFeedback(domain.Feedback{
		ID:              "2",
		FromUserID:      "1",
		FromUserName:    "Sarah Johnson",
		ToUserID:        "3",
		Content:         "Your design reviews are thorough and the accessibility focus really shows.",
		EnhancedContent: "Your design reviews are thorough and the accessibility focus really shows.",
		IsEnhanced:      false,
		CreatedAt:       mustParseTime("2024-01-13T09:15:00Z"),
		UpdatedAt:       mustParseTime("2024-01-13T09:15:00Z"),
	})
}

func mustParseTime(v string) time.Time {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		panic(err)
	}
	return t
}
