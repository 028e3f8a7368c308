// Package memory implements the repository ports over process-local maps.
// The store is the sole data source: it is seeded at startup and every
// record vanishes on restart.
package memory

import (
	"sync"
	"time"

	"github.com/newwork/staffhub/internal/core/domain"
)

type session struct {
	user      domain.User
	expiresAt time.Time
}

// Store holds every entity map behind a single RWMutex. gin serves requests
// concurrently, so all repository operations must hold the lock.
type Store struct {
	mu sync.RWMutex

	users     map[string]domain.User
	userOrder []string

	profiles     map[string]*domain.EmployeeProfile
	profileOrder []string

	feedback      map[string]domain.Feedback
	feedbackOrder []string

	sessions map[string]session
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		users:    make(map[string]domain.User),
		profiles: make(map[string]*domain.EmployeeProfile),
		feedback: make(map[string]domain.Feedback),
		sessions: make(map[string]session),
	}
}

func (s *Store) addUser(u domain.User) {
	s.users[u.ID] = u
	s.userOrder = append(s.userOrder, u.ID)
}

func (s *Store) addProfile(p domain.EmployeeProfile) {
	cp := p.Clone()
	s.profiles[p.ID] = &cp
	s.profileOrder = append(s.profileOrder, p.ID)
}

func (s *Store) addFeedback(f domain.Feedback) {
	s.feedback[f.ID] = f
	s.feedbackOrder = append(s.feedbackOrder, f.ID)
}
