package memory

import (
	portsrepo "github.com/newwork/staffhub/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository over a shared store.
func NewRepositoryProvider(store *Store) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		UserRepo:     NewUserRepository(store),
		ProfileRepo:  NewProfileRepository(store),
		AbsenceRepo:  NewAbsenceRepository(store),
		FeedbackRepo: NewFeedbackRepository(store),
		SessionRepo:  NewSessionRepository(store),
	}
}
