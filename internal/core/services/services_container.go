package services

import (
	portsrepo "github.com/newwork/staffhub/internal/core/ports/repositories"
	portssvc "github.com/newwork/staffhub/internal/core/ports/services"
	"github.com/newwork/staffhub/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider, enhancer portssvc.TextEnhancer) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Auth = NewAuthService(repos.UserRepo, repos.SessionRepo, cfg.SessionTTL, cfg.SessionSweepInterval)
	container.Profile = NewProfileService(repos.ProfileRepo, repos.FeedbackRepo)
	container.Absence = NewAbsenceService(repos.AbsenceRepo)
	container.Feedback = NewFeedbackService(repos.FeedbackRepo, repos.ProfileRepo, enhancer)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AuthSvcFacade     = (*AuthService)(nil)
	_ portssvc.ProfileSvcFacade  = (*ProfileService)(nil)
	_ portssvc.AbsenceSvcFacade  = (*AbsenceService)(nil)
	_ portssvc.FeedbackSvcFacade = (*FeedbackService)(nil)
)
