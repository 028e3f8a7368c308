package repositories

// RepositoryProvider bundles every repository implementation for injection
// into the service container.
type RepositoryProvider struct {
	UserRepo     UserRepository
	ProfileRepo  ProfileRepository
	AbsenceRepo  AbsenceRepository
	FeedbackRepo FeedbackRepository
	SessionRepo  SessionRepository
}
