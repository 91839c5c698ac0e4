package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	DocumentRepo       DocumentRepositoryFacade
	CodeConfigRepo     CodeConfigRepositoryFacade
	CorrespondanceRepo CorrespondanceRepositoryFacade
	ProcesVerbalRepo   ProcesVerbalRepositoryFacade
	ActionRepo         ActionRepositoryFacade
	ActivityLogRepo    ActivityLogRepositoryFacade
	SettingsRepo       SettingsRepositoryFacade
	UserRepo           UserRepositoryFacade
	ReportingRepo      ReportingRepository
}
