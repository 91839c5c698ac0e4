package services

import (
	portsrepo "github.com/aerodoc/backend/internal/core/ports/repositories"
	portssvc "github.com/aerodoc/backend/internal/core/ports/services"
	"github.com/aerodoc/backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, search portssvc.SearchIndexerSvc) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Audit writer first since nearly every service records through it
	container.ActivityLog = NewActivityLogService(repos.ActivityLogRepo)

	container.User = NewUserService(repos.UserRepo, container.ActivityLog)
	container.Codification = NewCodificationService(repos.CodeConfigRepo, container.User, container.ActivityLog)
	container.Document = NewDocumentService(repos.DocumentRepo, container.Codification, container.User, container.ActivityLog, search, cfg.UploadsDir)
	container.Correspondance = NewCorrespondanceService(repos.CorrespondanceRepo, container.Codification, container.User, container.ActivityLog)
	container.ProcesVerbal = NewProcesVerbalService(repos.ProcesVerbalRepo, container.Document, container.ActivityLog)
	container.Action = NewActionService(repos.ActionRepo, container.User, container.ActivityLog)
	container.Settings = NewSettingsService(repos.SettingsRepo, container.User, container.ActivityLog)
	container.Reporting = NewReportingService(repos.ReportingRepo)

	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthHandlerService(cfg)

	return container
}

// Compile-time interface checks for the service implementations.
var (
	_ portssvc.DocumentSvcFacade       = (*documentService)(nil)
	_ portssvc.CodificationSvcFacade   = (*codificationService)(nil)
	_ portssvc.CorrespondanceSvcFacade = (*correspondanceService)(nil)
	_ portssvc.ProcesVerbalSvcFacade   = (*procesVerbalService)(nil)
	_ portssvc.ActionSvcFacade         = (*actionService)(nil)
	_ portssvc.ActivityLogSvcFacade    = (*activityLogService)(nil)
	_ portssvc.SettingsSvcFacade       = (*settingsService)(nil)
	_ portssvc.UserSvcFacade           = (*userService)(nil)
)
