package pgsql

import (
	portsrepo "github.com/aerodoc/backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		DocumentRepo:       newPgxDocumentRepository(dbPool),
		CodeConfigRepo:     newPgxCodeConfigRepository(dbPool),
		CorrespondanceRepo: newPgxCorrespondanceRepository(dbPool),
		ProcesVerbalRepo:   newPgxProcesVerbalRepository(dbPool),
		ActionRepo:         newPgxActionRepository(dbPool),
		ActivityLogRepo:    newPgxActivityLogRepository(dbPool),
		SettingsRepo:       newPgxSettingsRepository(dbPool),
		UserRepo:           newPgxUserRepository(dbPool),
		ReportingRepo:      newPgxReportingRepository(dbPool),
	}
}
