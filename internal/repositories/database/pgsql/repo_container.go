package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/flowpro-systems/field_service_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CustomerRepo:      newPgxCustomerRepository(dbPool),
		JobRepo:           newPgxJobRepository(dbPool),
		TaskRepo:          newPgxTaskRepository(dbPool),
		CalendarEventRepo: newPgxCalendarEventRepository(dbPool),
		DocTemplateRepo:   newPgxDocTemplateRepository(dbPool),
		UserRepo:          newPgxUserRepository(dbPool),
		ReportingRepo:     newPgxReportingRepository(dbPool),
	}
}
