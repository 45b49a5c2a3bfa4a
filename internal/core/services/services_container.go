package services

import (
	portsrepo "github.com/flowpro-systems/field_service_app/internal/core/ports/repositories"
	portssvc "github.com/flowpro-systems/field_service_app/internal/core/ports/services"
	"github.com/flowpro-systems/field_service_app/internal/platform/config"
	"github.com/flowpro-systems/field_service_app/internal/utils"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, posthog *utils.PosthogClientWrapper) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Customer = NewCustomerService(repos.CustomerRepo)
	container.Job = NewJobService(repos.JobRepo, repos.CustomerRepo)
	container.Task = NewTaskService(repos.TaskRepo)
	container.CalendarEvent = NewCalendarEventService(repos.CalendarEventRepo, repos.CustomerRepo)
	container.DocTemplate = NewDocTemplateService(repos.DocTemplateRepo)
	container.Document = NewDocumentService(repos.JobRepo, repos.DocTemplateRepo, posthog)
	container.User = NewUserService(repos.UserRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo)

	container.TokenService = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthHandlerService(cfg)

	return container
}
