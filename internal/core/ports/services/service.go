package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Customer      CustomerSvcFacade
	Job           JobSvcFacade
	Task          TaskSvcFacade
	CalendarEvent CalendarEventSvcFacade
	DocTemplate   DocTemplateSvcFacade
	Document      DocumentSvcFacade
	User          UserSvcFacade
	Reporting     ReportingService
	TokenService  TokenSvcFacade
	GoogleOAuth   GoogleOAuthHandlerSvcFacade
}
