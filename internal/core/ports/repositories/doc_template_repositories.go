package repositories

import (
	"context"

	"github.com/flowpro-systems/field_service_app/internal/core/domain"
)

// DocTemplateReader defines read operations for document template data
type DocTemplateReader interface {
	// FindTemplateByID retrieves a template including its content.
	FindTemplateByID(ctx context.Context, templateID string) (*domain.DocTemplate, error)

	// FindTemplates retrieves template metadata without content.
	FindTemplates(ctx context.Context, limit int, offset int) ([]domain.DocTemplate, error)
}

// DocTemplateWriter defines write operations for document template data
type DocTemplateWriter interface {
	// SaveTemplate persists a new template.
	SaveTemplate(ctx context.Context, template domain.DocTemplate) error

	// DeleteTemplate removes a template.
	DeleteTemplate(ctx context.Context, templateID string) error
}

// DocTemplateRepositoryFacade combines all template repository interfaces
type DocTemplateRepositoryFacade interface {
	DocTemplateReader
	DocTemplateWriter
}
