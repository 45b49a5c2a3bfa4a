package services

import (
	"context"

	"github.com/flowpro-systems/field_service_app/internal/core/domain"
	"github.com/flowpro-systems/field_service_app/internal/dto"
)

// DocTemplateSvcFacade defines operations for managing uploaded DOCX templates.
type DocTemplateSvcFacade interface {
	// CreateTemplate validates and stores an uploaded template.
	CreateTemplate(ctx context.Context, req dto.CreateDocTemplateRequest, creatorUserID string) (*domain.DocTemplate, error)

	// GetTemplateByID retrieves a template including its content.
	GetTemplateByID(ctx context.Context, templateID string) (*domain.DocTemplate, error)

	// ListTemplates retrieves template metadata without content.
	ListTemplates(ctx context.Context, limit, offset int) ([]domain.DocTemplate, error)

	// DeleteTemplate removes a template.
	DeleteTemplate(ctx context.Context, templateID string, requestingUserID string) error
}
