package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/flowpro-systems/field_service_app/internal/apperrors"
	"github.com/flowpro-systems/field_service_app/internal/core/domain"
	portsrepo "github.com/flowpro-systems/field_service_app/internal/core/ports/repositories"
	portssvc "github.com/flowpro-systems/field_service_app/internal/core/ports/services"
	"github.com/flowpro-systems/field_service_app/internal/docgen"
	"github.com/flowpro-systems/field_service_app/internal/dto"
)

// docTemplateService implements the DocTemplateSvcFacade interface
type docTemplateService struct {
	BaseService
	templateRepo portsrepo.DocTemplateRepositoryFacade
}

// NewDocTemplateService creates a new document template service
func NewDocTemplateService(repo portsrepo.DocTemplateRepositoryFacade) portssvc.DocTemplateSvcFacade {
	return &docTemplateService{templateRepo: repo}
}

var _ portssvc.DocTemplateSvcFacade = (*docTemplateService)(nil)

func (s *docTemplateService) CreateTemplate(ctx context.Context, req dto.CreateDocTemplateRequest, creatorUserID string) (*domain.DocTemplate, error) {
	if err := docgen.ValidateTemplateContent(req.Content); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}

	now := time.Now()
	template := domain.DocTemplate{
		TemplateID: uuid.NewString(),
		Name:       req.Name,
		Content:    req.Content,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.templateRepo.SaveTemplate(ctx, template); err != nil {
		s.LogError(ctx, err, "Failed to save template", slog.String("template_id", template.TemplateID))
		return nil, fmt.Errorf("failed to save template: %w", err)
	}

	s.LogInfo(ctx, "Template uploaded", slog.String("template_id", template.TemplateID), slog.String("name", template.Name))
	return &template, nil
}

func (s *docTemplateService) GetTemplateByID(ctx context.Context, templateID string) (*domain.DocTemplate, error) {
	return s.templateRepo.FindTemplateByID(ctx, templateID)
}

func (s *docTemplateService) ListTemplates(ctx context.Context, limit, offset int) ([]domain.DocTemplate, error) {
	templates, err := s.templateRepo.FindTemplates(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list templates")
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return templates, nil
}

func (s *docTemplateService) DeleteTemplate(ctx context.Context, templateID string, requestingUserID string) error {
	if err := s.templateRepo.DeleteTemplate(ctx, templateID); err != nil {
		s.LogError(ctx, err, "Failed to delete template", slog.String("template_id", templateID))
		return err
	}
	s.LogInfo(ctx, "Template deleted", slog.String("template_id", templateID), slog.String("deleted_by", requestingUserID))
	return nil
}
