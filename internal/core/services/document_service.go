package services

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/flowpro-systems/field_service_app/internal/core/ports/repositories"
	portssvc "github.com/flowpro-systems/field_service_app/internal/core/ports/services"
	"github.com/flowpro-systems/field_service_app/internal/docgen"
	"github.com/flowpro-systems/field_service_app/internal/utils"
)

// documentService implements the DocumentSvcFacade interface. It loads the job
// aggregate and hands it to the composers, so generation stays a pure function
// of stored state.
type documentService struct {
	BaseService
	jobRepo      portsrepo.JobReader
	templateRepo portsrepo.DocTemplateReader
	posthog      *utils.PosthogClientWrapper
}

// NewDocumentService creates a new document generation service
func NewDocumentService(jobRepo portsrepo.JobReader, templateRepo portsrepo.DocTemplateReader, posthog *utils.PosthogClientWrapper) portssvc.DocumentSvcFacade {
	return &documentService{jobRepo: jobRepo, templateRepo: templateRepo, posthog: posthog}
}

var _ portssvc.DocumentSvcFacade = (*documentService)(nil)

// GeneratePDF composes a branded PDF of the given document type for a job.
func (s *documentService) GeneratePDF(ctx context.Context, jobID string, docType string) (*docgen.Artifact, error) {
	job, err := s.jobRepo.FindJobByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	artifact, err := docgen.ComposePDF(*job, docgen.DocumentType(docType))
	if err != nil {
		s.LogError(ctx, err, "Failed to compose PDF",
			slog.String("job_id", jobID),
			slog.String("doc_type", docType))
		return nil, fmt.Errorf("failed to compose PDF for job %s: %w", jobID, err)
	}

	s.LogInfo(ctx, "Document generated",
		slog.String("job_id", jobID),
		slog.String("doc_type", docType),
		slog.String("file_name", artifact.FileName))
	s.capture(jobID, "document_generated", map[string]any{
		"doc_type":  docType,
		"format":    "pdf",
		"file_name": artifact.FileName,
	})
	return artifact, nil
}

// GenerateFromTemplate fills a stored DOCX template with the job's details.
func (s *documentService) GenerateFromTemplate(ctx context.Context, jobID string, templateID string) (*docgen.Artifact, error) {
	job, err := s.jobRepo.FindJobByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	template, err := s.templateRepo.FindTemplateByID(ctx, templateID)
	if err != nil {
		return nil, err
	}

	artifact, err := docgen.ComposeFromTemplate(*template, *job)
	if err != nil {
		s.LogError(ctx, err, "Failed to fill template",
			slog.String("job_id", jobID),
			slog.String("template_id", templateID))
		return nil, fmt.Errorf("failed to fill template %s for job %s: %w", templateID, jobID, err)
	}

	s.LogInfo(ctx, "Document generated from template",
		slog.String("job_id", jobID),
		slog.String("template_id", templateID),
		slog.String("file_name", artifact.FileName))
	s.capture(jobID, "document_generated", map[string]any{
		"template_id": templateID,
		"format":      "docx",
		"file_name":   artifact.FileName,
	})
	return artifact, nil
}

func (s *documentService) capture(distinctID, event string, props map[string]any) {
	if s.posthog == nil {
		return
	}
	s.posthog.Enqueue(distinctID, event, props)
}
