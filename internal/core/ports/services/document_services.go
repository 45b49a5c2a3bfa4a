package services

import (
	"context"

	"github.com/flowpro-systems/field_service_app/internal/docgen"
)

// DocumentSvcFacade generates downloadable documents for a job.
type DocumentSvcFacade interface {
	// GeneratePDF composes a branded PDF of the given document type for a job.
	// Unknown document types degrade to the work-order layout.
	GeneratePDF(ctx context.Context, jobID string, docType string) (*docgen.Artifact, error)

	// GenerateFromTemplate fills a stored DOCX template with the job's details.
	GenerateFromTemplate(ctx context.Context, jobID string, templateID string) (*docgen.Artifact, error)
}
