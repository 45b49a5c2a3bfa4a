package dto

import (
	"time"

	"github.com/flowpro-systems/field_service_app/internal/core/domain"
)

// CreateDocTemplateRequest defines the data needed to upload a document template.
// Content is the uploaded DOCX, base64 encoded, optionally carrying a data URI prefix.
type CreateDocTemplateRequest struct {
	Name    string `json:"name" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// DocTemplateResponse defines the data returned for a template.
// The template body is never echoed back, only its metadata.
type DocTemplateResponse struct {
	TemplateID    string    `json:"templateID"`
	Name          string    `json:"name"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToDocTemplateResponse converts a domain.DocTemplate to DocTemplateResponse DTO
func ToDocTemplateResponse(t *domain.DocTemplate) DocTemplateResponse {
	return DocTemplateResponse{
		TemplateID:    t.TemplateID,
		Name:          t.Name,
		CreatedAt:     t.CreatedAt,
		CreatedBy:     t.CreatedBy,
		LastUpdatedAt: t.LastUpdatedAt,
		LastUpdatedBy: t.LastUpdatedBy,
	}
}

// ListDocTemplatesParams defines query parameters for listing templates.
type ListDocTemplatesParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// ListDocTemplatesResponse wraps the list of templates.
type ListDocTemplatesResponse struct {
	Templates []DocTemplateResponse `json:"templates"`
}

// ToListDocTemplatesResponse converts a slice of domain.DocTemplate to ListDocTemplatesResponse DTO
func ToListDocTemplatesResponse(templates []domain.DocTemplate) ListDocTemplatesResponse {
	res := make([]DocTemplateResponse, len(templates))
	for i, t := range templates {
		res[i] = ToDocTemplateResponse(&t)
	}
	return ListDocTemplatesResponse{Templates: res}
}
