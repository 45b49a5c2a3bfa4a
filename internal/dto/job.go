package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/flowpro-systems/field_service_app/internal/core/domain"
)

// LineItemRequest defines one line item supplied when creating or updating a job.
type LineItemRequest struct {
	Description string          `json:"description" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// CreateJobRequest defines the data needed to create a new job.
// The job number is allocated server side and cannot be supplied.
type CreateJobRequest struct {
	Title       string            `json:"title" binding:"required"`
	Reference   string            `json:"reference"`
	SiteAddress string            `json:"siteAddress"`
	Status      domain.JobStatus  `json:"status" binding:"omitempty,oneof=QUOTE WORK_ORDER COMPLETED UNSUCCESSFUL"`
	Revenue     decimal.Decimal   `json:"revenue"`
	Costs       decimal.Decimal   `json:"costs"`
	Notes       string            `json:"notes"`
	DueDate     *time.Time        `json:"dueDate"`
	CustomerID  string            `json:"customerID"`
	LineItems   []LineItemRequest `json:"lineItems" binding:"omitempty,dive"`
}

// UpdateJobRequest defines the data allowed for updating a job.
// Use pointers to distinguish between zero-value updates and fields not provided.
// A non-nil LineItems replaces the full set of line items.
type UpdateJobRequest struct {
	Title       *string            `json:"title"`
	Reference   *string            `json:"reference"`
	SiteAddress *string            `json:"siteAddress"`
	Status      *domain.JobStatus  `json:"status" binding:"omitempty,oneof=QUOTE WORK_ORDER COMPLETED UNSUCCESSFUL"`
	Revenue     *decimal.Decimal   `json:"revenue"`
	Costs       *decimal.Decimal   `json:"costs"`
	Notes       *string            `json:"notes"`
	DueDate     *time.Time         `json:"dueDate"`
	CustomerID  *string            `json:"customerID"`
	Archived    *bool              `json:"archived"`
	LineItems   *[]LineItemRequest `json:"lineItems" binding:"omitempty,dive"`
}

// LineItemResponse defines the data returned for a line item.
type LineItemResponse struct {
	LineItemID  string          `json:"lineItemID"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// JobResponse defines the data returned for a job.
type JobResponse struct {
	JobID         string             `json:"jobID"`
	JobNumber     int64              `json:"jobNumber"`
	Title         string             `json:"title"`
	Reference     string             `json:"reference"`
	SiteAddress   string             `json:"siteAddress"`
	Status        domain.JobStatus   `json:"status"`
	Revenue       decimal.Decimal    `json:"revenue"`
	Costs         decimal.Decimal    `json:"costs"`
	Total         decimal.Decimal    `json:"total"`
	Notes         string             `json:"notes"`
	DueDate       *time.Time         `json:"dueDate"`
	CustomerID    string             `json:"customerID"`
	Archived      bool               `json:"archived"`
	Customer      *CustomerResponse  `json:"customer,omitempty"`
	LineItems     []LineItemResponse `json:"lineItems"`
	CreatedAt     time.Time          `json:"createdAt"`
	CreatedBy     string             `json:"createdBy"`
	LastUpdatedAt time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy string             `json:"lastUpdatedBy"`
}

// ToJobResponse converts a domain.Job to JobResponse DTO
func ToJobResponse(j *domain.Job) JobResponse {
	items := make([]LineItemResponse, len(j.LineItems))
	for i, li := range j.LineItems {
		items[i] = LineItemResponse{
			LineItemID:  li.LineItemID,
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			Subtotal:    li.Subtotal(),
		}
	}
	resp := JobResponse{
		JobID:         j.JobID,
		JobNumber:     j.JobNumber,
		Title:         j.Title,
		Reference:     j.Reference,
		SiteAddress:   j.SiteAddress,
		Status:        j.Status,
		Revenue:       j.Revenue,
		Costs:         j.Costs,
		Total:         j.Total(),
		Notes:         j.Notes,
		DueDate:       j.DueDate,
		CustomerID:    j.CustomerID,
		Archived:      j.Archived,
		LineItems:     items,
		CreatedAt:     j.CreatedAt,
		CreatedBy:     j.CreatedBy,
		LastUpdatedAt: j.LastUpdatedAt,
		LastUpdatedBy: j.LastUpdatedBy,
	}
	if j.Customer != nil {
		c := ToCustomerResponse(j.Customer)
		resp.Customer = &c
	}
	return resp
}

// ListJobsParams defines query parameters for listing jobs.
type ListJobsParams struct {
	Status          string `form:"status" binding:"omitempty,oneof=QUOTE WORK_ORDER COMPLETED UNSUCCESSFUL"`
	IncludeArchived bool   `form:"includeArchived,default=false"`
	Limit           int    `form:"limit,default=50"`
	Offset          int    `form:"offset,default=0"`
}

// ListJobsResponse wraps the list of jobs.
type ListJobsResponse struct {
	Jobs []JobResponse `json:"jobs"`
}

// ToListJobsResponse converts a slice of domain.Job to ListJobsResponse DTO
func ToListJobsResponse(jobs []domain.Job) ListJobsResponse {
	res := make([]JobResponse, len(jobs))
	for i, j := range jobs {
		res[i] = ToJobResponse(&j)
	}
	return ListJobsResponse{Jobs: res}
}
