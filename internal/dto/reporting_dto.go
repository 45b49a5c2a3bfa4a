package dto

import (
	"github.com/shopspring/decimal"

	"github.com/flowpro-systems/field_service_app/internal/core/domain"
)

// StatusCountResponse is one bucket of the jobs-by-status breakdown.
type StatusCountResponse struct {
	Status domain.JobStatus `json:"status"`
	Count  int64            `json:"count"`
}

// DashboardSummaryResponse defines the dashboard headline figures.
type DashboardSummaryResponse struct {
	PipelineRevenue decimal.Decimal       `json:"pipelineRevenue"`
	TotalCosts      decimal.Decimal       `json:"totalCosts"`
	JobsByStatus    []StatusCountResponse `json:"jobsByStatus"`
	OpenTaskCount   int64                 `json:"openTaskCount"`
	CustomerCount   int64                 `json:"customerCount"`
}

// ToDashboardSummaryResponse converts a domain.DashboardSummary to its DTO
func ToDashboardSummaryResponse(s *domain.DashboardSummary) DashboardSummaryResponse {
	buckets := make([]StatusCountResponse, len(s.JobsByStatus))
	for i, b := range s.JobsByStatus {
		buckets[i] = StatusCountResponse{Status: b.Status, Count: b.Count}
	}
	return DashboardSummaryResponse{
		PipelineRevenue: s.PipelineRevenue,
		TotalCosts:      s.TotalCosts,
		JobsByStatus:    buckets,
		OpenTaskCount:   s.OpenTaskCount,
		CustomerCount:   s.CustomerCount,
	}
}
