package services

import (
	"context"

	"github.com/flowpro-systems/field_service_app/internal/core/domain"
)

// ReportingService defines operations for dashboard reporting
type ReportingService interface {
	// GetDashboardSummary computes the headline figures across unarchived jobs.
	GetDashboardSummary(ctx context.Context) (*domain.DashboardSummary, error)
}
