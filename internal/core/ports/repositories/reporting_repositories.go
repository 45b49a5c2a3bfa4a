package repositories

import (
	"context"

	"github.com/flowpro-systems/field_service_app/internal/core/domain"
)

// ReportingRepository defines the read-only aggregation queries behind the
// dashboard. Figures only consider unarchived jobs.
type ReportingRepository interface {
	// GetDashboardSummary computes the pipeline totals, status breakdown,
	// open task count and customer count in one round trip.
	GetDashboardSummary(ctx context.Context) (*domain.DashboardSummary, error)
}
