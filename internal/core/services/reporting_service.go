package services

import (
	"context"
	"fmt"

	"github.com/flowpro-systems/field_service_app/internal/core/domain"
	portsrepo "github.com/flowpro-systems/field_service_app/internal/core/ports/repositories"
	portssvc "github.com/flowpro-systems/field_service_app/internal/core/ports/services"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service
func NewReportingService(repo portsrepo.ReportingRepository) portssvc.ReportingService {
	return &reportingService{reportingRepo: repo}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// GetDashboardSummary computes the headline figures across unarchived jobs.
func (s *reportingService) GetDashboardSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	summary, err := s.reportingRepo.GetDashboardSummary(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute dashboard summary")
		return nil, fmt.Errorf("failed to compute dashboard summary: %w", err)
	}
	return summary, nil
}
