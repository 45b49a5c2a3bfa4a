package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/flowpro-systems/field_service_app/internal/core/domain"
	portsrepo "github.com/flowpro-systems/field_service_app/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	pool *pgxpool.Pool
}

func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{pool: pool}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetDashboardSummary aggregates the dashboard figures over unarchived jobs.
func (r *PgxReportingRepository) GetDashboardSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	summary := &domain.DashboardSummary{
		PipelineRevenue: decimal.Zero,
		TotalCosts:      decimal.Zero,
	}

	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(revenue), 0), COALESCE(SUM(costs), 0)
		FROM jobs
		WHERE archived = FALSE;
	`).Scan(&summary.PipelineRevenue, &summary.TotalCosts)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate job totals: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT status, COUNT(*)
		FROM jobs
		WHERE archived = FALSE
		GROUP BY status
		ORDER BY status;
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to count jobs by status: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var bucket domain.StatusCount
		if err := rows.Scan(&bucket.Status, &bucket.Count); err != nil {
			return nil, fmt.Errorf("failed to scan status count row: %w", err)
		}
		summary.JobsByStatus = append(summary.JobsByStatus, bucket)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating status count rows: %w", err)
	}

	err = r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM tasks WHERE is_completed = FALSE;`).Scan(&summary.OpenTaskCount)
	if err != nil {
		return nil, fmt.Errorf("failed to count open tasks: %w", err)
	}

	err = r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM customers;`).Scan(&summary.CustomerCount)
	if err != nil {
		return nil, fmt.Errorf("failed to count customers: %w", err)
	}

	return summary, nil
}
