package domain

import "github.com/shopspring/decimal"

// StatusCount is the number of unarchived jobs in one lifecycle status.
type StatusCount struct {
	Status JobStatus `json:"status"`
	Count  int64     `json:"count"`
}

// DashboardSummary aggregates the headline figures shown on the dashboard.
type DashboardSummary struct {
	PipelineRevenue decimal.Decimal `json:"pipelineRevenue"` // Sum of revenue across unarchived jobs
	TotalCosts      decimal.Decimal `json:"totalCosts"`
	JobsByStatus    []StatusCount   `json:"jobsByStatus"`
	OpenTaskCount   int64           `json:"openTaskCount"`
	CustomerCount   int64           `json:"customerCount"`
}
