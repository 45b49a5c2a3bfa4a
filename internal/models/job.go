package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JobStatus mirrors domain.JobStatus for DB storage.
type JobStatus string

const (
	JobStatusQuote        JobStatus = "QUOTE"
	JobStatusWorkOrder    JobStatus = "WORK_ORDER"
	JobStatusCompleted    JobStatus = "COMPLETED"
	JobStatusUnsuccessful JobStatus = "UNSUCCESSFUL"
)

// Job represents a row in the jobs table.
// Note: CustomerID uses string for the nullable foreign key; the repository
// maps it through sql.NullString.
type Job struct {
	JobID       string          `db:"job_id"`
	JobNumber   int64           `db:"job_number"`
	Title       string          `db:"title"`
	Reference   string          `db:"reference"`
	SiteAddress string          `db:"site_address"`
	Status      JobStatus       `db:"status"`
	Revenue     decimal.Decimal `db:"revenue"`
	Costs       decimal.Decimal `db:"costs"`
	Notes       string          `db:"notes"`
	DueDate     *time.Time      `db:"due_date"`
	CustomerID  string          `db:"customer_id"` // Nullable
	Archived    bool            `db:"archived"`
	AuditFields
}

// LineItem represents a row in the line_items table.
type LineItem struct {
	LineItemID  string          `db:"line_item_id"`
	JobID       string          `db:"job_id"`
	Description string          `db:"description"`
	Quantity    decimal.Decimal `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	AuditFields
}
