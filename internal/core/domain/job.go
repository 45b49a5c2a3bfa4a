package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JobStatus tracks a job through its lifecycle. The status is independent of
// which document types have been generated for the job.
type JobStatus string

const (
	JobStatusQuote        JobStatus = "QUOTE"
	JobStatusWorkOrder    JobStatus = "WORK_ORDER"
	JobStatusCompleted    JobStatus = "COMPLETED"
	JobStatusUnsuccessful JobStatus = "UNSUCCESSFUL"
)

// Job represents a unit of billable/trackable field-service work.
type Job struct {
	JobID       string          `json:"jobID"`     // Primary Key (e.g., UUID)
	JobNumber   int64           `json:"jobNumber"` // Sequential, assigned once at creation
	Title       string          `json:"title"`
	Reference   string          `json:"reference"`   // Optional customer PO / reference string
	SiteAddress string          `json:"siteAddress"` // Optional, may differ from the customer address
	Status      JobStatus       `json:"status"`
	Revenue     decimal.Decimal `json:"revenue"`
	Costs       decimal.Decimal `json:"costs"`
	Notes       string          `json:"notes"`
	DueDate     *time.Time      `json:"dueDate,omitempty"`
	CustomerID  string          `json:"customerID"` // Nullable FK -> customers.customer_id
	Archived    bool            `json:"archived"`
	AuditFields

	// Customer is the resolved client, nil when the job has no assigned
	// customer (walk-in work).
	Customer *Customer `json:"customer,omitempty"`
	// LineItems are the billable components of the job, may be empty.
	LineItems []LineItem `json:"lineItems"`
}

// Total returns the sum of line subtotals, or the job revenue when the job has
// no line items.
func (j Job) Total() decimal.Decimal {
	if len(j.LineItems) == 0 {
		return j.Revenue
	}
	total := decimal.Zero
	for _, li := range j.LineItems {
		total = total.Add(li.Subtotal())
	}
	return total
}

// LineItem is a billable sub-component of a Job.
type LineItem struct {
	LineItemID  string          `json:"lineItemID"` // Primary Key (e.g., UUID)
	JobID       string          `json:"jobID"`      // FK -> jobs.job_id (Not Null)
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`  // Positive
	UnitPrice   decimal.Decimal `json:"unitPrice"` // >= 0
	AuditFields
}

// Subtotal returns quantity multiplied by unit price.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.Quantity.Mul(li.UnitPrice)
}
