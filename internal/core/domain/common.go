package domain

import "time"

// AuditFields carries the creation and last-update stamps embedded by every
// aggregate. The By fields hold the acting user's ID.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}
