package entities

import "time"

// EstimateStatus represents the lifecycle of a quote sent to a customer.
//
// Domain notes:
//   - Only draft or sent estimates can be approved or rejected.
//   - Total is always derived from the line items.
type EstimateStatus string

const (
	EstimateStatusDraft    EstimateStatus = "draft"
	EstimateStatusSent     EstimateStatus = "sent"
	EstimateStatusApproved EstimateStatus = "approved"
	EstimateStatusRejected EstimateStatus = "rejected"
)

func (s EstimateStatus) Open() bool {
	return s == EstimateStatusDraft || s == EstimateStatusSent
}

// Estimate is a quote for a job.
type Estimate struct {
	ID         string         `json:"id"`
	JobID      string         `json:"job_id,omitempty"`
	CustomerID string         `json:"customer_id"`
	Title      string         `json:"title,omitempty"`
	LineItems  []LineItem     `json:"line_items"`
	Total      float64        `json:"total"`
	Status     EstimateStatus `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}
