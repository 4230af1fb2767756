package entities

import "time"

type ChangeOrderStatus string

const (
	ChangeOrderStatusPending  ChangeOrderStatus = "pending"
	ChangeOrderStatusApproved ChangeOrderStatus = "approved"
	ChangeOrderStatusRejected ChangeOrderStatus = "rejected"
)

// ChangeOrder adjusts the agreed scope of a job. Amount may be negative (credit).
type ChangeOrder struct {
	ID          string            `json:"id"`
	JobID       string            `json:"job_id"`
	Description string            `json:"description"`
	Amount      float64           `json:"amount"`
	Status      ChangeOrderStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
