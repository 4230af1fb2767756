package entities

import "time"

type DepositStatus string

const (
	DepositStatusReceived DepositStatus = "received"
	DepositStatusApplied  DepositStatus = "applied"
)

// Deposit is money taken up front and later applied to an invoice.
type Deposit struct {
	ID         string        `json:"id"`
	CustomerID string        `json:"customer_id"`
	JobID      string        `json:"job_id,omitempty"`
	Amount     float64       `json:"amount"`
	Method     string        `json:"method,omitempty"`
	Status     DepositStatus `json:"status"`
	InvoiceID  string        `json:"invoice_id,omitempty"`
	ReceivedAt time.Time     `json:"received_at"`
	AppliedAt  *time.Time    `json:"applied_at,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}
