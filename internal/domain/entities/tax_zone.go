package entities

import "time"

// TaxZone is a sales tax configuration applied to invoices.
// Rate is a percentage (8.25 means 8.25%).
type TaxZone struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Rate      float64   `json:"rate"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
