package entities

import (
	"strings"
	"time"
)

// Vendor is a parts/material supplier.
type Vendor struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ContactName string    `json:"contact_name,omitempty"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Website     string    `json:"website,omitempty"`
	Trades      []string  `json:"trades,omitempty"`
	Address     Address   `json:"address"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (v Vendor) ServesTrade(trade string) bool {
	for _, t := range v.Trades {
		if strings.EqualFold(strings.TrimSpace(t), strings.TrimSpace(trade)) {
			return true
		}
	}
	return false
}
