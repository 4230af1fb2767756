package entities

import (
	"strings"
	"time"
)

type Address struct {
	Street string `json:"street,omitempty"`
	City   string `json:"city,omitempty"`
	State  string `json:"state,omitempty"`
	Zip    string `json:"zip,omitempty"`
}

// Customer is a residential or commercial client.
//
// Referral metadata (source + referred-by) is free text captured at intake.
type Customer struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email,omitempty"`
	Phone          string    `json:"phone"`
	CompanyName    string    `json:"company_name,omitempty"`
	CompanyPhone   string    `json:"company_phone,omitempty"`
	Address        Address   `json:"address"`
	ReferralSource string    `json:"referral_source,omitempty"`
	ReferredBy     string    `json:"referred_by,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	Tags           []string  `json:"tags,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (c Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
