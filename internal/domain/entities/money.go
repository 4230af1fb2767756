package entities

import "github.com/shopspring/decimal"

// LineItem is a priced line shared by estimates and invoices.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// Cents converts a float amount to a decimal rounded to two places.
// Every money comparison goes through it so 0.1+0.2 style drift never
// decides whether a refund or payment is accepted.
func Cents(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// RoundCents rounds a float amount to two decimal places.
func RoundCents(v float64) float64 {
	return Cents(v).InexactFloat64()
}

// PriceLineItems fills each line total and returns the sum.
func PriceLineItems(items []LineItem) ([]LineItem, float64) {
	out := make([]LineItem, len(items))
	sum := decimal.Zero
	for i, it := range items {
		total := decimal.NewFromFloat(it.Quantity).Mul(decimal.NewFromFloat(it.UnitPrice)).Round(2)
		it.Total = total.InexactFloat64()
		out[i] = it
		sum = sum.Add(total)
	}
	return out, sum.Round(2).InexactFloat64()
}
