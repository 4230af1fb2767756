package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is derived from the money moved against the invoice,
// except draft -> sent which is an explicit action.
type InvoiceStatus string

const (
	InvoiceStatusDraft         InvoiceStatus = "draft"
	InvoiceStatusSent          InvoiceStatus = "sent"
	InvoiceStatusPartiallyPaid InvoiceStatus = "partially_paid"
	InvoiceStatusPaid          InvoiceStatus = "paid"
	InvoiceStatusRefunded      InvoiceStatus = "refunded"
)

type InvoicePayment struct {
	ID                string    `json:"id"`
	Amount            float64   `json:"amount"`
	Method            string    `json:"method,omitempty"`
	ProviderPaymentID string    `json:"provider_payment_id,omitempty"`
	DepositID         string    `json:"deposit_id,omitempty"`
	Date              time.Time `json:"date"`
}

type InvoiceRefund struct {
	ID     string    `json:"id"`
	Amount float64   `json:"amount"`
	Reason string    `json:"reason,omitempty"`
	Date   time.Time `json:"date"`
}

// Invoice bills a customer for a job.
//
// Money model:
//   - Total = Subtotal + Tax, Tax = Subtotal * TaxRate / 100.
//   - AmountPaid is gross collected; refunds never reduce it.
//   - Refundable = AmountPaid - AmountRefunded.
type Invoice struct {
	ID             string           `json:"id"`
	Number         string           `json:"number"`
	CustomerID     string           `json:"customer_id"`
	JobID          string           `json:"job_id,omitempty"`
	LineItems      []LineItem       `json:"line_items"`
	Subtotal       float64          `json:"subtotal"`
	TaxZoneID      string           `json:"tax_zone_id,omitempty"`
	TaxRate        float64          `json:"tax_rate"`
	Tax            float64          `json:"tax"`
	Total          float64          `json:"total"`
	AmountPaid     float64          `json:"amount_paid"`
	AmountRefunded float64          `json:"amount_refunded"`
	Payments       []InvoicePayment `json:"payments,omitempty"`
	Refunds        []InvoiceRefund  `json:"refunds,omitempty"`
	Status         InvoiceStatus    `json:"status"`
	DueDate        *time.Time       `json:"due_date,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// Recalculate prices the line items and refreshes subtotal, tax and total.
func (i *Invoice) Recalculate() {
	items, subtotal := PriceLineItems(i.LineItems)
	i.LineItems = items
	i.Subtotal = subtotal
	tax := Cents(subtotal).Mul(decimal.NewFromFloat(i.TaxRate)).Div(decimal.NewFromInt(100)).Round(2)
	i.Tax = tax.InexactFloat64()
	i.Total = Cents(subtotal).Add(tax).InexactFloat64()
}

func (i Invoice) BalanceDue() decimal.Decimal {
	due := Cents(i.Total).Sub(Cents(i.AmountPaid))
	if due.IsNegative() {
		return decimal.Zero
	}
	return due
}

func (i Invoice) Refundable() decimal.Decimal {
	return Cents(i.AmountPaid).Sub(Cents(i.AmountRefunded))
}

// RefreshStatus derives the status from paid/refunded amounts.
// Invoices with no money moved keep draft or sent. Refunded is terminal and
// only reached once nothing is left to pay; refunding a partial payment
// leaves the invoice partially paid and open.
func (i *Invoice) RefreshStatus() {
	paid := Cents(i.AmountPaid)
	settled := paid.GreaterThanOrEqual(Cents(i.Total))
	switch {
	case paid.IsZero():
		if i.Status != InvoiceStatusDraft {
			i.Status = InvoiceStatusSent
		}
	case settled && Cents(i.AmountRefunded).GreaterThanOrEqual(paid):
		i.Status = InvoiceStatusRefunded
	case settled:
		i.Status = InvoiceStatusPaid
	default:
		i.Status = InvoiceStatusPartiallyPaid
	}
}

// Open reports whether the invoice still expects money.
func (i Invoice) Open() bool {
	return i.Status != InvoiceStatusPaid && i.Status != InvoiceStatusRefunded && i.BalanceDue().IsPositive()
}
