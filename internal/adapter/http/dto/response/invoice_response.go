package response

import "fieldservice/internal/domain/entities"

// InvoiceResponse adds the derived balances clients need to render payment
// and refund forms.
type InvoiceResponse struct {
	entities.Invoice
	BalanceDue float64 `json:"balance_due"`
	Refundable float64 `json:"refundable"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		Invoice:    inv,
		BalanceDue: inv.BalanceDue().InexactFloat64(),
		Refundable: inv.Refundable().InexactFloat64(),
	}
}

type ApplyDepositResponse struct {
	Deposit entities.Deposit `json:"deposit"`
	Invoice InvoiceResponse  `json:"invoice"`
}

func FromAppliedDeposit(d entities.Deposit, inv entities.Invoice) ApplyDepositResponse {
	return ApplyDepositResponse{Deposit: d, Invoice: FromInvoice(inv)}
}
