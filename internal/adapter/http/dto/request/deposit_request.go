package request

type ApplyDepositRequest struct {
	InvoiceID string `json:"invoice_id" binding:"required"`
}
