package routes

import "github.com/gin-gonic/gin"

const (
	PathInvoices = "/invoices"
	PathDeposits = "/deposits"
)

func addBillingRoutes(rg *gin.RouterGroup, h Handlers) {
	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("", h.Invoice.CreateInvoice)
		invoices.GET("", h.Invoice.ListInvoices)
		invoices.GET("/:id", h.Invoice.GetInvoice)
		invoices.POST("/:id/send", h.Invoice.SendInvoice)
		invoices.POST("/:id/payments", h.Invoice.RecordPayment)
		invoices.POST("/:id/refunds", h.Invoice.RefundInvoice)
		// Mercado Pago charge of the balance due.
		invoices.POST("/:id/collect", h.Invoice.CollectPayment)
		invoices.POST("/:id/ai/anomalies", h.AI.AnalyzeInvoice)
	}

	deposits := rg.Group(PathDeposits)
	{
		deposits.POST("", h.Deposit.CreateDeposit)
		deposits.GET("", h.Deposit.ListDeposits)
		deposits.GET("/:id", h.Deposit.GetDeposit)
		deposits.POST("/:id/apply", h.Deposit.ApplyDeposit)
	}
}
