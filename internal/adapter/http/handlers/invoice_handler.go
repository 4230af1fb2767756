package handlers

import (
	"net/http"
	"strings"

	request "fieldservice/internal/adapter/http/dto/request"
	response "fieldservice/internal/adapter/http/dto/response"
	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InvoiceHandler handles invoices, manual payments, refunds and provider
// payment collection.
type InvoiceHandler struct {
	usecase  usecase.IInvoiceUseCase
	payments usecase.IPaymentUseCase
	log      *zap.Logger
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase, payments usecase.IPaymentUseCase, log *zap.Logger) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc, payments: payments, log: log.With(zap.String("component", "invoice_handler"))}
}

// CreateInvoice godoc
// @Summary Create a draft invoice
// @Description Line items are priced and the tax zone rate, when given, is applied to the subtotal.
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body usecase.CreateInvoiceCommand true "Invoice"
// @Success 201 {object} response.InvoiceResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Router /invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var cmd usecase.CreateInvoiceCommand
	if !bindJSON(c, &cmd) {
		return
	}
	inv, err := h.usecase.Create(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromInvoice(inv))
}

// ListInvoices godoc
// @Summary List invoices
// @Tags invoices
// @Produce json
// @Param status query string false "draft, sent, partially_paid, paid or refunded"
// @Success 200 {array} response.InvoiceResponse
// @Router /invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	var q request.InvoiceListQuery
	if !bindQuery(c, &q) {
		return
	}
	list, err := h.usecase.List(c.Request.Context(), entities.InvoiceStatus(strings.TrimSpace(q.Status)))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromList(list, response.FromInvoice))
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	inv, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

func (h *InvoiceHandler) SendInvoice(c *gin.Context) {
	inv, err := h.usecase.Send(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// RecordPayment godoc
// @Summary Record a manual payment
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param payment body usecase.RecordPaymentCommand true "Payment"
// @Success 200 {object} response.InvoiceResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /invoices/{id}/payments [post]
func (h *InvoiceHandler) RecordPayment(c *gin.Context) {
	var cmd usecase.RecordPaymentCommand
	if !bindJSON(c, &cmd) {
		return
	}
	inv, err := h.usecase.RecordPayment(c.Request.Context(), c.Param("id"), cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// RefundInvoice godoc
// @Summary Refund part or all of the amount paid
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param refund body usecase.RefundCommand true "Refund"
// @Success 200 {object} response.InvoiceResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /invoices/{id}/refunds [post]
func (h *InvoiceHandler) RefundInvoice(c *gin.Context) {
	var cmd usecase.RefundCommand
	if !bindJSON(c, &cmd) {
		return
	}
	inv, err := h.usecase.Refund(c.Request.Context(), c.Param("id"), cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// CollectPayment godoc
// @Summary Charge the balance due through Mercado Pago
// @Description Body is the Mercado Pago payment payload, optionally wrapped as {"mp_payload": {...}}.
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param payload body request.PaymentCollectRequest false "Mercado Pago payload"
// @Success 200 {object} response.InvoiceResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 402 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /invoices/{id}/collect [post]
func (h *InvoiceHandler) CollectPayment(c *gin.Context) {
	invoiceID := c.Param("id")
	log := h.log.With(zap.String("op", "collect_payment"), zap.String("invoice_id", invoiceID))

	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	payload, err := request.ResolveMPPayload(raw)
	if err != nil {
		log.Info("invalid payload", zap.Error(err))
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	inv, err := h.payments.CollectPayment(c.Request.Context(), invoiceID, payload)
	if err != nil {
		log.Warn("collect failed", zap.Error(err))
		respondError(c, err)
		return
	}
	log.Info("collect success", zap.String("status", string(inv.Status)), zap.Float64("amount_paid", inv.AmountPaid))
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}
