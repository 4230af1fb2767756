package handlers

import (
	"net/http"

	request "fieldservice/internal/adapter/http/dto/request"
	response "fieldservice/internal/adapter/http/dto/response"
	"fieldservice/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server-sent event names used by the streaming endpoint.
const (
	eventChunk  = "chunk"
	eventResult = "result"
	eventError  = "error"
)

// AIHandler exposes the prompt flows, both by name and through the
// record-aware helpers for jobs and invoices.
type AIHandler struct {
	usecase usecase.IAIUseCase
	log     *zap.Logger
}

func NewAIHandler(uc usecase.IAIUseCase, log *zap.Logger) *AIHandler {
	return &AIHandler{usecase: uc, log: log.With(zap.String("component", "ai_handler"))}
}

// ListFlows godoc
// @Summary List available AI flows
// @Tags ai
// @Produce json
// @Success 200 {object} response.FlowsResponse
// @Router /ai [get]
func (h *AIHandler) ListFlows(c *gin.Context) {
	c.JSON(http.StatusOK, response.FlowsResponse{Flows: h.usecase.Flows()})
}

// RunFlow godoc
// @Summary Run an AI flow
// @Description Input is validated before the model is called; the output is validated against the flow schema.
// @Tags ai
// @Accept json
// @Produce json
// @Param flow path string true "Flow name"
// @Success 200 {object} response.FlowResultResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 422 {object} pkg.HTTPError
// @Failure 502 {object} pkg.HTTPError
// @Router /ai/{flow} [post]
func (h *AIHandler) RunFlow(c *gin.Context) {
	flow := c.Param("flow")
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	out, err := h.usecase.Run(c.Request.Context(), flow, raw)
	if err != nil {
		h.log.Warn("flow failed", zap.String("op", "run"), zap.String("flow", flow), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FlowResultResponse{Flow: flow, Result: out})
}

// StreamFlow godoc
// @Summary Run an AI flow with streamed output
// @Description Server-sent events: zero or more "chunk" events with raw model text, then one "result" or "error" event.
// @Tags ai
// @Accept json
// @Produce text/event-stream
// @Param flow path string true "Flow name"
// @Success 200 {string} string "event stream"
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Router /ai/{flow}/stream [post]
func (h *AIHandler) StreamFlow(c *gin.Context) {
	flow := c.Param("flow")
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	// Until the first chunk is written, failures are still plain JSON errors.
	started := false
	out, err := h.usecase.Stream(c.Request.Context(), flow, raw, func(chunk string) error {
		if !started {
			started = true
			c.Header("Cache-Control", "no-cache")
			c.Header("Connection", "keep-alive")
		}
		c.SSEvent(eventChunk, chunk)
		c.Writer.Flush()
		return c.Request.Context().Err()
	})
	if err != nil {
		h.log.Warn("flow failed", zap.String("op", "stream"), zap.String("flow", flow), zap.Bool("started", started), zap.Error(err))
		if !started {
			respondError(c, err)
			return
		}
		c.SSEvent(eventError, mapError(err).ToHTTPError())
		c.Writer.Flush()
		return
	}
	c.SSEvent(eventResult, response.FlowResultResponse{Flow: flow, Result: out})
	c.Writer.Flush()
}

func (h *AIHandler) SuggestPriceForJob(c *gin.Context) {
	var payload request.SuggestPriceRequest
	// region is optional, so an empty body is accepted
	if c.Request.ContentLength != 0 && !bindJSON(c, &payload) {
		return
	}
	out, err := h.usecase.SuggestPriceForJob(c.Request.Context(), c.Param("id"), payload.Region)
	h.respond(c, "suggest_price_for_job", out, err)
}

func (h *AIHandler) TieredEstimateForJob(c *gin.Context) {
	out, err := h.usecase.TieredEstimateForJob(c.Request.Context(), c.Param("id"))
	h.respond(c, "tiered_estimate_for_job", out, err)
}

func (h *AIHandler) SuggestPartsForJob(c *gin.Context) {
	out, err := h.usecase.SuggestPartsForJob(c.Request.Context(), c.Param("id"))
	h.respond(c, "suggest_parts_for_job", out, err)
}

func (h *AIHandler) AnalyzeInvoice(c *gin.Context) {
	out, err := h.usecase.AnalyzeInvoice(c.Request.Context(), c.Param("id"))
	h.respond(c, "analyze_invoice", out, err)
}

func (h *AIHandler) respond(c *gin.Context, op string, out any, err error) {
	if err != nil {
		h.log.Warn("flow failed", zap.String("op", op), zap.String("id", c.Param("id")), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
