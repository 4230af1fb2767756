package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"fieldservice/internal/adapter/http/handlers/mocks"
	"fieldservice/internal/usecase"
	"fieldservice/internal/usecase/flows"
	"fieldservice/internal/usecase/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newAIRouter(uc usecase.IAIUseCase) *gin.Engine {
	h := NewAIHandler(uc, zap.NewNop())
	r := gin.New()
	r.GET("/v1/ai", h.ListFlows)
	r.POST("/v1/ai/:flow", h.RunFlow)
	r.POST("/v1/ai/:flow/stream", h.StreamFlow)
	r.POST("/v1/jobs/:id/ai/suggest-price", h.SuggestPriceForJob)
	r.POST("/v1/invoices/:id/ai/anomalies", h.AnalyzeInvoice)
	return r
}

func TestAIHandler_RunFlow(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAIUseCase(ctrl)
		uc.EXPECT().Run(gomock.Any(), flows.SuggestPriceFlow, json.RawMessage(`{"job_description":"fix"}`)).
			Return(flows.SuggestPriceOutput{SuggestedPrice: 120, Reasoning: "labor"}, nil)

		w := performRequest(newAIRouter(uc), http.MethodPost, "/v1/ai/suggest-price", `{"job_description":"fix"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var got struct {
			Flow   string                   `json:"flow"`
			Result flows.SuggestPriceOutput `json:"result"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if got.Flow != flows.SuggestPriceFlow || got.Result.SuggestedPrice != 120 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	cases := []struct {
		name string
		err  error
		code int
	}{
		{"missing input", validation.Field("job_description", "is required"), http.StatusBadRequest},
		{"unknown flow", fmt.Errorf("%w: nope", flows.ErrUnknownFlow), http.StatusNotFound},
		{"schema mismatch", fmt.Errorf("%w: suggest-price: bad", flows.ErrSchemaMismatch), http.StatusUnprocessableEntity},
		{"provider failure", fmt.Errorf("%w: suggest-price: quota", flows.ErrGenerationFailed), http.StatusBadGateway},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIAIUseCase(ctrl)
			uc.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

			w := performRequest(newAIRouter(uc), http.MethodPost, "/v1/ai/suggest-price", `{}`)
			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, w.Code)
			}
			if strings.Contains(w.Body.String(), "quota") || strings.Contains(w.Body.String(), "bad") {
				t.Fatalf("provider detail leaked: %s", w.Body.String())
			}
		})
	}
}

func TestAIHandler_StreamFlow(t *testing.T) {
	t.Run("chunks then result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAIUseCase(ctrl)
		uc.EXPECT().Stream(gomock.Any(), flows.SuggestPartsFlow, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ json.RawMessage, onChunk func(string) error) (any, error) {
				for _, c := range []string{`{"parts":`, `[]}`} {
					if err := onChunk(c); err != nil {
						return nil, err
					}
				}
				return flows.SuggestPartsOutput{Parts: []flows.PartSuggestion{}}, nil
			})

		w := performRequest(newAIRouter(uc), http.MethodPost, "/v1/ai/suggest-parts/stream", `{"job_description":"x"}`)
		body := w.Body.String()
		if w.Code != http.StatusOK || !strings.Contains(w.Header().Get("Content-Type"), "text/event-stream") {
			t.Fatalf("expected event stream, got %d %q", w.Code, w.Header().Get("Content-Type"))
		}
		if strings.Count(body, "event:chunk") != 2 || !strings.Contains(body, "event:result") {
			t.Fatalf("unexpected stream: %s", body)
		}
		if strings.Index(body, "event:result") < strings.LastIndex(body, "event:chunk") {
			t.Fatalf("result must follow chunks: %s", body)
		}
	})

	t.Run("error before first chunk is plain json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAIUseCase(ctrl)
		uc.EXPECT().Stream(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, validation.Field("job_description", "is required"))

		w := performRequest(newAIRouter(uc), http.MethodPost, "/v1/ai/suggest-parts/stream", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if decodeError(t, w).Fields["job_description"] != "is required" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("error after chunks is an error event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAIUseCase(ctrl)
		uc.EXPECT().Stream(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ json.RawMessage, onChunk func(string) error) (any, error) {
				_ = onChunk(`{"parts": "nope"}`)
				return nil, fmt.Errorf("%w: suggest-parts: wrong type", flows.ErrSchemaMismatch)
			})

		w := performRequest(newAIRouter(uc), http.MethodPost, "/v1/ai/suggest-parts/stream", `{"job_description":"x"}`)
		body := w.Body.String()
		if !strings.Contains(body, "event:error") || !strings.Contains(body, "AI_SCHEMA_MISMATCH") {
			t.Fatalf("expected error event, got %s", body)
		}
		if strings.Contains(body, "event:result") {
			t.Fatalf("no result expected after error: %s", body)
		}
	})
}

func TestAIHandler_RecordHelpers(t *testing.T) {
	t.Run("suggest price without body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAIUseCase(ctrl)
		uc.EXPECT().SuggestPriceForJob(gomock.Any(), "job-1", "").
			Return(flows.SuggestPriceOutput{SuggestedPrice: 99, Reasoning: "r"}, nil)

		w := performRequest(newAIRouter(uc), http.MethodPost, "/v1/jobs/job-1/ai/suggest-price", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("suggest price with region", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAIUseCase(ctrl)
		uc.EXPECT().SuggestPriceForJob(gomock.Any(), "job-1", "Austin").
			Return(flows.SuggestPriceOutput{SuggestedPrice: 99, Reasoning: "r"}, nil)

		w := performRequest(newAIRouter(uc), http.MethodPost, "/v1/jobs/job-1/ai/suggest-price", `{"region":"Austin"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invoice not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAIUseCase(ctrl)
		uc.EXPECT().AnalyzeInvoice(gomock.Any(), "inv-9").Return(flows.InvoiceAnomaliesOutput{}, usecase.ErrInvoiceNotFound)

		w := performRequest(newAIRouter(uc), http.MethodPost, "/v1/invoices/inv-9/ai/anomalies", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list flows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAIUseCase(ctrl)
		uc.EXPECT().Flows().Return([]string{"find-vendors", "suggest-price"})

		w := performRequest(newAIRouter(uc), http.MethodGet, "/v1/ai", "")
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "find-vendors") {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}
