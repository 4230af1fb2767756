package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/flows"
	"fieldservice/internal/usecase/interfaces"
	mock_interfaces "fieldservice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestAIUseCase(t *testing.T) (*AIUseCase, *mock_interfaces.MockITextGenerator) {
	t.Helper()
	st := newTestStore(t)
	mustSeed(t, st.Jobs.Seed(
		entities.Job{ID: "job-1", CustomerID: "cust-1", Title: "Replace water heater", Description: "50 gal gas", Status: entities.JobStatusScheduled},
		entities.Job{ID: "job-0", CustomerID: "cust-1", Title: "Drain cleaning", Status: entities.JobStatusComplete},
	))
	mustSeed(t, st.Invoices.Seed(entities.Invoice{
		ID: "inv-1", Number: "INV-1001", CustomerID: "cust-1", Status: entities.InvoiceStatusSent,
		LineItems: []entities.LineItem{{Description: "Heater", Quantity: 1, UnitPrice: 1200, Total: 1200}},
		Subtotal:  1200, Total: 1200,
	}))

	ctrl := gomock.NewController(t)
	gen := mock_interfaces.NewMockITextGenerator(ctrl)
	catalog, err := flows.NewCatalog(gen, zap.NewNop())
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return NewAIUseCase(catalog, st.Customers, st.Jobs, st.Invoices, st.Inventory), gen
}

func TestAIUseCase_SuggestPriceForJob(t *testing.T) {
	uc, gen := newTestAIUseCase(t)

	gen.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req interfaces.GenerationRequest) (string, error) {
			if !strings.Contains(req.Prompt, "Replace water heater") || !strings.Contains(req.Prompt, "50 gal gas") {
				t.Fatalf("expected job description in prompt: %s", req.Prompt)
			}
			if !strings.Contains(req.Prompt, `job "Drain cleaning": complete`) || !strings.Contains(req.Prompt, "INV-1001") {
				t.Fatalf("expected customer history in prompt: %s", req.Prompt)
			}
			if strings.Contains(req.Prompt, `job "Replace water heater"`) {
				t.Fatalf("current job must not appear in history: %s", req.Prompt)
			}
			return `{"suggested_price": 1850, "reasoning": "unit plus install"}`, nil
		})

	out, err := uc.SuggestPriceForJob(context.Background(), "job-1", "Austin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.SuggestedPrice != 1850 {
		t.Fatalf("unexpected output: %+v", out)
	}
}

func TestAIUseCase_JobNotFoundSkipsGeneration(t *testing.T) {
	uc, gen := newTestAIUseCase(t)
	gen.EXPECT().Generate(gomock.Any(), gomock.Any()).Times(0)

	if _, err := uc.TieredEstimateForJob(context.Background(), "job-404"); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestAIUseCase_SuggestPartsListsInventory(t *testing.T) {
	uc, gen := newTestAIUseCase(t)
	gen.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req interfaces.GenerationRequest) (string, error) {
			if !strings.Contains(req.Prompt, "CAP-45 Capacitor (warehouse 2") {
				t.Fatalf("expected inventory in prompt: %s", req.Prompt)
			}
			return `{"parts": [{"name": "Capacitor", "quantity": 1}]}`, nil
		})

	out, err := uc.SuggestPartsForJob(context.Background(), "job-1")
	if err != nil || len(out.Parts) != 1 {
		t.Fatalf("unexpected result: %+v err=%v", out, err)
	}
}

func TestAIUseCase_AnalyzeInvoiceSchemaMismatch(t *testing.T) {
	uc, gen := newTestAIUseCase(t)
	gen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(`{"has_anomalies": "maybe"}`, nil)

	out, err := uc.AnalyzeInvoice(context.Background(), "inv-1")
	if !errors.Is(err, flows.ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
	if out.HasAnomalies || out.Anomalies != nil {
		t.Fatalf("expected no partial result, got %+v", out)
	}
}

func TestAIUseCase_RunByName(t *testing.T) {
	uc, gen := newTestAIUseCase(t)
	gen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(`{"vendors": []}`, nil)

	if len(uc.Flows()) != 5 {
		t.Fatalf("expected 5 flows, got %v", uc.Flows())
	}
	out, err := uc.Run(context.Background(), " find-vendors ", json.RawMessage(`{"trade":"plumbing","location":"Austin"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := out.(flows.FindVendorsOutput); !ok {
		t.Fatalf("unexpected output type %T", out)
	}
}
