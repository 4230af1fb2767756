package usecase

import (
	"context"
	"errors"
	"testing"

	"fieldservice/internal/usecase/validation"
)

func TestTechnicianUseCase_CreateUpdate(t *testing.T) {
	st := newTestStore(t)
	uc := NewTechnicianUseCase(st.Technicians)
	ctx := context.Background()

	_, err := uc.Create(ctx, TechnicianCommand{Name: "  ", Email: "bad"})
	var verr *validation.Error
	if !errors.As(err, &verr) || verr.Fields["name"] == "" || verr.Fields["email"] == "" {
		t.Fatalf("expected name and email errors, got %v", err)
	}

	created, err := uc.Create(ctx, TechnicianCommand{Name: " Rita ", Trade: " Plumbing "})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Name != "Rita" || created.Trade != "plumbing" || !created.Active {
		t.Fatalf("unexpected technician %+v", created)
	}

	inactive := false
	updated, err := uc.Update(ctx, created.ID, TechnicianCommand{Name: "Rita M", Active: &inactive})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Rita M" || updated.Active {
		t.Fatalf("unexpected update %+v", updated)
	}

	list, _ := uc.List(ctx)
	if len(list) != 2 {
		t.Fatalf("expected 2 technicians, got %d", len(list))
	}
}

func TestTechnicianUseCase_NotFound(t *testing.T) {
	uc := NewTechnicianUseCase(newTestStore(t).Technicians)

	if _, err := uc.GetByID(context.Background(), "tech-9"); !errors.Is(err, ErrTechnicianNotFound) {
		t.Fatalf("expected ErrTechnicianNotFound, got %v", err)
	}
	if _, err := uc.GetByID(context.Background(), " "); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	if _, err := uc.Update(context.Background(), "tech-9", TechnicianCommand{Name: "x"}); !errors.Is(err, ErrTechnicianNotFound) {
		t.Fatalf("expected ErrTechnicianNotFound, got %v", err)
	}
}
