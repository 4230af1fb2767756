package usecase

import (
	"context"
	"errors"
	"strings"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"
)

var ErrInvalidID = errors.New("invalid id")

// LineItemInput is a line as entered by the user; totals are computed.
type LineItemInput struct {
	Description string  `json:"description" validate:"required"`
	Quantity    float64 `json:"quantity" validate:"gt=0"`
	UnitPrice   float64 `json:"unit_price" validate:"gte=0"`
}

func toLineItems(in []LineItemInput) []entities.LineItem {
	out := make([]entities.LineItem, len(in))
	for i, l := range in {
		out[i] = entities.LineItem{
			Description: strings.TrimSpace(l.Description),
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
		}
	}
	return out
}

// findByID loads a record and maps the repository's zero value to notFound.
func findByID[T any](ctx context.Context, repo interfaces.IRepository[T], id string, idOf func(T) string, notFound error) (T, error) {
	var zero T
	id = strings.TrimSpace(id)
	if id == "" {
		return zero, ErrInvalidID
	}

	rec, err := repo.GetByID(ctx, id)
	if err != nil {
		return zero, err
	}
	if idOf(rec) == "" {
		return zero, notFound
	}
	return rec, nil
}

// saveExisting writes rec back and maps a vanished record to notFound.
func saveExisting[T any](ctx context.Context, repo interfaces.IRepository[T], rec T, idOf func(T) string, notFound error) (T, error) {
	var zero T
	updated, err := repo.Update(ctx, rec)
	if err != nil {
		return zero, err
	}
	if idOf(updated) == "" {
		return zero, notFound
	}
	return updated, nil
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

func customerIDOf(c entities.Customer) string           { return c.ID }
func technicianIDOf(t entities.Technician) string       { return t.ID }
func jobIDOf(j entities.Job) string                     { return j.ID }
func estimateIDOf(e entities.Estimate) string           { return e.ID }
func changeOrderIDOf(c entities.ChangeOrder) string     { return c.ID }
func invoiceIDOf(i entities.Invoice) string             { return i.ID }
func depositIDOf(d entities.Deposit) string             { return d.ID }
func purchaseOrderIDOf(p entities.PurchaseOrder) string { return p.ID }
func inventoryItemIDOf(i entities.InventoryItem) string { return i.ID }
func vendorIDOf(v entities.Vendor) string               { return v.ID }
func taxZoneIDOf(z entities.TaxZone) string             { return z.ID }
