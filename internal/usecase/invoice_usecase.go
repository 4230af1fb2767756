package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"
	"fieldservice/internal/usecase/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvoiceNotFound          = errors.New("invoice not found")
	ErrInvalidInvoiceTransition = errors.New("invalid invoice status transition")
	ErrPaymentExceedsBalance    = errors.New("payment exceeds balance due")
	ErrRefundExceedsPaid        = errors.New("refund exceeds amount paid")
)

type CreateInvoiceCommand struct {
	CustomerID string          `json:"customer_id" validate:"required"`
	JobID      string          `json:"job_id"`
	LineItems  []LineItemInput `json:"line_items" validate:"min=1,dive"`
	TaxZoneID  string          `json:"tax_zone_id"`
	DueDate    *time.Time      `json:"due_date"`
}

type RecordPaymentCommand struct {
	Amount float64 `json:"amount" validate:"gt=0"`
	Method string  `json:"method"`
}

type RefundCommand struct {
	Amount float64 `json:"amount" validate:"gt=0"`
	Reason string  `json:"reason"`
}

type IInvoiceUseCase interface {
	Create(ctx context.Context, cmd CreateInvoiceCommand) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	List(ctx context.Context, status entities.InvoiceStatus) ([]entities.Invoice, error)
	Send(ctx context.Context, id string) (entities.Invoice, error)
	RecordPayment(ctx context.Context, id string, cmd RecordPaymentCommand) (entities.Invoice, error)
	Refund(ctx context.Context, id string, cmd RefundCommand) (entities.Invoice, error)
}

type InvoiceUseCase struct {
	repo      interfaces.IInvoiceRepository
	customers interfaces.ICustomerRepository
	jobs      interfaces.IJobRepository
	taxZones  interfaces.ITaxZoneRepository
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(repo interfaces.IInvoiceRepository, customers interfaces.ICustomerRepository, jobs interfaces.IJobRepository, taxZones interfaces.ITaxZoneRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, customers: customers, jobs: jobs, taxZones: taxZones}
}

func (u *InvoiceUseCase) Create(ctx context.Context, cmd CreateInvoiceCommand) (entities.Invoice, error) {
	cmd.CustomerID = strings.TrimSpace(cmd.CustomerID)
	cmd.JobID = strings.TrimSpace(cmd.JobID)
	cmd.TaxZoneID = strings.TrimSpace(cmd.TaxZoneID)
	if err := validation.Struct(cmd); err != nil {
		return entities.Invoice{}, err
	}

	if _, err := findByID(ctx, u.customers, cmd.CustomerID, customerIDOf, ErrCustomerNotFound); err != nil {
		return entities.Invoice{}, err
	}
	if cmd.JobID != "" {
		j, err := findByID(ctx, u.jobs, cmd.JobID, jobIDOf, ErrJobNotFound)
		if err != nil {
			return entities.Invoice{}, err
		}
		if j.CustomerID != cmd.CustomerID {
			return entities.Invoice{}, validation.Field("job_id", "belongs to another customer")
		}
	}

	var rate float64
	if cmd.TaxZoneID != "" {
		z, err := findByID(ctx, u.taxZones, cmd.TaxZoneID, taxZoneIDOf, ErrTaxZoneNotFound)
		if err != nil {
			return entities.Invoice{}, err
		}
		rate = z.Rate
	}

	existing, err := u.repo.List(ctx)
	if err != nil {
		return entities.Invoice{}, err
	}

	now := time.Now().UTC()
	inv := entities.Invoice{
		ID:         uuid.NewString(),
		Number:     fmt.Sprintf("INV-%d", 1001+len(existing)),
		CustomerID: cmd.CustomerID,
		JobID:      cmd.JobID,
		LineItems:  toLineItems(cmd.LineItems),
		TaxZoneID:  cmd.TaxZoneID,
		TaxRate:    rate,
		Status:     entities.InvoiceStatusDraft,
		DueDate:    cmd.DueDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	inv.Recalculate()
	return u.repo.Create(ctx, inv)
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	return findByID(ctx, u.repo, id, invoiceIDOf, ErrInvoiceNotFound)
}

func (u *InvoiceUseCase) List(ctx context.Context, status entities.InvoiceStatus) ([]entities.Invoice, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return all, nil
	}
	return filter(all, func(i entities.Invoice) bool { return i.Status == status }), nil
}

func (u *InvoiceUseCase) Send(ctx context.Context, id string) (entities.Invoice, error) {
	inv, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.Status != entities.InvoiceStatusDraft {
		return entities.Invoice{}, fmt.Errorf("%w: %s -> %s", ErrInvalidInvoiceTransition, inv.Status, entities.InvoiceStatusSent)
	}

	inv.Status = entities.InvoiceStatusSent
	inv.UpdatedAt = time.Now().UTC()
	return saveExisting(ctx, u.repo, inv, invoiceIDOf, ErrInvoiceNotFound)
}

func (u *InvoiceUseCase) RecordPayment(ctx context.Context, id string, cmd RecordPaymentCommand) (entities.Invoice, error) {
	if err := validation.Struct(cmd); err != nil {
		return entities.Invoice{}, err
	}

	inv, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if err := applyPayment(&inv, entities.InvoicePayment{
		ID:     uuid.NewString(),
		Amount: cmd.Amount,
		Method: strings.TrimSpace(cmd.Method),
	}); err != nil {
		return entities.Invoice{}, err
	}
	return saveExisting(ctx, u.repo, inv, invoiceIDOf, ErrInvoiceNotFound)
}

// Refund returns money already collected. The amount may not exceed what
// was paid minus what was already refunded; on failure nothing is written.
func (u *InvoiceUseCase) Refund(ctx context.Context, id string, cmd RefundCommand) (entities.Invoice, error) {
	if err := validation.Struct(cmd); err != nil {
		return entities.Invoice{}, err
	}

	inv, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}

	amount := entities.Cents(cmd.Amount)
	if amount.GreaterThan(inv.Refundable()) {
		return entities.Invoice{}, fmt.Errorf("%w: requested %s, refundable %s", ErrRefundExceedsPaid, amount.StringFixed(2), inv.Refundable().StringFixed(2))
	}

	now := time.Now().UTC()
	inv.Refunds = append(inv.Refunds, entities.InvoiceRefund{
		ID:     uuid.NewString(),
		Amount: amount.InexactFloat64(),
		Reason: strings.TrimSpace(cmd.Reason),
		Date:   now,
	})
	inv.AmountRefunded = entities.Cents(inv.AmountRefunded).Add(amount).InexactFloat64()
	inv.RefreshStatus()
	inv.UpdatedAt = now
	return saveExisting(ctx, u.repo, inv, invoiceIDOf, ErrInvoiceNotFound)
}

// applyPayment records p on inv when it fits in the balance due.
// inv is left untouched on error.
func applyPayment(inv *entities.Invoice, p entities.InvoicePayment) error {
	amount := entities.Cents(p.Amount)
	if !amount.IsPositive() {
		return validation.Field("amount", "must be greater than 0")
	}
	due := inv.BalanceDue()
	if amount.GreaterThan(due) {
		return fmt.Errorf("%w: requested %s, due %s", ErrPaymentExceedsBalance, amount.StringFixed(2), due.StringFixed(2))
	}

	now := time.Now().UTC()
	if p.Date.IsZero() {
		p.Date = now
	}
	p.Amount = amount.InexactFloat64()
	inv.Payments = append(inv.Payments, p)
	inv.AmountPaid = entities.Cents(inv.AmountPaid).Add(amount).InexactFloat64()
	inv.RefreshStatus()
	inv.UpdatedAt = now
	return nil
}

// outstanding sums the balance due of open invoices.
func outstanding(invoices []entities.Invoice) decimal.Decimal {
	sum := decimal.Zero
	for _, inv := range invoices {
		if inv.Open() {
			sum = sum.Add(inv.BalanceDue())
		}
	}
	return sum
}
