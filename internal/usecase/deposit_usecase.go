package usecase

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"
	"fieldservice/internal/usecase/validation"

	"github.com/google/uuid"
)

var (
	ErrDepositNotFound         = errors.New("deposit not found")
	ErrDepositAlreadyApplied   = errors.New("deposit already applied")
	ErrDepositCustomerMismatch = errors.New("deposit and invoice belong to different customers")
)

type CreateDepositCommand struct {
	CustomerID string  `json:"customer_id" validate:"required"`
	JobID      string  `json:"job_id"`
	Amount     float64 `json:"amount" validate:"gt=0"`
	Method     string  `json:"method"`
}

type IDepositUseCase interface {
	Create(ctx context.Context, cmd CreateDepositCommand) (entities.Deposit, error)
	GetByID(ctx context.Context, id string) (entities.Deposit, error)
	List(ctx context.Context, customerID string) ([]entities.Deposit, error)
	ApplyToInvoice(ctx context.Context, depositID, invoiceID string) (entities.Deposit, entities.Invoice, error)
}

type DepositUseCase struct {
	repo      interfaces.IDepositRepository
	customers interfaces.ICustomerRepository
	invoices  interfaces.IInvoiceRepository
}

var _ IDepositUseCase = (*DepositUseCase)(nil)

func NewDepositUseCase(repo interfaces.IDepositRepository, customers interfaces.ICustomerRepository, invoices interfaces.IInvoiceRepository) *DepositUseCase {
	return &DepositUseCase{repo: repo, customers: customers, invoices: invoices}
}

func (u *DepositUseCase) Create(ctx context.Context, cmd CreateDepositCommand) (entities.Deposit, error) {
	cmd.CustomerID = strings.TrimSpace(cmd.CustomerID)
	if err := validation.Struct(cmd); err != nil {
		return entities.Deposit{}, err
	}
	if _, err := findByID(ctx, u.customers, cmd.CustomerID, customerIDOf, ErrCustomerNotFound); err != nil {
		return entities.Deposit{}, err
	}

	now := time.Now().UTC()
	d := entities.Deposit{
		ID:         uuid.NewString(),
		CustomerID: cmd.CustomerID,
		JobID:      strings.TrimSpace(cmd.JobID),
		Amount:     entities.RoundCents(cmd.Amount),
		Method:     strings.TrimSpace(cmd.Method),
		Status:     entities.DepositStatusReceived,
		ReceivedAt: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return u.repo.Create(ctx, d)
}

func (u *DepositUseCase) GetByID(ctx context.Context, id string) (entities.Deposit, error) {
	return findByID(ctx, u.repo, id, depositIDOf, ErrDepositNotFound)
}

func (u *DepositUseCase) List(ctx context.Context, customerID string) ([]entities.Deposit, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return all, nil
	}
	return filter(all, func(d entities.Deposit) bool { return d.CustomerID == customerID }), nil
}

// ApplyToInvoice turns a received deposit into a payment on the invoice.
// The invoice is written first; the deposit is then marked applied.
func (u *DepositUseCase) ApplyToInvoice(ctx context.Context, depositID, invoiceID string) (entities.Deposit, entities.Invoice, error) {
	d, err := u.GetByID(ctx, depositID)
	if err != nil {
		return entities.Deposit{}, entities.Invoice{}, err
	}
	if d.Status != entities.DepositStatusReceived {
		return entities.Deposit{}, entities.Invoice{}, ErrDepositAlreadyApplied
	}

	inv, err := findByID(ctx, u.invoices, invoiceID, invoiceIDOf, ErrInvoiceNotFound)
	if err != nil {
		return entities.Deposit{}, entities.Invoice{}, err
	}
	if inv.CustomerID != d.CustomerID {
		return entities.Deposit{}, entities.Invoice{}, ErrDepositCustomerMismatch
	}

	// A payment already carrying this deposit means an earlier apply stopped
	// before the deposit was marked; only the deposit is written then.
	recorded := slices.ContainsFunc(inv.Payments, func(p entities.InvoicePayment) bool { return p.DepositID == d.ID })
	if !recorded {
		if err := applyPayment(&inv, entities.InvoicePayment{
			ID:        uuid.NewString(),
			Amount:    d.Amount,
			Method:    "deposit",
			DepositID: d.ID,
		}); err != nil {
			return entities.Deposit{}, entities.Invoice{}, err
		}
		inv, err = saveExisting(ctx, u.invoices, inv, invoiceIDOf, ErrInvoiceNotFound)
		if err != nil {
			return entities.Deposit{}, entities.Invoice{}, err
		}
	}

	now := time.Now().UTC()
	d.Status = entities.DepositStatusApplied
	d.InvoiceID = inv.ID
	d.AppliedAt = &now
	d.UpdatedAt = now
	d, err = saveExisting(ctx, u.repo, d, depositIDOf, ErrDepositNotFound)
	if err != nil {
		return entities.Deposit{}, entities.Invoice{}, err
	}
	return d, inv, nil
}
