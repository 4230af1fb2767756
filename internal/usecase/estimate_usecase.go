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
)

var (
	ErrEstimateNotFound          = errors.New("estimate not found")
	ErrInvalidEstimateTransition = errors.New("invalid estimate status transition")
)

type CreateEstimateCommand struct {
	CustomerID string          `json:"customer_id" validate:"required"`
	JobID      string          `json:"job_id"`
	Title      string          `json:"title"`
	LineItems  []LineItemInput `json:"line_items" validate:"min=1,dive"`
}

// IEstimateUseCase exposes estimate operations.
//
// Status flow: draft -> sent -> approved | rejected. Approve and reject are
// also accepted straight from draft (customer signs on site).
type IEstimateUseCase interface {
	Create(ctx context.Context, cmd CreateEstimateCommand) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	List(ctx context.Context, jobID string) ([]entities.Estimate, error)
	Send(ctx context.Context, id string) (entities.Estimate, error)
	Approve(ctx context.Context, id string) (entities.Estimate, error)
	Reject(ctx context.Context, id string) (entities.Estimate, error)
}

type EstimateUseCase struct {
	repo      interfaces.IEstimateRepository
	customers interfaces.ICustomerRepository
	jobs      interfaces.IJobRepository
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository, customers interfaces.ICustomerRepository, jobs interfaces.IJobRepository) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, customers: customers, jobs: jobs}
}

func (u *EstimateUseCase) Create(ctx context.Context, cmd CreateEstimateCommand) (entities.Estimate, error) {
	cmd.CustomerID = strings.TrimSpace(cmd.CustomerID)
	cmd.JobID = strings.TrimSpace(cmd.JobID)
	if err := validation.Struct(cmd); err != nil {
		return entities.Estimate{}, err
	}

	if _, err := findByID(ctx, u.customers, cmd.CustomerID, customerIDOf, ErrCustomerNotFound); err != nil {
		return entities.Estimate{}, err
	}
	if cmd.JobID != "" {
		j, err := findByID(ctx, u.jobs, cmd.JobID, jobIDOf, ErrJobNotFound)
		if err != nil {
			return entities.Estimate{}, err
		}
		if j.CustomerID != cmd.CustomerID {
			return entities.Estimate{}, validation.Field("job_id", "belongs to another customer")
		}
	}

	items, total := entities.PriceLineItems(toLineItems(cmd.LineItems))
	now := time.Now().UTC()
	e := entities.Estimate{
		ID:         uuid.NewString(),
		JobID:      cmd.JobID,
		CustomerID: cmd.CustomerID,
		Title:      strings.TrimSpace(cmd.Title),
		LineItems:  items,
		Total:      total,
		Status:     entities.EstimateStatusDraft,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return u.repo.Create(ctx, e)
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	return findByID(ctx, u.repo, id, estimateIDOf, ErrEstimateNotFound)
}

func (u *EstimateUseCase) List(ctx context.Context, jobID string) ([]entities.Estimate, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return all, nil
	}
	return filter(all, func(e entities.Estimate) bool { return e.JobID == jobID }), nil
}

func (u *EstimateUseCase) Send(ctx context.Context, id string) (entities.Estimate, error) {
	return u.updateStatus(ctx, id, entities.EstimateStatusSent, func(s entities.EstimateStatus) bool {
		return s == entities.EstimateStatusDraft
	})
}

func (u *EstimateUseCase) Approve(ctx context.Context, id string) (entities.Estimate, error) {
	return u.updateStatus(ctx, id, entities.EstimateStatusApproved, entities.EstimateStatus.Open)
}

func (u *EstimateUseCase) Reject(ctx context.Context, id string) (entities.Estimate, error) {
	return u.updateStatus(ctx, id, entities.EstimateStatusRejected, entities.EstimateStatus.Open)
}

func (u *EstimateUseCase) updateStatus(ctx context.Context, id string, status entities.EstimateStatus, allowed func(entities.EstimateStatus) bool) (entities.Estimate, error) {
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if !allowed(e.Status) {
		return entities.Estimate{}, fmt.Errorf("%w: %s -> %s", ErrInvalidEstimateTransition, e.Status, status)
	}

	e.Status = status
	e.UpdatedAt = time.Now().UTC()
	return saveExisting(ctx, u.repo, e, estimateIDOf, ErrEstimateNotFound)
}
