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
	ErrChangeOrderNotFound          = errors.New("change order not found")
	ErrInvalidChangeOrderTransition = errors.New("change order already decided")
)

// CreateChangeOrderCommand adds or removes scope on a job. Amount may be
// negative for credits but never zero.
type CreateChangeOrderCommand struct {
	JobID       string  `json:"job_id" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Amount      float64 `json:"amount" validate:"ne=0"`
}

type IChangeOrderUseCase interface {
	Create(ctx context.Context, cmd CreateChangeOrderCommand) (entities.ChangeOrder, error)
	ListByJob(ctx context.Context, jobID string) ([]entities.ChangeOrder, error)
	Approve(ctx context.Context, id string) (entities.ChangeOrder, error)
	Reject(ctx context.Context, id string) (entities.ChangeOrder, error)
}

type ChangeOrderUseCase struct {
	repo interfaces.IChangeOrderRepository
	jobs interfaces.IJobRepository
}

var _ IChangeOrderUseCase = (*ChangeOrderUseCase)(nil)

func NewChangeOrderUseCase(repo interfaces.IChangeOrderRepository, jobs interfaces.IJobRepository) *ChangeOrderUseCase {
	return &ChangeOrderUseCase{repo: repo, jobs: jobs}
}

func (u *ChangeOrderUseCase) Create(ctx context.Context, cmd CreateChangeOrderCommand) (entities.ChangeOrder, error) {
	cmd.JobID = strings.TrimSpace(cmd.JobID)
	cmd.Description = strings.TrimSpace(cmd.Description)
	if err := validation.Struct(cmd); err != nil {
		return entities.ChangeOrder{}, err
	}
	if _, err := findByID(ctx, u.jobs, cmd.JobID, jobIDOf, ErrJobNotFound); err != nil {
		return entities.ChangeOrder{}, err
	}

	now := time.Now().UTC()
	co := entities.ChangeOrder{
		ID:          uuid.NewString(),
		JobID:       cmd.JobID,
		Description: cmd.Description,
		Amount:      entities.RoundCents(cmd.Amount),
		Status:      entities.ChangeOrderStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, co)
}

func (u *ChangeOrderUseCase) ListByJob(ctx context.Context, jobID string) ([]entities.ChangeOrder, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrInvalidID
	}
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter(all, func(c entities.ChangeOrder) bool { return c.JobID == jobID }), nil
}

func (u *ChangeOrderUseCase) Approve(ctx context.Context, id string) (entities.ChangeOrder, error) {
	return u.decide(ctx, id, entities.ChangeOrderStatusApproved)
}

func (u *ChangeOrderUseCase) Reject(ctx context.Context, id string) (entities.ChangeOrder, error) {
	return u.decide(ctx, id, entities.ChangeOrderStatusRejected)
}

func (u *ChangeOrderUseCase) decide(ctx context.Context, id string, status entities.ChangeOrderStatus) (entities.ChangeOrder, error) {
	co, err := findByID(ctx, u.repo, id, changeOrderIDOf, ErrChangeOrderNotFound)
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	if co.Status != entities.ChangeOrderStatusPending {
		return entities.ChangeOrder{}, fmt.Errorf("%w: %s", ErrInvalidChangeOrderTransition, co.Status)
	}

	co.Status = status
	co.UpdatedAt = time.Now().UTC()
	return saveExisting(ctx, u.repo, co, changeOrderIDOf, ErrChangeOrderNotFound)
}
