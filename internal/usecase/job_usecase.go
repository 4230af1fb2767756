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
	ErrJobNotFound          = errors.New("job not found")
	ErrInvalidJobTransition = errors.New("invalid job status transition")
)

type CreateJobCommand struct {
	CustomerID     string     `json:"customer_id" validate:"required"`
	Title          string     `json:"title" validate:"required"`
	Description    string     `json:"description"`
	TechnicianID   string     `json:"technician_id"`
	ScheduledStart *time.Time `json:"scheduled_start"`
	ScheduledEnd   *time.Time `json:"scheduled_end"`
}

type ScheduleJobCommand struct {
	TechnicianID   string    `json:"technician_id" validate:"required"`
	ScheduledStart time.Time `json:"scheduled_start" validate:"required"`
	ScheduledEnd   time.Time `json:"scheduled_end" validate:"required"`
}

// JobFilter narrows List; empty fields match everything.
type JobFilter struct {
	Status       entities.JobStatus
	TechnicianID string
	CustomerID   string
}

type IJobUseCase interface {
	Create(ctx context.Context, cmd CreateJobCommand) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	List(ctx context.Context, f JobFilter) ([]entities.Job, error)
	Schedule(ctx context.Context, id string, cmd ScheduleJobCommand) (entities.Job, error)
	Start(ctx context.Context, id string) (entities.Job, error)
	Complete(ctx context.Context, id string) (entities.Job, error)
}

type JobUseCase struct {
	repo        interfaces.IJobRepository
	customers   interfaces.ICustomerRepository
	technicians interfaces.ITechnicianRepository
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(repo interfaces.IJobRepository, customers interfaces.ICustomerRepository, technicians interfaces.ITechnicianRepository) *JobUseCase {
	return &JobUseCase{repo: repo, customers: customers, technicians: technicians}
}

func validateWindow(start, end time.Time) error {
	if !end.After(start) {
		return validation.Field("scheduled_end", "must be after scheduled_start")
	}
	return nil
}

func (u *JobUseCase) Create(ctx context.Context, cmd CreateJobCommand) (entities.Job, error) {
	cmd.CustomerID = strings.TrimSpace(cmd.CustomerID)
	cmd.Title = strings.TrimSpace(cmd.Title)
	cmd.TechnicianID = strings.TrimSpace(cmd.TechnicianID)
	if err := validation.Struct(cmd); err != nil {
		return entities.Job{}, err
	}
	if (cmd.ScheduledStart == nil) != (cmd.ScheduledEnd == nil) {
		return entities.Job{}, validation.Field("scheduled_end", "scheduled_start and scheduled_end go together")
	}
	if cmd.ScheduledStart != nil {
		if err := validateWindow(*cmd.ScheduledStart, *cmd.ScheduledEnd); err != nil {
			return entities.Job{}, err
		}
	}

	if _, err := findByID(ctx, u.customers, cmd.CustomerID, customerIDOf, ErrCustomerNotFound); err != nil {
		return entities.Job{}, err
	}
	if cmd.TechnicianID != "" {
		if _, err := findByID(ctx, u.technicians, cmd.TechnicianID, technicianIDOf, ErrTechnicianNotFound); err != nil {
			return entities.Job{}, err
		}
	}

	now := time.Now().UTC()
	j := entities.Job{
		ID:           uuid.NewString(),
		CustomerID:   cmd.CustomerID,
		Title:        cmd.Title,
		Description:  strings.TrimSpace(cmd.Description),
		TechnicianID: cmd.TechnicianID,
		Status:       entities.JobStatusUnscheduled,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if cmd.ScheduledStart != nil {
		start, end := cmd.ScheduledStart.UTC(), cmd.ScheduledEnd.UTC()
		j.ScheduledStart, j.ScheduledEnd = &start, &end
		if j.TechnicianID != "" {
			j.Status = entities.JobStatusScheduled
		}
	}
	return u.repo.Create(ctx, j)
}

func (u *JobUseCase) GetByID(ctx context.Context, id string) (entities.Job, error) {
	return findByID(ctx, u.repo, id, jobIDOf, ErrJobNotFound)
}

func (u *JobUseCase) List(ctx context.Context, f JobFilter) ([]entities.Job, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter(all, func(j entities.Job) bool {
		return (f.Status == "" || j.Status == f.Status) &&
			(f.TechnicianID == "" || j.TechnicianID == f.TechnicianID) &&
			(f.CustomerID == "" || j.CustomerID == f.CustomerID)
	}), nil
}

// Schedule assigns a technician and time window. Allowed for unscheduled
// jobs and for rescheduling scheduled ones.
func (u *JobUseCase) Schedule(ctx context.Context, id string, cmd ScheduleJobCommand) (entities.Job, error) {
	cmd.TechnicianID = strings.TrimSpace(cmd.TechnicianID)
	if err := validation.Struct(cmd); err != nil {
		return entities.Job{}, err
	}
	if err := validateWindow(cmd.ScheduledStart, cmd.ScheduledEnd); err != nil {
		return entities.Job{}, err
	}

	j, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if !j.Status.CanTransitionTo(entities.JobStatusScheduled) {
		return entities.Job{}, fmt.Errorf("%w: %s -> %s", ErrInvalidJobTransition, j.Status, entities.JobStatusScheduled)
	}
	if _, err := findByID(ctx, u.technicians, cmd.TechnicianID, technicianIDOf, ErrTechnicianNotFound); err != nil {
		return entities.Job{}, err
	}

	start, end := cmd.ScheduledStart.UTC(), cmd.ScheduledEnd.UTC()
	j.TechnicianID = cmd.TechnicianID
	j.ScheduledStart, j.ScheduledEnd = &start, &end
	j.Status = entities.JobStatusScheduled
	j.UpdatedAt = time.Now().UTC()
	return saveExisting(ctx, u.repo, j, jobIDOf, ErrJobNotFound)
}

func (u *JobUseCase) Start(ctx context.Context, id string) (entities.Job, error) {
	return u.transition(ctx, id, entities.JobStatusInProgress)
}

func (u *JobUseCase) Complete(ctx context.Context, id string) (entities.Job, error) {
	return u.transition(ctx, id, entities.JobStatusComplete)
}

func (u *JobUseCase) transition(ctx context.Context, id string, next entities.JobStatus) (entities.Job, error) {
	j, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if !j.Status.CanTransitionTo(next) {
		return entities.Job{}, fmt.Errorf("%w: %s -> %s", ErrInvalidJobTransition, j.Status, next)
	}

	now := time.Now().UTC()
	switch next {
	case entities.JobStatusInProgress:
		j.StartedAt = &now
	case entities.JobStatusComplete:
		j.CompletedAt = &now
	}
	j.Status = next
	j.UpdatedAt = now
	return saveExisting(ctx, u.repo, j, jobIDOf, ErrJobNotFound)
}
