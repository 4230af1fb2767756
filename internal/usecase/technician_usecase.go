package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"
	"fieldservice/internal/usecase/validation"

	"github.com/google/uuid"
)

var ErrTechnicianNotFound = errors.New("technician not found")

type TechnicianCommand struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"omitempty,email"`
	Phone  string `json:"phone"`
	Trade  string `json:"trade"`
	Active *bool  `json:"active"`
}

type ITechnicianUseCase interface {
	Create(ctx context.Context, cmd TechnicianCommand) (entities.Technician, error)
	GetByID(ctx context.Context, id string) (entities.Technician, error)
	List(ctx context.Context) ([]entities.Technician, error)
	Update(ctx context.Context, id string, cmd TechnicianCommand) (entities.Technician, error)
}

type TechnicianUseCase struct {
	repo interfaces.ITechnicianRepository
}

var _ ITechnicianUseCase = (*TechnicianUseCase)(nil)

func NewTechnicianUseCase(repo interfaces.ITechnicianRepository) *TechnicianUseCase {
	return &TechnicianUseCase{repo: repo}
}

func (u *TechnicianUseCase) Create(ctx context.Context, cmd TechnicianCommand) (entities.Technician, error) {
	cmd.Name = strings.TrimSpace(cmd.Name)
	if err := validation.Struct(cmd); err != nil {
		return entities.Technician{}, err
	}

	now := time.Now().UTC()
	t := entities.Technician{
		ID:        uuid.NewString(),
		Name:      cmd.Name,
		Email:     strings.TrimSpace(cmd.Email),
		Phone:     strings.TrimSpace(cmd.Phone),
		Trade:     strings.ToLower(strings.TrimSpace(cmd.Trade)),
		Active:    cmd.Active == nil || *cmd.Active,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, t)
}

func (u *TechnicianUseCase) GetByID(ctx context.Context, id string) (entities.Technician, error) {
	return findByID(ctx, u.repo, id, technicianIDOf, ErrTechnicianNotFound)
}

func (u *TechnicianUseCase) List(ctx context.Context) ([]entities.Technician, error) {
	return u.repo.List(ctx)
}

func (u *TechnicianUseCase) Update(ctx context.Context, id string, cmd TechnicianCommand) (entities.Technician, error) {
	cmd.Name = strings.TrimSpace(cmd.Name)
	if err := validation.Struct(cmd); err != nil {
		return entities.Technician{}, err
	}

	t, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Technician{}, err
	}
	t.Name = cmd.Name
	t.Email = strings.TrimSpace(cmd.Email)
	t.Phone = strings.TrimSpace(cmd.Phone)
	t.Trade = strings.ToLower(strings.TrimSpace(cmd.Trade))
	if cmd.Active != nil {
		t.Active = *cmd.Active
	}
	t.UpdatedAt = time.Now().UTC()
	return saveExisting(ctx, u.repo, t, technicianIDOf, ErrTechnicianNotFound)
}
