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

var ErrVendorNotFound = errors.New("vendor not found")

type VendorCommand struct {
	Name        string           `json:"name" validate:"required"`
	ContactName string           `json:"contact_name"`
	Email       string           `json:"email" validate:"omitempty,email"`
	Phone       string           `json:"phone"`
	Website     string           `json:"website" validate:"omitempty,url"`
	Trades      []string         `json:"trades"`
	Address     entities.Address `json:"address"`
}

func (c VendorCommand) apply(dst *entities.Vendor) {
	dst.Name = strings.TrimSpace(c.Name)
	dst.ContactName = strings.TrimSpace(c.ContactName)
	dst.Email = strings.TrimSpace(c.Email)
	dst.Phone = strings.TrimSpace(c.Phone)
	dst.Website = strings.TrimSpace(c.Website)
	dst.Address = c.Address
	dst.Trades = dst.Trades[:0]
	for _, t := range c.Trades {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			dst.Trades = append(dst.Trades, t)
		}
	}
}

type IVendorUseCase interface {
	Create(ctx context.Context, cmd VendorCommand) (entities.Vendor, error)
	GetByID(ctx context.Context, id string) (entities.Vendor, error)
	List(ctx context.Context, trade string) ([]entities.Vendor, error)
	Update(ctx context.Context, id string, cmd VendorCommand) (entities.Vendor, error)
}

type VendorUseCase struct {
	repo interfaces.IVendorRepository
}

var _ IVendorUseCase = (*VendorUseCase)(nil)

func NewVendorUseCase(repo interfaces.IVendorRepository) *VendorUseCase {
	return &VendorUseCase{repo: repo}
}

func (u *VendorUseCase) Create(ctx context.Context, cmd VendorCommand) (entities.Vendor, error) {
	cmd.Name = strings.TrimSpace(cmd.Name)
	if err := validation.Struct(cmd); err != nil {
		return entities.Vendor{}, err
	}

	now := time.Now().UTC()
	v := entities.Vendor{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now}
	cmd.apply(&v)
	return u.repo.Create(ctx, v)
}

func (u *VendorUseCase) GetByID(ctx context.Context, id string) (entities.Vendor, error) {
	return findByID(ctx, u.repo, id, vendorIDOf, ErrVendorNotFound)
}

func (u *VendorUseCase) List(ctx context.Context, trade string) ([]entities.Vendor, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(trade) == "" {
		return all, nil
	}
	return filter(all, func(v entities.Vendor) bool { return v.ServesTrade(trade) }), nil
}

func (u *VendorUseCase) Update(ctx context.Context, id string, cmd VendorCommand) (entities.Vendor, error) {
	cmd.Name = strings.TrimSpace(cmd.Name)
	if err := validation.Struct(cmd); err != nil {
		return entities.Vendor{}, err
	}

	v, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Vendor{}, err
	}
	cmd.apply(&v)
	v.UpdatedAt = time.Now().UTC()
	return saveExisting(ctx, u.repo, v, vendorIDOf, ErrVendorNotFound)
}
