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

var ErrCustomerNotFound = errors.New("customer not found")

// CustomerCommand carries the editable customer fields for create and update.
type CustomerCommand struct {
	FirstName      string           `json:"first_name" validate:"required"`
	LastName       string           `json:"last_name" validate:"required"`
	Email          string           `json:"email" validate:"omitempty,email"`
	Phone          string           `json:"phone" validate:"required"`
	CompanyName    string           `json:"company_name"`
	CompanyPhone   string           `json:"company_phone"`
	Address        entities.Address `json:"address"`
	ReferralSource string           `json:"referral_source"`
	ReferredBy     string           `json:"referred_by"`
	Notes          string           `json:"notes"`
	Tags           []string         `json:"tags"`
}

func (c CustomerCommand) normalized() CustomerCommand {
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.Phone = strings.TrimSpace(c.Phone)
	c.CompanyName = strings.TrimSpace(c.CompanyName)
	c.CompanyPhone = strings.TrimSpace(c.CompanyPhone)
	c.ReferredBy = strings.TrimSpace(c.ReferredBy)
	return c
}

func (c CustomerCommand) apply(dst *entities.Customer) {
	dst.FirstName = c.FirstName
	dst.LastName = c.LastName
	dst.Email = c.Email
	dst.Phone = c.Phone
	dst.CompanyName = c.CompanyName
	dst.CompanyPhone = c.CompanyPhone
	dst.Address = c.Address
	dst.ReferralSource = c.ReferralSource
	dst.ReferredBy = c.ReferredBy
	dst.Notes = c.Notes
	dst.Tags = c.Tags
}

type ICustomerUseCase interface {
	Create(ctx context.Context, cmd CustomerCommand) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context, search string) ([]entities.Customer, error)
	Update(ctx context.Context, id string, cmd CustomerCommand) (entities.Customer, error)
}

type CustomerUseCase struct {
	repo interfaces.ICustomerRepository
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

func (u *CustomerUseCase) Create(ctx context.Context, cmd CustomerCommand) (entities.Customer, error) {
	cmd = cmd.normalized()
	if err := validation.Struct(cmd); err != nil {
		return entities.Customer{}, err
	}

	now := time.Now().UTC()
	c := entities.Customer{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now}
	cmd.apply(&c)
	return u.repo.Create(ctx, c)
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	return findByID(ctx, u.repo, id, customerIDOf, ErrCustomerNotFound)
}

// List returns all customers, or those whose name, email or company
// contains search (case-insensitive).
func (u *CustomerUseCase) List(ctx context.Context, search string) ([]entities.Customer, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return all, nil
	}
	return filter(all, func(c entities.Customer) bool {
		for _, field := range []string{c.FullName(), c.Email, c.CompanyName} {
			if strings.Contains(strings.ToLower(field), search) {
				return true
			}
		}
		return false
	}), nil
}

func (u *CustomerUseCase) Update(ctx context.Context, id string, cmd CustomerCommand) (entities.Customer, error) {
	cmd = cmd.normalized()
	if err := validation.Struct(cmd); err != nil {
		return entities.Customer{}, err
	}

	c, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	cmd.apply(&c)
	c.UpdatedAt = time.Now().UTC()
	return saveExisting(ctx, u.repo, c, customerIDOf, ErrCustomerNotFound)
}
