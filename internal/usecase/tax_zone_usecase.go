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
	"github.com/shopspring/decimal"
)

var ErrTaxZoneNotFound = errors.New("tax zone not found")

// TaxZoneCommand comes straight from the settings form, so Rate is the raw
// text the user typed (percent, e.g. "8.25").
type TaxZoneCommand struct {
	Name string `json:"name" validate:"required"`
	Rate string `json:"rate" validate:"required"`
}

// parse validates the form and returns the rate as a number.
// Nothing is written unless parse succeeds.
func (c TaxZoneCommand) parse() (string, float64, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Rate = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(c.Rate), "%"))
	if err := validation.Struct(c); err != nil {
		return "", 0, err
	}

	rate, err := decimal.NewFromString(c.Rate)
	if err != nil {
		return "", 0, validation.Field("rate", "must be a number")
	}
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(100)) {
		return "", 0, validation.Field("rate", "must be between 0 and 100")
	}
	return c.Name, rate.Round(4).InexactFloat64(), nil
}

type ITaxZoneUseCase interface {
	Create(ctx context.Context, cmd TaxZoneCommand) (entities.TaxZone, error)
	GetByID(ctx context.Context, id string) (entities.TaxZone, error)
	List(ctx context.Context) ([]entities.TaxZone, error)
	Update(ctx context.Context, id string, cmd TaxZoneCommand) (entities.TaxZone, error)
}

type TaxZoneUseCase struct {
	repo interfaces.ITaxZoneRepository
}

var _ ITaxZoneUseCase = (*TaxZoneUseCase)(nil)

func NewTaxZoneUseCase(repo interfaces.ITaxZoneRepository) *TaxZoneUseCase {
	return &TaxZoneUseCase{repo: repo}
}

func (u *TaxZoneUseCase) Create(ctx context.Context, cmd TaxZoneCommand) (entities.TaxZone, error) {
	name, rate, err := cmd.parse()
	if err != nil {
		return entities.TaxZone{}, err
	}

	now := time.Now().UTC()
	return u.repo.Create(ctx, entities.TaxZone{
		ID:        uuid.NewString(),
		Name:      name,
		Rate:      rate,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (u *TaxZoneUseCase) GetByID(ctx context.Context, id string) (entities.TaxZone, error) {
	return findByID(ctx, u.repo, id, taxZoneIDOf, ErrTaxZoneNotFound)
}

func (u *TaxZoneUseCase) List(ctx context.Context) ([]entities.TaxZone, error) {
	return u.repo.List(ctx)
}

func (u *TaxZoneUseCase) Update(ctx context.Context, id string, cmd TaxZoneCommand) (entities.TaxZone, error) {
	name, rate, err := cmd.parse()
	if err != nil {
		return entities.TaxZone{}, err
	}

	z, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.TaxZone{}, err
	}
	z.Name = name
	z.Rate = rate
	z.UpdatedAt = time.Now().UTC()
	return saveExisting(ctx, u.repo, z, taxZoneIDOf, ErrTaxZoneNotFound)
}
