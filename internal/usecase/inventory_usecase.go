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
	ErrInventoryItemNotFound = errors.New("inventory item not found")
	ErrInsufficientStock     = errors.New("insufficient stock")
)

type CreateInventoryItemCommand struct {
	SKU              string  `json:"sku" validate:"required"`
	Name             string  `json:"name" validate:"required"`
	Description      string  `json:"description"`
	UnitCost         float64 `json:"unit_cost" validate:"gte=0"`
	Price            float64 `json:"price" validate:"gte=0"`
	QuantityOnHand   int     `json:"quantity_on_hand" validate:"gte=0"`
	ReorderThreshold int     `json:"reorder_threshold" validate:"gte=0"`
	VendorID         string  `json:"vendor_id"`
}

// AdjustInventoryCommand changes warehouse stock by Delta (count corrections,
// shrinkage, parts used from the shelf).
type AdjustInventoryCommand struct {
	Delta  int    `json:"delta" validate:"ne=0"`
	Reason string `json:"reason"`
}

type AllocateToTruckCommand struct {
	TechnicianID string `json:"technician_id" validate:"required"`
	Quantity     int    `json:"quantity" validate:"gte=1"`
}

type IInventoryUseCase interface {
	Create(ctx context.Context, cmd CreateInventoryItemCommand) (entities.InventoryItem, error)
	GetByID(ctx context.Context, id string) (entities.InventoryItem, error)
	List(ctx context.Context) ([]entities.InventoryItem, error)
	ListLowStock(ctx context.Context) ([]entities.InventoryItem, error)
	Adjust(ctx context.Context, id string, cmd AdjustInventoryCommand) (entities.InventoryItem, error)
	AllocateToTruck(ctx context.Context, id string, cmd AllocateToTruckCommand) (entities.InventoryItem, error)
}

type InventoryUseCase struct {
	repo        interfaces.IInventoryRepository
	vendors     interfaces.IVendorRepository
	technicians interfaces.ITechnicianRepository
}

var _ IInventoryUseCase = (*InventoryUseCase)(nil)

func NewInventoryUseCase(repo interfaces.IInventoryRepository, vendors interfaces.IVendorRepository, technicians interfaces.ITechnicianRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo, vendors: vendors, technicians: technicians}
}

func (u *InventoryUseCase) Create(ctx context.Context, cmd CreateInventoryItemCommand) (entities.InventoryItem, error) {
	cmd.SKU = strings.ToUpper(strings.TrimSpace(cmd.SKU))
	cmd.Name = strings.TrimSpace(cmd.Name)
	cmd.VendorID = strings.TrimSpace(cmd.VendorID)
	if err := validation.Struct(cmd); err != nil {
		return entities.InventoryItem{}, err
	}
	if cmd.VendorID != "" {
		if _, err := findByID(ctx, u.vendors, cmd.VendorID, vendorIDOf, ErrVendorNotFound); err != nil {
			return entities.InventoryItem{}, err
		}
	}

	now := time.Now().UTC()
	item := entities.InventoryItem{
		ID:               uuid.NewString(),
		SKU:              cmd.SKU,
		Name:             cmd.Name,
		Description:      strings.TrimSpace(cmd.Description),
		UnitCost:         entities.RoundCents(cmd.UnitCost),
		Price:            entities.RoundCents(cmd.Price),
		QuantityOnHand:   cmd.QuantityOnHand,
		ReorderThreshold: cmd.ReorderThreshold,
		VendorID:         cmd.VendorID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	return u.repo.Create(ctx, item)
}

func (u *InventoryUseCase) GetByID(ctx context.Context, id string) (entities.InventoryItem, error) {
	return findByID(ctx, u.repo, id, inventoryItemIDOf, ErrInventoryItemNotFound)
}

func (u *InventoryUseCase) List(ctx context.Context) ([]entities.InventoryItem, error) {
	return u.repo.List(ctx)
}

func (u *InventoryUseCase) ListLowStock(ctx context.Context) ([]entities.InventoryItem, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter(all, entities.InventoryItem.LowStock), nil
}

// Adjust applies a warehouse stock delta. Stock never goes below zero.
func (u *InventoryUseCase) Adjust(ctx context.Context, id string, cmd AdjustInventoryCommand) (entities.InventoryItem, error) {
	if err := validation.Struct(cmd); err != nil {
		return entities.InventoryItem{}, err
	}

	item, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.InventoryItem{}, err
	}
	if item.QuantityOnHand+cmd.Delta < 0 {
		return entities.InventoryItem{}, fmt.Errorf("%w: on hand %d, delta %d", ErrInsufficientStock, item.QuantityOnHand, cmd.Delta)
	}

	item.QuantityOnHand += cmd.Delta
	item.UpdatedAt = time.Now().UTC()
	return saveExisting(ctx, u.repo, item, inventoryItemIDOf, ErrInventoryItemNotFound)
}

// AllocateToTruck moves warehouse stock onto a technician's truck.
func (u *InventoryUseCase) AllocateToTruck(ctx context.Context, id string, cmd AllocateToTruckCommand) (entities.InventoryItem, error) {
	cmd.TechnicianID = strings.TrimSpace(cmd.TechnicianID)
	if err := validation.Struct(cmd); err != nil {
		return entities.InventoryItem{}, err
	}

	item, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.InventoryItem{}, err
	}
	if _, err := findByID(ctx, u.technicians, cmd.TechnicianID, technicianIDOf, ErrTechnicianNotFound); err != nil {
		return entities.InventoryItem{}, err
	}
	if item.QuantityOnHand < cmd.Quantity {
		return entities.InventoryItem{}, fmt.Errorf("%w: on hand %d, requested %d", ErrInsufficientStock, item.QuantityOnHand, cmd.Quantity)
	}

	item.QuantityOnHand -= cmd.Quantity
	item.AddToTruck(cmd.TechnicianID, cmd.Quantity)
	item.UpdatedAt = time.Now().UTC()
	return saveExisting(ctx, u.repo, item, inventoryItemIDOf, ErrInventoryItemNotFound)
}
