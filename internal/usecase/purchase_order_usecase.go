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
	"go.uber.org/zap"
)

var (
	ErrPurchaseOrderNotFound          = errors.New("purchase order not found")
	ErrInvalidPurchaseOrderTransition = errors.New("purchase order is not on order")
)

type PurchaseOrderItemInput struct {
	InventoryItemID string   `json:"inventory_item_id" validate:"required"`
	Quantity        int      `json:"quantity" validate:"gte=1"`
	UnitCost        *float64 `json:"unit_cost,omitempty" validate:"omitempty,gte=0"`
}

type DestinationInput struct {
	Type         entities.DestinationType `json:"type" validate:"oneof=warehouse truck"`
	TechnicianID string                   `json:"technician_id" validate:"required_if=Type truck"`
}

type CreatePurchaseOrderCommand struct {
	VendorID    string                   `json:"vendor_id" validate:"required"`
	Items       []PurchaseOrderItemInput `json:"items" validate:"min=1,dive"`
	Destination DestinationInput         `json:"destination"`
}

type IPurchaseOrderUseCase interface {
	Create(ctx context.Context, cmd CreatePurchaseOrderCommand) (entities.PurchaseOrder, error)
	GetByID(ctx context.Context, id string) (entities.PurchaseOrder, error)
	List(ctx context.Context) ([]entities.PurchaseOrder, error)
	ListOnOrder(ctx context.Context) ([]entities.PurchaseOrder, error)
	Receive(ctx context.Context, id string) (entities.PurchaseOrder, error)
	Cancel(ctx context.Context, id string) (entities.PurchaseOrder, error)
}

type PurchaseOrderUseCase struct {
	repo        interfaces.IPurchaseOrderRepository
	vendors     interfaces.IVendorRepository
	inventory   interfaces.IInventoryRepository
	technicians interfaces.ITechnicianRepository
	log         *zap.Logger
}

var _ IPurchaseOrderUseCase = (*PurchaseOrderUseCase)(nil)

func NewPurchaseOrderUseCase(repo interfaces.IPurchaseOrderRepository, vendors interfaces.IVendorRepository, inventory interfaces.IInventoryRepository, technicians interfaces.ITechnicianRepository, log *zap.Logger) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{
		repo:        repo,
		vendors:     vendors,
		inventory:   inventory,
		technicians: technicians,
		log:         log.With(zap.String("component", "purchase_order")),
	}
}

func (u *PurchaseOrderUseCase) Create(ctx context.Context, cmd CreatePurchaseOrderCommand) (entities.PurchaseOrder, error) {
	cmd.VendorID = strings.TrimSpace(cmd.VendorID)
	cmd.Destination.TechnicianID = strings.TrimSpace(cmd.Destination.TechnicianID)
	if cmd.Destination.Type == "" {
		cmd.Destination.Type = entities.DestinationWarehouse
	}
	if err := validation.Struct(cmd); err != nil {
		return entities.PurchaseOrder{}, err
	}

	if _, err := findByID(ctx, u.vendors, cmd.VendorID, vendorIDOf, ErrVendorNotFound); err != nil {
		return entities.PurchaseOrder{}, err
	}
	dest := entities.Destination{Type: cmd.Destination.Type}
	if dest.Type == entities.DestinationTruck {
		if _, err := findByID(ctx, u.technicians, cmd.Destination.TechnicianID, technicianIDOf, ErrTechnicianNotFound); err != nil {
			return entities.PurchaseOrder{}, err
		}
		dest.TechnicianID = cmd.Destination.TechnicianID
	}

	items := make([]entities.PurchaseOrderItem, 0, len(cmd.Items))
	total := decimal.Zero
	for _, in := range cmd.Items {
		stock, err := findByID(ctx, u.inventory, in.InventoryItemID, inventoryItemIDOf, ErrInventoryItemNotFound)
		if err != nil {
			return entities.PurchaseOrder{}, err
		}
		cost := stock.UnitCost
		if in.UnitCost != nil {
			cost = *in.UnitCost
		}
		items = append(items, entities.PurchaseOrderItem{
			InventoryItemID: stock.ID,
			Description:     stock.Name,
			Quantity:        in.Quantity,
			UnitCost:        entities.RoundCents(cost),
		})
		total = total.Add(entities.Cents(cost).Mul(decimal.NewFromInt(int64(in.Quantity))))
	}

	existing, err := u.repo.List(ctx)
	if err != nil {
		return entities.PurchaseOrder{}, err
	}

	now := time.Now().UTC()
	po := entities.PurchaseOrder{
		ID:          uuid.NewString(),
		Number:      fmt.Sprintf("PO-%d", 5001+len(existing)),
		VendorID:    cmd.VendorID,
		Items:       items,
		Total:       total.Round(2).InexactFloat64(),
		Destination: dest,
		Status:      entities.PurchaseOrderStatusOrdered,
		OrderedAt:   now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, po)
}

func (u *PurchaseOrderUseCase) GetByID(ctx context.Context, id string) (entities.PurchaseOrder, error) {
	return findByID(ctx, u.repo, id, purchaseOrderIDOf, ErrPurchaseOrderNotFound)
}

func (u *PurchaseOrderUseCase) List(ctx context.Context) ([]entities.PurchaseOrder, error) {
	return u.repo.List(ctx)
}

// ListOnOrder returns purchase orders placed but not yet received.
func (u *PurchaseOrderUseCase) ListOnOrder(ctx context.Context) ([]entities.PurchaseOrder, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter(all, func(p entities.PurchaseOrder) bool {
		return p.Status == entities.PurchaseOrderStatusOrdered
	}), nil
}

// Receive books the ordered quantities into stock at the destination and
// marks the order received.
func (u *PurchaseOrderUseCase) Receive(ctx context.Context, id string) (entities.PurchaseOrder, error) {
	po, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.PurchaseOrder{}, err
	}
	if po.Status != entities.PurchaseOrderStatusOrdered {
		return entities.PurchaseOrder{}, fmt.Errorf("%w: %s", ErrInvalidPurchaseOrderTransition, po.Status)
	}
	log := u.log.With(zap.String("op", "receive"), zap.String("purchase_order_id", po.ID))

	// Resolve every line before any stock moves. Items tagged with this order
	// were booked by an earlier attempt that failed before the order was saved.
	now := time.Now().UTC()
	var updates []entities.InventoryItem
	index := make(map[string]int, len(po.Items))
	booked := make(map[string]bool)
	for _, line := range po.Items {
		if booked[line.InventoryItemID] {
			continue
		}
		pos, ok := index[line.InventoryItemID]
		if !ok {
			item, err := findByID(ctx, u.inventory, line.InventoryItemID, inventoryItemIDOf, ErrInventoryItemNotFound)
			if err != nil {
				log.Warn("inventory item missing", zap.String("inventory_item_id", line.InventoryItemID), zap.Error(err))
				return entities.PurchaseOrder{}, err
			}
			if item.ReceivedFrom(po.ID) {
				booked[item.ID] = true
				continue
			}
			item.ReceivedOrders = append(item.ReceivedOrders, po.ID)
			item.UpdatedAt = now
			pos = len(updates)
			index[line.InventoryItemID] = pos
			updates = append(updates, item)
		}
		switch po.Destination.Type {
		case entities.DestinationTruck:
			updates[pos].AddToTruck(po.Destination.TechnicianID, line.Quantity)
		default:
			updates[pos].QuantityOnHand += line.Quantity
		}
	}
	for _, item := range updates {
		if _, err := saveExisting(ctx, u.inventory, item, inventoryItemIDOf, ErrInventoryItemNotFound); err != nil {
			return entities.PurchaseOrder{}, err
		}
	}
	if len(booked) > 0 {
		log.Info("resumed receive", zap.Int("already_booked", len(booked)))
	}

	po.Status = entities.PurchaseOrderStatusReceived
	po.ReceivedAt = &now
	po.UpdatedAt = now
	saved, err := saveExisting(ctx, u.repo, po, purchaseOrderIDOf, ErrPurchaseOrderNotFound)
	if err != nil {
		return entities.PurchaseOrder{}, err
	}
	log.Info("received", zap.Int("lines", len(po.Items)), zap.String("destination", string(po.Destination.Type)))
	return saved, nil
}

func (u *PurchaseOrderUseCase) Cancel(ctx context.Context, id string) (entities.PurchaseOrder, error) {
	po, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.PurchaseOrder{}, err
	}
	if po.Status != entities.PurchaseOrderStatusOrdered {
		return entities.PurchaseOrder{}, fmt.Errorf("%w: %s", ErrInvalidPurchaseOrderTransition, po.Status)
	}

	po.Status = entities.PurchaseOrderStatusCancelled
	po.UpdatedAt = time.Now().UTC()
	return saveExisting(ctx, u.repo, po, purchaseOrderIDOf, ErrPurchaseOrderNotFound)
}
