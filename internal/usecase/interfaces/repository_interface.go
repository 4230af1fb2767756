package interfaces

import (
	"context"
	"errors"

	"fieldservice/internal/domain/entities"
)

// ErrDuplicateKey is returned by Create when the id is already stored.
var ErrDuplicateKey = errors.New("duplicate key")

// IRepository abstracts persistence of one record type keyed by id.
//
// Contract shared by every backend (in-memory mock store, DynamoDB):
//   - GetByID returns the zero value and a nil error when the id does not exist;
//     the use case decides whether that is a not-found error.
//   - Create fails when the id already exists.
//   - Update returns the zero value and a nil error when the id does not exist.
//   - Last write wins; there are no transactions.
type IRepository[T any] interface {
	GetByID(ctx context.Context, id string) (T, error)
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, e T) (T, error)
	Update(ctx context.Context, e T) (T, error)
}

type (
	ICustomerRepository      = IRepository[entities.Customer]
	ITechnicianRepository    = IRepository[entities.Technician]
	IJobRepository           = IRepository[entities.Job]
	IEstimateRepository      = IRepository[entities.Estimate]
	IChangeOrderRepository   = IRepository[entities.ChangeOrder]
	IInvoiceRepository       = IRepository[entities.Invoice]
	IDepositRepository       = IRepository[entities.Deposit]
	IPurchaseOrderRepository = IRepository[entities.PurchaseOrder]
	IInventoryRepository     = IRepository[entities.InventoryItem]
	IVendorRepository        = IRepository[entities.Vendor]
	ITaxZoneRepository       = IRepository[entities.TaxZone]
)
