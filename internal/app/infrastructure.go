package app

import (
	"context"
	"errors"
	"fmt"

	"fieldservice/internal/adapter/persistence/memory"
	"fieldservice/internal/adapter/persistence/repository"
	"fieldservice/internal/config"
	"fieldservice/internal/infrastructure/database"
	"fieldservice/internal/infrastructure/llm"
	"fieldservice/internal/infrastructure/logging"
	"fieldservice/internal/infrastructure/payments"
	"fieldservice/internal/usecase/interfaces"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var InfrastructureModule = fx.Options(
	fx.Provide(
		newRepositories,
		splitRepositories,
		newPaymentGateway,
		newTextGenerator,
	),
)

func newLogger(lc fx.Lifecycle, cfg *config.Config) (*zap.Logger, error) {
	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			_ = log.Sync()
			return nil
		},
	})
	return log, nil
}

// newRepositories selects the storage backend. The memory store is seeded
// from the embedded fixtures when SEED_DATA is on.
func newRepositories(ctx context.Context, cfg *config.Config, log *zap.Logger) (repository.Repositories, error) {
	log = log.With(zap.String("component", "storage"), zap.String("backend", cfg.StoreBackend))

	if cfg.StoreBackend == config.StoreBackendDynamoDB {
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return repository.Repositories{}, fmt.Errorf("connect dynamodb: %w", err)
		}
		log.Info("using dynamodb document store", zap.String("table_prefix", cfg.TablePrefix))
		return repository.NewDynamoRepositories(ddb, cfg.TablePrefix), nil
	}

	store := memory.NewStore(cfg.StoreLatency)
	if cfg.SeedData {
		counts, err := store.LoadSeed()
		if err != nil {
			return repository.Repositories{}, fmt.Errorf("seed memory store: %w", err)
		}
		log.Info("memory store seeded", zap.Any("records", counts))
	}
	log.Info("using in-memory mock store", zap.Duration("latency", cfg.StoreLatency))
	return memoryRepositories(store), nil
}

func memoryRepositories(s *memory.Store) repository.Repositories {
	return repository.Repositories{
		Customers:      s.Customers,
		Technicians:    s.Technicians,
		Jobs:           s.Jobs,
		Estimates:      s.Estimates,
		ChangeOrders:   s.ChangeOrders,
		Invoices:       s.Invoices,
		Deposits:       s.Deposits,
		PurchaseOrders: s.PurchaseOrders,
		Inventory:      s.Inventory,
		Vendors:        s.Vendors,
		TaxZones:       s.TaxZones,
	}
}

type repositoriesOut struct {
	fx.Out

	Customers      interfaces.ICustomerRepository
	Technicians    interfaces.ITechnicianRepository
	Jobs           interfaces.IJobRepository
	Estimates      interfaces.IEstimateRepository
	ChangeOrders   interfaces.IChangeOrderRepository
	Invoices       interfaces.IInvoiceRepository
	Deposits       interfaces.IDepositRepository
	PurchaseOrders interfaces.IPurchaseOrderRepository
	Inventory      interfaces.IInventoryRepository
	Vendors        interfaces.IVendorRepository
	TaxZones       interfaces.ITaxZoneRepository
}

func splitRepositories(r repository.Repositories) repositoriesOut {
	return repositoriesOut{
		Customers:      r.Customers,
		Technicians:    r.Technicians,
		Jobs:           r.Jobs,
		Estimates:      r.Estimates,
		ChangeOrders:   r.ChangeOrders,
		Invoices:       r.Invoices,
		Deposits:       r.Deposits,
		PurchaseOrders: r.PurchaseOrders,
		Inventory:      r.Inventory,
		Vendors:        r.Vendors,
		TaxZones:       r.TaxZones,
	}
}

// newPaymentGateway returns a nil gateway when Mercado Pago is not
// configured; payment collection then fails with a clear error while the
// rest of the API keeps working.
func newPaymentGateway(cfg *config.Config, log *zap.Logger) (interfaces.IPaymentGateway, error) {
	gw, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock, log)
	if errors.Is(err, payments.ErrMissingMercadoPagoAccessToken) {
		log.Warn("mercado pago gateway not configured", zap.String("component", "payments"), zap.Error(err))
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return gw, nil
}

func newTextGenerator(ctx context.Context, cfg *config.Config, log *zap.Logger) (interfaces.ITextGenerator, error) {
	if cfg.LLMMock {
		log.Info("using mock text generator", zap.String("component", "llm"))
		return llm.NewMockGenerator(log), nil
	}
	gen, err := llm.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, log)
	if err != nil {
		return nil, fmt.Errorf("gemini generator (set LLM_MOCK=true to run without a key): %w", err)
	}
	return gen, nil
}
