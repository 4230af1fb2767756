package app

import (
	"fieldservice/internal/config"
	"fieldservice/internal/usecase"
	"fieldservice/internal/usecase/flows"
	"fieldservice/internal/usecase/interfaces"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var UseCaseModule = fx.Options(
	fx.Provide(
		flows.NewCatalog,
		fx.Annotate(usecase.NewCustomerUseCase, fx.As(new(usecase.ICustomerUseCase))),
		fx.Annotate(usecase.NewTechnicianUseCase, fx.As(new(usecase.ITechnicianUseCase))),
		fx.Annotate(usecase.NewVendorUseCase, fx.As(new(usecase.IVendorUseCase))),
		fx.Annotate(usecase.NewTaxZoneUseCase, fx.As(new(usecase.ITaxZoneUseCase))),
		fx.Annotate(usecase.NewJobUseCase, fx.As(new(usecase.IJobUseCase))),
		fx.Annotate(usecase.NewEstimateUseCase, fx.As(new(usecase.IEstimateUseCase))),
		fx.Annotate(usecase.NewChangeOrderUseCase, fx.As(new(usecase.IChangeOrderUseCase))),
		fx.Annotate(usecase.NewInvoiceUseCase, fx.As(new(usecase.IInvoiceUseCase))),
		fx.Annotate(usecase.NewDepositUseCase, fx.As(new(usecase.IDepositUseCase))),
		fx.Annotate(usecase.NewInventoryUseCase, fx.As(new(usecase.IInventoryUseCase))),
		fx.Annotate(usecase.NewPurchaseOrderUseCase, fx.As(new(usecase.IPurchaseOrderUseCase))),
		fx.Annotate(usecase.NewDashboardUseCase, fx.As(new(usecase.IDashboardUseCase))),
		fx.Annotate(usecase.NewAIUseCase, fx.As(new(usecase.IAIUseCase))),
		newPaymentUseCase,
	),
)

func newPaymentUseCase(cfg *config.Config, invoices interfaces.IInvoiceRepository, gateway interfaces.IPaymentGateway, log *zap.Logger) usecase.IPaymentUseCase {
	return usecase.NewPaymentUseCase(invoices, gateway, cfg.MercadoPagoTestPayerEmail, log)
}
