package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"fieldservice/internal/adapter/http/handlers"
	"fieldservice/internal/adapter/http/routes"
	"fieldservice/internal/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var HTTPModule = fx.Options(
	fx.Provide(
		handlers.NewCustomerHandler,
		handlers.NewTechnicianHandler,
		handlers.NewVendorHandler,
		handlers.NewTaxZoneHandler,
		handlers.NewJobHandler,
		handlers.NewEstimateHandler,
		handlers.NewChangeOrderHandler,
		handlers.NewInvoiceHandler,
		handlers.NewDepositHandler,
		handlers.NewInventoryHandler,
		handlers.NewPurchaseOrderHandler,
		handlers.NewDashboardHandler,
		handlers.NewAIHandler,
		newRouter,
		newHTTPServer,
	),
	fx.Invoke(registerLifecycle),
)

type routerParams struct {
	fx.In

	Config        *config.Config
	Logger        *zap.Logger
	Customer      *handlers.CustomerHandler
	Technician    *handlers.TechnicianHandler
	Vendor        *handlers.VendorHandler
	TaxZone       *handlers.TaxZoneHandler
	Job           *handlers.JobHandler
	Estimate      *handlers.EstimateHandler
	ChangeOrder   *handlers.ChangeOrderHandler
	Invoice       *handlers.InvoiceHandler
	Deposit       *handlers.DepositHandler
	Inventory     *handlers.InventoryHandler
	PurchaseOrder *handlers.PurchaseOrderHandler
	Dashboard     *handlers.DashboardHandler
	AI            *handlers.AIHandler
}

func newRouter(p routerParams) *gin.Engine {
	gin.SetMode(p.Config.GinMode)
	return routes.NewRouter(p.Logger, routes.Handlers{
		Customer:      p.Customer,
		Technician:    p.Technician,
		Vendor:        p.Vendor,
		TaxZone:       p.TaxZone,
		Job:           p.Job,
		Estimate:      p.Estimate,
		ChangeOrder:   p.ChangeOrder,
		Invoice:       p.Invoice,
		Deposit:       p.Deposit,
		Inventory:     p.Inventory,
		PurchaseOrder: p.PurchaseOrder,
		Dashboard:     p.Dashboard,
		AI:            p.AI,
	})
}

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:              p.Config.Addr(),
		Handler:           p.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *zap.Logger
	Server     *http.Server
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	log := p.Logger.With(zap.String("component", "server"))
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("starting field service api", zap.String("addr", p.Server.Addr))
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("http server terminated", zap.Error(err))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			log.Info("field service api stopped")
			return nil
		},
	})
}
