package routes

import (
	_ "fieldservice/docs"
	"fieldservice/internal/adapter/http/handlers"
	"fieldservice/internal/adapter/http/middleware"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	PathV1      = "/v1"
	PathPing    = "/ping"
	PathSwagger = "/swagger/*any"
)

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
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

// NewRouter builds the gin engine with middlewares, docs and all routes.
func NewRouter(log *zap.Logger, h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, log)

	// Swagger documentation endpoint
	router.GET(PathSwagger, ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group(PathV1)
	addPingRoutes(v1)
	addCustomerRoutes(v1, h)
	addJobRoutes(v1, h)
	addBillingRoutes(v1, h)
	addInventoryRoutes(v1, h)
	addAIRoutes(v1, h)
	return router
}

func setMiddlewares(router *gin.Engine, log *zap.Logger) {
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Recovery(log))
	// SSE responses must reach the client chunk by chunk.
	router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPathsRegexs([]string{`^/v1/ai/[^/]+/stream$`})))
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}
