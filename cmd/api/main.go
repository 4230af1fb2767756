package main

import (
	"context"
	"os/signal"
	"syscall"

	"fieldservice/internal/app"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/fx"
)

// @title           Field Service Hub API
// @version         1.0
// @description     Back office for field-service businesses: customers, jobs, estimates, invoicing, inventory and AI helpers.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application := fx.New(
		fx.Provide(func() context.Context { return ctx }),
		app.Module(),
	)

	run(ctx, application)
}
