package router

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/zititex/zititex-api/internal/config"
	"github.com/zititex/zititex-api/internal/handler"
	"github.com/zititex/zititex-api/internal/middleware"
	"github.com/zititex/zititex-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	DB                 *gorm.DB
	ContactHandler     *handler.ContactHandler
	AdminClientHandler *handler.AdminClientHandler
	JWTMiddleware      fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg, deps.DB))

	app.Get("/metrics", observability.MetricsHandler())

	if deps.ContactHandler != nil {
		contact := api.Group("/contact", middleware.RateLimit("contact", cfg.ContactRateLimit, cfg.ContactRateWindow))
		deps.ContactHandler.Register(contact)
	}

	// The admin surface only exists behind the token guard. Without the
	// middleware the routes stay unregistered rather than mounted open.
	if deps.AdminClientHandler != nil && deps.JWTMiddleware != nil {
		admin := app.Group("/api/admin/clients", deps.JWTMiddleware)
		deps.AdminClientHandler.Register(admin)
	}
}
