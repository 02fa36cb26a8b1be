package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/zititex/zititex-api/internal/config"
	"github.com/zititex/zititex-api/internal/utils"
)

// HealthResponse represents the payload returned by the health endpoint.
type HealthResponse struct {
	Status          string    `json:"status"`
	Timestamp       time.Time `json:"timestamp"`
	Service         string    `json:"service"`
	Environment     string    `json:"environment"`
	Database        string    `json:"database"`
	EmailConfigured bool      `json:"email_configured"`
}

// HealthCheck returns a handler that reports application health, including
// database reachability and whether outbound mail is configured. The endpoint
// always answers 200; degraded components show up in the payload.
func HealthCheck(cfg config.Config, db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		database := "ok"
		switch {
		case db == nil:
			database = "unavailable"
		default:
			if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(c.Context()) != nil {
				database = "unreachable"
			}
		}

		status := "ok"
		if database != "ok" {
			status = "degraded"
		}

		payload := HealthResponse{
			Status:          status,
			Timestamp:       time.Now().UTC(),
			Service:         cfg.AppName,
			Environment:     cfg.AppEnv,
			Database:        database,
			EmailConfigured: cfg.EmailConfigured(),
		}

		return utils.SendSuccess(c, "service healthy", payload)
	}
}
