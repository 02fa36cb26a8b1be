package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/zititex/zititex-api/internal/config"
	"github.com/zititex/zititex-api/internal/database"
	"github.com/zititex/zititex-api/internal/dto"
	"github.com/zititex/zititex-api/internal/handler"
	"github.com/zititex/zititex-api/internal/middleware"
	"github.com/zititex/zititex-api/internal/models"
	"github.com/zititex/zititex-api/internal/repository"
	"github.com/zititex/zititex-api/internal/router"
	"github.com/zititex/zititex-api/internal/service"
	mail "github.com/zititex/zititex-api/pkg/mailgun"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Client{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	validate, err := dto.NewValidator()
	if err != nil {
		log.Fatalf("failed to build validator: %v", err)
	}

	mailer := mail.New(mail.Config{
		APIKey:  cfg.MailgunAPIKey,
		Domain:  cfg.MailgunDomain,
		BaseURL: cfg.MailgunBaseURL,
		Sender:  cfg.MailgunSender,
	}, nil, logger)

	clientRepo := repository.NewClientRepository(db)

	contactService := service.NewContactService(clientRepo, mailer, cfg.AdminEmail, logger)
	adminClientService := service.NewAdminClientService(clientRepo, logger)

	contactHandler := handler.NewContactHandler(contactService, validate, logger, cfg.Debug)
	adminClientHandler := handler.NewAdminClientHandler(adminClientService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{
		Logger:         &logger,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	deps := router.Dependencies{DB: db, ContactHandler: contactHandler}
	if cfg.JWTSecret != "" {
		deps.AdminClientHandler = adminClientHandler
		deps.JWTMiddleware = middleware.JWTProtected(cfg.JWTSecret)
	} else {
		logger.Warn().Msg("jwt secret not set, admin endpoints disabled")
	}

	router.Register(app, cfg, deps)

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
