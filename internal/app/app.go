// Package app wires repositories, services and HTTP handlers into a Fiber application.
package app

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"blog/internal/config"
	"blog/internal/handlers"
	"blog/internal/middleware"
	"blog/internal/repositories"
	"blog/internal/services"
	"blog/internal/slugs"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// New builds the Fiber app serving the blog API under /api/v1. publisher may be nil,
// in which case events are not published and passcodes are only logged. middlewares run
// ahead of every route.
func New(cfg config.Config, db *gorm.DB, publisher services.EventPublisher, middlewares ...fiber.Handler) *fiber.App {
	store := repositories.NewGORMStore(db)

	// --- Initialize Services ---
	authService := services.NewAuthService(store.Accounts(), cfg.JWTSecret, cfg.TokenTTL)
	accountService := services.NewAccountService(store, publisher)
	profileService := services.NewProfileService(store)
	categoryService := services.NewCategoryService(store)
	postService := services.NewPostService(store, slugs.ShortUUID{}, publisher)
	notificationService := services.NewNotificationService(store)

	// --- Initialize Handlers ---
	var otpSender handlers.OTPSender = logOTPSender{}
	if publisher != nil {
		otpSender = eventOTPSender{publisher: publisher}
	}
	authHandler := handlers.NewAuthHandler(authService, accountService, otpSender)
	accountHandler := handlers.NewAccountHandler(accountService, profileService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	postHandler := handlers.NewPostHandler(postService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	app := fiber.New(fiber.Config{AppName: "blog"})
	for _, mw := range middlewares {
		app.Use(mw)
	}

	// --- API Routes ---
	apiV1 := app.Group("/api/v1")
	auth := middleware.AuthRequired(authService)

	authHandler.RegisterRoutes(apiV1)
	accountHandler.RegisterRoutes(apiV1, auth)
	categoryHandler.RegisterRoutes(apiV1, auth)
	postHandler.RegisterRoutes(apiV1, auth)
	notificationHandler.RegisterRoutes(apiV1, auth)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		status := fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
			"events": publisher != nil,
		}
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			status["status"] = "unhealthy"
			status["error"] = err.Error()
			return c.Status(fiber.StatusServiceUnavailable).JSON(status)
		}
		return c.JSON(status)
	})

	return app
}

// eventOTPSender hands passcodes to the mail worker through the event queue.
type eventOTPSender struct {
	publisher services.EventPublisher
}

func (s eventOTPSender) SendOTP(email, otp string) error {
	body, err := json.Marshal(map[string]string{
		"type":  services.EventOTPIssued,
		"email": email,
		"otp":   otp,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal passcode event: %w", err)
	}
	if err := s.publisher.Publish(services.EventOTPIssued, body); err != nil {
		return fmt.Errorf("failed to publish passcode for %s: %w", email, err)
	}
	return nil
}

// logOTPSender is used when no broker is configured, typically in development.
type logOTPSender struct{}

func (logOTPSender) SendOTP(email, otp string) error {
	log.Printf("Passcode for %s: %s (event delivery disabled)", email, otp)
	return nil
}
