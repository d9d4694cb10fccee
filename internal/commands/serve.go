package commands

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"blog/internal/app"
	"blog/internal/database"
	"blog/internal/services"
	"blog/pkg/rabbitmq"

	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/cobra"
)

var (
	// Serve flags
	port          string
	skipMigration bool
)

// serveCmd starts the HTTP API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	serveCmd.Flags().StringVar(&port, "port", "", "Listen address, overrides APP_PORT")
	serveCmd.Flags().BoolVar(&skipMigration, "skip-migration", false, "Do not migrate the schema on startup")
}

func runServe() error {
	cfg := loadConfig()
	if port != "" {
		cfg.AppPort = port
	}

	// --- Initialize Database ---
	db, err := database.Open(database.Config{Driver: cfg.DatabaseDriver, DSN: cfg.DatabaseDSN, Debug: cfg.DatabaseDebug})
	if err != nil {
		return err
	}
	if !skipMigration {
		if err := database.Migrate(db); err != nil {
			return err
		}
	}

	// --- Initialize RabbitMQ Client ---
	var publisher services.EventPublisher
	if cfg.EventsEnabled {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			return err
		}
		defer mqClient.Close() // Ensure the connection is closed on exit
		publisher = mqClient

		if err := mqClient.ConsumeEvents(rabbitmq.LogEvent); err != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", err)
		}
	} else {
		log.Println("Event publishing disabled (EVENTS_ENABLED=false)")
	}

	// --- Initialize Fiber App ---
	server := app.New(cfg, db, publisher, logger.New()) // Request logger

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	listenErr := make(chan error, 1)
	go func() {
		listenErr <- server.Listen(cfg.AppPort)
	}()

	select {
	case err := <-listenErr:
		return err
	case <-quit:
	}
	log.Println("Shutting down server...")

	if err := server.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	log.Println("Server gracefully stopped")
	return nil
}
