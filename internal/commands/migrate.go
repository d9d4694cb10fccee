package commands

import (
	"fmt"
	"log"

	"blog/internal/database"

	"github.com/spf13/cobra"
)

// migrateCmd creates or updates the schema
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate()
	},
}

func runMigrate() error {
	cfg := loadConfig()

	db, err := database.Open(database.Config{Driver: cfg.DatabaseDriver, DSN: cfg.DatabaseDSN, Debug: cfg.DatabaseDebug})
	if err != nil {
		return err
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	log.Printf("Schema migrated on %s", cfg.DatabaseDriver)
	return nil
}
