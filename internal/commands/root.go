// Package commands holds the blog command line: serve runs the HTTP API and migrate
// creates the schema.
package commands

import (
	"fmt"
	"os"

	"blog/internal/config"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Global flags
	dbDriver string
	dbDSN    string
	verbose  bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "blog",
	Short: "Blog API server",
	Long: `Blog serves accounts, profiles, categories, posts, comments, likes, bookmarks
and notifications over a JSON API backed by PostgreSQL or SQLite.

Configuration is read from the environment (APP_PORT, DATABASE_DRIVER, DATABASE_DSN,
JWT_SECRET, TOKEN_TTL, RABBITMQ_URL, EVENTS_ENABLED). Flags override it.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbDriver, "db-driver", "", "Database driver: sqlite or postgres")
	rootCmd.PersistentFlags().StringVar(&dbDSN, "db", "", "Database connection string")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every SQL statement")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

// loadConfig reads the environment and applies the global flags on top of it.
func loadConfig() config.Config {
	cfg := config.Load(viper.New())
	if dbDriver != "" {
		cfg.DatabaseDriver = dbDriver
	}
	if dbDSN != "" {
		cfg.DatabaseDSN = dbDSN
	}
	if verbose {
		cfg.DatabaseDebug = true
	}
	return cfg
}
