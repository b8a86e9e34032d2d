package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"portfolio/internal/config"
	"portfolio/internal/repository/postgres"
)

var (
	timeout time.Duration

	cfg    *config.Config
	logger *slog.Logger
)

// rootCmd is the database maintenance CLI
var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Manage the portfolio database",
	Long: `Schema, sample data and admin accounts for the portfolio backend.

Tables are prefixed per environment (dev_, test_, prod_) unless
TABLE_PREFIX is set. Destructive commands refuse to run in prod.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load .env file (silently ignore if it doesn't exist)
		_ = godotenv.Load()
		cfg = config.Load()

		// CLI runs log to stdout only
		logCfg := *cfg
		logCfg.LogDir = ""

		var err error
		logger, _, err = config.NewLogger(&logCfg)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "Operation timeout")

	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(dataCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(dropCmd)
	rootCmd.AddCommand(createAdminCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// withPool opens a connection pool for the duration of fn.
func withPool(cmd *cobra.Command, fn func(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames) error) error {
	if cfg.SupabaseDBURL == "" {
		return fmt.Errorf("SUPABASE_DB_URL is not set")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	pool, err := postgres.CreateConnectionPool(ctx, cfg.SupabaseDBURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	logger.Info("connected",
		"environment", cfg.Environment,
		"table_prefix", cfg.TablePrefix,
	)
	return fn(ctx, pool, postgres.NewTableNames(cfg.TablePrefix))
}

// refuseInProd blocks destructive operations against production tables.
func refuseInProd(op string) error {
	if cfg.Environment == "prod" {
		return fmt.Errorf("refusing to %s in the prod environment", op)
	}
	return nil
}
