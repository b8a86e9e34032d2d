package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"portfolio/internal/repository/postgres"
	"portfolio/internal/seed"
)

var fixturesPath string

// schemaCmd creates the content tables
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Create tables if they do not exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPool(cmd, func(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames) error {
			if err := postgres.EnsureSchema(ctx, pool, tables); err != nil {
				return err
			}
			logger.Info("schema ready")
			return nil
		})
	},
}

// dataCmd loads sample content
var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Load sample content",
	Long: `Ensure the schema exists, then load fixtures in one transaction.

Without --file the embedded sample content is used.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fixtures, err := loadFixtures()
		if err != nil {
			return err
		}

		return withPool(cmd, func(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames) error {
			if err := postgres.EnsureSchema(ctx, pool, tables); err != nil {
				return err
			}

			repoConfig := &postgres.RepositoryConfig{
				Pool:   pool,
				Tables: tables,
				Logger: logger,
			}
			seeder := seed.NewSeeder(
				postgres.NewProjectRepository(repoConfig),
				postgres.NewSkillRepository(repoConfig),
				postgres.NewAboutRepository(repoConfig),
				postgres.NewContactRepository(repoConfig),
				postgres.NewTransactionManager(pool, logger),
				logger,
			)
			counts, err := seeder.Seed(ctx, fixtures)
			if err != nil {
				return fmt.Errorf("failed to seed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d projects, %d skills, %d about entries, %d contact submissions\n",
				counts.Projects, counts.Skills, counts.About, counts.Contacts)
			return nil
		})
	},
}

// clearCmd empties the content tables
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all rows, keep the schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := refuseInProd("clear data"); err != nil {
			return err
		}
		return withPool(cmd, func(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames) error {
			if err := postgres.TruncateAll(ctx, pool, tables); err != nil {
				return err
			}
			logger.Info("data cleared")
			return nil
		})
	},
}

// dropCmd drops the content tables
var dropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Drop all content tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := refuseInProd("drop tables"); err != nil {
			return err
		}
		return withPool(cmd, func(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames) error {
			if err := postgres.DropAll(ctx, pool, tables); err != nil {
				return err
			}
			logger.Info("tables dropped", "tables", tables.All())
			return nil
		})
	},
}

func init() {
	dataCmd.Flags().StringVarP(&fixturesPath, "file", "f", "", "YAML fixtures file (default: embedded sample content)")
}

func loadFixtures() (*seed.Fixtures, error) {
	if fixturesPath == "" {
		return seed.DefaultFixtures()
	}
	return seed.LoadFixtures(fixturesPath)
}
