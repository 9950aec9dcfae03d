package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"trivia-quiz-service/internal/config"
	"trivia-quiz-service/internal/infra/postgres"
)

// NewMigrateCmd applies database migrations.
func NewMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrations(cmd.Context(), *configPath)
		},
	}
}

func runMigrations(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	return runMigrationsWithConfig(ctx, cfg)
}

func runMigrationsWithConfig(ctx context.Context, cfg config.Config) error {
	if cfg.Postgres.URL == "" {
		return fmt.Errorf("postgres url not configured")
	}

	db := postgres.OpenDB(cfg.Postgres.URL)
	defer db.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		return err
	}
	log.Printf("migrations applied")
	return nil
}
