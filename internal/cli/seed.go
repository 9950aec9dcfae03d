package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"trivia-quiz-service/internal/catalog"
	"trivia-quiz-service/internal/config"
	"trivia-quiz-service/internal/domain"
	"trivia-quiz-service/internal/infra/postgres"
)

// NewSeedCmd stores a catalog in Postgres so servers can load it from there.
func NewSeedCmd(configPath *string) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the built-in catalog (or --file) to Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), *configPath, file)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "YAML catalog to seed instead of the built-in one")
	return cmd
}

func runSeed(ctx context.Context, configPath, file string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cfg.Postgres.URL == "" {
		return fmt.Errorf("postgres url not configured")
	}

	c := catalog.Default()
	if file != "" {
		if c, err = catalog.LoadFile(file); err != nil {
			return err
		}
	}
	if err := catalog.Validate(c); err != nil {
		return err
	}

	db := postgres.OpenDB(cfg.Postgres.URL)
	defer db.Close()
	if err := postgres.Migrate(ctx, db); err != nil {
		return err
	}
	if err := postgres.SeedCatalog(ctx, db, c); err != nil {
		return fmt.Errorf("seed catalog %s: %w", c.ID, err)
	}
	log.Printf("seeded catalog %q with %d questions", c.ID, len(c.Questions))
	return nil
}

// loadLocalCatalog resolves the catalog used without any backing service.
func loadLocalCatalog(file string) (domain.Catalog, error) {
	if file == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(file)
}
