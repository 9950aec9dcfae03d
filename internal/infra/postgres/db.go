package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"
	"trivia-quiz-service/internal/domain"
	"trivia-quiz-service/internal/infra/postgres/migrations"
)

// OpenDB returns a bun handle for migrations and seeding. Callers close it.
func OpenDB(dsn string) *bun.DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	return bun.NewDB(sqldb, pgdialect.New())
}

// Migrate applies all pending schema migrations.
func Migrate(ctx context.Context, db *bun.DB) error {
	migrator := migrate.NewMigrator(db, migrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		return err
	}
	_, err := migrator.Migrate(ctx)
	return err
}

type catalogRow struct {
	bun.BaseModel `bun:"table:catalogs"`

	ID        string            `bun:"id,pk"`
	Data      []domain.Question `bun:"data,type:jsonb"`
	UpdatedAt time.Time         `bun:"updated_at,notnull"`
}

// SeedCatalog inserts or replaces a catalog.
func SeedCatalog(ctx context.Context, db *bun.DB, c domain.Catalog) error {
	row := &catalogRow{ID: c.ID, Data: c.Questions, UpdatedAt: time.Now().UTC()}
	_, err := db.NewInsert().
		Model(row).
		On("CONFLICT (id) DO UPDATE").
		Set("data = EXCLUDED.data").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return err
}
