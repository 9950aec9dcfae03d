package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"trivia-quiz-service/internal/catalog"
	"trivia-quiz-service/internal/domain"
)

// CatalogLoader loads catalog question lists stored as JSONB in Postgres.
type CatalogLoader struct {
	pool *pgxpool.Pool
}

func NewCatalogLoader(pool *pgxpool.Pool) *CatalogLoader {
	return &CatalogLoader{pool: pool}
}

// LoadCatalog rejects rows that fail catalog validation, so edits made
// outside the seed command cannot reach players.
func (l *CatalogLoader) LoadCatalog(ctx context.Context, catalogID string) (domain.Catalog, error) {
	var raw []byte
	err := l.pool.QueryRow(ctx, `SELECT data FROM catalogs WHERE id=$1`, catalogID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Catalog{}, domain.ErrCatalogNotFound
	}
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("load catalog: %w", err)
	}
	return decodeCatalog(catalogID, raw)
}

func decodeCatalog(catalogID string, raw []byte) (domain.Catalog, error) {
	c := domain.Catalog{ID: catalogID}
	if err := json.Unmarshal(raw, &c.Questions); err != nil {
		return domain.Catalog{}, fmt.Errorf("unmarshal catalog: %w", err)
	}
	if err := catalog.Validate(c); err != nil {
		return domain.Catalog{}, fmt.Errorf("catalog %s: %w", catalogID, err)
	}
	return c, nil
}
