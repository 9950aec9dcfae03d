package redis

import (
	"context"
	"encoding/json"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
	"trivia-quiz-service/internal/domain"
)

// CatalogLoader fetches catalog content from a backing store (e.g., Postgres).
type CatalogLoader interface {
	LoadCatalog(ctx context.Context, catalogID string) (domain.Catalog, error)
}

// CatalogRepository caches catalogs in Redis as JSON and falls back to a loader on cache miss.
// Catalogs are stored as: SET catalog:{catalogID} {json} EX ttl
type CatalogRepository struct {
	client *redis.Client
	loader CatalogLoader
	ttl    time.Duration
	sf     singleflight.Group
	rndMu  sync.Mutex
	rnd    *rand.Rand
}

func NewCatalogRepository(client *redis.Client, loader CatalogLoader, ttl time.Duration) *CatalogRepository {
	return &CatalogRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *CatalogRepository) GetCatalog(ctx context.Context, catalogID string) (domain.Catalog, error) {
	if c, ok := r.cached(ctx, catalogID); ok {
		return c, nil
	}

	result, err, _ := r.sf.Do(catalogID, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		if c, ok := r.cached(ctx, catalogID); ok {
			return c, nil
		}

		c, err := r.loader.LoadCatalog(ctx, catalogID)
		if err != nil {
			return domain.Catalog{}, err
		}

		data, err := json.Marshal(c)
		if err != nil {
			return domain.Catalog{}, err
		}
		if err := r.client.Set(ctx, r.key(catalogID), data, r.ttlWithJitter()).Err(); err != nil {
			log.Printf("cache catalog %s: %v", catalogID, err)
		}
		return c, nil
	})
	if err != nil {
		return domain.Catalog{}, err
	}
	return result.(domain.Catalog), nil
}

func (r *CatalogRepository) cached(ctx context.Context, catalogID string) (domain.Catalog, bool) {
	raw, err := r.client.Get(ctx, r.key(catalogID)).Bytes()
	if err != nil {
		return domain.Catalog{}, false
	}
	var c domain.Catalog
	if err := json.Unmarshal(raw, &c); err != nil || len(c.Questions) == 0 {
		return domain.Catalog{}, false
	}
	return c, true
}

func (r *CatalogRepository) key(catalogID string) string {
	return "catalog:" + catalogID
}

func (r *CatalogRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	r.rndMu.Lock()
	defer r.rndMu.Unlock()
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
