package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
	"trivia-quiz-service/internal/domain"
)

// CatalogLoader fetches catalog content from a backing store (e.g., Postgres, a YAML file).
type CatalogLoader interface {
	LoadCatalog(ctx context.Context, catalogID string) (domain.Catalog, error)
}

// CatalogRepository caches catalogs with TTL to avoid repeated loads.
type CatalogRepository struct {
	loader CatalogLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand
	rndMu  sync.Mutex

	mu    sync.RWMutex
	cache map[string]cachedCatalog
}

type cachedCatalog struct {
	catalog   domain.Catalog
	expiresAt time.Time
}

func NewCatalogRepository(loader CatalogLoader, ttl time.Duration) *CatalogRepository {
	return &CatalogRepository{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		cache:  make(map[string]cachedCatalog),
	}
}

func (r *CatalogRepository) GetCatalog(ctx context.Context, catalogID string) (domain.Catalog, error) {
	if c, ok := r.cached(catalogID); ok {
		return c, nil
	}

	result, err, _ := r.sf.Do(catalogID, func() (interface{}, error) {
		if c, ok := r.cached(catalogID); ok {
			return c, nil
		}

		c, err := r.loader.LoadCatalog(ctx, catalogID)
		if err != nil {
			return domain.Catalog{}, err
		}

		r.mu.Lock()
		r.cache[catalogID] = cachedCatalog{
			catalog:   c,
			expiresAt: r.clock().Add(r.ttlWithJitter()),
		}
		r.mu.Unlock()
		return c, nil
	})
	if err != nil {
		return domain.Catalog{}, err
	}
	return result.(domain.Catalog), nil
}

func (r *CatalogRepository) cached(catalogID string) (domain.Catalog, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.cache[catalogID]
	if !ok || !entry.expiresAt.After(r.clock()) {
		return domain.Catalog{}, false
	}
	return entry.catalog, true
}

func (r *CatalogRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	r.rndMu.Lock()
	defer r.rndMu.Unlock()
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}

// StaticCatalogLoader is a simple loader backed by an in-memory map (built-in catalog, tests).
type StaticCatalogLoader struct {
	catalogs map[string]domain.Catalog
}

func NewStaticCatalogLoader(catalogs ...domain.Catalog) *StaticCatalogLoader {
	m := make(map[string]domain.Catalog, len(catalogs))
	for _, c := range catalogs {
		m[c.ID] = c
	}
	return &StaticCatalogLoader{catalogs: m}
}

func (l *StaticCatalogLoader) LoadCatalog(_ context.Context, catalogID string) (domain.Catalog, error) {
	if c, ok := l.catalogs[catalogID]; ok {
		return c, nil
	}
	return domain.Catalog{}, domain.ErrCatalogNotFound
}
