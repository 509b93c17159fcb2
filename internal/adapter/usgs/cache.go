package usgs

import (
	"context"
	"fmt"

	"github.com/couchcryptid/quake-data-service/internal/domain"
	"github.com/couchcryptid/quake-data-service/internal/observability"
	lru "github.com/hashicorp/golang-lru/v2"
)

// CachedCatalog wraps a Catalog with a bounded in-memory LRU cache keyed by
// query parameters. It absorbs repeated identical queries within a run (CLI
// re-invocations, bursts on the HTTP API); it holds no TTL, so a long-lived
// process that must see newly published events should run with the cache
// disabled.
type CachedCatalog struct {
	inner   domain.Catalog
	cache   *lru.Cache[string, domain.FeatureCollection]
	metrics *observability.Metrics
}

// NewCachedCatalog creates a cache decorator around a catalog. maxEntries
// must be positive.
func NewCachedCatalog(inner domain.Catalog, maxEntries int, metrics *observability.Metrics) (*CachedCatalog, error) {
	cache, err := lru.New[string, domain.FeatureCollection](maxEntries)
	if err != nil {
		return nil, fmt.Errorf("create response cache: %w", err)
	}
	return &CachedCatalog{inner: inner, cache: cache, metrics: metrics}, nil
}

func (c *CachedCatalog) FetchByMagnitude(ctx context.Context, q domain.MagnitudeQuery) (domain.FeatureCollection, error) {
	key := fmt.Sprintf("mag:%g|%g|%g|%s", q.MinMagnitude, q.MaxMagnitude, q.MaxGap, q.EventType)
	return c.lookup(ctx, key, func() (domain.FeatureCollection, error) {
		return c.inner.FetchByMagnitude(ctx, q)
	})
}

func (c *CachedCatalog) FetchByLocation(ctx context.Context, q domain.LocationQuery) (domain.FeatureCollection, error) {
	key := fmt.Sprintf("loc:%g|%g|%g|%s", q.Latitude, q.Longitude, q.MaxRadiusKM, q.EventType)
	return c.lookup(ctx, key, func() (domain.FeatureCollection, error) {
		return c.inner.FetchByLocation(ctx, q)
	})
}

func (c *CachedCatalog) lookup(_ context.Context, key string, fetch func() (domain.FeatureCollection, error)) (domain.FeatureCollection, error) {
	if fc, ok := c.cache.Get(key); ok {
		c.metrics.UpstreamCache.WithLabelValues("hit").Inc()
		return fc, nil
	}
	c.metrics.UpstreamCache.WithLabelValues("miss").Inc()

	fc, err := fetch()
	if err != nil {
		return fc, err
	}
	c.cache.Add(key, fc)
	return fc, nil
}
