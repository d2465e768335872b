package recipe

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/hammamikhairi/recipepacks/internal/domain"
	"github.com/hammamikhairi/recipepacks/internal/logger"
)

// Compile-time interface check.
var _ domain.RecipeSource = (*CachedSource)(nil)

// CachedSource memoizes Get on top of a slower source. Packs share many
// recipes, so a batch run reads each one from the backing store once.
// Misses (ErrNotFound) are cached too.
type CachedSource struct {
	next   domain.RecipeSource
	cache  *cache.Cache
	log    *logger.Logger
	hits   atomic.Int64
	misses atomic.Int64
}

// missing marks a slug the backing source does not know.
type missing struct{}

// NewCachedSource wraps next with a TTL cache. A ttl of zero keeps entries
// for the lifetime of the process.
func NewCachedSource(next domain.RecipeSource, ttl time.Duration, log *logger.Logger) *CachedSource {
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}
	return &CachedSource{
		next:  next,
		cache: cache.New(ttl, 10*time.Minute),
		log:   log,
	}
}

// Get returns a recipe by slug, consulting the cache first.
func (c *CachedSource) Get(ctx context.Context, slug string) (*domain.Recipe, error) {
	if v, ok := c.cache.Get(slug); ok {
		c.hits.Add(1)
		if _, gone := v.(missing); gone {
			return nil, domain.ErrNotFound
		}
		return v.(*domain.Recipe), nil
	}
	c.misses.Add(1)

	r, err := c.next.Get(ctx, slug)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.cache.SetDefault(slug, missing{})
		return nil, err
	case err != nil:
		// Transient failures are not cached.
		return nil, err
	}
	c.cache.SetDefault(slug, r)
	c.log.Debug("cache store: %s", slug)
	return r, nil
}

// List is passed straight through.
func (c *CachedSource) List(ctx context.Context) ([]domain.RecipeSummary, error) {
	return c.next.List(ctx)
}

// Stats returns the hit and miss counters.
func (c *CachedSource) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}
