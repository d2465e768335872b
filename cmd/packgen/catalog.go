package main

import (
	"context"
	"fmt"

	"github.com/hammamikhairi/recipepacks/internal/config"
	"github.com/hammamikhairi/recipepacks/internal/domain"
	"github.com/hammamikhairi/recipepacks/internal/logger"
	"github.com/hammamikhairi/recipepacks/internal/pack"
	"github.com/hammamikhairi/recipepacks/internal/recipe"
)

// openCatalog builds the configured recipe source behind a cache. The
// returned func releases it.
func openCatalog(ctx context.Context, cfg *config.Config, log *logger.Logger) (*recipe.CachedSource, func(), error) {
	var (
		src     domain.RecipeSource
		closeFn = func() {}
	)

	switch cfg.Catalog.Driver {
	case config.DriverMemory:
		src = recipe.NewMemorySource(log)
	case config.DriverJSON:
		mem, err := recipe.LoadJSONFile(cfg.Catalog.Path, log)
		if err != nil {
			return nil, nil, err
		}
		src = mem
	case config.DriverSQLite:
		db, err := recipe.OpenSQLite(ctx, cfg.Catalog.Path, log)
		if err != nil {
			return nil, nil, err
		}
		src = db
		closeFn = func() { db.Close() }
	default:
		return nil, nil, fmt.Errorf("unknown catalog driver %q", cfg.Catalog.Driver)
	}

	log.Debug("catalog: %s %s", cfg.Catalog.Driver, cfg.Catalog.Path)
	return recipe.NewCachedSource(src, cfg.Catalog.CacheTTL, log), closeFn, nil
}

// loadPacks returns the configured packs, restricted to keys when given.
func loadPacks(cfg *config.Config, keys []string) ([]domain.Pack, error) {
	packs := pack.Default()
	if cfg.Packs.Path != "" {
		var err error
		if packs, err = pack.Load(cfg.Packs.Path); err != nil {
			return nil, err
		}
	}
	return pack.Select(packs, keys)
}
