package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/recipepacks/internal/canvas"
	"github.com/hammamikhairi/recipepacks/internal/composer"
	"github.com/hammamikhairi/recipepacks/internal/config"
	"github.com/hammamikhairi/recipepacks/internal/display"
	"github.com/hammamikhairi/recipepacks/internal/engine"
	"github.com/hammamikhairi/recipepacks/internal/storage"
)

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, log, done, err := setup()
	if err != nil {
		return err
	}
	defer done()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	packs, err := loadPacks(cfg, only)
	if err != nil {
		return err
	}
	recipes, closeCatalog, err := openCatalog(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeCatalog()

	comp := composer.New(recipes, log, composer.WithTheme(theme(cfg)))
	store := storage.NewFileStore(cfg.Output.Dir, cfg.Site.Slug, log)
	log.Info("writing %d packs to %s", len(packs), store.Dir())

	live := !plain && display.IsTerminal(os.Stdout)
	if live {
		fmt.Print(display.RenderBanner(0))
	}

	var (
		report *engine.Report
		runErr error
	)
	if live {
		progress := display.NewProgress(packs, cancel)
		eng := engine.New(comp, store, log, engine.WithWorkers(cfg.Workers), engine.WithObserver(progress))

		finished := make(chan struct{})
		go func() {
			defer close(finished)
			report, runErr = eng.Run(ctx, packs)
			progress.Finish()
		}()
		if err := progress.Run(); err != nil {
			log.Warn("progress view: %v", err)
		}
		// Ctrl+C cancels the batch; wait for in-flight packs to stop.
		<-finished
	} else {
		eng := engine.New(comp, store, log, engine.WithWorkers(cfg.Workers), engine.WithObserver(display.NewPlain(os.Stdout)))
		report, runErr = eng.Run(ctx, packs)
	}
	if runErr != nil {
		return runErr
	}

	hits, misses := recipes.Stats()
	log.Debug("catalog cache: %d hits, %d misses", hits, misses)

	fmt.Print(display.RenderReport(report))
	if n := report.Failed(); n > 0 {
		return fmt.Errorf("%d of %d packs failed: %w", n, len(report.Results), report.Err())
	}
	return nil
}

// theme applies the configured brand strings to the default palette.
func theme(cfg *config.Config) canvas.Theme {
	t := canvas.DefaultTheme()
	t.Brand = cfg.Site.Brand
	t.SiteName = cfg.Site.Name
	t.SiteURL = cfg.Site.URL
	return t
}
