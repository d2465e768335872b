// Package engine runs a batch of pack compositions and persists the
// results. Each pack is composed and saved independently: a failure is
// recorded in that pack's Result and never stops the others.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hammamikhairi/recipepacks/internal/composer"
	"github.com/hammamikhairi/recipepacks/internal/domain"
	"github.com/hammamikhairi/recipepacks/internal/logger"
	"github.com/hammamikhairi/recipepacks/internal/pack"
)

// Composer renders one pack into a document.
type Composer interface {
	Compose(ctx context.Context, p domain.Pack) (*composer.Document, error)
}

// Observer is told when each pack starts and finishes. Calls may come from
// several goroutines at once when more than one worker is configured.
type Observer interface {
	PackStarted(p domain.Pack)
	PackFinished(r Result)
}

// Option configures the engine.
type Option func(*Engine)

// WithWorkers sets how many packs are composed at once. Values below one
// mean one.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n < 1 {
			n = 1
		}
		e.workers = n
	}
}

// WithObserver registers a progress observer.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		e.observer = o
	}
}

// Engine composes and stores packs. It depends only on interfaces and is
// fully testable with fakes.
type Engine struct {
	composer Composer
	store    domain.DocumentStore
	log      *logger.Logger
	workers  int
	observer Observer
}

// New creates a batch engine with the given dependencies and options.
func New(c Composer, store domain.DocumentStore, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		composer: c,
		store:    store,
		log:      log,
		workers:  1,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Result is the outcome for one pack.
type Result struct {
	PackKey  string
	Title    string
	Path     string
	Pages    int
	Recipes  int
	Skipped  []string
	Size     int
	Duration time.Duration
	Err      error
}

// OK reports whether the pack was written.
func (r Result) OK() bool { return r.Err == nil }

// Report summarises a batch run. Results are in pack order.
type Report struct {
	RunID    string
	Started  time.Time
	Duration time.Duration
	Results  []Result
}

// Failed returns the number of packs that were not written.
func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.OK() {
			n++
		}
	}
	return n
}

// Err joins every per-pack failure, or returns nil when all packs succeeded.
func (r *Report) Err() error {
	var errs []error
	for _, res := range r.Results {
		if res.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", res.PackKey, res.Err))
		}
	}
	return errors.Join(errs...)
}

// Run composes and stores every pack. The pack list is validated first;
// an invalid list is returned as an error before anything is rendered.
// Otherwise the returned error is always nil and per-pack failures are in
// the report.
func (e *Engine) Run(ctx context.Context, packs []domain.Pack) (*Report, error) {
	if err := pack.Validate(packs); err != nil {
		return nil, err
	}

	report := &Report{
		RunID:   newRunID(),
		Started: time.Now(),
		Results: make([]Result, len(packs)),
	}
	log := e.log.With("run", report.RunID)
	log.Info("building %d packs with %d workers", len(packs), e.workers)

	// Workers never return an error, so one failing pack cannot cancel
	// the group's siblings.
	var g errgroup.Group
	g.SetLimit(e.workers)
	for i, p := range packs {
		i, p := i, p
		g.Go(func() error {
			report.Results[i] = e.build(ctx, log.With("pack", p.Key), p)
			return nil
		})
	}
	_ = g.Wait()

	report.Duration = time.Since(report.Started)
	if n := report.Failed(); n > 0 {
		log.Warn("%d of %d packs failed", n, len(packs))
	} else {
		log.Info("all %d packs written in %s", len(packs), report.Duration.Round(time.Millisecond))
	}
	return report, nil
}

func (e *Engine) build(ctx context.Context, log *logger.Logger, p domain.Pack) (res Result) {
	start := time.Now()
	res = Result{PackKey: p.Key, Title: p.Title}
	if e.observer != nil {
		e.observer.PackStarted(p)
	}
	defer func() {
		res.Duration = time.Since(start)
		if res.Err != nil {
			log.Error("failed: %v", res.Err)
		}
		if e.observer != nil {
			e.observer.PackFinished(res)
		}
	}()

	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	doc, err := e.composer.Compose(ctx, p)
	if err != nil {
		res.Err = fmt.Errorf("composing: %w", err)
		return res
	}
	res.Pages = len(doc.Pages)
	res.Recipes = len(doc.Recipes)
	res.Skipped = doc.Skipped
	res.Size = len(doc.Data)

	path, err := e.store.Save(ctx, p.Key, doc.Data)
	if err != nil {
		res.Err = fmt.Errorf("saving: %w", err)
		return res
	}
	res.Path = path
	log.Info("wrote %s (%d pages)", path, res.Pages)
	return res
}
