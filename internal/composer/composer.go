// Package composer turns one pack definition into one finished PDF.
//
// A composition resolves the pack's members against the recipe catalog
// once, then runs the page builders in a fixed order on a fresh canvas:
// cover, contents, one page per recipe, shopping list, tips and closing.
// Members the catalog cannot return are skipped everywhere.
package composer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hammamikhairi/recipepacks/internal/canvas"
	"github.com/hammamikhairi/recipepacks/internal/domain"
	"github.com/hammamikhairi/recipepacks/internal/logger"
	"github.com/hammamikhairi/recipepacks/internal/pages"
)

// Option configures the composer.
type Option func(*Composer)

// WithTheme replaces the default palette and brand strings.
func WithTheme(t canvas.Theme) Option {
	return func(c *Composer) {
		c.theme = t
	}
}

// WithClock sets the time source used for the cover date and the PDF
// creation date.
func WithClock(now func() time.Time) Option {
	return func(c *Composer) {
		c.now = now
	}
}

// WithCompression toggles PDF stream compression.
func WithCompression(on bool) Option {
	return func(c *Composer) {
		c.compress = on
	}
}

// Document is a rendered pack.
type Document struct {
	PackKey string
	Title   string
	Data    []byte
	Pages   []canvas.PageInfo

	// Recipes holds the slugs that made it into the document, in pack
	// order. Skipped holds the ones the catalog could not return.
	Recipes []string
	Skipped []string
}

// Composer renders packs. It holds no per-document state and is safe for
// concurrent use as long as its RecipeSource is.
type Composer struct {
	recipes  domain.RecipeSource
	log      *logger.Logger
	theme    canvas.Theme
	now      func() time.Time
	compress bool
}

// New creates a composer reading recipes from the given source.
func New(recipes domain.RecipeSource, log *logger.Logger, opts ...Option) *Composer {
	c := &Composer{
		recipes:  recipes,
		log:      log,
		theme:    canvas.DefaultTheme(),
		now:      time.Now,
		compress: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Theme returns the palette in use.
func (c *Composer) Theme() canvas.Theme { return c.theme }

// Compose renders one pack.
func (c *Composer) Compose(ctx context.Context, p domain.Pack) (*Document, error) {
	log := c.log.With("pack", p.Key)

	recipes, skipped, err := c.Resolve(ctx, p)
	if err != nil {
		return nil, err
	}
	log.Debug("resolved %d of %d recipes", len(recipes), len(p.Recipes))

	now := c.now()
	cv := canvas.New(c.theme,
		canvas.WithDecorator(decorator{title: p.Title}),
		canvas.WithMetadata(p.Title, p.Subtitle),
		canvas.WithCreationDate(now),
		canvas.WithCompression(c.compress),
	)

	steps := []struct {
		name string
		draw func()
	}{
		{pages.KindCover, func() { pages.Cover(cv, p, len(p.Recipes), now) }},
		{pages.KindContents, func() { pages.Contents(cv, recipes) }},
		{pages.KindRecipe, func() {
			for _, r := range recipes {
				pages.Recipe(cv, r)
			}
		}},
		{pages.KindShopping, func() { pages.ShoppingList(cv, recipes) }},
		{pages.KindTips, func() { pages.Tips(cv) }},
		{pages.KindClosing, func() { pages.Closing(cv) }},
	}
	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s.draw()
		if err := cv.Err(); err != nil {
			return nil, fmt.Errorf("drawing %s pages for %s: %w", s.name, p.Key, err)
		}
	}

	data, err := cv.Bytes()
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", p.Key, err)
	}

	doc := &Document{
		PackKey: p.Key,
		Title:   p.Title,
		Data:    data,
		Pages:   cv.Pages(),
		Skipped: skipped,
	}
	for _, r := range recipes {
		doc.Recipes = append(doc.Recipes, r.Slug)
	}
	log.Info("composed %d pages (%d recipes, %d skipped)", len(doc.Pages), len(recipes), len(skipped))
	return doc, nil
}

// Resolve looks up every member of the pack once, in order. A member the
// source fails to return for any reason is reported in skipped; only a
// cancelled context is an error.
func (c *Composer) Resolve(ctx context.Context, p domain.Pack) ([]*domain.Recipe, []string, error) {
	var (
		found   []*domain.Recipe
		skipped []string
	)
	for _, slug := range p.Recipes {
		r, err := c.recipes.Get(ctx, slug)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, nil, ctxErr
			}
			if errors.Is(err, domain.ErrNotFound) {
				c.log.Warn("pack %s: recipe %q not in catalog, skipping", p.Key, slug)
			} else {
				c.log.Warn("pack %s: recipe %q lookup failed, skipping: %v", p.Key, slug, err)
			}
			skipped = append(skipped, slug)
			continue
		}
		found = append(found, r)
	}
	return found, skipped, nil
}
