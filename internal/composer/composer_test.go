package composer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/recipepacks/internal/domain"
	"github.com/hammamikhairi/recipepacks/internal/logger"
	"github.com/hammamikhairi/recipepacks/internal/pages"
	"github.com/hammamikhairi/recipepacks/internal/recipe"
)

var fixedNow = time.Date(2026, time.October, 1, 9, 0, 0, 0, time.UTC)

func newComposer(t *testing.T, src domain.RecipeSource) *Composer {
	t.Helper()
	log := logger.New(logger.LevelOff, nil)
	return New(src, log, WithClock(func() time.Time { return fixedNow }), WithCompression(false))
}

func seeded(t *testing.T) *Composer {
	t.Helper()
	return newComposer(t, recipe.NewMemorySource(logger.New(logger.LevelOff, nil)))
}

func catalog(t *testing.T, recipes ...*domain.Recipe) *recipe.MemorySource {
	t.Helper()
	src := recipe.NewEmptyMemorySource(logger.New(logger.LevelOff, nil))
	for _, r := range recipes {
		require.NoError(t, src.Put(context.Background(), r))
	}
	return src
}

// textOp is how the PDF stream shows a string.
func textOp(text string) []byte {
	return []byte("(" + text + ")Tj")
}

func shows(doc *Document, text string) int {
	return bytes.Count(doc.Data, textOp(text))
}

func countKind(doc *Document, kind string, continued bool) int {
	n := 0
	for _, p := range doc.Pages {
		if p.Kind == kind && p.Continued == continued {
			n++
		}
	}
	return n
}

func TestComposeSectionOrder(t *testing.T) {
	c := seeded(t)
	pack := domain.Pack{
		Key:     "starter",
		Title:   "Starter Pack",
		Recipes: []string{"chocolate-chip-protein-cookies", "peanut-butter-protein-cookies"},
	}

	doc, err := c.Compose(context.Background(), pack)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(doc.Data, []byte("%PDF")))

	var kinds []string
	for _, p := range doc.Pages {
		if !p.Continued {
			kinds = append(kinds, p.Kind)
		}
	}
	assert.Equal(t, []string{
		pages.KindCover, pages.KindContents,
		pages.KindRecipe, pages.KindRecipe,
		pages.KindShopping, pages.KindTips, pages.KindClosing,
	}, kinds)
	assert.Equal(t, "starter", doc.PackKey)
	assert.Equal(t, pack.Recipes, doc.Recipes)
	assert.Empty(t, doc.Skipped)

	for i := range doc.Pages {
		assert.Equal(t, i+1, doc.Pages[i].Number)
		assert.Equal(t, 1, shows(doc, fmt.Sprintf("Page %d", i+1)), "footer on page %d", i+1)
	}
	assert.Equal(t, 1, shows(doc, "Generated October 2026"))
	// Band title on every decorated page except the closing one, which is
	// painted over but still present in the stream.
	assert.Equal(t, len(doc.Pages)-1, shows(doc, "STARTER PACK"))
}

func TestComposeMinimumPageCount(t *testing.T) {
	c := seeded(t)
	packs := []domain.Pack{
		{Key: "empty"},
		{Key: "one", Recipes: []string{"no-bake-protein-cookies"}},
		{Key: "all", Recipes: []string{
			"chocolate-chip-protein-cookies",
			"peanut-butter-protein-cookies",
			"no-bake-protein-cookies",
			"protein-cookie-dough-bites",
			"greek-yogurt-protein-cookies",
		}},
		{Key: "mixed", Recipes: []string{"nope", "protein-cookie-dough-bites", "also-nope"}},
	}

	for _, p := range packs {
		t.Run(p.Key, func(t *testing.T) {
			doc, err := c.Compose(context.Background(), p)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, len(doc.Pages), 5+len(doc.Recipes))
			assert.Equal(t, len(doc.Recipes), countKind(doc, pages.KindRecipe, false))
		})
	}
}

func TestComposeSkipsUnresolvableSlug(t *testing.T) {
	c := seeded(t)
	pack := domain.Pack{
		Key:   "mixed",
		Title: "Mixed",
		Recipes: []string{
			"peanut-butter-protein-cookies",
			"does-not-exist",
			"no-bake-protein-cookies",
		},
	}

	doc, err := c.Compose(context.Background(), pack)
	require.NoError(t, err)

	assert.Equal(t, 2, countKind(doc, pages.KindRecipe, false))
	assert.Equal(t, []string{"does-not-exist"}, doc.Skipped)
	assert.Equal(t, 1, shows(doc, "Peanut Butter Protein Cookies"))
	assert.Equal(t, 1, shows(doc, "No-Bake Protein Cookies"))
	assert.Equal(t, 1, shows(doc, "3"), "cover counts every pack member")
	assert.Equal(t, 0, shows(doc, "2"))
}

func TestComposeContentsNumbersFoundRecipes(t *testing.T) {
	a := &domain.Recipe{Slug: "a", Title: "Alpha Cookies"}
	b := &domain.Recipe{Slug: "b", Title: "Beta Cookies"}
	c := newComposer(t, catalog(t, a, b))

	doc, err := c.Compose(context.Background(), domain.Pack{
		Key:     "gappy",
		Recipes: []string{"a", "missing", "b"},
	})
	require.NoError(t, err)

	// Entries are numbered over the recipes that made it into the document.
	assert.Equal(t, 1, shows(doc, "1."))
	assert.Equal(t, 1, shows(doc, "2."))
	assert.Equal(t, 0, shows(doc, "3."))
	alpha := bytes.Index(doc.Data, textOp("Alpha Cookies"))
	beta := bytes.Index(doc.Data, textOp("Beta Cookies"))
	require.True(t, alpha > 0 && beta > 0)
	assert.Less(t, alpha, beta)
}

type flakySource struct {
	domain.RecipeSource
}

func (f flakySource) Get(ctx context.Context, slug string) (*domain.Recipe, error) {
	if slug == "flaky" {
		return nil, errors.New("connection reset")
	}
	return f.RecipeSource.Get(ctx, slug)
}

func TestComposeSkipsFailedLookup(t *testing.T) {
	c := newComposer(t, flakySource{recipe.NewMemorySource(logger.New(logger.LevelOff, nil))})

	doc, err := c.Compose(context.Background(), domain.Pack{
		Key:     "flaky",
		Recipes: []string{"flaky", "protein-cookie-dough-bites"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"protein-cookie-dough-bites"}, doc.Recipes)
	assert.Equal(t, []string{"flaky"}, doc.Skipped)
}

func TestComposeZeroResolvable(t *testing.T) {
	c := seeded(t)

	doc, err := c.Compose(context.Background(), domain.Pack{
		Key:     "ghost",
		Title:   "Ghost Pack",
		Recipes: []string{"a", "b"},
	})
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(doc.Data, []byte("%PDF")))

	var kinds []string
	for _, p := range doc.Pages {
		kinds = append(kinds, p.Kind)
	}
	assert.Equal(t, []string{
		pages.KindCover, pages.KindContents, pages.KindShopping, pages.KindTips, pages.KindClosing,
	}, kinds)
	assert.Equal(t, 1, shows(doc, "2"), "cover counts listed members")
	assert.Equal(t, 0, shows(doc, "[ ]"))
}

func TestComposeRecipePageKeepsDuplicates(t *testing.T) {
	eggs := &domain.Recipe{
		Slug:         "eggy",
		Title:        "Eggy Cookies",
		Ingredients:  []string{"egg", "40g oat flour", "egg"},
		Instructions: []domain.Step{{Title: "Mix", Text: "Mix."}},
	}
	c := newComposer(t, catalog(t, eggs))

	doc, err := c.Compose(context.Background(), domain.Pack{Key: "eggy", Recipes: []string{"eggy"}})
	require.NoError(t, err)

	// Two lines on the recipe page, one on the shopping list.
	assert.Equal(t, 3, shows(doc, "egg"))
	assert.Equal(t, 1, shows(doc, "PROTEINS & DAIRY"))
}

func TestComposeNoBakeScenario(t *testing.T) {
	noBake := &domain.Recipe{
		Slug:        "no-bake-cookies",
		Title:       "No-Bake Cookies",
		Ingredients: []string{"peanut butter", "honey"},
	}
	bites := &domain.Recipe{
		Slug:        "bites",
		Title:       "Bites",
		Ingredients: []string{"rolled oats"},
	}
	c := newComposer(t, catalog(t, noBake, bites))

	doc, err := c.Compose(context.Background(), domain.Pack{
		Key:     "no-bake",
		Title:   "No-Bake Pack",
		Recipes: []string{"no-bake-cookies", "bites"},
	})
	require.NoError(t, err)

	for _, h := range []string{"DRY GOODS", "NUT BUTTERS & OILS", "SWEETENERS"} {
		assert.Equal(t, 1, shows(doc, h), h)
	}
	for _, h := range []string{"PROTEINS & DAIRY", "EXTRAS"} {
		assert.Equal(t, 0, shows(doc, h), h)
	}
	assert.Equal(t, 3, shows(doc, "[ ]"))

	dry := bytes.Index(doc.Data, textOp("DRY GOODS"))
	nut := bytes.Index(doc.Data, textOp("NUT BUTTERS & OILS"))
	sweet := bytes.Index(doc.Data, textOp("SWEETENERS"))
	assert.True(t, dry < nut && nut < sweet, "buckets out of order")

	first := bytes.Index(doc.Data, textOp("No-Bake Cookies"))
	second := bytes.Index(doc.Data, textOp("Bites"))
	require.True(t, first > 0 && second > 0)
	assert.Less(t, first, second, "contents order")
	assert.Equal(t, 1, shows(doc, "1."))
	assert.Equal(t, 1, shows(doc, "2."))
}

func TestComposeIsolatesPacks(t *testing.T) {
	c := seeded(t)
	a := domain.Pack{Key: "a", Title: "Alpha", Recipes: []string{"greek-yogurt-protein-cookies"}}
	b := domain.Pack{Key: "b", Title: "Beta", Recipes: []string{"protein-cookie-dough-bites"}}

	var (
		wg         sync.WaitGroup
		docA, docB *Document
		errA, errB error
	)
	wg.Add(2)
	go func() { defer wg.Done(); docA, errA = c.Compose(context.Background(), a) }()
	go func() { defer wg.Done(); docB, errB = c.Compose(context.Background(), b) }()
	wg.Wait()
	require.NoError(t, errA)
	require.NoError(t, errB)

	assert.Equal(t, 0, shows(docA, "Protein Cookie Dough Bites"))
	assert.Equal(t, 0, shows(docB, "Greek Yogurt Protein Cookies"))
	assert.Equal(t, 0, shows(docB, "ALPHA"))

	again, err := c.Compose(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, docA.Data, again.Data, "same pack and clock give identical bytes")
}

func TestComposeCancelled(t *testing.T) {
	c := seeded(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Compose(ctx, domain.Pack{Key: "x", Recipes: []string{"bites"}})
	assert.ErrorIs(t, err, context.Canceled)
}
