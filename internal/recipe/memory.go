// Package recipe provides recipe catalog implementations.
package recipe

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/hammamikhairi/recipepacks/internal/domain"
	"github.com/hammamikhairi/recipepacks/internal/logger"
)

// Compile-time interface check.
var _ domain.RecipeSource = (*MemorySource)(nil)

// MemorySource holds recipes in memory. Safe for concurrent reads.
type MemorySource struct {
	mu      sync.RWMutex
	recipes map[string]*domain.Recipe
	log     *logger.Logger
}

// NewMemorySource creates a recipe source preloaded with the built-in recipes.
func NewMemorySource(log *logger.Logger) *MemorySource {
	src := NewEmptyMemorySource(log)
	src.seed()
	return src
}

// NewEmptyMemorySource creates a recipe source with no recipes.
func NewEmptyMemorySource(log *logger.Logger) *MemorySource {
	return &MemorySource{
		recipes: make(map[string]*domain.Recipe),
		log:     log,
	}
}

// List returns summaries of all available recipes, sorted by title.
func (s *MemorySource) List(ctx context.Context) ([]domain.RecipeSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	s.log.Debug("listing all recipes, count=%d", len(s.recipes))

	out := make([]domain.RecipeSummary, 0, len(s.recipes))
	for _, r := range s.recipes {
		out = append(out, summarize(r))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

// Get returns a recipe by slug.
func (s *MemorySource) Get(ctx context.Context, slug string) (*domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.recipes[slug]
	if !ok {
		s.log.Debug("recipe not found: %s", slug)
		return nil, domain.ErrNotFound
	}
	return r, nil
}

// Put adds or replaces a recipe after validating it.
func (s *MemorySource) Put(ctx context.Context, recipe *domain.Recipe) error {
	if err := recipe.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.recipes[recipe.Slug] = recipe
	s.log.Debug("recipe stored: %s", recipe.Slug)
	return nil
}

// Search returns recipes whose title, category or description contain the
// query string.
func (s *MemorySource) Search(ctx context.Context, query string) ([]domain.RecipeSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	s.log.Debug("searching recipes for: %s", q)

	var out []domain.RecipeSummary
	for _, r := range s.recipes {
		if matches(r, q) {
			out = append(out, summarize(r))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func matches(r *domain.Recipe, query string) bool {
	for _, field := range []string{r.Title, r.Category, r.Description} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func summarize(r *domain.Recipe) domain.RecipeSummary {
	return domain.RecipeSummary{Slug: r.Slug, Title: r.Title, Category: r.Category}
}

// seed populates the source with built-in recipes.
func (s *MemorySource) seed() {
	recipes := []*domain.Recipe{
		chocolateChip(),
		peanutButter(),
		noBake(),
		doughBites(),
		greekYogurt(),
	}
	for _, r := range recipes {
		if err := r.Validate(); err != nil {
			panic(fmt.Sprintf("built-in recipe %s: %v", r.Slug, err))
		}
		s.recipes[r.Slug] = r
	}
	s.log.Debug("seeded %d recipes", len(recipes))
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func chocolateChip() *domain.Recipe {
	return &domain.Recipe{
		Slug:        "chocolate-chip-protein-cookies",
		Title:       "Chocolate Chip Protein Cookies",
		Category:    "Classic",
		Description: "Soft, chewy and loaded with chocolate chips. The cookie every other recipe on this site is measured against.",
		Nutrition: domain.Nutrition{
			Protein: d("12"), Calories: d("145"), Carbs: d("14"), Fat: d("6"), Fiber: d("2"), Sugar: d("5"),
		},
		Timing:      domain.Timing{PrepMinutes: 10, CookMinutes: 10, TotalMinutes: 20},
		Yield:       "12 cookies",
		ServingSize: "1 cookie",
		Difficulty:  "Easy",
		Ingredients: []string{
			"60g vanilla whey protein powder",
			"80g oat flour",
			"1 large egg",
			"60g almond butter",
			"40g maple syrup",
			"1/2 tsp baking soda",
			"1/4 tsp salt",
			"40g dark chocolate chips",
		},
		Instructions: []domain.Step{
			{Title: "Preheat", Text: "Heat the oven to 175C and line a baking sheet with parchment."},
			{Title: "Mix dry", Text: "Whisk the protein powder, oat flour, baking soda and salt in a bowl."},
			{Title: "Mix wet", Text: "Stir the egg, almond butter and maple syrup together until smooth, then fold into the dry mix."},
			{Title: "Add chips", Text: "Fold in the chocolate chips. The dough should be thick and slightly sticky."},
			{Title: "Bake", Text: "Scoop 12 balls, flatten slightly and bake 9 to 10 minutes. Centers will look underdone."},
		},
	}
}

func peanutButter() *domain.Recipe {
	return &domain.Recipe{
		Slug:        "peanut-butter-protein-cookies",
		Title:       "Peanut Butter Protein Cookies",
		Category:    "Classic",
		Description: "Three-ingredient base, crisscross tops, and 15g of protein per cookie.",
		Nutrition: domain.Nutrition{
			Protein: d("15"), Calories: d("160"), Carbs: d("9"), Fat: d("9.5"), Fiber: d("1.5"), Sugar: d("4"),
		},
		Timing:      domain.Timing{PrepMinutes: 10, CookMinutes: 12, TotalMinutes: 22},
		Yield:       "10 cookies",
		ServingSize: "1 cookie",
		Difficulty:  "Easy",
		Ingredients: []string{
			"120g natural peanut butter",
			"60g vanilla whey protein powder",
			"1 large egg",
			"30g honey",
			"1/2 tsp baking soda",
		},
		Instructions: []domain.Step{
			{Title: "Preheat", Text: "Heat the oven to 175C."},
			{Title: "Combine", Text: "Mix everything in one bowl until a dough forms."},
			{Title: "Shape", Text: "Roll into 10 balls and press a fork crisscross on top."},
			{Title: "Bake", Text: "Bake 10 to 12 minutes and cool on the tray for 10 minutes."},
		},
	}
}

func noBake() *domain.Recipe {
	return &domain.Recipe{
		Slug:        "no-bake-protein-cookies",
		Title:       "No-Bake Protein Cookies",
		Category:    "No-Bake",
		Description: "Stovetop classic with oats and peanut butter. Ready in 15 minutes, no oven.",
		Nutrition: domain.Nutrition{
			Protein: d("11"), Calories: d("170"), Carbs: d("18"), Fat: d("8"), Fiber: d("2.5"), Sugar: d("7"),
		},
		Timing:      domain.Timing{PrepMinutes: 10, CookMinutes: 5, TotalMinutes: 15},
		Yield:       "14 cookies",
		ServingSize: "1 cookie",
		Difficulty:  "Easy",
		Ingredients: []string{
			"150g rolled oats",
			"90g peanut butter",
			"50g chocolate protein powder",
			"40g honey",
			"60ml unsweetened almond milk",
			"2 tbsp cocoa powder",
			"pinch of salt",
		},
		Instructions: []domain.Step{
			{Title: "Warm", Text: "Warm the peanut butter, honey and almond milk in a saucepan until glossy."},
			{Title: "Stir", Text: "Off the heat, stir in cocoa, protein powder and salt, then the oats."},
			{Title: "Set", Text: "Drop spoonfuls onto parchment and chill 10 minutes until set."},
		},
	}
}

func doughBites() *domain.Recipe {
	return &domain.Recipe{
		Slug:        "protein-cookie-dough-bites",
		Title:       "Protein Cookie Dough Bites",
		Category:    "No-Bake",
		Description: "Egg-free cookie dough you can eat with a spoon, rolled into snackable bites.",
		Nutrition: domain.Nutrition{
			Protein: d("8"), Calories: d("110"), Carbs: d("10"), Fat: d("5"), Fiber: d("1"), Sugar: d("4"),
		},
		Timing:      domain.Timing{PrepMinutes: 10, CookMinutes: 0, TotalMinutes: 10},
		Yield:       "20 bites",
		ServingSize: "2 bites",
		Difficulty:  "Easy",
		Ingredients: []string{
			"80g oat flour",
			"40g vanilla whey protein powder",
			"60g cashew butter",
			"30g maple syrup",
			"30g mini chocolate chips",
		},
		Instructions: []domain.Step{
			{Title: "Toast flour", Text: "Heat-treat the oat flour in a dry pan for 2 minutes, then cool."},
			{Title: "Mix", Text: "Combine everything into a stiff dough. Add a splash of milk if crumbly."},
			{Title: "Roll", Text: "Roll into 20 bites and refrigerate."},
		},
	}
}

func greekYogurt() *domain.Recipe {
	return &domain.Recipe{
		Slug:        "greek-yogurt-protein-cookies",
		Title:       "Greek Yogurt Protein Cookies",
		Category:    "High Protein",
		Description: "Cakey, tangy and light. Greek yogurt replaces most of the fat.",
		Nutrition: domain.Nutrition{
			Protein: d("14"), Calories: d("120"), Carbs: d("12"), Fat: d("3"), Fiber: d("1"), Sugar: d("6"),
		},
		Timing:      domain.Timing{PrepMinutes: 10, CookMinutes: 12, TotalMinutes: 22},
		Yield:       "12 cookies",
		ServingSize: "1 cookie",
		Difficulty:  "Medium",
		Ingredients: []string{
			"150g nonfat Greek yogurt",
			"60g vanilla whey protein powder",
			"90g oat flour",
			"1 large egg",
			"40g zero-calorie sweetener",
			"1 tsp baking powder",
			"1/2 tsp cinnamon",
		},
		Instructions: []domain.Step{
			{Title: "Preheat", Text: "Heat the oven to 180C and line a tray."},
			{Title: "Whisk", Text: "Whisk the yogurt, egg and sweetener until smooth."},
			{Title: "Fold", Text: "Fold in the flour, protein powder, baking powder and cinnamon."},
			{Title: "Bake", Text: "Scoop onto the tray and bake 11 to 12 minutes until the edges set."},
		},
	}
}
