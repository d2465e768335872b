package domain

import "context"

// RecipeSource provides recipes. Implementations can be in-memory (seeded),
// file-based, or backed by a database.
type RecipeSource interface {
	Get(ctx context.Context, slug string) (*Recipe, error)
	List(ctx context.Context) ([]RecipeSummary, error)
}

// RecipeSummary is a lightweight view of a recipe for listing.
type RecipeSummary struct {
	Slug     string
	Title    string
	Category string
}

// DocumentStore persists one rendered document per pack. Save returns the
// location the document was written to.
type DocumentStore interface {
	Save(ctx context.Context, packKey string, data []byte) (string, error)
}
