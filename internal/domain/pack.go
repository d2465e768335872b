package domain

// Pack is a named, ordered bundle of recipe references assembled into one
// printable document. Recipes may name slugs the catalog does not know.
type Pack struct {
	Key         string
	Title       string
	Subtitle    string
	Description string
	Recipes     []string
}
