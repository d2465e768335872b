// Package shopping builds the pack-level shopping list: ingredient strings
// pooled from every recipe, sorted into fixed buckets and deduplicated.
package shopping

import "strings"

// Bucket names in priority order. Extras is the fallback.
const (
	DryGoods       = "Dry Goods"
	ProteinsDairy  = "Proteins & Dairy"
	NutButtersOils = "Nut Butters & Oils"
	Sweeteners     = "Sweeteners"
	Extras         = "Extras"
)

// Bucket is one named section of the shopping list.
type Bucket struct {
	Name  string
	Items []string
}

// List is the ordered, non-empty buckets of a shopping list.
type List []Bucket

type rule struct {
	bucket string
	match  func(lower string) bool
}

// rules are evaluated top to bottom; the first match wins. The last rule
// always matches.
var rules = []rule{
	{DryGoods, containsAny("flour", "oat", "cocoa", "baking", "salt", "cinnamon", "cream of tartar")},
	{ProteinsDairy, containsAny("protein", "egg", "yogurt", "cheese", "milk")},
	{NutButtersOils, containsAny("butter", "oil")},
	{Sweeteners, containsAny("syrup", "honey", "sweetener", "sugar")},
	{Extras, func(string) bool { return true }},
}

func containsAny(keywords ...string) func(string) bool {
	return func(lower string) bool {
		for _, k := range keywords {
			if strings.Contains(lower, k) {
				return true
			}
		}
		return false
	}
}

// BucketNames returns every bucket name in priority order.
func BucketNames() []string {
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.bucket
	}
	return names
}

// Classify returns the bucket an ingredient string belongs to.
func Classify(ingredient string) string {
	lower := strings.ToLower(ingredient)
	for _, r := range rules {
		if r.match(lower) {
			return r.bucket
		}
	}
	// Unreachable: the last rule matches everything.
	return Extras
}

// Categorize sorts ingredients into buckets. Exact duplicates are dropped
// within a bucket, keeping first-seen order. Differently phrased strings for
// the same item ("2 eggs", "1 large egg") stay separate. Empty buckets are
// omitted.
func Categorize(ingredients []string) List {
	items := make(map[string][]string, len(rules))
	seen := make(map[string]map[string]struct{}, len(rules))

	for _, ing := range ingredients {
		b := Classify(ing)
		if seen[b] == nil {
			seen[b] = make(map[string]struct{})
		}
		if _, dup := seen[b][ing]; dup {
			continue
		}
		seen[b][ing] = struct{}{}
		items[b] = append(items[b], ing)
	}

	var out List
	for _, r := range rules {
		if len(items[r.bucket]) > 0 {
			out = append(out, Bucket{Name: r.bucket, Items: items[r.bucket]})
		}
	}
	return out
}

// Len returns the total number of items across buckets.
func (l List) Len() int {
	n := 0
	for _, b := range l {
		n += len(b.Items)
	}
	return n
}

// Flatten returns every item in bucket order.
func (l List) Flatten() []string {
	out := make([]string, 0, l.Len())
	for _, b := range l {
		out = append(out, b.Items...)
	}
	return out
}

// Get returns the items of the named bucket, or nil.
func (l List) Get(name string) []string {
	for _, b := range l {
		if b.Name == name {
			return b.Items
		}
	}
	return nil
}
