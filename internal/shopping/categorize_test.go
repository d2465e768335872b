package shopping

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"80g Oat Flour", DryGoods},
		{"2 tbsp cocoa powder", DryGoods},
		{"1/4 tsp cream of tartar", DryGoods},
		{"60g vanilla whey protein powder", ProteinsDairy},
		{"1 large EGG", ProteinsDairy},
		{"150g Greek yogurt", ProteinsDairy},
		{"90g peanut butter", NutButtersOils},
		{"1 tbsp coconut oil", NutButtersOils},
		{"30g honey", Sweeteners},
		{"40g maple syrup", Sweeteners},
		{"40g dark chocolate chips", Extras},
		{"", Extras},
		// Priority order: "butter milk" hits Proteins & Dairy before Nut Butters.
		{"buttermilk", ProteinsDairy},
		// "oat" wins over "milk".
		{"oat milk", DryGoods},
		// "sugar-free chocolate chips" only matches the sweetener rule.
		{"sugar-free chocolate chips", Sweeteners},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Classify(tt.input); got != tt.want {
				t.Fatalf("Classify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCategorizeNoBakeScenario(t *testing.T) {
	// no-bake-cookies then bites, in pack order.
	pool := []string{"peanut butter", "honey", "rolled oats"}

	got := Categorize(pool)
	want := List{
		{Name: DryGoods, Items: []string{"rolled oats"}},
		{Name: NutButtersOils, Items: []string{"peanut butter"}},
		{Name: Sweeteners, Items: []string{"honey"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("buckets mismatch (-want +got):\n%s", diff)
	}
}

func TestCategorizeDedupWithinBucket(t *testing.T) {
	pool := []string{"egg", "1 large egg", "egg", "salt", "egg", "salt"}

	got := Categorize(pool)
	want := List{
		{Name: DryGoods, Items: []string{"salt"}},
		{Name: ProteinsDairy, Items: []string{"egg", "1 large egg"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("buckets mismatch (-want +got):\n%s", diff)
	}
}

func TestCategorizeEmpty(t *testing.T) {
	if got := Categorize(nil); len(got) != 0 {
		t.Fatalf("expected no buckets, got %v", got)
	}
}

func TestCategorizeTotalAndIdempotent(t *testing.T) {
	pool := []string{
		"60g vanilla whey protein powder", "80g oat flour", "1 large egg", "60g almond butter",
		"40g maple syrup", "1/2 tsp baking soda", "1/4 tsp salt", "40g dark chocolate chips",
		"120g natural peanut butter", "60g vanilla whey protein powder", "1 large egg", "30g honey",
		"1/2 tsp baking soda", "sprinkles", "sprinkles", "Sprinkles",
	}

	first := Categorize(pool)

	// Every input appears in exactly one bucket.
	where := map[string]string{}
	for _, b := range first {
		inBucket := map[string]bool{}
		for _, item := range b.Items {
			if inBucket[item] {
				t.Fatalf("duplicate %q in bucket %s", item, b.Name)
			}
			inBucket[item] = true
			if prev, ok := where[item]; ok {
				t.Fatalf("%q in both %s and %s", item, prev, b.Name)
			}
			where[item] = b.Name
		}
	}
	for _, ing := range pool {
		if _, ok := where[ing]; !ok {
			t.Fatalf("%q dropped from the list", ing)
		}
	}

	second := Categorize(first.Flatten())
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("categorizing flattened output changed buckets (-first +second):\n%s", diff)
	}
	if first.Len() != 12 {
		t.Fatalf("Len = %d, want 12", first.Len())
	}
}

func TestBucketNames(t *testing.T) {
	want := []string{DryGoods, ProteinsDairy, NutButtersOils, Sweeteners, Extras}
	if diff := cmp.Diff(want, BucketNames()); diff != "" {
		t.Fatalf("bucket order changed (-want +got):\n%s", diff)
	}
}

func TestListGet(t *testing.T) {
	l := Categorize([]string{"honey"})
	if got := l.Get(Sweeteners); len(got) != 1 {
		t.Fatalf("Get(Sweeteners) = %v", got)
	}
	if got := l.Get(Extras); got != nil {
		t.Fatalf("Get(Extras) = %v, want nil", got)
	}
}
