package pages

import "fmt"

// ── Static copy ─────────────────────────────────────────────────

// Tip is one panel on the tips page.
type Tip struct {
	Title string
	Text  string
}

// ProTips is printed in every pack, in this order.
var ProTips = []Tip{
	{"USE A KITCHEN SCALE", "All our recipes use gram measurements for precision. A kitchen scale ensures accurate macros every time."},
	{"DONT OVERBAKE", "Protein cookies firm up significantly as they cool. Remove from oven when centers still look slightly underdone."},
	{"PROTEIN POWDER MATTERS", "Different protein powders absorb liquid differently. If dough is too dry, add liquid 1 tbsp at a time."},
	{"STORAGE TIPS", "Store in an airtight container at room temperature for 5 days, refrigerate for 2 weeks, or freeze for 3 months."},
	{"MEAL PREP FRIENDLY", "Make a double batch on Sunday. Freeze individually wrapped cookies for grab-and-go protein throughout the week."},
	{"CUSTOMIZE YOUR MACROS", "Swap chocolate chips for nuts, use different nut butters, or adjust sweetener to fit your goals."},
}

// Included lists the extras advertised under the table of contents.
var Included = []string{
	"Complete gram-based shopping list",
	"Nutrition facts for every recipe",
	"Storage and meal prep tips",
	"Printable recipe cards",
}

const (
	contentsTitle    = "WHATS INSIDE"
	includedTitle    = "ALSO INCLUDED:"
	shoppingTitle    = "SHOPPING LIST"
	shoppingSubtitle = "Combined ingredients for all recipes in this pack"
	tipsTitle        = "PRO TIPS"
	closingTitle     = "WANT MORE RECIPES?"
	coverCaption     = "MACRO-VERIFIED RECIPES"

	// Disclaimer closes every pack.
	Disclaimer = "All recipes are macro-verified using USDA FoodData Central.\n" +
		"Nutrition values are estimates and may vary based on specific ingredients used."
)

// Promo is the closing-page paragraph for a site.
func Promo(site string) string {
	return fmt.Sprintf("Visit %s for 25+ macro-verified protein cookie recipes, more recipe packs, and weekly new recipes.", site)
}
