package pages

import (
	"github.com/hammamikhairi/recipepacks/internal/canvas"
	"github.com/hammamikhairi/recipepacks/internal/domain"
	"github.com/hammamikhairi/recipepacks/internal/shopping"
)

// ShoppingList pools the ingredients of every recipe, sorts them into
// buckets and draws one checkbox line per item.
func ShoppingList(c *canvas.Canvas, recipes []*domain.Recipe) {
	t := c.Theme()
	c.NewPage(KindShopping, "Shopping List")
	heading(c, shoppingTitle)
	c.Font("", 10)
	c.TextColor(t.Muted)
	c.Line(0, 6, shoppingSubtitle, "L")
	c.Ln(5)

	for _, b := range shopping.Categorize(Pool(recipes)) {
		// Never leave a bucket heading alone at the bottom of a page.
		c.Reserve(13)
		c.Font("B", 11)
		c.TextColor(t.Ink)
		c.Line(0, 8, Upper(b.Name), "L")

		c.Font("", 9)
		for _, item := range b.Items {
			lines := c.Wrap(item, canvas.ContentWidth-7)
			c.Reserve(5 * float64(len(lines)))
			y := c.Y()
			c.TextColor(t.Faint)
			c.SetXY(canvas.Margin, y)
			c.Cell(7, 5, "[ ]", "L")
			c.TextColor(t.Body)
			y = c.Lines(canvas.Margin+7, y, canvas.ContentWidth-7, 5, lines, "L")
			c.SetXY(canvas.Margin, y)
		}
		c.Ln(3)
	}
}

// Pool concatenates ingredient lines across recipes in order.
func Pool(recipes []*domain.Recipe) []string {
	var all []string
	for _, r := range recipes {
		all = append(all, r.Ingredients...)
	}
	return all
}
