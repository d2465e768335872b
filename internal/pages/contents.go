package pages

import (
	"fmt"

	"github.com/hammamikhairi/recipepacks/internal/canvas"
	"github.com/hammamikhairi/recipepacks/internal/domain"
)

// Contents draws the table of contents: one numbered entry per recipe in
// pack order, then the list of extras.
func Contents(c *canvas.Canvas, recipes []*domain.Recipe) {
	t := c.Theme()
	c.NewPage(KindContents, "Contents")
	heading(c, contentsTitle)
	c.Ln(5)

	for i, r := range recipes {
		// Title and stat line stay together.
		c.Reserve(19)
		c.Font("B", 14)
		c.TextColor(t.Ink)
		c.Cell(10, 10, fmt.Sprintf("%d.", i+1), "L")
		c.Line(0, 10, r.Title, "L")

		c.Font("", 10)
		c.TextColor(t.Muted)
		c.SetX(20)
		c.Line(0, 6, StatLine(r), "L")
		c.Ln(3)
	}

	c.Ln(10)
	c.Reserve(17)
	c.Font("B", 16)
	c.TextColor(t.Ink)
	c.Line(0, 10, includedTitle, "L")

	c.Font("", 11)
	for _, item := range Included {
		c.Reserve(7)
		c.Cell(5, 7, "", "L")
		c.TextColor(t.Accent)
		c.Cell(5, 7, ">", "L")
		c.TextColor(t.Body)
		c.Line(0, 7, "  "+item, "L")
	}
}

// StatLine is the summary printed under each contents entry.
func StatLine(r *domain.Recipe) string {
	return fmt.Sprintf("%sg protein | %s cal | %d min",
		domain.Amount(r.Nutrition.Protein), domain.Amount(r.Nutrition.Calories), r.Timing.TotalMinutes)
}
