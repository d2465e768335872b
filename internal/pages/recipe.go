package pages

import (
	"fmt"

	"github.com/hammamikhairi/recipepacks/internal/canvas"
	"github.com/hammamikhairi/recipepacks/internal/domain"
)

// Recipe column geometry.
const (
	leftX   = 10.0
	rightX  = 110.0
	columnW = 85.0
	panelH  = 25.0
)

// Recipe draws one recipe: title, category tag, description, nutrition
// panel, timing line and the ingredient and instruction columns. The two
// columns start at the same height and each continues onto following
// pages on its own.
func Recipe(c *canvas.Canvas, r *domain.Recipe) {
	t := c.Theme()
	c.NewPage(KindRecipe, r.Title)

	c.Font("B", 22)
	c.TextColor(t.Ink)
	c.TextBlock(canvas.Margin, canvas.ContentWidth, 10, Upper(r.Title), "L")

	if r.Category != "" {
		c.Reserve(10)
		y := c.Y() + 2
		c.Font("B", 9)
		c.FillColor(t.Accent)
		c.TextColor(t.Dark)
		c.Pill(canvas.Margin, y, 6, Upper(r.Category))
		c.SetXY(canvas.Margin, y+8)
	}

	c.Font("", 10)
	c.TextColor(t.Soft)
	c.TextBlock(canvas.Margin, canvas.ContentWidth, 5, r.Description, "L")
	c.Ln(5)

	nutritionPanel(c, r.Nutrition)

	c.Font("", 9)
	c.TextColor(t.Soft)
	c.Reserve(6)
	c.Line(0, 6, fmt.Sprintf("Time: %d min  |  Yield: %s  |  Difficulty: %s",
		r.Timing.TotalMinutes, r.Yield, r.Difficulty), "L")
	c.Ln(5)

	// Both headings and a first line must fit before the columns split.
	c.Reserve(13)
	left := c.Flow(leftX, columnW)
	right := c.Flow(rightX, columnW)
	ingredients(c, left, r.Ingredients)
	instructions(c, right, r.Instructions)
	c.Join(left, right)
}

func nutritionPanel(c *canvas.Canvas, n domain.Nutrition) {
	t := c.Theme()
	c.Reserve(panelH)
	y := c.Y()
	c.Panel(canvas.Margin, y, canvas.ContentWidth, panelH, t.Panel)
	c.StatRow(15, y+3, 180, [][2]string{
		{domain.Amount(n.Protein) + "g", "PROTEIN"},
		{domain.Amount(n.Calories), "CALORIES"},
		{domain.Amount(n.Carbs) + "g", "CARBS"},
		{domain.Amount(n.Fat) + "g", "FAT"},
		{domain.Amount(n.Fiber) + "g", "FIBER"},
	})
	c.SetXY(canvas.Margin, y+panelH+5)
}

func columnHeading(c *canvas.Canvas, f *canvas.Flow, text string) {
	t := c.Theme()
	f.Row(8, func(x, y float64) {
		c.Font("B", 12)
		c.TextColor(t.Ink)
		c.SetXY(x, y)
		c.Cell(f.W(), 8, text, "L")
	})
}

// ingredients lists every line as given, duplicates included.
func ingredients(c *canvas.Canvas, f *canvas.Flow, items []string) {
	t := c.Theme()
	columnHeading(c, f, "INGREDIENTS")

	c.Font("", 9)
	for _, ing := range items {
		lines := c.Wrap(ing, f.W()-4)
		if len(lines) == 0 {
			lines = []string{""}
		}
		for i, line := range lines {
			first := i == 0
			line := line
			f.Row(5, func(x, y float64) {
				c.Font("", 9)
				if first {
					c.TextColor(t.Accent)
					c.SetXY(x, y)
					c.Cell(3, 5, "-", "L")
				}
				c.TextColor(t.Body)
				c.Lines(x+4, y, f.W()-4, 5, []string{line}, "L")
			})
		}
	}
}

func instructions(c *canvas.Canvas, f *canvas.Flow, steps []domain.Step) {
	t := c.Theme()
	columnHeading(c, f, "INSTRUCTIONS")

	for i, s := range steps {
		n := i + 1
		title := s.Title
		// Keep the step title with the first line of its body.
		f.Reserve(9)
		f.Row(5, func(x, y float64) {
			c.Font("B", 9)
			c.TextColor(t.Accent)
			c.SetXY(x, y)
			c.Cell(6, 5, fmt.Sprintf("%d.", n), "L")
			c.TextColor(t.Ink)
			c.Cell(f.W()-6, 5, title, "L")
		})

		c.Font("", 8)
		c.TextColor(t.Soft)
		f.Wrapped(6, 4, s.Text)
		f.Skip(2)
	}
}
