package pages

import (
	"math"

	"github.com/hammamikhairi/recipepacks/internal/canvas"
)

const tipPanelH = 22.0

// Tips draws the static tip panels. A panel is never split across pages.
func Tips(c *canvas.Canvas) {
	t := c.Theme()
	c.NewPage(KindTips, "Pro Tips")
	heading(c, tipsTitle)
	c.Ln(5)

	for _, tip := range ProTips {
		c.Font("", 9)
		body := c.Wrap(tip.Text, 180)
		h := math.Max(tipPanelH, 12+4*float64(len(body)))

		c.Reserve(h)
		y := c.Y()
		c.Panel(canvas.Margin, y, canvas.ContentWidth, h, t.Panel)

		c.Font("B", 10)
		c.TextColor(t.Accent)
		c.SetXY(15, y+3)
		c.Cell(0, 6, tip.Title, "L")

		c.Font("", 9)
		c.TextColor(t.Body)
		c.Lines(15, y+9, 180, 4, body, "L")
		c.SetXY(canvas.Margin, y+h+8)
	}
}
