package composer

import (
	"fmt"

	"github.com/hammamikhairi/recipepacks/internal/canvas"
	"github.com/hammamikhairi/recipepacks/internal/pages"
)

// decorator draws the running band and page number for one pack.
type decorator struct {
	title string
}

var _ canvas.Decorator = decorator{}

func (d decorator) Header(c *canvas.Canvas) {
	t := c.Theme()
	c.Panel(0, 0, canvas.PageWidth, canvas.BandHeight, t.Dark)

	c.Font("B", 10)
	c.TextColor(t.Accent)
	c.SetXY(canvas.Margin, 5)
	c.Cell(canvas.ContentWidth, 5, t.Brand, "L")

	c.TextColor(t.Faint)
	c.SetXY(canvas.Margin, 5)
	c.Cell(canvas.ContentWidth, 5, pages.Upper(d.title), "R")
}

func (d decorator) Footer(c *canvas.Canvas) {
	t := c.Theme()
	c.SetY(-15)
	c.Font("", 8)
	c.TextColor(t.Footer)
	c.Cell(0, 10, fmt.Sprintf("Page %d", c.Cursor().Page), "C")
}
