package pages

import (
	"strconv"
	"time"

	"github.com/hammamikhairi/recipepacks/internal/canvas"
	"github.com/hammamikhairi/recipepacks/internal/domain"
)

// Cover draws the full-bleed title page. count is the number of recipes
// listed in the pack, found in the catalog or not.
func Cover(c *canvas.Canvas, p domain.Pack, count int, generated time.Time) {
	t := c.Theme()
	c.NewPage(KindCover, p.Title)
	c.FillPage(t.Dark)

	c.Font("B", 24)
	c.TextColor(t.Accent)
	centred(c, 40, 10, t.Brand)

	c.Font("B", 36)
	c.TextColor(t.Light)
	c.Lines(0, 80, canvas.PageWidth, 15, c.Wrap(p.Title, canvas.ContentWidth), "C")

	c.Font("", 16)
	c.TextColor(t.Accent)
	centred(c, 130, 10, p.Subtitle)

	c.Font("", 12)
	c.TextColor(t.Paper)
	c.Lines(30, 160, 150, 6, c.Wrap(p.Description, 150), "C")

	c.Font("B", 48)
	c.TextColor(t.Accent)
	centred(c, 200, 20, strconv.Itoa(count))

	c.Font("", 14)
	c.TextColor(t.Light)
	centred(c, 220, 10, coverCaption)

	c.Font("", 10)
	c.TextColor(t.Muted)
	centred(c, 270, 5, "Generated "+generated.Format("January 2006"))
	centred(c, 275, 5, t.SiteURL)
}
