package pages

import "github.com/hammamikhairi/recipepacks/internal/canvas"

// Closing draws the full-bleed back page. The background covers the
// running header band; the footer is drawn on top afterwards.
func Closing(c *canvas.Canvas) {
	t := c.Theme()
	c.NewPage(KindClosing, "")
	c.FillPage(t.Dark)

	c.Font("B", 28)
	c.TextColor(t.Light)
	centred(c, 80, 15, closingTitle)

	c.Font("", 12)
	c.TextColor(t.Paper)
	c.Lines(30, 110, 150, 6, c.Wrap(Promo(t.SiteName), 150), "C")

	c.Font("B", 18)
	c.TextColor(t.Accent)
	centred(c, 150, 10, t.Brand)

	c.Font("", 10)
	c.TextColor(t.Muted)
	c.Lines(0, 250, canvas.PageWidth, 5, c.Wrap(Disclaimer, canvas.ContentWidth), "C")
}
