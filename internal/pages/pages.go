// Package pages holds the builders for each section of a pack document.
// Every builder starts its own page on the canvas it is given and leaves
// the cursor below whatever it drew. Builders never fail: missing text
// renders as an empty line and overflowing content continues on a new
// page through the canvas capacity check.
package pages

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/hammamikhairi/recipepacks/internal/canvas"
)

// Page kinds, as reported in canvas.PageInfo.
const (
	KindCover    = "cover"
	KindContents = "contents"
	KindRecipe   = "recipe"
	KindShopping = "shopping"
	KindTips     = "tips"
	KindClosing  = "closing"
)

// Upper upper-cases s for headings and labels.
func Upper(s string) string {
	// A Caser keeps state between calls, so one is built per use.
	return cases.Upper(language.English).String(s)
}

// heading draws a section title.
func heading(c *canvas.Canvas, text string) {
	t := c.Theme()
	c.Font("B", 24)
	c.TextColor(t.Ink)
	c.Line(0, 15, text, "L")
}

// centred writes one line centred on the full page width at y.
func centred(c *canvas.Canvas, y, h float64, text string) {
	c.SetXY(0, y)
	c.Cell(canvas.PageWidth, h, text, "C")
}
