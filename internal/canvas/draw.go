package canvas

import "strings"

// Font selects the theme font in the given style ("", "B", "I") and size.
func (c *Canvas) Font(style string, size float64) {
	c.style, c.size = style, size
	c.pdf.SetFont(c.theme.Font, style, size)
}

// TextColor sets the colour for subsequent text.
func (c *Canvas) TextColor(col Color) {
	c.text = col
	c.pdf.SetTextColor(col.R, col.G, col.B)
}

// FillColor sets the colour for subsequent filled shapes.
func (c *Canvas) FillColor(col Color) {
	c.fill = col
	c.pdf.SetFillColor(col.R, col.G, col.B)
}

// X returns the current abscissa.
func (c *Canvas) X() float64 { return c.pdf.GetX() }

// Y returns the current ordinate.
func (c *Canvas) Y() float64 { return c.pdf.GetY() }

// SetX moves the cursor horizontally.
func (c *Canvas) SetX(x float64) { c.pdf.SetX(x) }

// SetY moves the cursor vertically and resets X to the left margin.
func (c *Canvas) SetY(y float64) { c.pdf.SetY(y) }

// SetXY moves the cursor.
func (c *Canvas) SetXY(x, y float64) { c.pdf.SetXY(x, y) }

// Ln moves to the start of the next line, h below the current one.
func (c *Canvas) Ln(h float64) { c.pdf.Ln(h) }

// Cell writes text in a box of width w and height h and leaves the cursor
// to its right. A width of zero extends to the right margin.
func (c *Canvas) Cell(w, h float64, text, align string) {
	c.pdf.CellFormat(w, h, c.tr(text), "", 0, align, false, 0, "")
}

// Line writes text in a box of width w and height h and moves to the next
// line.
func (c *Canvas) Line(w, h float64, text, align string) {
	c.pdf.CellFormat(w, h, c.tr(text), "", 1, align, false, 0, "")
}

// StringWidth measures text in the current font.
func (c *Canvas) StringWidth(text string) float64 {
	return c.pdf.GetStringWidth(c.tr(text))
}

// Wrap splits text into lines no wider than w in the current font.
// Explicit newlines are kept.
func (c *Canvas) Wrap(text string, w float64) []string {
	if text == "" {
		return nil
	}
	var out []string
	for _, para := range strings.Split(c.tr(text), "\n") {
		if para == "" {
			out = append(out, "")
			continue
		}
		for _, l := range c.pdf.SplitLines([]byte(para), w) {
			out = append(out, string(l))
		}
	}
	return out
}

// TextBlock writes wrapped text in a column at x of width w with line
// height lh, one line at a time. Every line goes through Reserve, so long
// text continues on new pages. It reports whether a page break happened.
func (c *Canvas) TextBlock(x, w, lh float64, text, align string) bool {
	broke := false
	for _, line := range c.Wrap(text, w) {
		if c.Reserve(lh) {
			broke = true
		}
		c.pdf.SetX(x)
		// Lines are already translated by Wrap.
		c.pdf.CellFormat(w, lh, line, "", 2, align, false, 0, "")
	}
	c.pdf.SetX(Margin)
	return broke
}

// Lines draws lines returned by Wrap from (x, y) down, without any page
// check, and returns the Y below the last line. The caller reserves the
// space.
func (c *Canvas) Lines(x, y, w, lh float64, lines []string, align string) float64 {
	for _, line := range lines {
		c.pdf.SetXY(x, y)
		c.pdf.CellFormat(w, lh, line, "", 0, align, false, 0, "")
		y += lh
	}
	return y
}

// Panel draws a filled box.
func (c *Canvas) Panel(x, y, w, h float64, fill Color) {
	c.FillColor(fill)
	c.pdf.Rect(x, y, w, h, "F")
}

// FillPage paints the whole page, header band included.
func (c *Canvas) FillPage(fill Color) {
	c.Panel(0, 0, PageWidth, PageHeight, fill)
}

// Stat draws a labelled figure: a large value line with a small label
// beneath, both centred in a column of width w.
func (c *Canvas) Stat(x, y, w float64, value, label string) {
	c.Font("B", 14)
	c.TextColor(c.theme.Accent)
	c.SetXY(x, y)
	c.Cell(w, 8, value, "C")

	c.Font("", 7)
	c.TextColor(c.theme.Muted)
	c.SetXY(x, y+10)
	c.Cell(w, 5, label, "C")
}

// StatRow lays out stats evenly across a panel of width w starting at x.
func (c *Canvas) StatRow(x, y, w float64, stats [][2]string) {
	if len(stats) == 0 {
		return
	}
	colW := w / float64(len(stats))
	for i, s := range stats {
		c.Stat(x+float64(i)*colW, y, colW, s[0], s[1])
	}
}

// Pill draws a rounded tag of height h at (x, y) with the text centred in
// it, using the current fill and text colours and font. It returns the
// width used.
func (c *Canvas) Pill(x, y, h float64, text string) float64 {
	r := h / 2
	w := c.StringWidth(text) + h + 4
	c.pdf.Rect(x+r, y, w-h, h, "F")
	c.pdf.Circle(x+r, y+r, r, "F")
	c.pdf.Circle(x+w-r, y+r, r, "F")
	c.SetXY(x, y)
	c.Cell(w, h, text, "C")
	return w
}
