package canvas

// Flow is an independent vertical writing position inside a column. Two
// flows started at the same point lay out side by side; each one continues
// onto following pages on its own, reusing continuation pages the other
// flow has already created.
type Flow struct {
	c    *Canvas
	x, w float64
	page int
	y    float64
}

// Flow starts a column at x of width w at the current cursor.
func (c *Canvas) Flow(x, w float64) *Flow {
	return &Flow{c: c, x: x, w: w, page: c.pdf.PageNo(), y: c.pdf.GetY()}
}

// X returns the left edge of the column.
func (f *Flow) X() float64 { return f.x }

// W returns the column width.
func (f *Flow) W() float64 { return f.w }

// Cursor returns the flow's writing position.
func (f *Flow) Cursor() Cursor {
	return Cursor{Page: f.page, Y: f.y, Decorated: f.page > 1}
}

// Reserve makes room for a block of height h in this column. When the block
// would cross the bottom margin the flow moves to the next page, creating
// a continuation page if none exists yet. It reports whether it moved.
func (f *Flow) Reserve(h float64) bool {
	if f.y+h <= f.c.Limit() {
		return false
	}
	f.page++
	if f.page > f.c.pdf.PageCount() {
		f.c.Continue()
	}
	f.y = f.c.top(f.page)
	return true
}

// Row reserves height h, positions the engine at the flow's left edge and
// current Y, runs draw, and advances the flow by h.
func (f *Flow) Row(h float64, draw func(x, y float64)) bool {
	moved := f.Reserve(h)
	f.focus()
	draw(f.x, f.y)
	f.y += h
	return moved
}

// Wrapped writes text wrapped to the column width minus indent, one line per
// Row. The current font and colour are used for every line.
func (f *Flow) Wrapped(indent, lh float64, text string) bool {
	moved := false
	// Row may switch pages, so the style is reapplied per line.
	style, size, col := f.c.style, f.c.size, f.c.text
	for _, line := range f.c.Wrap(text, f.w-indent) {
		line := line
		if f.Row(lh, func(x, y float64) {
			f.c.Font(style, size)
			f.c.TextColor(col)
			f.c.pdf.SetXY(x+indent, y)
			f.c.pdf.CellFormat(f.w-indent, lh, line, "", 0, "L", false, 0, "")
		}) {
			moved = true
		}
	}
	return moved
}

// Skip advances the flow by h without drawing. It never starts a page.
func (f *Flow) Skip(h float64) {
	f.y += h
}

func (f *Flow) focus() {
	f.c.gotoPage(f.page)
	f.c.pdf.SetXY(f.x, f.y)
}

// Join moves the canvas cursor below the lowest of the given flows: the
// furthest page, and the largest Y on it.
func (c *Canvas) Join(flows ...*Flow) {
	if len(flows) == 0 {
		return
	}
	page, y := flows[0].page, flows[0].y
	for _, f := range flows[1:] {
		if f.page > page || (f.page == page && f.y > y) {
			page, y = f.page, f.y
		}
	}
	c.gotoPage(page)
	c.pdf.SetXY(Margin, y)
}
