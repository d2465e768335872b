package canvas

import (
	"bytes"
	"strings"
	"testing"
)

type countingDecorator struct {
	headers, footers int
}

func (d *countingDecorator) Header(c *Canvas) {
	d.headers++
	c.Font("B", 10)
	c.SetXY(Margin, 5)
	c.Cell(0, 5, "header", "L")
}

func (d *countingDecorator) Footer(c *Canvas) {
	d.footers++
	c.Font("", 8)
	c.SetY(-15)
	c.Cell(0, 10, "footer", "C")
}

func newTestCanvas(opts ...Option) *Canvas {
	c := New(DefaultTheme(), opts...)
	c.Font("", 10)
	return c
}

func TestReserveStartsContinuationPage(t *testing.T) {
	c := newTestCanvas()
	c.NewPage("recipe", "Cookies")

	if got := c.Cursor(); got.Page != 1 || got.Decorated {
		t.Fatalf("first page cursor = %+v", got)
	}
	if c.Reserve(10) {
		t.Fatal("reserve on an empty page should fit")
	}

	c.SetY(270)
	if !c.Reserve(10) {
		t.Fatal("expected a continuation page")
	}
	cur := c.Cursor()
	if cur.Page != 2 || !cur.Decorated {
		t.Fatalf("cursor after break = %+v", cur)
	}
	if cur.Y != ContentTop {
		t.Fatalf("continuation starts at %.1f, want %.1f", cur.Y, ContentTop)
	}

	pages := c.Pages()
	if len(pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(pages))
	}
	if pages[0].Continued || !pages[1].Continued {
		t.Fatalf("continued flags = %v, %v", pages[0].Continued, pages[1].Continued)
	}
	for _, p := range pages {
		if p.Kind != "recipe" || p.Title != "Cookies" {
			t.Fatalf("page %d labelled %q/%q", p.Number, p.Kind, p.Title)
		}
	}
}

func TestTextBlockFlowsAcrossPages(t *testing.T) {
	c := newTestCanvas()
	c.NewPage("tips", "")

	text := strings.Repeat("Chill the dough before baking so the cookies hold their shape. ", 200)
	if !c.TextBlock(Margin, ContentWidth, 5, text, "L") {
		t.Fatal("expected long text to break onto a new page")
	}
	if c.PageCount() < 2 {
		t.Fatalf("expected at least 2 pages, got %d", c.PageCount())
	}
	if c.Y() > c.Limit() {
		t.Fatalf("cursor %.1f below limit %.1f", c.Y(), c.Limit())
	}
}

func TestFlowsShareContinuationPages(t *testing.T) {
	c := newTestCanvas()
	c.NewPage("recipe", "Cookies")
	c.SetY(250)

	left := c.Flow(10, 85)
	right := c.Flow(110, 85)
	noop := func(x, y float64) {}

	for i := 0; i < 3; i++ {
		left.Row(10, noop)
	}
	if got := left.Cursor(); got.Page != 2 || got.Y != ContentTop+10 {
		t.Fatalf("left flow at %+v", got)
	}
	if c.PageCount() != 2 {
		t.Fatalf("expected 2 pages after left overflow, got %d", c.PageCount())
	}

	for i := 0; i < 4; i++ {
		right.Row(10, func(x, y float64) {
			if x != 110 {
				t.Fatalf("right flow drew at x=%.1f", x)
			}
		})
	}
	if got := right.Cursor(); got.Page != 2 || got.Y != ContentTop+20 {
		t.Fatalf("right flow at %+v", got)
	}
	if c.PageCount() != 2 {
		t.Fatalf("right flow should reuse the continuation page, have %d pages", c.PageCount())
	}

	c.Join(left, right)
	if got := c.Cursor(); got.Page != 2 || got.Y != ContentTop+20 {
		t.Fatalf("joined cursor at %+v", got)
	}
}

func TestFlowWrappedKeepsStyle(t *testing.T) {
	c := newTestCanvas()
	c.NewPage("recipe", "")
	c.SetY(260)

	c.Font("B", 9)
	f := c.Flow(10, 85)
	if !f.Wrapped(0, 5, strings.Repeat("Fold in the chocolate chips. ", 20)) {
		t.Fatal("expected the wrapped text to move to a new page")
	}
	if c.style != "B" || c.size != 9 {
		t.Fatalf("style changed to %q %.0f", c.style, c.size)
	}
}

func TestDecoratorSkipsFirstPageHeader(t *testing.T) {
	d := &countingDecorator{}
	c := newTestCanvas(WithDecorator(d))
	c.NewPage("cover", "")
	c.NewPage("contents", "")
	c.NewPage("closing", "")

	data, err := c.Bytes()
	if err != nil {
		t.Fatalf("bytes: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF: %q", data[:8])
	}
	if d.headers != 2 {
		t.Fatalf("headers drawn %d times, want 2", d.headers)
	}
	if d.footers != 3 {
		t.Fatalf("footers drawn %d times, want 3", d.footers)
	}
}

func TestWrapKeepsExplicitNewlines(t *testing.T) {
	c := newTestCanvas()
	c.NewPage("closing", "")

	lines := c.Wrap("first line\nsecond line", 180)
	if len(lines) != 2 || lines[0] != "first line" || lines[1] != "second line" {
		t.Fatalf("wrap = %q", lines)
	}
	if c.Wrap("", 180) != nil {
		t.Fatal("empty text should wrap to nothing")
	}
}

func TestUncompressedTextIsSearchable(t *testing.T) {
	c := newTestCanvas(WithCompression(false))
	c.NewPage("cover", "")
	c.Cell(0, 10, "SAMPLE DUP", "L")
	c.Line(0, 10, "Page 1", "C")

	data, err := c.Bytes()
	if err != nil {
		t.Fatalf("bytes: %v", err)
	}
	for _, want := range []string{"(SAMPLE DUP)Tj", "(Page 1)Tj"} {
		if !bytes.Contains(data, []byte(want)) {
			t.Fatalf("stream does not contain %q", want)
		}
	}
}
