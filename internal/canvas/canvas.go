// Package canvas wraps the PDF engine with the per-document cursor and the
// layout primitives the page builders share: wrapped text blocks, shaded
// panels, labelled stats, pills, and independent column flows.
//
// A Canvas is created for one document and thrown away once Bytes has been
// called. It is not safe for concurrent use; separate documents use
// separate canvases.
//
// Pagination is a single rule: before drawing anything of height h, call
// Reserve(h). If the block would cross the bottom margin a continuation
// page is started and Reserve reports true so the builder can react (for
// example by repeating a heading).
package canvas

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// A4 portrait geometry in millimetres.
const (
	PageWidth    = 210.0
	PageHeight   = 297.0
	Margin       = 10.0
	BottomMargin = 20.0
	BandHeight   = 15.0
	ContentTop   = 20.0
	ContentWidth = PageWidth - 2*Margin
)

// Cursor is the writing position of a document.
type Cursor struct {
	Page      int // 1-based
	Y         float64
	Decorated bool // false on page 1
}

// PageInfo describes one physical page of the document.
type PageInfo struct {
	Number    int
	Kind      string
	Title     string
	Continued bool
}

// Decorator draws the running header and footer. Header is only called for
// decorated pages; Footer is called for every page.
type Decorator interface {
	Header(c *Canvas)
	Footer(c *Canvas)
}

// Option configures a Canvas.
type Option func(*Canvas)

// WithDecorator installs the running header/footer.
func WithDecorator(d Decorator) Option {
	return func(c *Canvas) {
		c.decor = d
	}
}

// WithMetadata sets the document information dictionary.
func WithMetadata(title, subject string) Option {
	return func(c *Canvas) {
		c.pdf.SetTitle(title, true)
		c.pdf.SetSubject(subject, true)
	}
}

// WithCreationDate pins the creation timestamp so output is reproducible.
func WithCreationDate(t time.Time) Option {
	return func(c *Canvas) {
		c.pdf.SetCreationDate(t)
	}
}

// WithCompression toggles stream compression (on by default).
func WithCompression(on bool) Option {
	return func(c *Canvas) {
		c.pdf.SetCompression(on)
	}
}

// Canvas is one document under construction.
type Canvas struct {
	pdf   *gofpdf.Fpdf
	theme Theme
	tr    func(string) string
	decor Decorator
	pages []PageInfo
	kind  string
	title string

	// Last style set through Font and TextColor. The engine restores its
	// own state after decoration; these mirror it for Flow.
	style string
	size  float64
	text  Color
	fill  Color
}

// New creates an empty document.
func New(theme Theme, opts ...Option) *Canvas {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(Margin, Margin, Margin)
	// Page breaks are decided by Reserve, never by the engine.
	pdf.SetAutoPageBreak(false, BottomMargin)
	pdf.SetAuthor(theme.Brand, true)
	pdf.SetCreator("packgen", true)
	pdf.SetCatalogSort(true)

	c := &Canvas{
		pdf:   pdf,
		theme: theme,
		tr:    pdf.UnicodeTranslatorFromDescriptor(""),
	}
	for _, opt := range opts {
		opt(c)
	}

	pdf.SetHeaderFunc(func() {
		if c.decor != nil && pdf.PageNo() > 1 {
			c.decor.Header(c)
		}
	})
	pdf.SetFooterFunc(func() {
		if c.decor != nil {
			c.decor.Footer(c)
		}
	})
	return c
}

// Theme returns the palette in use.
func (c *Canvas) Theme() Theme { return c.theme }

// NewPage starts a page for a new section. kind and title label the page
// in Pages.
func (c *Canvas) NewPage(kind, title string) {
	c.kind, c.title = kind, title
	c.addPage(false)
}

// Continue starts a continuation page for the current section.
func (c *Canvas) Continue() {
	c.addPage(true)
}

func (c *Canvas) addPage(continued bool) {
	// The engine appends after the current page, so always add from the last.
	if n := c.pdf.PageCount(); n > 0 {
		c.gotoPage(n)
	}
	style, size, text, fill := c.style, c.size, c.text, c.fill
	c.pdf.AddPage()
	c.style, c.size, c.text, c.fill = style, size, text, fill
	c.pdf.SetXY(Margin, c.top(c.pdf.PageNo()))
	c.pages = append(c.pages, PageInfo{
		Number:    c.pdf.PageNo(),
		Kind:      c.kind,
		Title:     c.title,
		Continued: continued,
	})
}

// gotoPage makes page n current. The engine skips font and colour commands
// it believes are already active, but each page has its own content
// stream, so they are emitted again after a switch.
func (c *Canvas) gotoPage(n int) {
	if c.pdf.PageNo() == n {
		return
	}
	c.pdf.SetPage(n)
	if c.size > 0 {
		c.pdf.SetFontSize(c.size)
	}
	c.pdf.SetFillColor(c.fill.R, c.fill.G, c.fill.B)
}

func (c *Canvas) top(page int) float64 {
	if page > 1 {
		return ContentTop
	}
	return Margin
}

// Top returns the first writable Y of the current page.
func (c *Canvas) Top() float64 { return c.top(c.pdf.PageNo()) }

// Limit returns the lowest Y content may reach.
func (c *Canvas) Limit() float64 { return PageHeight - BottomMargin }

// Cursor returns the current writing position.
func (c *Canvas) Cursor() Cursor {
	p := c.pdf.PageNo()
	return Cursor{Page: p, Y: c.pdf.GetY(), Decorated: p > 1}
}

// Pages returns the pages drawn so far.
func (c *Canvas) Pages() []PageInfo {
	out := make([]PageInfo, len(c.pages))
	copy(out, c.pages)
	return out
}

// PageCount returns the number of pages drawn so far.
func (c *Canvas) PageCount() int { return c.pdf.PageCount() }

// Fits reports whether a block of height h fits above the bottom margin.
func (c *Canvas) Fits(h float64) bool {
	return c.pdf.GetY()+h <= c.Limit()
}

// Reserve makes room for a block of height h, starting a continuation page
// when it would cross the bottom margin. It reports whether it did.
func (c *Canvas) Reserve(h float64) bool {
	if c.Fits(h) {
		return false
	}
	c.Continue()
	return true
}

// Bytes closes the document and returns the encoded PDF.
func (c *Canvas) Bytes() ([]byte, error) {
	if n := c.pdf.PageCount(); n > 0 {
		// Close draws the footer on the current page.
		c.gotoPage(n)
	}
	var buf bytes.Buffer
	if err := c.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("encoding pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// Err returns the first drawing error, if any.
func (c *Canvas) Err() error { return c.pdf.Error() }
