// Package display renders batch progress and the final report in the
// terminal.
//
// On a TTY, [Progress] runs a Bubble Tea program with one spinner line
// per pack. Elsewhere [Plain] prints one line per finished pack. Both
// satisfy engine.Observer.
package display

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"github.com/hammamikhairi/recipepacks/internal/domain"
	"github.com/hammamikhairi/recipepacks/internal/engine"
)

// ── Styles ───────────────────────────────────────────────────────

var (
	// BannerStyle is the brand cyan used for the startup banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00d4ff"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8")).
			Bold(true)

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#bbf7d0"))

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5"))

	// Secondary text: dimmed zinc for paths, sizes, timings.
	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a"))

	spinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00d4ff"))
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(f.Fd())
}

// ── Plain output ─────────────────────────────────────────────────

var _ engine.Observer = (*Plain)(nil)

// Plain prints one line per finished pack. Safe for concurrent use.
type Plain struct {
	mu  sync.Mutex
	out io.Writer
}

// NewPlain creates a line printer writing to out.
func NewPlain(out io.Writer) *Plain {
	return &Plain{out: out}
}

// PackStarted implements engine.Observer. Plain output only reports
// finished packs.
func (p *Plain) PackStarted(domain.Pack) {}

// PackFinished prints the result line.
func (p *Plain) PackFinished(r engine.Result) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, resultLine(r))
}

// resultLine formats one pack outcome.
func resultLine(r engine.Result) string {
	if !r.OK() {
		return failStyle.Render("  ✗ ") + keyStyle.Render(r.PackKey) + "  " + failStyle.Render(r.Err.Error())
	}
	line := okStyle.Render("  ✓ ") + keyStyle.Render(r.PackKey) +
		secondaryStyle.Render(fmt.Sprintf("  %d pages, %d recipes, %s, %s",
			r.Pages, r.Recipes, fmtSize(r.Size), fmtDuration(r.Duration)))
	if len(r.Skipped) > 0 {
		line += warnStyle.Render(fmt.Sprintf("  (%d skipped)", len(r.Skipped)))
	}
	return line
}

// ── Helpers ──────────────────────────────────────────────────────

func fmtDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.Round(10 * time.Millisecond).String()
}

func fmtSize(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
