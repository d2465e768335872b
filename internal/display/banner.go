package display

import (
	_ "embed"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
)

//go:embed banner.txt
var bannerRaw string

const tagline = "recipe pack composer"

// RenderBanner returns the banner art and tagline centred for the given
// terminal width. A width of zero uses the width of stdout.
func RenderBanner(width int) string {
	if width <= 0 {
		width = termWidth()
	}

	lines := strings.Split(strings.TrimRight(bannerRaw, "\n"), "\n")
	lines = append(lines, "", tagline)

	// Centre on the widest line so the art keeps its shape.
	maxW := 0
	for _, l := range lines {
		if len(l) > maxW {
			maxW = len(l)
		}
	}
	pad := 0
	if width > maxW {
		pad = (width - maxW) / 2
	}

	var b strings.Builder
	for i, l := range lines {
		b.WriteString(strings.Repeat(" ", pad))
		if i == len(lines)-1 {
			// The tagline is centred under the art.
			b.WriteString(strings.Repeat(" ", (maxW-len(l))/2))
			b.WriteString(secondaryStyle.Render(l))
		} else {
			b.WriteString(BannerStyle.Render(l))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// termWidth returns the current terminal column count, or 80 as fallback.
func termWidth() int {
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return 80
}
