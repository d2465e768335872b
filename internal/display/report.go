package display

import (
	"fmt"
	"strings"

	"github.com/hammamikhairi/recipepacks/internal/engine"
)

// RenderReport summarises a finished batch: one line per pack, the output
// paths, skipped slugs and a totals line.
func RenderReport(r *engine.Report) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Recipe packs") + secondaryStyle.Render("  run "+r.RunID) + "\n")

	for _, res := range r.Results {
		b.WriteString(resultLine(res) + "\n")
		if res.Path != "" {
			b.WriteString(secondaryStyle.Render("      "+res.Path) + "\n")
		}
		if len(res.Skipped) > 0 {
			b.WriteString(warnStyle.Render("      skipped: "+strings.Join(res.Skipped, ", ")) + "\n")
		}
	}

	ok := len(r.Results) - r.Failed()
	summary := fmt.Sprintf("%d/%d packs written in %s", ok, len(r.Results), fmtDuration(r.Duration))
	if r.Failed() > 0 {
		b.WriteString(failStyle.Render(summary) + "\n")
	} else {
		b.WriteString(okStyle.Render(summary) + "\n")
	}
	return b.String()
}
