package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/hammamikhairi/recipepacks/internal/composer"
	"github.com/hammamikhairi/recipepacks/internal/storage"
)

var (
	packKeyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#bae6fd")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#71717a"))
	missStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#fde68a"))
)

func runPacks(cmd *cobra.Command, args []string) error {
	cfg, log, done, err := setup()
	if err != nil {
		return err
	}
	defer done()

	packs, err := loadPacks(cfg, nil)
	if err != nil {
		return err
	}
	recipes, closeCatalog, err := openCatalog(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	defer closeCatalog()

	comp := composer.New(recipes, log)
	out := cmd.OutOrStdout()
	for _, p := range packs {
		found, skipped, err := comp.Resolve(cmd.Context(), p)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s  %s\n", packKeyStyle.Render(p.Key), p.Title)
		fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("    %d of %d recipes resolve -> %s",
			len(found), len(p.Recipes), storage.FileName(cfg.Site.Slug, p.Key))))
		if len(skipped) > 0 {
			fmt.Fprintln(out, missStyle.Render("    missing: "+strings.Join(skipped, ", ")))
		}
	}
	return nil
}
