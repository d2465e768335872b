package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/recipepacks/internal/domain"
	"github.com/hammamikhairi/recipepacks/internal/recipe"
)

func runImport(cmd *cobra.Command, args []string) error {
	_, log, done, err := setup()
	if err != nil {
		return err
	}
	defer done()

	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	ctx := cmd.Context()

	src, err := recipe.LoadJSONFile(from, log)
	if err != nil {
		return err
	}
	summaries, err := src.List(ctx)
	if err != nil {
		return err
	}
	all := make([]*domain.Recipe, 0, len(summaries))
	for _, s := range summaries {
		r, err := src.Get(ctx, s.Slug)
		if err != nil {
			return fmt.Errorf("reading %s: %w", s.Slug, err)
		}
		all = append(all, r)
	}

	db, err := recipe.OpenSQLite(ctx, to, log)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Import(ctx, all...); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "imported %d recipes into %s\n", len(all), to)
	return nil
}
