package recipe

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/hammamikhairi/recipepacks/internal/domain"
	"github.com/hammamikhairi/recipepacks/internal/logger"
)

// Compile-time interface check.
var _ domain.RecipeSource = (*SQLiteSource)(nil)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS recipes (
	slug          TEXT PRIMARY KEY,
	title         TEXT NOT NULL,
	category      TEXT NOT NULL DEFAULT '',
	description   TEXT NOT NULL DEFAULT '',
	protein       TEXT NOT NULL DEFAULT '0',
	calories      TEXT NOT NULL DEFAULT '0',
	carbs         TEXT NOT NULL DEFAULT '0',
	fat           TEXT NOT NULL DEFAULT '0',
	fiber         TEXT NOT NULL DEFAULT '0',
	sugar         TEXT NOT NULL DEFAULT '0',
	prep_minutes  INTEGER NOT NULL DEFAULT 0,
	cook_minutes  INTEGER NOT NULL DEFAULT 0,
	total_minutes INTEGER NOT NULL DEFAULT 0,
	yield         TEXT NOT NULL DEFAULT '',
	serving_size  TEXT NOT NULL DEFAULT '',
	difficulty    TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS recipe_ingredients (
	slug     TEXT NOT NULL REFERENCES recipes(slug) ON DELETE CASCADE,
	position INTEGER NOT NULL,
	text     TEXT NOT NULL,
	PRIMARY KEY (slug, position)
);
CREATE TABLE IF NOT EXISTS recipe_steps (
	slug     TEXT NOT NULL REFERENCES recipes(slug) ON DELETE CASCADE,
	position INTEGER NOT NULL,
	title    TEXT NOT NULL,
	body     TEXT NOT NULL,
	PRIMARY KEY (slug, position)
);`

// SQLiteSource reads recipes from a SQLite database. Nutrition values are
// stored as text so decimals round-trip without float conversion.
type SQLiteSource struct {
	db  *sql.DB
	log *logger.Logger
}

// OpenSQLite opens (or creates) the catalog database at path and ensures
// the schema exists. Use ":memory:" for a throwaway catalog.
func OpenSQLite(ctx context.Context, path string, log *logger.Logger) (*SQLiteSource, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite catalog: %w", err)
	}
	// A single connection keeps ":memory:" databases alive and serializes writes.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating catalog schema: %w", err)
	}
	log.Debug("sqlite catalog ready at %s", path)
	return &SQLiteSource{db: db, log: log}, nil
}

// Close releases the database handle.
func (s *SQLiteSource) Close() error {
	return s.db.Close()
}

// Import writes recipes into the database, replacing existing rows with the
// same slug.
func (s *SQLiteSource) Import(ctx context.Context, recipes ...*domain.Recipe) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	for _, r := range recipes {
		if err := r.Validate(); err != nil {
			return err
		}
		if err := importOne(ctx, tx, r); err != nil {
			return fmt.Errorf("importing %s: %w", r.Slug, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	s.log.Info("imported %d recipes into sqlite catalog", len(recipes))
	return nil
}

func importOne(ctx context.Context, tx *sql.Tx, r *domain.Recipe) error {
	for _, q := range []string{
		`DELETE FROM recipe_ingredients WHERE slug = ?`,
		`DELETE FROM recipe_steps WHERE slug = ?`,
		`DELETE FROM recipes WHERE slug = ?`,
	} {
		if _, err := tx.ExecContext(ctx, q, r.Slug); err != nil {
			return err
		}
	}

	n := r.Nutrition
	_, err := tx.ExecContext(ctx, `INSERT INTO recipes
		(slug, title, category, description, protein, calories, carbs, fat, fiber, sugar,
		 prep_minutes, cook_minutes, total_minutes, yield, serving_size, difficulty)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Slug, r.Title, r.Category, r.Description,
		domain.Amount(n.Protein), domain.Amount(n.Calories), domain.Amount(n.Carbs),
		domain.Amount(n.Fat), domain.Amount(n.Fiber), domain.Amount(n.Sugar),
		r.Timing.PrepMinutes, r.Timing.CookMinutes, r.Timing.TotalMinutes,
		r.Yield, r.ServingSize, r.Difficulty)
	if err != nil {
		return err
	}

	for i, ing := range r.Ingredients {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO recipe_ingredients (slug, position, text) VALUES (?, ?, ?)`,
			r.Slug, i, ing); err != nil {
			return err
		}
	}
	for i, st := range r.Instructions {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO recipe_steps (slug, position, title, body) VALUES (?, ?, ?, ?)`,
			r.Slug, i, st.Title, st.Text); err != nil {
			return err
		}
	}
	return nil
}

// Get returns a recipe by slug.
func (s *SQLiteSource) Get(ctx context.Context, slug string) (*domain.Recipe, error) {
	var (
		r     = domain.Recipe{Slug: slug}
		facts [6]string
	)
	err := s.db.QueryRowContext(ctx, `SELECT title, category, description,
		protein, calories, carbs, fat, fiber, sugar,
		prep_minutes, cook_minutes, total_minutes, yield, serving_size, difficulty
		FROM recipes WHERE slug = ?`, slug).Scan(
		&r.Title, &r.Category, &r.Description,
		&facts[0], &facts[1], &facts[2], &facts[3], &facts[4], &facts[5],
		&r.Timing.PrepMinutes, &r.Timing.CookMinutes, &r.Timing.TotalMinutes,
		&r.Yield, &r.ServingSize, &r.Difficulty)
	if errors.Is(err, sql.ErrNoRows) {
		s.log.Debug("recipe not found: %s", slug)
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying recipe %s: %w", slug, err)
	}

	targets := []*decimal.Decimal{
		&r.Nutrition.Protein, &r.Nutrition.Calories, &r.Nutrition.Carbs,
		&r.Nutrition.Fat, &r.Nutrition.Fiber, &r.Nutrition.Sugar,
	}
	for i, raw := range facts {
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: bad nutrition value %q", domain.ErrInvalidRecipe, slug, raw)
		}
		*targets[i] = v
	}

	if r.Ingredients, err = s.ingredients(ctx, slug); err != nil {
		return nil, err
	}
	if r.Instructions, err = s.steps(ctx, slug); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *SQLiteSource) ingredients(ctx context.Context, slug string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT text FROM recipe_ingredients WHERE slug = ? ORDER BY position`, slug)
	if err != nil {
		return nil, fmt.Errorf("querying ingredients for %s: %w", slug, err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, err
		}
		out = append(out, text)
	}
	return out, rows.Err()
}

func (s *SQLiteSource) steps(ctx context.Context, slug string) ([]domain.Step, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT title, body FROM recipe_steps WHERE slug = ? ORDER BY position`, slug)
	if err != nil {
		return nil, fmt.Errorf("querying steps for %s: %w", slug, err)
	}
	defer rows.Close()

	var out []domain.Step
	for rows.Next() {
		var st domain.Step
		if err := rows.Scan(&st.Title, &st.Text); err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

// List returns summaries of all recipes, sorted by title.
func (s *SQLiteSource) List(ctx context.Context) ([]domain.RecipeSummary, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT slug, title, category FROM recipes ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("listing recipes: %w", err)
	}
	defer rows.Close()

	var out []domain.RecipeSummary
	for rows.Next() {
		var sum domain.RecipeSummary
		if err := rows.Scan(&sum.Slug, &sum.Title, &sum.Category); err != nil {
			return nil, err
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}
