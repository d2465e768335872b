package recipe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"

	"github.com/hammamikhairi/recipepacks/internal/domain"
	"github.com/hammamikhairi/recipepacks/internal/logger"
)

// catalogFile mirrors the site's data/recipes.json layout.
type catalogFile struct {
	Recipes []jsonRecipe `json:"recipes"`
}

type jsonRecipe struct {
	Slug         string          `json:"slug"`
	Title        string          `json:"title"`
	Category     string          `json:"category"`
	Description  string          `json:"description"`
	Protein      decimal.Decimal `json:"protein"`
	Calories     decimal.Decimal `json:"calories"`
	Carbs        decimal.Decimal `json:"carbs"`
	Fat          decimal.Decimal `json:"fat"`
	Fiber        decimal.Decimal `json:"fiber"`
	Sugar        decimal.Decimal `json:"sugar"`
	PrepTime     int             `json:"prepTime"`
	CookTime     int             `json:"cookTime"`
	TotalTime    int             `json:"totalTime"`
	Yield        string          `json:"yield"`
	ServingSize  string          `json:"servingSize"`
	Difficulty   string          `json:"difficulty"`
	Ingredients  []string        `json:"ingredients"`
	Instructions []jsonStep      `json:"instructions"`
}

type jsonStep struct {
	Step string `json:"step"`
	Text string `json:"text"`
}

func (j jsonRecipe) toDomain() *domain.Recipe {
	steps := make([]domain.Step, 0, len(j.Instructions))
	for _, s := range j.Instructions {
		steps = append(steps, domain.Step{Title: s.Step, Text: s.Text})
	}
	return &domain.Recipe{
		Slug:        j.Slug,
		Title:       j.Title,
		Category:    j.Category,
		Description: j.Description,
		Nutrition: domain.Nutrition{
			Protein:  j.Protein,
			Calories: j.Calories,
			Carbs:    j.Carbs,
			Fat:      j.Fat,
			Fiber:    j.Fiber,
			Sugar:    j.Sugar,
		},
		Timing: domain.Timing{
			PrepMinutes:  j.PrepTime,
			CookMinutes:  j.CookTime,
			TotalMinutes: j.TotalTime,
		},
		Yield:        j.Yield,
		ServingSize:  j.ServingSize,
		Difficulty:   j.Difficulty,
		Ingredients:  j.Ingredients,
		Instructions: steps,
	}
}

// LoadJSONFile reads a recipes.json catalog into a memory source.
func LoadJSONFile(path string, log *logger.Logger) (*MemorySource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()

	src, err := LoadJSON(f, log)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return src, nil
}

// LoadJSON decodes a recipes.json document. Duplicate slugs and invalid
// records fail the whole load.
func LoadJSON(r io.Reader, log *logger.Logger) (*MemorySource, error) {
	var file catalogFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	src := NewEmptyMemorySource(log)
	ctx := context.Background()
	for _, jr := range file.Recipes {
		if _, err := src.Get(ctx, jr.Slug); err == nil {
			return nil, fmt.Errorf("recipe %q: %w", jr.Slug, domain.ErrAlreadyExists)
		}
		if err := src.Put(ctx, jr.toDomain()); err != nil {
			return nil, err
		}
	}
	log.Info("loaded %d recipes from json catalog", len(file.Recipes))
	return src, nil
}
