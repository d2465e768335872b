// Package domain defines the core types and interfaces for the pack composer.
// All other packages depend on domain; domain depends on nothing but the
// decimal type used for nutrition facts.
package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Recipe is an immutable catalog record. The composer never mutates it.
type Recipe struct {
	Slug         string
	Title        string
	Category     string
	Description  string
	Nutrition    Nutrition
	Timing       Timing
	Yield        string // "24 cookies"
	ServingSize  string
	Difficulty   string
	Ingredients  []string // free text, order preserved
	Instructions []Step
}

// Nutrition holds per-serving facts. Macros are grams, calories are kcal.
// Values are kept as decimals so they render exactly as supplied.
type Nutrition struct {
	Protein  decimal.Decimal
	Calories decimal.Decimal
	Carbs    decimal.Decimal
	Fat      decimal.Decimal
	Fiber    decimal.Decimal
	Sugar    decimal.Decimal
}

// Amount renders a nutrition value with the precision it was supplied in,
// so "12.50" prints as 12.50 rather than 12.5.
func Amount(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}

// Timing is expressed in minutes. Total is expected to be at least
// Prep+Cook but that is not enforced here.
type Timing struct {
	PrepMinutes  int
	CookMinutes  int
	TotalMinutes int
}

// Step is a single instruction: a short title and its body text.
type Step struct {
	Title string
	Text  string
}

// Validate checks the invariants a catalog must hold before a recipe can be
// served to the composer.
func (r *Recipe) Validate() error {
	if r.Slug == "" {
		return fmt.Errorf("%w: empty slug", ErrInvalidRecipe)
	}
	facts := []struct {
		name string
		v    decimal.Decimal
	}{
		{"protein", r.Nutrition.Protein},
		{"calories", r.Nutrition.Calories},
		{"carbs", r.Nutrition.Carbs},
		{"fat", r.Nutrition.Fat},
		{"fiber", r.Nutrition.Fiber},
		{"sugar", r.Nutrition.Sugar},
	}
	for _, f := range facts {
		if f.v.IsNegative() {
			return fmt.Errorf("%w: %s: negative %s %s", ErrInvalidRecipe, r.Slug, f.name, f.v)
		}
	}
	if r.Timing.PrepMinutes < 0 || r.Timing.CookMinutes < 0 || r.Timing.TotalMinutes < 0 {
		return fmt.Errorf("%w: %s: negative timing", ErrInvalidRecipe, r.Slug)
	}
	return nil
}
