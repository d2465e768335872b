package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestRecipeValidate(t *testing.T) {
	tests := []struct {
		name    string
		recipe  Recipe
		wantErr bool
	}{
		{"ok", Recipe{Slug: "a", Nutrition: Nutrition{Protein: decimal.RequireFromString("12.5")}}, false},
		{"zero values", Recipe{Slug: "a"}, false},
		{"empty slug", Recipe{}, true},
		{"negative fat", Recipe{Slug: "a", Nutrition: Nutrition{Fat: decimal.NewFromInt(-1)}}, true},
		{"negative time", Recipe{Slug: "a", Timing: Timing{CookMinutes: -5}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.recipe.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidRecipe) {
					t.Fatalf("expected ErrInvalidRecipe, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestAmountKeepsPrecision(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"12.50", "12.50"},
		{"12.5", "12.5"},
		{"140", "140"},
		{"0.0", "0.0"},
		{"1e2", "100"},
	}

	for _, tt := range tests {
		if got := Amount(decimal.RequireFromString(tt.in)); got != tt.want {
			t.Errorf("Amount(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if got := Amount(decimal.Decimal{}); got != "0" {
		t.Errorf("zero value = %q", got)
	}
}
