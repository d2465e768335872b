// Package pack defines the recipe packs to build and loads them from YAML.
package pack

import "github.com/hammamikhairi/recipepacks/internal/domain"

// Default returns the built-in packs in build order.
func Default() []domain.Pack {
	return []domain.Pack{
		{
			Key:         "starter",
			Title:       "THE STARTER PACK",
			Subtitle:    "5 Essential Protein Cookie Recipes",
			Description: "Everything you need to start making delicious, macro-verified protein cookies at home.",
			Recipes: []string{
				"chocolate-chip-protein-cookies",
				"peanut-butter-protein-cookies",
				"no-bake-protein-cookies",
				"double-chocolate-protein-cookies",
				"oatmeal-raisin-protein-cookies",
			},
		},
		{
			Key:         "no-bake",
			Title:       "THE NO-BAKE PACK",
			Subtitle:    "Quick Recipes Ready in 15 Minutes",
			Description: "No oven required! These quick and easy protein cookies are perfect for busy days.",
			Recipes: []string{
				"no-bake-protein-cookies",
				"protein-cookie-dough-bites",
				"peanut-butter-protein-cookies",
			},
		},
		{
			Key:         "peanut-butter",
			Title:       "THE PEANUT BUTTER LOVERS PACK",
			Subtitle:    "All the PB Recipes You Need",
			Description: "For the true peanut butter enthusiast. Rich, nutty, and packed with protein.",
			Recipes: []string{
				"peanut-butter-protein-cookies",
				"chocolate-peanut-butter-protein-cookies",
				"no-bake-protein-cookies",
				"monster-protein-cookies",
			},
		},
		{
			Key:         "holiday",
			Title:       "THE HOLIDAY COOKIE PACK",
			Subtitle:    "Festive Protein Cookies for Every Celebration",
			Description: "Healthy holiday treats that taste indulgent. Perfect for parties and gifts.",
			Recipes: []string{
				"gingerbread-protein-cookies",
				"snickerdoodle-protein-cookies",
				"pumpkin-spice-protein-cookies",
				"red-velvet-protein-cookies",
				"sugar-free-protein-cookies",
			},
		},
		{
			Key:         "kids",
			Title:       "THE KIDS LUNCHBOX PACK",
			Subtitle:    "Kid-Approved Protein Cookies",
			Description: "Healthy cookies kids will actually eat. Perfect for school lunches and snacks.",
			Recipes: []string{
				"protein-cookies-for-kids",
				"birthday-cake-protein-cookies",
				"chocolate-chip-protein-cookies",
				"peanut-butter-protein-cookies",
			},
		},
		{
			Key:         "high-protein",
			Title:       "THE 25g+ MUSCLE PACK",
			Subtitle:    "Maximum Protein Recipes for Serious Gains",
			Description: "Our highest protein recipes for athletes and fitness enthusiasts.",
			Recipes: []string{
				"high-protein-cookies-30g",
				"peanut-butter-protein-cookies",
				"cottage-cheese-protein-cookies",
				"chocolate-peanut-butter-protein-cookies",
				"greek-yogurt-protein-cookies",
			},
		},
	}
}
