package types

import (
	"github.com/smartrecipes/backend/internal/nutrition"
)

// RecipeCard is the assembled per-recipe record handed to the presentation
// layer. It is created fresh per page fetch and not mutated afterwards.
type RecipeCard struct {
	ID                 int64              `json:"id"`
	Title              string             `json:"title"`
	ImageURL           string             `json:"image_url,omitempty"`
	UsedIngredients    []string           `json:"used_ingredients"`
	MissingIngredients []string           `json:"missing_ingredients"`
	Nutrition          *nutrition.Summary `json:"nutrition,omitempty"`
	ReadyInMinutes     *int               `json:"ready_in_minutes,omitempty"`
	Servings           *int               `json:"servings,omitempty"`
	DietaryTags        []string           `json:"dietary_tags"`
}

// SearchState is the per-session state of the active search. It is created
// on the first search submission, mutated in place by page navigation and
// replaced when a new search is submitted.
type SearchState struct {
	Ingredients []string `json:"ingredients"`
	Diet        string   `json:"diet,omitempty"`
	CurrentPage int      `json:"current_page"`
	TotalPages  int      `json:"total_pages"`
}

// SearchPage is one rendered page of results plus the pagination state the
// presentation layer needs for its controls.
type SearchPage struct {
	Recipes     []RecipeCard `json:"recipes"`
	CurrentPage int          `json:"current_page"`
	TotalPages  int          `json:"total_pages"`
}
