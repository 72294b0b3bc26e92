package service

import (
	"strings"

	"github.com/smartrecipes/backend/internal/ingredient"
	"github.com/smartrecipes/backend/internal/nutrition"
	"github.com/smartrecipes/backend/internal/types"
)

// ParseIngredients splits a raw comma-separated ingredient string into the
// provided-ingredient set for one search, dropping empty entries.
func ParseIngredients(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// AssembleCard composes one upstream recipe record, an optional
// supplementary detail record for the same recipe and the user's provided
// ingredients into a display-ready card. Each field prefers the primary
// record and falls back to the detail record independently. Pure function
// of its inputs.
func AssembleCard(primary RecipeRecord, detail *RecipeRecord, provided []string) types.RecipeCard {
	card := types.RecipeCard{
		ID:       primary.ID,
		Title:    primary.Title,
		ImageURL: primary.Image,
	}
	if card.Title == "" && detail != nil {
		card.Title = detail.Title
	}
	if card.ImageURL == "" && detail != nil {
		card.ImageURL = detail.Image
	}

	ingredients := primary.ExtendedIngredients
	if len(ingredients) == 0 && detail != nil {
		ingredients = detail.ExtendedIngredients
	}
	match := ingredient.Match(provided, toRecipeIngredients(ingredients))
	card.UsedIngredients = displayTexts(match.Used)
	card.MissingIngredients = displayTexts(match.Missing)

	nutritionRecord := primary.Nutrition
	if nutritionRecord == nil && detail != nil {
		nutritionRecord = detail.Nutrition
	}
	if nutritionRecord != nil {
		card.Nutrition = nutrition.Extract(nutritionRecord.Nutrients)
	}

	ready := primary.ReadyInMinutes
	if ready <= 0 && detail != nil {
		ready = detail.ReadyInMinutes
	}
	if ready > 0 {
		card.ReadyInMinutes = &ready
	}

	servings := primary.Servings
	if servings <= 0 && detail != nil {
		servings = detail.Servings
	}
	if servings > 0 {
		card.Servings = &servings
	}

	flags := dietaryFlags(primary)
	if !flags.Any() && detail != nil {
		flags = dietaryFlags(*detail)
	}
	card.DietaryTags = flags.Tags()

	return card
}

func dietaryFlags(rec RecipeRecord) nutrition.Flags {
	return nutrition.Flags{
		Vegetarian: rec.Vegetarian,
		Vegan:      rec.Vegan,
		GlutenFree: rec.GlutenFree,
		DairyFree:  rec.DairyFree,
	}
}

func toRecipeIngredients(records []RecipeIngredientRecord) []ingredient.RecipeIngredient {
	out := make([]ingredient.RecipeIngredient, 0, len(records))
	for _, r := range records {
		out = append(out, ingredient.RecipeIngredient{Name: r.Name, Original: r.Original})
	}
	return out
}

func displayTexts(ingredients []ingredient.RecipeIngredient) []string {
	texts := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		texts = append(texts, ing.DisplayText())
	}
	return texts
}
