package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartrecipes/backend/internal/nutrition"
)

func TestParseIngredients(t *testing.T) {
	assert.Equal(t, []string{"egg", "flour"}, ParseIngredients("egg, flour"))
	assert.Equal(t, []string{"egg"}, ParseIngredients(" egg ,, "))
	assert.Empty(t, ParseIngredients(""))
	assert.Empty(t, ParseIngredients(" , ,"))
}

func TestAssembleCard(t *testing.T) {
	primary := RecipeRecord{
		ID:    716429,
		Title: "Pasta with Garlic",
		Image: "https://img.example/716429.jpg",
		ExtendedIngredients: []RecipeIngredientRecord{
			{Name: "pasta", Original: "8 oz pasta"},
			{Name: "garlic", Original: "3 cloves garlic"},
			{Name: "scallions", Original: "2 scallions"},
		},
		Nutrition: &NutritionRecord{Nutrients: []nutrition.Nutrient{
			{Name: "Calories", Amount: 584.4},
			{Name: "Protein", Amount: 19.06},
		}},
		ReadyInMinutes: 45,
		Servings:       2,
		Vegetarian:     true,
	}

	t.Run("partitions ingredients against the provided set", func(t *testing.T) {
		card := AssembleCard(primary, nil, []string{"pasta", "garlic"})

		assert.Equal(t, int64(716429), card.ID)
		assert.Equal(t, []string{"8 oz pasta", "3 cloves garlic"}, card.UsedIngredients)
		assert.Equal(t, []string{"2 scallions"}, card.MissingIngredients)
		require.NotNil(t, card.Nutrition)
		require.NotNil(t, card.Nutrition.Calories)
		assert.Equal(t, 584, *card.Nutrition.Calories)
		require.NotNil(t, card.ReadyInMinutes)
		assert.Equal(t, 45, *card.ReadyInMinutes)
		assert.Equal(t, []string{"vegetarian"}, card.DietaryTags)
	})

	t.Run("falls back per field to the detail record", func(t *testing.T) {
		sparse := RecipeRecord{ID: 1, Title: "Sparse", Servings: 4}
		detail := &RecipeRecord{
			ID:    1,
			Title: "Detailed",
			ExtendedIngredients: []RecipeIngredientRecord{
				{Name: "eggs", Original: "2 large eggs"},
			},
			Nutrition: &NutritionRecord{Nutrients: []nutrition.Nutrient{
				{Name: "Calories", Amount: 100},
			}},
			ReadyInMinutes: 20,
			Servings:       8,
			Vegan:          true,
		}

		card := AssembleCard(sparse, detail, []string{"egg"})

		// Primary wins where it has a value, detail fills the rest.
		assert.Equal(t, "Sparse", card.Title)
		assert.Equal(t, []string{"2 large eggs"}, card.UsedIngredients)
		require.NotNil(t, card.Nutrition)
		require.NotNil(t, card.ReadyInMinutes)
		assert.Equal(t, 20, *card.ReadyInMinutes)
		require.NotNil(t, card.Servings)
		assert.Equal(t, 4, *card.Servings)
		assert.Equal(t, []string{"vegan"}, card.DietaryTags)
	})

	t.Run("missing data degrades instead of failing", func(t *testing.T) {
		card := AssembleCard(RecipeRecord{ID: 2, Title: "Bare"}, nil, []string{"egg"})

		assert.Nil(t, card.Nutrition)
		assert.Nil(t, card.ReadyInMinutes)
		assert.Nil(t, card.Servings)
		assert.Empty(t, card.UsedIngredients)
		require.Len(t, card.MissingIngredients, 1) // placeholder entry
	})

	t.Run("is pure, inputs are untouched", func(t *testing.T) {
		before := len(primary.ExtendedIngredients)
		_ = AssembleCard(primary, nil, []string{"pasta"})
		_ = AssembleCard(primary, nil, []string{"pasta"})
		assert.Len(t, primary.ExtendedIngredients, before)
	})
}
