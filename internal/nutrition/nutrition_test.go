package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	t.Run("pulls calories, protein and carbs by name", func(t *testing.T) {
		summary := Extract([]Nutrient{
			{Name: "Calories", Amount: 245.7},
			{Name: "Protein", Amount: 12.34},
			{Name: "Carbohydrates", Amount: 30.06},
			{Name: "Fat", Amount: 9.9},
		})

		require.NotNil(t, summary)
		require.NotNil(t, summary.Calories)
		require.NotNil(t, summary.Protein)
		require.NotNil(t, summary.Carbs)
		assert.Equal(t, 246, *summary.Calories)
		assert.Equal(t, 12.3, *summary.Protein)
		assert.Equal(t, 30.1, *summary.Carbs)
	})

	t.Run("last matching record wins", func(t *testing.T) {
		summary := Extract([]Nutrient{
			{Name: "Protein", Amount: 5},
			{Name: "Protein", Amount: 8},
		})

		require.NotNil(t, summary)
		require.NotNil(t, summary.Protein)
		assert.Equal(t, 8.0, *summary.Protein)
	})

	t.Run("absent categories stay nil", func(t *testing.T) {
		summary := Extract([]Nutrient{
			{Name: "Protein", Amount: 5},
		})

		require.NotNil(t, summary)
		assert.Nil(t, summary.Calories)
		assert.Nil(t, summary.Carbs)
	})

	t.Run("returns nil when nothing matched", func(t *testing.T) {
		assert.Nil(t, Extract([]Nutrient{
			{Name: "Fat", Amount: 10},
			{Name: "Sodium", Amount: 200},
		}))
		assert.Nil(t, Extract(nil))
	})
}

func TestFlags(t *testing.T) {
	t.Run("tags follow the enabled flags", func(t *testing.T) {
		flags := Flags{Vegetarian: true, GlutenFree: true}
		assert.Equal(t, []string{"vegetarian", "gluten free"}, flags.Tags())
		assert.True(t, flags.Any())
	})

	t.Run("no flags means no tags", func(t *testing.T) {
		flags := Flags{}
		assert.Empty(t, flags.Tags())
		assert.False(t, flags.Any())
	})
}
