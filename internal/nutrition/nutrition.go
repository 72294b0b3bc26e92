package nutrition

import (
	"math"
	"strings"
)

// Nutrient is a single entry from an upstream nutrient record list.
type Nutrient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Summary holds the figures surfaced on a recipe card. Nil pointer fields
// mean the upstream record did not report the figure; they are never
// defaulted to zero.
type Summary struct {
	Calories *int     `json:"calories,omitempty"`
	Protein  *float64 `json:"protein,omitempty"`
	Carbs    *float64 `json:"carbs,omitempty"`
}

// Extract scans a heterogeneous nutrient list and pulls out calories,
// protein and carbohydrate figures by name. When a category appears more
// than once the last record wins; there is no aggregation. Returns nil when
// no field was populated.
func Extract(nutrients []Nutrient) *Summary {
	var summary Summary
	found := false
	for _, n := range nutrients {
		name := strings.ToLower(n.Name)
		if strings.Contains(name, "calorie") {
			cal := int(math.Round(n.Amount))
			summary.Calories = &cal
			found = true
		}
		if strings.Contains(name, "protein") {
			p := roundTenth(n.Amount)
			summary.Protein = &p
			found = true
		}
		if strings.Contains(name, "carbohydrate") {
			c := roundTenth(n.Amount)
			summary.Carbs = &c
			found = true
		}
	}
	if !found {
		return nil
	}
	return &summary
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// Flags are the boolean dietary attributes surfaced as display badges.
type Flags struct {
	Vegetarian bool `json:"vegetarian"`
	Vegan      bool `json:"vegan"`
	GlutenFree bool `json:"gluten_free"`
	DairyFree  bool `json:"dairy_free"`
}

// Any reports whether at least one flag is set.
func (f Flags) Any() bool {
	return f.Vegetarian || f.Vegan || f.GlutenFree || f.DairyFree
}

// Tags returns the set of display badges for the enabled flags.
func (f Flags) Tags() []string {
	var tags []string
	if f.Vegetarian {
		tags = append(tags, "vegetarian")
	}
	if f.Vegan {
		tags = append(tags, "vegan")
	}
	if f.GlutenFree {
		tags = append(tags, "gluten free")
	}
	if f.DairyFree {
		tags = append(tags, "dairy free")
	}
	return tags
}
