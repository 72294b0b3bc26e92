package ingredient

import "strings"

// RecipeIngredient is one ingredient line reported by the upstream API. Name
// is the short ingredient name, Original the full display text ("2 large
// eggs, beaten").
type RecipeIngredient struct {
	Name     string `json:"name"`
	Original string `json:"original"`
}

// DisplayText returns the text shown to the user for this ingredient.
func (r RecipeIngredient) DisplayText() string {
	if r.Original != "" {
		return r.Original
	}
	return r.Name
}

// normalized returns the comparison form, falling back to the original text
// when the short name normalizes away to nothing.
func (r RecipeIngredient) normalized() string {
	if n := Normalize(r.Name); n != "" {
		return n
	}
	return Normalize(r.Original)
}

// MatchResult partitions a recipe's ingredients into those covered by the
// user's provided set and those not, both in upstream order.
type MatchResult struct {
	Used    []RecipeIngredient `json:"used"`
	Missing []RecipeIngredient `json:"missing"`
}

// missingPlaceholder is returned when the upstream record carries no
// ingredient information at all, so callers always have a line to render.
var missingPlaceholder = RecipeIngredient{Name: "ingredient details unavailable"}

// Match decides, for each recipe ingredient, whether it overlaps with any of
// the user-provided ingredients. The match is deliberately loose: a recipe
// ingredient counts as used when one normalized form is a substring of the
// other, or when any word longer than two characters from either side
// appears inside the other. The first provided ingredient that overlaps
// wins; there is no scoring across candidates. Ingredients with no usable
// text are never matched.
func Match(provided []string, ingredients []RecipeIngredient) MatchResult {
	if len(ingredients) == 0 {
		return MatchResult{Missing: []RecipeIngredient{missingPlaceholder}}
	}

	providedNorms := make([]string, 0, len(provided))
	for _, p := range provided {
		if n := Normalize(p); n != "" {
			providedNorms = append(providedNorms, n)
		}
	}

	var result MatchResult
	for _, ing := range ingredients {
		norm := ing.normalized()
		if norm != "" && matchesAny(norm, providedNorms) {
			result.Used = append(result.Used, ing)
		} else {
			result.Missing = append(result.Missing, ing)
		}
	}
	return result
}

func matchesAny(recipeNorm string, providedNorms []string) bool {
	for _, p := range providedNorms {
		if overlaps(p, recipeNorm) {
			return true
		}
	}
	return false
}

// overlaps applies the fuzzy comparison between one provided ingredient and
// one recipe ingredient, both already normalized.
func overlaps(provided, recipe string) bool {
	if strings.Contains(recipe, provided) || strings.Contains(provided, recipe) {
		return true
	}
	for _, w := range strings.Fields(provided) {
		if len(w) > 2 && strings.Contains(recipe, w) {
			return true
		}
	}
	for _, w := range strings.Fields(recipe) {
		if len(w) > 2 && strings.Contains(provided, w) {
			return true
		}
	}
	return false
}
