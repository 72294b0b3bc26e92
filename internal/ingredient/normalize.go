package ingredient

import "strings"

// unitWords is the closed set of quantity and measurement words stripped
// during normalization. Lookups are against already-lowercased tokens.
var unitWords = map[string]struct{}{
	"cup": {}, "cups": {},
	"tbsp": {}, "tablespoon": {}, "tablespoons": {},
	"tsp": {}, "teaspoon": {}, "teaspoons": {},
	"oz": {}, "ounce": {}, "ounces": {},
	"lb": {}, "lbs": {}, "pound": {}, "pounds": {},
	"g": {}, "gram": {}, "grams": {},
	"kg": {}, "kilogram": {}, "kilograms": {},
	"ml": {}, "l": {}, "liter": {}, "liters": {}, "litre": {}, "litres": {},
	"pinch": {}, "pinches": {}, "dash": {},
	"clove": {}, "cloves": {},
	"slice": {}, "slices": {},
	"can": {}, "cans": {},
	"piece": {}, "pieces": {},
	"stick": {}, "sticks": {},
	"bunch": {}, "bunches": {},
	"package": {}, "packages": {}, "pkg": {},
	"quart": {}, "quarts": {}, "pint": {}, "pints": {}, "gallon": {}, "gallons": {},
}

// Normalize canonicalizes a free-text ingredient phrase for comparison:
// lowercase, trim, drop numeric and unit/measurement tokens, strip
// surrounding punctuation from the rest, and rejoin the remainder with
// single spaces. It is a total function and idempotent, so normalizing an
// already-normalized phrase returns it unchanged.
func Normalize(raw string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(raw)))
	kept := make([]string, 0, len(fields))
	for _, tok := range fields {
		tok = strings.Trim(tok, ",.;:()")
		if tok == "" || isNumeric(tok) {
			continue
		}
		if _, unit := unitWords[tok]; unit {
			continue
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " ")
}

// isNumeric reports whether a token is purely a quantity, covering plain
// integers, decimals, fractions like "1/2" and ranges like "2-3".
func isNumeric(tok string) bool {
	hasDigit := false
	for _, r := range tok {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case r == '.' || r == '/' || r == '-' || r == ',':
		default:
			return false
		}
	}
	return hasDigit
}
