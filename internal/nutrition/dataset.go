package nutrition

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// CalorieDataset is the static per-100g calorie lookup table loaded from a
// CSV file with FoodItem, Cals_per100grams and KJ_per100grams columns.
type CalorieDataset struct {
	entries map[string]calorieEntry
}

type calorieEntry struct {
	Kcal int
	KJ   int
}

// ItemCalories is the lookup result for one requested item. Kcal and KJ are
// nil when the item is not in the dataset.
type ItemCalories struct {
	Item string `json:"item"`
	Kcal *int   `json:"kcal"`
	KJ   *int   `json:"kj"`
}

// CalorieTotal sums the known items of one lookup.
type CalorieTotal struct {
	Kcal int `json:"kcal"`
	KJ   int `json:"kj"`
}

// LoadCalorieDataset reads the dataset from a CSV file on disk.
func LoadCalorieDataset(path string) (*CalorieDataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open calorie dataset: %w", err)
	}
	defer f.Close()
	return ParseCalorieDataset(f)
}

// ParseCalorieDataset reads dataset rows from r. Values carry " cal" and
// " kJ" suffixes in the source data; rows whose values do not parse are kept
// with zero figures rather than dropped.
func ParseCalorieDataset(r io.Reader) (*CalorieDataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read calorie dataset header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"FoodItem", "Cals_per100grams", "KJ_per100grams"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("calorie dataset missing column %q", required)
		}
	}

	entries := make(map[string]calorieEntry)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read calorie dataset row: %w", err)
		}
		name := strings.ToLower(strings.TrimSpace(row[col["FoodItem"]]))
		if name == "" {
			continue
		}
		kcal, kcalErr := parseSuffixed(row[col["Cals_per100grams"]], " cal")
		kj, kjErr := parseSuffixed(row[col["KJ_per100grams"]], " kJ")
		if kcalErr != nil || kjErr != nil {
			entries[name] = calorieEntry{}
			continue
		}
		entries[name] = calorieEntry{Kcal: kcal, KJ: kj}
	}
	return &CalorieDataset{entries: entries}, nil
}

func parseSuffixed(value, suffix string) (int, error) {
	v := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), suffix))
	return strconv.Atoi(v)
}

// Len returns the number of dataset entries.
func (d *CalorieDataset) Len() int {
	return len(d.entries)
}

// Lookup resolves each requested item case-insensitively and returns the
// per-item breakdown in request order plus totals over the known items.
// Unknown items appear in the breakdown with nil figures and do not
// contribute to the totals.
func (d *CalorieDataset) Lookup(items []string) (CalorieTotal, []ItemCalories) {
	var total CalorieTotal
	breakdown := make([]ItemCalories, 0, len(items))
	for _, item := range items {
		entry, ok := d.entries[strings.ToLower(strings.TrimSpace(item))]
		if !ok {
			breakdown = append(breakdown, ItemCalories{Item: item})
			continue
		}
		kcal, kj := entry.Kcal, entry.KJ
		breakdown = append(breakdown, ItemCalories{Item: item, Kcal: &kcal, KJ: &kj})
		total.Kcal += kcal
		total.KJ += kj
	}
	return total, breakdown
}
