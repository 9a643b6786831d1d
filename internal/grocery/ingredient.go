package grocery

import (
	"html"
	"regexp"
	"strings"
)

// Ingredient is one structured ingredient line. Quantity keeps the raw text
// so the original fraction form survives storage.
type Ingredient struct {
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
	Name     string `json:"name"`
}

var (
	quantityPrefixRe = regexp.MustCompile(`^[0-9¼½¾⅓⅔⅕⅖⅗⅘⅙⅚⅛⅜⅝⅞/.\-\s,]+\s*`)
	unitTokenRe      = regexp.MustCompile(`(?i)^(cups?|tbsp|tablespoons?|tsp|teaspoons?|oz|ounces?|lbs?|pounds?|g|grams?|kg|kilograms?|ml|milliliters?|l|liters?|pinch|dash|pieces?|cloves?|slices?|cans?)\s`)
	nonKeyCharRe     = regexp.MustCompile(`[^a-z0-9\s]`)
)

var canonicalUnits = map[string]string{
	"cup":         "cup",
	"cups":        "cup",
	"tbsp":        "tbsp",
	"tablespoon":  "tbsp",
	"tablespoons": "tbsp",
	"tsp":         "tsp",
	"teaspoon":    "tsp",
	"teaspoons":   "tsp",
	"oz":          "oz",
	"ounce":       "oz",
	"ounces":      "oz",
	"lb":          "lb",
	"lbs":         "lb",
	"pound":       "lb",
	"pounds":      "lb",
	"g":           "g",
	"gram":        "g",
	"grams":       "g",
	"kg":          "kg",
	"kilogram":    "kg",
	"kilograms":   "kg",
	"ml":          "ml",
	"milliliter":  "ml",
	"milliliters": "ml",
	"l":           "l",
	"liter":       "l",
	"liters":      "l",
}

// ParseIngredientLine splits a raw ingredient line into quantity text, a
// canonical unit, and a name. HTML entities are decoded first. A line with a
// quantity but no recognised unit gets unit "piece"; a line with neither is
// all name.
func ParseIngredientLine(raw string) Ingredient {
	cleaned := cleanLine(raw)
	rest := cleaned

	var quantity string
	if m := quantityPrefixRe.FindString(rest); m != "" {
		quantity = strings.TrimSpace(m)
		rest = rest[len(m):]
	}

	var unit string
	if m := unitTokenRe.FindStringSubmatch(rest); m != nil {
		word := strings.ToLower(m[1])
		if canon, ok := canonicalUnits[word]; ok {
			unit = canon
		} else {
			unit = word
		}
		rest = rest[len(m[0]):]
	} else if quantity != "" {
		unit = "piece"
	}

	name := strings.TrimSpace(rest)
	if name == "" {
		name = cleaned
	}

	return Ingredient{Quantity: quantity, Unit: unit, Name: name}
}

// ParseIngredientLines parses every non-blank line.
func ParseIngredientLines(lines []string) []Ingredient {
	out := make([]Ingredient, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, ParseIngredientLine(line))
	}
	return out
}

// NormalizeIngredientName produces the merge key form of a name: lowercase,
// single-spaced, and limited to [a-z0-9 ].
func NormalizeIngredientName(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.Join(strings.Fields(key), " ")
	key = nonKeyCharRe.ReplaceAllString(key, "")
	return strings.Join(strings.Fields(key), " ")
}

func cleanLine(raw string) string {
	s := html.UnescapeString(raw)
	return strings.Join(strings.Fields(s), " ")
}
