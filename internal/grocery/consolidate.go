package grocery

import (
	"github.com/google/uuid"
)

// Recipe is the slice of a stored recipe the consolidator reads.
type Recipe struct {
	ID          string       `json:"id"`
	Servings    float64      `json:"servings"`
	Ingredients []Ingredient `json:"ingredients"`
}

// MealEntry is a planned meal: a recipe cooked for a number of servings.
type MealEntry struct {
	RecipeID string  `json:"recipe_id"`
	Servings float64 `json:"servings"`
}

// Item is one merged line of a grocery list.
type Item struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Quantity        float64  `json:"quantity"`
	Unit            string   `json:"unit"`
	CategoryID      string   `json:"category_id"`
	Checked         bool     `json:"checked"`
	SourceRecipeIDs []string `json:"source_recipe_ids"`
}

// MergeKey identifies the list line an ingredient belongs to.
func MergeKey(name, unit string) string {
	return NormalizeIngredientName(name) + "-" + mergeUnitKey(unit)
}

// Consolidator merges ingredients into grocery list items. The zero value
// uses random UUIDs and no categories.
type Consolidator struct {
	Categories []Category
	NewID      func() string
}

// NewConsolidator returns a Consolidator that files items under categories.
func NewConsolidator(categories []Category) *Consolidator {
	return &Consolidator{Categories: categories}
}

// Consolidate merges every ingredient of every planned meal into one list,
// using the default category set.
func Consolidate(entries []MealEntry, recipes []Recipe) []Item {
	return NewConsolidator(DefaultCategories()).Consolidate(entries, recipes)
}

// Consolidate scales each planned recipe to its servings and merges the
// ingredients. Entries whose recipe is missing are skipped. Items come back
// in the order their keys were first seen.
func (c *Consolidator) Consolidate(entries []MealEntry, recipes []Recipe) []Item {
	byID := make(map[string]*Recipe, len(recipes))
	for i := range recipes {
		if _, dup := byID[recipes[i].ID]; !dup {
			byID[recipes[i].ID] = &recipes[i]
		}
	}

	acc := c.newAccumulator(nil)
	for _, entry := range entries {
		recipe, ok := byID[entry.RecipeID]
		if !ok {
			continue
		}
		multiplier := servingMultiplier(entry.Servings, recipe.Servings)
		for _, ing := range recipe.Ingredients {
			acc.add(ing, ParseQuantity(ing.Quantity)*multiplier, recipe.ID)
		}
	}
	return acc.result()
}

// Append merges extra ingredients into an existing list using the same
// rules as Consolidate. existing is not modified.
func (c *Consolidator) Append(existing []Item, sourceID string, ingredients ...Ingredient) []Item {
	acc := c.newAccumulator(existing)
	for _, ing := range ingredients {
		acc.add(ing, ParseQuantity(ing.Quantity), sourceID)
	}
	return acc.result()
}

func servingMultiplier(requested, base float64) float64 {
	if base <= 0 {
		return 1
	}
	return requested / base
}

func (c *Consolidator) id() string {
	if c.NewID != nil {
		return c.NewID()
	}
	return uuid.New().String()
}

type accumulator struct {
	c     *Consolidator
	items []*Item
	byKey map[string]*Item
}

func (c *Consolidator) newAccumulator(seed []Item) *accumulator {
	acc := &accumulator{
		c:     c,
		items: make([]*Item, 0, len(seed)),
		byKey: make(map[string]*Item, len(seed)),
	}
	for _, it := range seed {
		cp := it
		cp.SourceRecipeIDs = append([]string(nil), it.SourceRecipeIDs...)
		key := MergeKey(cp.Name, cp.Unit)
		if existing, ok := acc.byKey[key]; ok {
			acc.merge(existing, cp.Quantity, cp.Unit, cp.SourceRecipeIDs...)
			continue
		}
		acc.byKey[key] = &cp
		acc.items = append(acc.items, &cp)
	}
	return acc
}

func (a *accumulator) add(ing Ingredient, quantity float64, sourceID string) {
	if quantity < 0 {
		quantity = 0
	}
	key := MergeKey(ing.Name, ing.Unit)
	if existing, ok := a.byKey[key]; ok {
		a.merge(existing, quantity, ing.Unit, sourceID)
		return
	}

	item := &Item{
		ID:         a.c.id(),
		Name:       ing.Name,
		Quantity:   quantity,
		Unit:       ing.Unit,
		CategoryID: Categorize(ing.Name, a.c.Categories),
	}
	if sourceID != "" {
		item.SourceRecipeIDs = []string{sourceID}
	}
	a.byKey[key] = item
	a.items = append(a.items, item)
}

// merge folds quantity of unit into item. Convertible units are summed in
// the base unit and re-expressed in the best display unit. Otherwise the raw
// numbers are added and the first-seen unit is kept, which is only
// meaningful when the units match.
func (a *accumulator) merge(item *Item, quantity float64, unit string, sourceIDs ...string) {
	if CanConvertUnits(item.Unit, unit) {
		info, _ := LookupUnit(item.Unit)
		have, _ := ConvertToBaseUnit(item.Quantity, item.Unit)
		adding, _ := ConvertToBaseUnit(quantity, unit)
		m := BestDisplayUnit(have+adding, info.Dimension)
		item.Quantity = m.Quantity
		if m.Unit != "" {
			item.Unit = m.Unit
		}
	} else {
		item.Quantity += quantity
	}

	for _, id := range sourceIDs {
		if id != "" && !containsString(item.SourceRecipeIDs, id) {
			item.SourceRecipeIDs = append(item.SourceRecipeIDs, id)
		}
	}
}

func (a *accumulator) result() []Item {
	out := make([]Item, len(a.items))
	for i, it := range a.items {
		out[i] = *it
		if out[i].SourceRecipeIDs == nil {
			out[i].SourceRecipeIDs = []string{}
		}
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
