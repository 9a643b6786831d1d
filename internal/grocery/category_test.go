package grocery_test

import (
	"testing"

	"github.com/pageza/recipeprep/backend/internal/grocery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCategories(t *testing.T) {
	cats := grocery.DefaultCategories()
	require.Len(t, cats, 8)

	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.Name
		assert.Equal(t, i, c.SortOrder)
		assert.NotEmpty(t, c.ID)
		assert.Equal(t, grocery.DefaultCategoryID(c.Name), c.ID)
	}
	assert.Equal(t, []string{
		"Produce", "Meat & Seafood", "Dairy & Eggs", "Bakery",
		"Pantry", "Frozen", "Beverages", "Other",
	}, names)

	// Fresh copy each call.
	cats[0].SortOrder = 99
	assert.Equal(t, 0, grocery.DefaultCategories()[0].SortOrder)
}

func TestCategoryName(t *testing.T) {
	tests := map[string]string{
		"Unsalted Butter":         grocery.CategoryDairy,
		"chicken broth":           grocery.CategoryPantry,
		"Chicken Breast":          grocery.CategoryMeat,
		"eggplant":                grocery.CategoryProduce,
		"large eggs":              grocery.CategoryDairy,
		"peanut butter":           grocery.CategoryPantry,
		"green onions":            grocery.CategoryProduce,
		"frozen peas":             grocery.CategoryFrozen,
		"Salt":                    grocery.CategoryPantry,
		"salt and pepper":         grocery.CategoryPantry,
		"black pepper":            grocery.CategoryPantry,
		"red bell pepper":         grocery.CategoryProduce,
		"olive oil":               grocery.CategoryPantry,
		"tomatoes":                grocery.CategoryProduce,
		"heavy cream":             grocery.CategoryDairy,
		"all-purpose flour":       grocery.CategoryPantry,
		"sourdough bread":         grocery.CategoryBakery,
		"sparkling water":         grocery.CategoryBeverages,
		"xanthan gum":             grocery.CategoryOther,
		"":                        grocery.CategoryOther,
		"Salmon fillets, skinned": grocery.CategoryMeat,
		"chickpeas":               grocery.CategoryPantry,
		"butternut squash":        grocery.CategoryProduce,
		"grapeseed oil":           grocery.CategoryPantry,
		"hamburger buns":          grocery.CategoryBakery,
		"whole black peppercorns": grocery.CategoryPantry,
	}

	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, want, grocery.CategoryName(name))
		})
	}
}

func TestCategorize(t *testing.T) {
	cats := grocery.DefaultCategories()
	byName := map[string]string{}
	for _, c := range cats {
		byName[c.Name] = c.ID
	}

	assert.Equal(t, byName[grocery.CategoryProduce], grocery.Categorize("carrots", cats))
	assert.Equal(t, byName[grocery.CategoryOther], grocery.Categorize("mystery powder", cats))

	t.Run("missing category falls back to Other", func(t *testing.T) {
		noMeat := []grocery.Category{
			{ID: "p", Name: grocery.CategoryProduce},
			{ID: "o", Name: grocery.CategoryOther},
		}
		assert.Equal(t, "o", grocery.Categorize("beef", noMeat))
	})

	t.Run("no Other falls back to first", func(t *testing.T) {
		only := []grocery.Category{{ID: "x", Name: "Custom"}, {ID: "y", Name: "Second"}}
		assert.Equal(t, "x", grocery.Categorize("beef", only))
	})

	t.Run("empty list", func(t *testing.T) {
		assert.Equal(t, "", grocery.Categorize("beef", nil))
	})
}

func TestReorderCategories(t *testing.T) {
	cats := []grocery.Category{
		{ID: "a", Name: "A", SortOrder: 0},
		{ID: "b", Name: "B", SortOrder: 1},
		{ID: "c", Name: "C", SortOrder: 2},
		{ID: "d", Name: "D", SortOrder: 3},
	}

	got := grocery.ReorderCategories(cats, []string{"c", "a", "unknown", "c"})

	ids := make([]string, len(got))
	for i, c := range got {
		ids[i] = c.ID
		assert.Equal(t, i, c.SortOrder)
	}
	assert.Equal(t, []string{"c", "a", "b", "d"}, ids)
	assert.Equal(t, 0, cats[0].SortOrder, "input must not be modified")
}
