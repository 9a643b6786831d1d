package grocery_test

import (
	"testing"

	"github.com/pageza/recipeprep/backend/internal/grocery"
	"github.com/stretchr/testify/assert"
)

func TestParseIngredientLine(t *testing.T) {
	tests := []struct {
		raw  string
		want grocery.Ingredient
	}{
		{"2 cups flour", grocery.Ingredient{Quantity: "2", Unit: "cup", Name: "flour"}},
		{"3 eggs", grocery.Ingredient{Quantity: "3", Unit: "piece", Name: "eggs"}},
		{"salt to taste", grocery.Ingredient{Quantity: "", Unit: "", Name: "salt to taste"}},
		{"1 1/2 cups all-purpose flour", grocery.Ingredient{Quantity: "1 1/2", Unit: "cup", Name: "all-purpose flour"}},
		{"2 Tablespoons olive oil", grocery.Ingredient{Quantity: "2", Unit: "tbsp", Name: "olive oil"}},
		{"1 tsp vanilla extract", grocery.Ingredient{Quantity: "1", Unit: "tsp", Name: "vanilla extract"}},
		{"8 oz cream cheese", grocery.Ingredient{Quantity: "8", Unit: "oz", Name: "cream cheese"}},
		{"2 lbs chicken thighs", grocery.Ingredient{Quantity: "2", Unit: "lb", Name: "chicken thighs"}},
		{"500 g pasta", grocery.Ingredient{Quantity: "500", Unit: "g", Name: "pasta"}},
		{"1 l milk", grocery.Ingredient{Quantity: "1", Unit: "l", Name: "milk"}},
		{"3 cloves garlic", grocery.Ingredient{Quantity: "3", Unit: "cloves", Name: "garlic"}},
		{"1 pinch salt", grocery.Ingredient{Quantity: "1", Unit: "pinch", Name: "salt"}},
		{"2 large eggs", grocery.Ingredient{Quantity: "2", Unit: "piece", Name: "large eggs"}},
		{"½ cup sugar", grocery.Ingredient{Quantity: "½", Unit: "cup", Name: "sugar"}},
		{"&frac12; cup sugar", grocery.Ingredient{Quantity: "½", Unit: "cup", Name: "sugar"}},
		{"1  cup  brown   sugar ", grocery.Ingredient{Quantity: "1", Unit: "cup", Name: "brown sugar"}},
		{"Salt &amp; pepper", grocery.Ingredient{Quantity: "", Unit: "", Name: "Salt & pepper"}},
		{"2 cups", grocery.Ingredient{Quantity: "2", Unit: "piece", Name: "cups"}},
		{"2 ", grocery.Ingredient{Quantity: "2", Unit: "piece", Name: "2"}},
		{"", grocery.Ingredient{}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, grocery.ParseIngredientLine(tt.raw))
		})
	}
}

func TestParseIngredientLinesSkipsBlankLines(t *testing.T) {
	got := grocery.ParseIngredientLines([]string{"1 cup rice", "", "   ", "2 carrots"})

	assert.Equal(t, []grocery.Ingredient{
		{Quantity: "1", Unit: "cup", Name: "rice"},
		{Quantity: "2", Unit: "piece", Name: "carrots"},
	}, got)
}

func TestNormalizeIngredientName(t *testing.T) {
	assert.Equal(t, "allpurpose flour", grocery.NormalizeIngredientName("  All-Purpose   Flour "))
	assert.Equal(t, "jalapeo", grocery.NormalizeIngredientName("Jalapeño"))
	assert.Equal(t, "salt pepper", grocery.NormalizeIngredientName("Salt & Pepper"))
	assert.Equal(t, "", grocery.NormalizeIngredientName("!!!"))
}
