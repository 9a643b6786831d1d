package grocery_test

import (
	"testing"

	"github.com/pageza/recipeprep/backend/internal/grocery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanConvertUnits(t *testing.T) {
	assert.True(t, grocery.CanConvertUnits("cup", "tbsp"))
	assert.True(t, grocery.CanConvertUnits("Cups", " TSP "))
	assert.True(t, grocery.CanConvertUnits("lb", "g"))
	assert.True(t, grocery.CanConvertUnits("piece", "cloves"))
	assert.False(t, grocery.CanConvertUnits("cup", "piece"))
	assert.False(t, grocery.CanConvertUnits("cup", "oz"))
	assert.False(t, grocery.CanConvertUnits("banana", "cup"))
	assert.False(t, grocery.CanConvertUnits("", ""))
}

func TestLookupUnit(t *testing.T) {
	info, ok := grocery.LookupUnit("Tablespoons")
	require.True(t, ok)
	assert.Equal(t, grocery.Volume, info.Dimension)
	assert.Equal(t, 15.0, info.ToBase)

	info, ok = grocery.LookupUnit("pinch")
	require.True(t, ok)
	assert.Equal(t, grocery.Other, info.Dimension)

	_, ok = grocery.LookupUnit("sprig")
	assert.False(t, ok)
}

func TestConvertUnit(t *testing.T) {
	got, ok := grocery.ConvertUnit(1, "cup", "tbsp")
	require.True(t, ok)
	assert.InDelta(t, 16, got, 1e-9)

	got, ok = grocery.ConvertUnit(1, "kg", "g")
	require.True(t, ok)
	assert.InDelta(t, 1000, got, 1e-9)

	_, ok = grocery.ConvertUnit(1, "cup", "g")
	assert.False(t, ok)

	_, ok = grocery.ConvertUnit(1, "handful", "cup")
	assert.False(t, ok)
}

func TestConvertUnitRoundTrip(t *testing.T) {
	groups := [][]string{
		{"ml", "l", "tsp", "tbsp", "fl oz", "cup", "pint", "quart", "gallon"},
		{"mg", "g", "kg", "oz", "lb"},
		{"piece", "whole", "clove", "can"},
	}
	quantities := []float64{0, 0.125, 1, 2.5, 17, 1234.5}

	for _, units := range groups {
		for _, a := range units {
			for _, b := range units {
				for _, q := range quantities {
					there, ok := grocery.ConvertUnit(q, a, b)
					require.True(t, ok, "%s -> %s", a, b)
					back, ok := grocery.ConvertUnit(there, b, a)
					require.True(t, ok, "%s -> %s", b, a)
					assert.InDelta(t, q, back, 1e-9*(1+q), "%v %s via %s", q, a, b)
				}
			}
		}
	}
}

func TestBestDisplayUnit(t *testing.T) {
	tests := []struct {
		name string
		base float64
		dim  grocery.Dimension
		want grocery.Measure
	}{
		{"gallon", 3840, grocery.Volume, grocery.Measure{Quantity: 1, Unit: "gallon"}},
		{"quart", 1920, grocery.Volume, grocery.Measure{Quantity: 2, Unit: "quart"}},
		{"cup at threshold", 240, grocery.Volume, grocery.Measure{Quantity: 1, Unit: "cup"}},
		{"below cup", 239, grocery.Volume, grocery.Measure{Quantity: 239.0 / 15, Unit: "tbsp"}},
		{"tsp", 10, grocery.Volume, grocery.Measure{Quantity: 2, Unit: "tsp"}},
		{"zero volume", 0, grocery.Volume, grocery.Measure{Quantity: 0, Unit: "tsp"}},
		{"kg", 1500, grocery.Weight, grocery.Measure{Quantity: 1.5, Unit: "kg"}},
		{"lb", 907.18, grocery.Weight, grocery.Measure{Quantity: 2, Unit: "lb"}},
		{"oz", 56.7, grocery.Weight, grocery.Measure{Quantity: 2, Unit: "oz"}},
		{"grams", 12, grocery.Weight, grocery.Measure{Quantity: 12, Unit: "g"}},
		{"count has no ladder", 7, grocery.Count, grocery.Measure{Quantity: 7}},
		{"other has no ladder", 3, grocery.Other, grocery.Measure{Quantity: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := grocery.BestDisplayUnit(tt.base, tt.dim)
			assert.Equal(t, tt.want.Unit, got.Unit)
			assert.InDelta(t, tt.want.Quantity, got.Quantity, 1e-9)
		})
	}
}

func TestDimensionString(t *testing.T) {
	assert.Equal(t, "volume", grocery.Volume.String())
	assert.Equal(t, "weight", grocery.Weight.String())
	assert.Equal(t, "count", grocery.Count.String())
	assert.Equal(t, "other", grocery.Other.String())
}
