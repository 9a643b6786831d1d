package grocery_test

import (
	"math"
	"testing"

	"github.com/pageza/recipeprep/backend/internal/grocery"
	"github.com/stretchr/testify/assert"
)

func TestFormatQuantity(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{3, "3"},
		{12, "12"},
		{0.5, "1/2"},
		{2.5, "2 1/2"},
		{0.125, "1/8"},
		{0.25, "1/4"},
		{1.0 / 3, "1/3"},
		{0.375, "3/8"},
		{0.625, "5/8"},
		{2.0 / 3, "2/3"},
		{1.75, "1 3/4"},
		{0.875, "7/8"},
		{0.2, "1/5"},
		{2.1, "2 1/10"},
		{0.45, "9/20"},
		{1.999, "2"},
		{0.001, "0"},
		{0.01, "0.01"},
		{-1.5, "-1 1/2"},
		{-0.25, "-1/4"},
		{-4, "-4"},
		{math.NaN(), "0"},
		{math.Inf(1), "0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, grocery.FormatQuantity(tt.in), "FormatQuantity(%v)", tt.in)
	}
}

func TestDecimalToFraction(t *testing.T) {
	assert.Equal(t, "1/2", grocery.DecimalToFraction(0.5))
	assert.Equal(t, "3", grocery.DecimalToFraction(3))
	assert.Equal(t, "1 2/3", grocery.DecimalToFraction(1.67))
}

func TestFormatMeasure(t *testing.T) {
	assert.Equal(t, "2 1/2 cup", grocery.FormatMeasure(2.5, "cup"))
	assert.Equal(t, "3", grocery.FormatMeasure(3, ""))
	assert.Equal(t, "pinch", grocery.FormatMeasure(0, "pinch"))
	assert.Equal(t, "", grocery.FormatMeasure(0, ""))
}
