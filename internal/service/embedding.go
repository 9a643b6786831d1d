package service

import (
	"math"

	pgvector "github.com/pgvector/pgvector-go"

	"github.com/pageza/recipeprep/backend/internal/grocery"
	"github.com/pageza/recipeprep/backend/internal/models"
)

var profileCategories = []string{
	grocery.CategoryProduce,
	grocery.CategoryMeat,
	grocery.CategoryDairy,
	grocery.CategoryBakery,
	grocery.CategoryPantry,
	grocery.CategoryFrozen,
	grocery.CategoryBeverages,
	grocery.CategoryOther,
}

// CategoryProfile returns the share of a recipe's ingredients that falls in
// each shopping category, as a unit-length vector. Recipes with similar
// shopping footprints end up close together.
func CategoryProfile(ingredients []grocery.Ingredient) pgvector.Vector {
	counts := make([]float32, models.ProfileDimensions)
	for _, ing := range ingredients {
		name := grocery.CategoryName(ing.Name)
		for i, c := range profileCategories {
			if c == name {
				counts[i]++
				break
			}
		}
	}

	var norm float64
	for _, c := range counts {
		norm += float64(c) * float64(c)
	}
	if norm > 0 {
		n := float32(math.Sqrt(norm))
		for i := range counts {
			counts[i] /= n
		}
	}
	return pgvector.NewVector(counts)
}

func profileDistance(a, b pgvector.Vector) float64 {
	av, bv := a.Slice(), b.Slice()
	if len(av) != len(bv) {
		return math.Inf(1)
	}
	var sum float64
	for i := range av {
		d := float64(av[i] - bv[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}
