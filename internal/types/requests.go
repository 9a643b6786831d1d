package types

import (
	"time"

	"github.com/pageza/recipeprep/backend/internal/grocery"
)

// RegisterRequest represents the request body for creating an account
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateRecipeRequest represents the request body for creating a recipe.
// Ingredients may be given structured, as raw lines, or both; raw lines are
// parsed when no structured ingredients are supplied.
type CreateRecipeRequest struct {
	Name           string               `json:"name" binding:"required"`
	Description    string               `json:"description"`
	SourceURL      string               `json:"source_url"`
	Servings       int                  `json:"servings" binding:"required,min=1"`
	Ingredients    []grocery.Ingredient `json:"ingredients"`
	RawIngredients []string             `json:"raw_ingredients"`
	Instructions   []string             `json:"instructions"`
}

// UpdateRecipeRequest represents the request body for updating a recipe.
// Nil fields are left unchanged.
type UpdateRecipeRequest struct {
	Name           *string              `json:"name"`
	Description    *string              `json:"description"`
	Servings       *int                 `json:"servings" binding:"omitempty,min=1"`
	Ingredients    []grocery.Ingredient `json:"ingredients"`
	RawIngredients []string             `json:"raw_ingredients"`
	Instructions   []string             `json:"instructions"`
}

// ImportRecipeRequest carries scraped recipe data. Lines may contain HTML
// markup and entities.
type ImportRecipeRequest struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description"`
	SourceURL    string   `json:"source_url"`
	Servings     int      `json:"servings"`
	Ingredients  []string `json:"ingredients" binding:"required,min=1"`
	Instructions []string `json:"instructions"`
}

// ParseIngredientsRequest is the body of the ingredient parsing endpoint
type ParseIngredientsRequest struct {
	Lines []string `json:"lines" binding:"required"`
}

// ParsedIngredient is a parsed line with its numeric quantity and display
type ParsedIngredient struct {
	grocery.Ingredient
	Raw      string  `json:"raw"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Display  string  `json:"display"`
}

// CreateMealPlanEntryRequest adds a recipe to the meal plan
type CreateMealPlanEntryRequest struct {
	RecipeID string  `json:"recipe_id" binding:"required,uuid"`
	Date     string  `json:"date" binding:"required"`
	MealType string  `json:"meal_type"`
	Servings float64 `json:"servings" binding:"required"`
}

// UpdateMealPlanEntryRequest changes the servings, date or meal type of an
// entry. Zero values are left unchanged.
type UpdateMealPlanEntryRequest struct {
	Date     string  `json:"date"`
	MealType string  `json:"meal_type"`
	Servings float64 `json:"servings"`
}

// GenerateGroceryListRequest asks for a list covering a date range
type GenerateGroceryListRequest struct {
	Name      string `json:"name"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

// UpdateGroceryItemRequest toggles or recategorizes one item
type UpdateGroceryItemRequest struct {
	Checked    *bool   `json:"checked"`
	CategoryID *string `json:"category_id"`
}

// AddGroceryItemRequest adds a free-text line to a list
type AddGroceryItemRequest struct {
	Line string `json:"line" binding:"required"`
}

// ReorderCategoriesRequest gives the new category order
type ReorderCategoriesRequest struct {
	CategoryIDs []string `json:"category_ids" binding:"required,min=1"`
}

// DateLayout is the wire format of plan and list dates
const DateLayout = "2006-01-02"

// ParseDate parses a DateLayout date in UTC
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}
