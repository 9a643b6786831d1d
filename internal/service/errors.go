package service

import "errors"

var (
	ErrUserExists            = errors.New("user already exists")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrInvalidToken          = errors.New("invalid token")
	ErrRecipeNotFound        = errors.New("recipe not found")
	ErrMealPlanEntryNotFound = errors.New("meal plan entry not found")
	ErrGroceryListNotFound   = errors.New("grocery list not found")
	ErrGroceryItemNotFound   = errors.New("grocery list item not found")
	ErrUnknownCategory       = errors.New("category does not belong to this list")
	ErrInvalidServings       = errors.New("servings must be greater than zero")
	ErrInvalidMealType       = errors.New("meal type must be breakfast, lunch, dinner or snack")
	ErrInvalidDate           = errors.New("dates must be formatted YYYY-MM-DD")
	ErrInvalidDateRange      = errors.New("end date is before start date")
	ErrNoIngredients         = errors.New("recipe has no ingredients")
)
