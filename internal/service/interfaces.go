package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pageza/recipeprep/backend/internal/models"
	"github.com/pageza/recipeprep/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	CreateRecipe(ctx context.Context, userID uuid.UUID, req *types.CreateRecipeRequest) (*models.Recipe, error)
	ImportRecipe(ctx context.Context, userID uuid.UUID, req *types.ImportRecipeRequest) (*models.Recipe, error)
	GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error)
	UpdateRecipe(ctx context.Context, userID, id uuid.UUID, req *types.UpdateRecipeRequest) (*models.Recipe, error)
	DeleteRecipe(ctx context.Context, userID, id uuid.UUID) error
	ListRecipes(ctx context.Context, userID uuid.UUID, search string) ([]models.Recipe, error)
	SimilarRecipes(ctx context.Context, id uuid.UUID, limit int) ([]models.Recipe, error)
}

// IMealPlanService defines the interface for meal plan operations
type IMealPlanService interface {
	AddEntry(ctx context.Context, userID uuid.UUID, req *types.CreateMealPlanEntryRequest) (*models.MealPlanEntry, error)
	UpdateEntry(ctx context.Context, userID, id uuid.UUID, req *types.UpdateMealPlanEntryRequest) (*models.MealPlanEntry, error)
	DeleteEntry(ctx context.Context, userID, id uuid.UUID) error
	ListEntries(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.MealPlanEntry, error)
}

// IGroceryService defines the interface for grocery list operations
type IGroceryService interface {
	Generate(ctx context.Context, userID uuid.UUID, name string, from, to time.Time) (*models.GroceryList, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*models.GroceryList, error)
	List(ctx context.Context, userID uuid.UUID) ([]models.GroceryList, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	SetChecked(ctx context.Context, userID, listID, itemID uuid.UUID, checked bool) (*models.GroceryListItem, error)
	UpdateItemCategory(ctx context.Context, userID, listID, itemID uuid.UUID, categoryID string) (*models.GroceryListItem, error)
	ReorderCategories(ctx context.Context, userID, listID uuid.UUID, categoryIDs []string) (*models.GroceryList, error)
	AddManualItem(ctx context.Context, userID, listID uuid.UUID, line string) (*models.GroceryList, error)
	ClearChecked(ctx context.Context, userID, listID uuid.UUID) (int64, error)
}

// IExportService defines the interface for grocery list exports
type IExportService interface {
	Export(ctx context.Context, list *models.GroceryList, upload bool) (*Export, error)
}

var (
	_ IAuthService     = (*AuthService)(nil)
	_ IRecipeService   = (*RecipeService)(nil)
	_ IMealPlanService = (*MealPlanService)(nil)
	_ IGroceryService  = (*GroceryService)(nil)
	_ IExportService   = (*ExportService)(nil)
)
