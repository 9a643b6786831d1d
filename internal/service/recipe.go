package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pageza/recipeprep/backend/internal/grocery"
	"github.com/pageza/recipeprep/backend/internal/models"
	"github.com/pageza/recipeprep/backend/internal/types"
)

const (
	defaultSimilarLimit = 5
	maxSimilarLimit     = 50
)

// RecipeService handles recipe operations
type RecipeService struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB, logger *zap.Logger) *RecipeService {
	return &RecipeService{
		db:     db,
		logger: logger,
	}
}

// CreateRecipe stores a recipe for userID. Raw lines are parsed when no
// structured ingredients are given.
func (s *RecipeService) CreateRecipe(ctx context.Context, userID uuid.UUID, req *types.CreateRecipeRequest) (*models.Recipe, error) {
	if req.Servings <= 0 {
		return nil, ErrInvalidServings
	}

	ingredients := req.Ingredients
	if len(ingredients) == 0 {
		ingredients = grocery.ParseIngredientLines(req.RawIngredients)
	}

	recipe := &models.Recipe{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           req.Name,
		Description:    req.Description,
		SourceURL:      req.SourceURL,
		Servings:       req.Servings,
		Ingredients:    models.IngredientList(ingredients),
		RawIngredients: models.JSONBStringArray(req.RawIngredients),
		Instructions:   models.JSONBStringArray(req.Instructions),
	}
	return s.save(ctx, recipe)
}

// ImportRecipe stores a scraped recipe. Ingredient lines are stripped of
// markup and parsed; servings default to 1 when missing.
func (s *RecipeService) ImportRecipe(ctx context.Context, userID uuid.UUID, req *types.ImportRecipeRequest) (*models.Recipe, error) {
	raw := make([]string, 0, len(req.Ingredients))
	for _, line := range req.Ingredients {
		if text := StripMarkup(line); strings.TrimSpace(text) != "" {
			raw = append(raw, text)
		}
	}
	if len(raw) == 0 {
		return nil, ErrNoIngredients
	}

	instructions := make([]string, 0, len(req.Instructions))
	for _, step := range req.Instructions {
		if text := StripMarkup(step); strings.TrimSpace(text) != "" {
			instructions = append(instructions, text)
		}
	}

	servings := req.Servings
	if servings <= 0 {
		servings = 1
	}

	recipe := &models.Recipe{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           StripMarkup(req.Name),
		Description:    StripMarkup(req.Description),
		SourceURL:      req.SourceURL,
		Servings:       servings,
		Ingredients:    models.IngredientList(grocery.ParseIngredientLines(raw)),
		RawIngredients: models.JSONBStringArray(raw),
		Instructions:   models.JSONBStringArray(instructions),
	}

	saved, err := s.save(ctx, recipe)
	if err != nil {
		return nil, err
	}
	s.logger.Info("recipe imported",
		zap.String("recipe_id", saved.ID.String()),
		zap.String("source_url", saved.SourceURL),
		zap.Int("ingredients", len(saved.Ingredients)),
	)
	return saved, nil
}

func (s *RecipeService) save(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	recipe.CategoryProfile = CategoryProfile(recipe.Ingredients)
	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}
	return recipe, nil
}

// GetRecipe retrieves a recipe by ID
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return &recipe, nil
}

// UpdateRecipe applies req to a recipe owned by userID
func (s *RecipeService) UpdateRecipe(ctx context.Context, userID, id uuid.UUID, req *types.UpdateRecipeRequest) (*models.Recipe, error) {
	recipe, err := s.ownedRecipe(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		recipe.Name = *req.Name
	}
	if req.Description != nil {
		recipe.Description = *req.Description
	}
	if req.Servings != nil {
		if *req.Servings <= 0 {
			return nil, ErrInvalidServings
		}
		recipe.Servings = *req.Servings
	}
	switch {
	case req.Ingredients != nil:
		recipe.Ingredients = models.IngredientList(req.Ingredients)
		if req.RawIngredients != nil {
			recipe.RawIngredients = models.JSONBStringArray(req.RawIngredients)
		}
	case req.RawIngredients != nil:
		recipe.RawIngredients = models.JSONBStringArray(req.RawIngredients)
		recipe.Ingredients = models.IngredientList(grocery.ParseIngredientLines(req.RawIngredients))
	}
	if req.Instructions != nil {
		recipe.Instructions = models.JSONBStringArray(req.Instructions)
	}
	recipe.CategoryProfile = CategoryProfile(recipe.Ingredients)

	if err := s.db.WithContext(ctx).Save(recipe).Error; err != nil {
		return nil, fmt.Errorf("failed to update recipe: %w", err)
	}
	return recipe, nil
}

// DeleteRecipe soft-deletes a recipe owned by userID. Meal plan entries that
// point at it are skipped by list generation from then on.
func (s *RecipeService) DeleteRecipe(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.ownedRecipe(ctx, userID, id); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(&models.Recipe{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	return nil
}

// ListRecipes lists a user's recipes, optionally filtered by a name search
func (s *RecipeService) ListRecipes(ctx context.Context, userID uuid.UUID, search string) ([]models.Recipe, error) {
	query := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if search = strings.TrimSpace(search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var recipes []models.Recipe
	if err := query.Order("created_at DESC").Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recipes, nil
}

// SimilarRecipes returns up to limit recipes whose category profile is
// closest to the given recipe's.
func (s *RecipeService) SimilarRecipes(ctx context.Context, id uuid.UUID, limit int) ([]models.Recipe, error) {
	if limit <= 0 {
		limit = defaultSimilarLimit
	}
	if limit > maxSimilarLimit {
		limit = maxSimilarLimit
	}

	recipe, err := s.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	var recipes []models.Recipe
	if s.db.Dialector.Name() == "postgres" {
		err := s.db.WithContext(ctx).
			Where("id <> ?", id).
			Clauses(clause.OrderBy{
				Expression: clause.Expr{SQL: "category_profile <-> ?", Vars: []interface{}{recipe.CategoryProfile}},
			}).
			Limit(limit).
			Find(&recipes).Error
		if err != nil {
			return nil, fmt.Errorf("failed to find similar recipes: %w", err)
		}
		return recipes, nil
	}

	// Other dialects have no vector operator; rank in memory.
	if err := s.db.WithContext(ctx).Where("id <> ?", id).Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to find similar recipes: %w", err)
	}
	sort.SliceStable(recipes, func(i, j int) bool {
		return profileDistance(recipe.CategoryProfile, recipes[i].CategoryProfile) <
			profileDistance(recipe.CategoryProfile, recipes[j].CategoryProfile)
	})
	if len(recipes) > limit {
		recipes = recipes[:limit]
	}
	return recipes, nil
}

// RecipesByIDs loads every live recipe among ids. Missing or deleted ids are
// simply absent from the result.
func (s *RecipeService) RecipesByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Recipe, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to load recipes: %w", err)
	}
	return recipes, nil
}

func (s *RecipeService) ownedRecipe(ctx context.Context, userID, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).First(&recipe, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return &recipe, nil
}
