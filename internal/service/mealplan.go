package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/recipeprep/backend/internal/models"
	"github.com/pageza/recipeprep/backend/internal/types"
)

// MealPlanService manages the recipes a user plans to cook
type MealPlanService struct {
	db *gorm.DB
}

func NewMealPlanService(db *gorm.DB) *MealPlanService {
	return &MealPlanService{db: db}
}

// AddEntry plans a recipe. The recipe must exist and servings must be
// positive; meal type defaults to dinner.
func (s *MealPlanService) AddEntry(ctx context.Context, userID uuid.UUID, req *types.CreateMealPlanEntryRequest) (*models.MealPlanEntry, error) {
	recipeID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		return nil, ErrRecipeNotFound
	}
	date, err := types.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}
	mealType, err := parseMealType(req.MealType)
	if err != nil {
		return nil, err
	}
	if req.Servings <= 0 {
		return nil, ErrInvalidServings
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Recipe{}).Where("id = ?", recipeID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check recipe: %w", err)
	}
	if count == 0 {
		return nil, ErrRecipeNotFound
	}

	entry := &models.MealPlanEntry{
		ID:       uuid.New(),
		UserID:   userID,
		RecipeID: recipeID,
		Date:     date,
		MealType: mealType,
		Servings: req.Servings,
	}
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, fmt.Errorf("failed to create meal plan entry: %w", err)
	}
	return entry, nil
}

// UpdateEntry changes servings, date or meal type of an entry
func (s *MealPlanService) UpdateEntry(ctx context.Context, userID, id uuid.UUID, req *types.UpdateMealPlanEntryRequest) (*models.MealPlanEntry, error) {
	entry, err := s.entry(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Date != "" {
		date, err := types.ParseDate(req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
		}
		entry.Date = date
	}
	if req.MealType != "" {
		mealType, err := parseMealType(req.MealType)
		if err != nil {
			return nil, err
		}
		entry.MealType = mealType
	}
	if req.Servings != 0 {
		if req.Servings < 0 {
			return nil, ErrInvalidServings
		}
		entry.Servings = req.Servings
	}

	if err := s.db.WithContext(ctx).Save(entry).Error; err != nil {
		return nil, fmt.Errorf("failed to update meal plan entry: %w", err)
	}
	return entry, nil
}

// DeleteEntry removes an entry from the plan
func (s *MealPlanService) DeleteEntry(ctx context.Context, userID, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&models.MealPlanEntry{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete meal plan entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrMealPlanEntryNotFound
	}
	return nil
}

// ListEntries returns a user's entries with from <= date <= to, ordered by
// date then creation time.
func (s *MealPlanService) ListEntries(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.MealPlanEntry, error) {
	if to.Before(from) {
		return nil, ErrInvalidDateRange
	}
	var entries []models.MealPlanEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC").
		Order("created_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list meal plan entries: %w", err)
	}
	return entries, nil
}

func (s *MealPlanService) entry(ctx context.Context, userID, id uuid.UUID) (*models.MealPlanEntry, error) {
	var entry models.MealPlanEntry
	if err := s.db.WithContext(ctx).First(&entry, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealPlanEntryNotFound
		}
		return nil, fmt.Errorf("failed to get meal plan entry: %w", err)
	}
	return &entry, nil
}

func parseMealType(s string) (models.MealType, error) {
	if s == "" {
		return models.MealDinner, nil
	}
	t := models.MealType(s)
	if !t.Valid() {
		return "", ErrInvalidMealType
	}
	return t, nil
}
