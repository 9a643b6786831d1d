package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/recipeprep/backend/internal/grocery"
	"github.com/pageza/recipeprep/backend/internal/models"
	"github.com/pageza/recipeprep/backend/internal/types"
)

// GroceryService generates grocery lists from the meal plan and edits them
type GroceryService struct {
	db       *gorm.DB
	recipes  *RecipeService
	mealPlan *MealPlanService
	cache    *GroceryCache
	logger   *zap.Logger
}

// NewGroceryService wires the service. cache may be nil.
func NewGroceryService(db *gorm.DB, recipes *RecipeService, mealPlan *MealPlanService, cache *GroceryCache, logger *zap.Logger) *GroceryService {
	return &GroceryService{
		db:       db,
		recipes:  recipes,
		mealPlan: mealPlan,
		cache:    cache,
		logger:   logger,
	}
}

// Generate consolidates every meal planned between from and to (inclusive)
// into a new stored list. Entries whose recipe has been deleted are skipped.
func (s *GroceryService) Generate(ctx context.Context, userID uuid.UUID, name string, from, to time.Time) (*models.GroceryList, error) {
	entries, err := s.mealPlan.ListEntries(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(entries))
	seen := make(map[uuid.UUID]bool, len(entries))
	mealEntries := make([]grocery.MealEntry, len(entries))
	for i, e := range entries {
		mealEntries[i] = grocery.MealEntry{RecipeID: e.RecipeID.String(), Servings: e.Servings}
		if !seen[e.RecipeID] {
			seen[e.RecipeID] = true
			ids = append(ids, e.RecipeID)
		}
	}

	stored, err := s.recipes.RecipesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	recipes := make([]grocery.Recipe, len(stored))
	for i := range stored {
		recipes[i] = stored[i].ToGrocery()
	}
	if skipped := len(ids) - len(stored); skipped > 0 {
		s.logger.Warn("meal plan references missing recipes",
			zap.String("user_id", userID.String()),
			zap.Int("missing", skipped),
		)
	}

	categories := grocery.DefaultCategories()
	items := grocery.NewConsolidator(categories).Consolidate(mealEntries, recipes)

	if strings.TrimSpace(name) == "" {
		name = fmt.Sprintf("Groceries %s to %s", from.Format(types.DateLayout), to.Format(types.DateLayout))
	}
	list := &models.GroceryList{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       name,
		StartDate:  from,
		EndDate:    to,
		Categories: models.CategoryList(categories),
	}
	list.Items = models.NewGroceryListItems(list.ID, items)

	if err := s.db.WithContext(ctx).Create(list).Error; err != nil {
		return nil, fmt.Errorf("failed to create grocery list: %w", err)
	}

	s.logger.Info("grocery list generated",
		zap.String("list_id", list.ID.String()),
		zap.Int("meals", len(entries)),
		zap.Int("items", len(list.Items)),
	)
	s.store(ctx, list)
	return list, nil
}

// Get returns a list with its items in order
func (s *GroceryService) Get(ctx context.Context, userID, id uuid.UUID) (*models.GroceryList, error) {
	if list, ok, err := s.cache.Get(ctx, id); err != nil {
		s.logger.Warn("grocery cache read failed", zap.Error(err))
	} else if ok && list.UserID == userID {
		return list, nil
	}

	list, err := s.load(ctx, s.db, userID, id)
	if err != nil {
		return nil, err
	}
	s.store(ctx, list)
	return list, nil
}

// List returns a user's lists, newest first, without items
func (s *GroceryService) List(ctx context.Context, userID uuid.UUID) ([]models.GroceryList, error) {
	var lists []models.GroceryList
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&lists).Error; err != nil {
		return nil, fmt.Errorf("failed to list grocery lists: %w", err)
	}
	return lists, nil
}

// Delete removes a list and its items
func (s *GroceryService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.GroceryList{}, "id = ? AND user_id = ?", id, userID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrGroceryListNotFound
		}
		return tx.Delete(&models.GroceryListItem{}, "list_id = ?", id).Error
	})
	if err != nil {
		if errors.Is(err, ErrGroceryListNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete grocery list: %w", err)
	}
	s.invalidate(ctx, id)
	return nil
}

// SetChecked marks an item as bought or not
func (s *GroceryService) SetChecked(ctx context.Context, userID, listID, itemID uuid.UUID, checked bool) (*models.GroceryListItem, error) {
	return s.updateItem(ctx, userID, listID, itemID, func(_ *models.GroceryList, item *models.GroceryListItem) error {
		item.Checked = checked
		return nil
	})
}

// UpdateItemCategory moves an item to another of the list's categories
func (s *GroceryService) UpdateItemCategory(ctx context.Context, userID, listID, itemID uuid.UUID, categoryID string) (*models.GroceryListItem, error) {
	return s.updateItem(ctx, userID, listID, itemID, func(list *models.GroceryList, item *models.GroceryListItem) error {
		if !hasCategory(list.Categories, categoryID) {
			return ErrUnknownCategory
		}
		item.CategoryID = categoryID
		return nil
	})
}

// ReorderCategories changes the display order of a list's categories
func (s *GroceryService) ReorderCategories(ctx context.Context, userID, listID uuid.UUID, categoryIDs []string) (*models.GroceryList, error) {
	for _, id := range categoryIDs {
		if id == "" {
			return nil, ErrUnknownCategory
		}
	}

	var list *models.GroceryList
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		list, err = s.load(ctx, tx, userID, listID)
		if err != nil {
			return err
		}
		for _, id := range categoryIDs {
			if !hasCategory(list.Categories, id) {
				return ErrUnknownCategory
			}
		}
		list.Categories = models.CategoryList(grocery.ReorderCategories(list.Categories, categoryIDs))
		return tx.Model(&models.GroceryList{}).Where("id = ?", list.ID).Update("categories", list.Categories).Error
	})
	if err != nil {
		return nil, wrapListErr("failed to reorder categories", err)
	}
	s.invalidate(ctx, listID)
	return list, nil
}

// AddManualItem parses a free-text line and merges it into the list with the
// same rules generation uses, so "1 cup milk" tops up an existing milk line.
func (s *GroceryService) AddManualItem(ctx context.Context, userID, listID uuid.UUID, line string) (*models.GroceryList, error) {
	if strings.TrimSpace(line) == "" {
		return nil, ErrNoIngredients
	}
	ing := grocery.ParseIngredientLine(StripMarkup(line))

	var list *models.GroceryList
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		list, err = s.load(ctx, tx, userID, listID)
		if err != nil {
			return err
		}

		c := grocery.NewConsolidator(list.Categories)
		items := c.Append(list.GroceryItems(), "", ing)
		return s.replaceItems(tx, list, items)
	})
	if err != nil {
		return nil, wrapListErr("failed to add item", err)
	}
	s.invalidate(ctx, listID)
	return list, nil
}

// ClearChecked removes every checked item and returns how many went
func (s *GroceryService) ClearChecked(ctx context.Context, userID, listID uuid.UUID) (int64, error) {
	var removed int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		list, err := s.load(ctx, tx, userID, listID)
		if err != nil {
			return err
		}
		kept := make([]grocery.Item, 0, len(list.Items))
		for _, it := range list.GroceryItems() {
			if !it.Checked {
				kept = append(kept, it)
			}
		}
		removed = int64(len(list.Items) - len(kept))
		if removed == 0 {
			return nil
		}
		return s.replaceItems(tx, list, kept)
	})
	if err != nil {
		return 0, wrapListErr("failed to clear checked items", err)
	}
	s.invalidate(ctx, listID)
	return removed, nil
}

func (s *GroceryService) updateItem(ctx context.Context, userID, listID, itemID uuid.UUID, apply func(*models.GroceryList, *models.GroceryListItem) error) (*models.GroceryListItem, error) {
	var updated models.GroceryListItem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		list, err := s.load(ctx, tx, userID, listID)
		if err != nil {
			return err
		}
		var item *models.GroceryListItem
		for i := range list.Items {
			if list.Items[i].ID == itemID {
				item = &list.Items[i]
				break
			}
		}
		if item == nil {
			return ErrGroceryItemNotFound
		}
		if err := apply(list, item); err != nil {
			return err
		}
		if err := tx.Save(item).Error; err != nil {
			return err
		}
		updated = *item
		return nil
	})
	if err != nil {
		return nil, wrapListErr("failed to update item", err)
	}
	s.invalidate(ctx, listID)
	return &updated, nil
}

// replaceItems rewrites the item rows of list from items, keeping ids
func (s *GroceryService) replaceItems(tx *gorm.DB, list *models.GroceryList, items []grocery.Item) error {
	if err := tx.Where("list_id = ?", list.ID).Delete(&models.GroceryListItem{}).Error; err != nil {
		return err
	}
	list.Items = models.NewGroceryListItems(list.ID, items)
	if len(list.Items) == 0 {
		return nil
	}
	return tx.Create(&list.Items).Error
}

func (s *GroceryService) load(ctx context.Context, db *gorm.DB, userID, id uuid.UUID) (*models.GroceryList, error) {
	var list models.GroceryList
	err := db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&list, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroceryListNotFound
		}
		return nil, fmt.Errorf("failed to load grocery list: %w", err)
	}
	return &list, nil
}

func (s *GroceryService) store(ctx context.Context, list *models.GroceryList) {
	if err := s.cache.Set(ctx, list); err != nil {
		s.logger.Warn("grocery cache write failed", zap.String("list_id", list.ID.String()), zap.Error(err))
	}
}

func (s *GroceryService) invalidate(ctx context.Context, id uuid.UUID) {
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Warn("grocery cache invalidation failed", zap.String("list_id", id.String()), zap.Error(err))
	}
}

func hasCategory(categories models.CategoryList, id string) bool {
	for _, c := range categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// wrapListErr passes sentinel errors through untouched
func wrapListErr(msg string, err error) error {
	for _, sentinel := range []error{ErrGroceryListNotFound, ErrGroceryItemNotFound, ErrUnknownCategory} {
		if errors.Is(err, sentinel) {
			return err
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}
