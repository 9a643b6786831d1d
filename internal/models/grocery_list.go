package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/recipeprep/backend/internal/grocery"
)

// GroceryList is a generated shopping list and its categories. Items are
// stored in their own table ordered by Position.
type GroceryList struct {
	ID         uuid.UUID         `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
	DeletedAt  gorm.DeletedAt    `gorm:"index" json:"-"`
	UserID     uuid.UUID         `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Name       string            `gorm:"size:255;not null" json:"name"`
	StartDate  time.Time         `gorm:"type:date" json:"start_date"`
	EndDate    time.Time         `gorm:"type:date" json:"end_date"`
	Categories CategoryList      `gorm:"type:jsonb;not null;default:'[]'" json:"categories"`
	Items      []GroceryListItem `gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE" json:"items"`
}

// GroceryListItem is one persisted line of a grocery list
type GroceryListItem struct {
	ID              uuid.UUID        `gorm:"type:varchar(36);primarykey" json:"id"`
	ListID          uuid.UUID        `gorm:"type:varchar(36);not null;index" json:"list_id"`
	Position        int              `gorm:"not null" json:"position"`
	Name            string           `gorm:"size:255;not null" json:"name"`
	Quantity        float64          `gorm:"not null" json:"quantity"`
	Unit            string           `gorm:"size:50" json:"unit"`
	CategoryID      string           `gorm:"size:36" json:"category_id"`
	Checked         bool             `gorm:"not null;default:false" json:"checked"`
	SourceRecipeIDs JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"source_recipe_ids"`
}

// GroceryItems converts the stored items back into consolidator items,
// keeping their order.
func (l *GroceryList) GroceryItems() []grocery.Item {
	out := make([]grocery.Item, len(l.Items))
	for i, it := range l.Items {
		out[i] = it.ToGrocery()
	}
	return out
}

// ToGrocery converts a stored item to a consolidator item
func (it *GroceryListItem) ToGrocery() grocery.Item {
	return grocery.Item{
		ID:              it.ID.String(),
		Name:            it.Name,
		Quantity:        it.Quantity,
		Unit:            it.Unit,
		CategoryID:      it.CategoryID,
		Checked:         it.Checked,
		SourceRecipeIDs: append([]string{}, it.SourceRecipeIDs...),
	}
}

// NewGroceryListItems builds rows for items under listID. Item ids that are
// not UUIDs are replaced.
func NewGroceryListItems(listID uuid.UUID, items []grocery.Item) []GroceryListItem {
	rows := make([]GroceryListItem, len(items))
	for i, it := range items {
		id, err := uuid.Parse(it.ID)
		if err != nil {
			id = uuid.New()
		}
		rows[i] = GroceryListItem{
			ID:              id,
			ListID:          listID,
			Position:        i,
			Name:            it.Name,
			Quantity:        it.Quantity,
			Unit:            it.Unit,
			CategoryID:      it.CategoryID,
			Checked:         it.Checked,
			SourceRecipeIDs: JSONBStringArray(it.SourceRecipeIDs),
		}
	}
	return rows
}
