package models

import (
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"github.com/pageza/recipeprep/backend/internal/grocery"
)

// ProfileDimensions is the length of Recipe.CategoryProfile: one slot per
// default shopping category.
const ProfileDimensions = 8

type Recipe struct {
	ID              uuid.UUID        `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	DeletedAt       gorm.DeletedAt   `gorm:"index" json:"-"`
	UserID          uuid.UUID        `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Name            string           `gorm:"size:255;not null" json:"name"`
	Description     string           `gorm:"type:text" json:"description"`
	SourceURL       string           `gorm:"size:512" json:"source_url,omitempty"`
	Servings        int              `gorm:"not null;default:1" json:"servings"`
	Ingredients     IngredientList   `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	RawIngredients  JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"raw_ingredients"`
	Instructions    JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"instructions"`
	CategoryProfile pgvector.Vector  `gorm:"type:vector(8)" json:"-"`
}

// ToGrocery returns the view of the recipe the consolidator works on
func (r *Recipe) ToGrocery() grocery.Recipe {
	return grocery.Recipe{
		ID:          r.ID.String(),
		Servings:    float64(r.Servings),
		Ingredients: []grocery.Ingredient(r.Ingredients),
	}
}
