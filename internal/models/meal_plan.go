package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MealType is the slot of the day a planned meal fills
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// Valid reports whether t is one of the known meal types
func (t MealType) Valid() bool {
	switch t {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// MealPlanEntry is one recipe planned for a date
type MealPlanEntry struct {
	ID        uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	UserID    uuid.UUID      `gorm:"type:varchar(36);not null;index:idx_meal_plan_user_date" json:"user_id"`
	RecipeID  uuid.UUID      `gorm:"type:varchar(36);not null" json:"recipe_id"`
	Date      time.Time      `gorm:"type:date;not null;index:idx_meal_plan_user_date" json:"date"`
	MealType  MealType       `gorm:"size:20;not null;default:'dinner'" json:"meal_type"`
	Servings  float64        `gorm:"not null" json:"servings"`
}

// TableName returns the table name for the MealPlanEntry model
func (MealPlanEntry) TableName() string {
	return "meal_plan_entries"
}
