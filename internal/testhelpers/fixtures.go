package testhelpers

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pageza/recipeprep/backend/internal/grocery"
	"github.com/pageza/recipeprep/backend/internal/models"
)

// TestPassword is the password of every user made by CreateTestUser
const TestPassword = "testpassword123"

// CreateTestUser inserts a user with a unique email and TestPassword
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	id := uuid.New()
	user := &models.User{
		ID:           id,
		Name:         "Test User",
		Email:        fmt.Sprintf("testuser+%s@example.com", id),
		PasswordHash: string(hashed),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestRecipe inserts a recipe owned by userID
func CreateTestRecipe(t *testing.T, db *gorm.DB, userID uuid.UUID, name string, servings int, ingredients ...grocery.Ingredient) *models.Recipe {
	t.Helper()

	recipe := &models.Recipe{
		ID:              uuid.New(),
		UserID:          userID,
		Name:            name,
		Servings:        servings,
		Ingredients:     models.IngredientList(ingredients),
		RawIngredients:  models.JSONBStringArray{},
		Instructions:    models.JSONBStringArray{},
		CategoryProfile: pgvector.NewVector(make([]float32, models.ProfileDimensions)),
	}
	if err := db.Create(recipe).Error; err != nil {
		t.Fatalf("failed to create test recipe: %v", err)
	}
	return recipe
}
