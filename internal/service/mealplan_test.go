package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipeprep/backend/internal/models"
	"github.com/pageza/recipeprep/backend/internal/service"
	"github.com/pageza/recipeprep/backend/internal/testhelpers"
	"github.com/pageza/recipeprep/backend/internal/types"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := types.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestMealPlanEntries(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewMealPlanService(db)
	user := testhelpers.CreateTestUser(t, db)
	other := testhelpers.CreateTestUser(t, db)
	recipe := testhelpers.CreateTestRecipe(t, db, user.ID, "Soup", 2)
	ctx := context.Background()

	add := func(userID uuid.UUID, day string, servings float64) *models.MealPlanEntry {
		e, err := svc.AddEntry(ctx, userID, &types.CreateMealPlanEntryRequest{
			RecipeID: recipe.ID.String(), Date: day, Servings: servings, MealType: "lunch",
		})
		require.NoError(t, err)
		return e
	}
	later := add(user.ID, "2024-01-03", 2)
	earlier := add(user.ID, "2024-01-01", 1)
	add(user.ID, "2024-01-09", 1)
	add(other.ID, "2024-01-02", 1)

	entries, err := svc.ListEntries(ctx, user.ID, date(t, "2024-01-01"), date(t, "2024-01-07"))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, earlier.ID, entries[0].ID)
	assert.Equal(t, later.ID, entries[1].ID)
	assert.Equal(t, models.MealLunch, entries[0].MealType)

	// a single-day range includes that day
	entries, err = svc.ListEntries(ctx, user.ID, date(t, "2024-01-09"), date(t, "2024-01-09"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	_, err = svc.ListEntries(ctx, user.ID, date(t, "2024-01-09"), date(t, "2024-01-01"))
	assert.ErrorIs(t, err, service.ErrInvalidDateRange)

	updated, err := svc.UpdateEntry(ctx, user.ID, later.ID, &types.UpdateMealPlanEntryRequest{Servings: 5, Date: "2024-01-04"})
	require.NoError(t, err)
	assert.Equal(t, 5.0, updated.Servings)
	assert.Equal(t, date(t, "2024-01-04"), updated.Date)

	_, err = svc.UpdateEntry(ctx, other.ID, later.ID, &types.UpdateMealPlanEntryRequest{Servings: 1})
	assert.ErrorIs(t, err, service.ErrMealPlanEntryNotFound)

	require.NoError(t, svc.DeleteEntry(ctx, user.ID, later.ID))
	assert.ErrorIs(t, svc.DeleteEntry(ctx, user.ID, later.ID), service.ErrMealPlanEntryNotFound)
}

func TestAddEntryValidation(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewMealPlanService(db)
	user := testhelpers.CreateTestUser(t, db)
	recipe := testhelpers.CreateTestRecipe(t, db, user.ID, "Soup", 2)
	ctx := context.Background()

	tests := []struct {
		name string
		req  types.CreateMealPlanEntryRequest
		want error
	}{
		{"zero servings", types.CreateMealPlanEntryRequest{RecipeID: recipe.ID.String(), Date: "2024-01-01", Servings: 0}, service.ErrInvalidServings},
		{"bad date", types.CreateMealPlanEntryRequest{RecipeID: recipe.ID.String(), Date: "tomorrow", Servings: 1}, service.ErrInvalidDate},
		{"bad meal type", types.CreateMealPlanEntryRequest{RecipeID: recipe.ID.String(), Date: "2024-01-01", Servings: 1, MealType: "tea"}, service.ErrInvalidMealType},
		{"unknown recipe", types.CreateMealPlanEntryRequest{RecipeID: uuid.NewString(), Date: "2024-01-01", Servings: 1}, service.ErrRecipeNotFound},
		{"malformed recipe id", types.CreateMealPlanEntryRequest{RecipeID: "abc", Date: "2024-01-01", Servings: 1}, service.ErrRecipeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddEntry(ctx, user.ID, &tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	entry, err := svc.AddEntry(ctx, user.ID, &types.CreateMealPlanEntryRequest{RecipeID: recipe.ID.String(), Date: "2024-01-01", Servings: 0.5})
	require.NoError(t, err)
	assert.Equal(t, models.MealDinner, entry.MealType)
}
