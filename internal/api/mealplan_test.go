package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipeprep/backend/internal/models"
)

type entriesResponse struct {
	From    string                 `json:"from"`
	To      string                 `json:"to"`
	Entries []models.MealPlanEntry `json:"entries"`
}

func TestMealPlanLifecycle(t *testing.T) {
	env := setupTestEnv(t)
	_, token := env.login(t)
	recipeID := env.createRecipe(t, token, "Soup", 2, "1 onion")

	first := env.planMeal(t, token, recipeID, "2024-03-04", 2)
	env.planMeal(t, token, recipeID, "2024-03-06", 4)
	env.planMeal(t, token, recipeID, "2024-03-20", 1)

	w := env.do(t, http.MethodGet, "/api/v1/meal-plan?from=2024-03-04&to=2024-03-10", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var list entriesResponse
	decode(t, w, &list)
	require.Len(t, list.Entries, 2)
	assert.Equal(t, models.MealDinner, list.Entries[0].MealType)
	assert.Equal(t, "2024-03-04", list.From)

	w = env.do(t, http.MethodPut, "/api/v1/meal-plan/"+first, token, gin.H{"servings": 6, "meal_type": "lunch"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated struct {
		Entry models.MealPlanEntry `json:"entry"`
	}
	decode(t, w, &updated)
	assert.Equal(t, 6.0, updated.Entry.Servings)
	assert.Equal(t, models.MealLunch, updated.Entry.MealType)

	assert.Equal(t, http.StatusNoContent, env.do(t, http.MethodDelete, "/api/v1/meal-plan/"+first, token, nil).Code)
	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodDelete, "/api/v1/meal-plan/"+first, token, nil).Code)
}

func TestMealPlanValidation(t *testing.T) {
	env := setupTestEnv(t)
	_, token := env.login(t)
	recipeID := env.createRecipe(t, token, "Soup", 2, "1 onion")

	tests := []struct {
		name   string
		body   gin.H
		status int
	}{
		{"bad date", gin.H{"recipe_id": recipeID, "date": "03/04/2024", "servings": 2}, http.StatusBadRequest},
		{"negative servings", gin.H{"recipe_id": recipeID, "date": "2024-03-04", "servings": -1}, http.StatusBadRequest},
		{"unknown meal type", gin.H{"recipe_id": recipeID, "date": "2024-03-04", "servings": 1, "meal_type": "brunch"}, http.StatusBadRequest},
		{"unknown recipe", gin.H{"recipe_id": uuid.NewString(), "date": "2024-03-04", "servings": 1}, http.StatusNotFound},
		{"missing recipe id", gin.H{"date": "2024-03-04", "servings": 1}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodPost, "/api/v1/meal-plan", token, tt.body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}

	w := env.do(t, http.MethodGet, "/api/v1/meal-plan?from=2024-03-10&to=2024-03-01", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMealPlanDefaultRange(t *testing.T) {
	env := setupTestEnv(t)
	_, token := env.login(t)

	w := env.do(t, http.MethodGet, "/api/v1/meal-plan", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list entriesResponse
	decode(t, w, &list)

	from, err := time.Parse("2006-01-02", list.From)
	require.NoError(t, err)
	to, err := time.Parse("2006-01-02", list.To)
	require.NoError(t, err)
	assert.Equal(t, 6*24*time.Hour, to.Sub(from))
	assert.Empty(t, list.Entries)
}
