package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"github.com/pageza/recipeprep/backend/internal/middleware"
	"github.com/pageza/recipeprep/backend/internal/service"
	"github.com/pageza/recipeprep/backend/internal/testhelpers"
)

const testJWTSecret = "test-secret-that-is-at-least-32-bytes"

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	auth   *service.AuthService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDatabase(t)
	logger := zaptest.NewLogger(t)

	authService := service.NewAuthService(db, testJWTSecret)
	recipes := service.NewRecipeService(db, logger)
	mealPlan := service.NewMealPlanService(db)
	lists := service.NewGroceryService(db, recipes, mealPlan, nil, logger)
	exports := service.NewExportService(nil, logger)

	router := gin.New()
	router.Use(requestid.New(), middleware.Recovery(logger))
	router.GET("/health", NewHealthHandler(db, nil, logger).Health)

	v1 := router.Group("/api/v1")
	NewAuthHandler(authService, logger).RegisterRoutes(v1)
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService), middleware.RequireActiveUser(db))
	NewRecipeHandler(recipes, logger).RegisterRoutes(protected)
	NewIngredientHandler().RegisterRoutes(protected)
	NewMealPlanHandler(mealPlan, logger).RegisterRoutes(protected)
	NewGroceryHandler(lists, exports, logger).RegisterRoutes(protected)

	return &testEnv{router: router, db: db, auth: authService}
}

// login creates a user and returns a bearer token for it
func (e *testEnv) login(t *testing.T) (uuid.UUID, string) {
	t.Helper()
	user := testhelpers.CreateTestUser(t, e.db)
	token, err := e.auth.GenerateToken(user)
	require.NoError(t, err)
	return user.ID, token
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

// createRecipe posts a recipe and returns its id
func (e *testEnv) createRecipe(t *testing.T, token, name string, servings int, lines ...string) string {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/v1/recipes", token, gin.H{
		"name":            name,
		"servings":        servings,
		"raw_ingredients": lines,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp struct {
		Recipe struct {
			ID string `json:"id"`
		} `json:"recipe"`
	}
	decode(t, w, &resp)
	return resp.Recipe.ID
}

func (e *testEnv) planMeal(t *testing.T, token, recipeID, date string, servings float64) string {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/v1/meal-plan", token, gin.H{
		"recipe_id": recipeID,
		"date":      date,
		"servings":  servings,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp struct {
		Entry struct {
			ID string `json:"id"`
		} `json:"entry"`
	}
	decode(t, w, &resp)
	return resp.Entry.ID
}
