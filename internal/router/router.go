package router

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/recipeprep/backend/internal/api"
	"github.com/pageza/recipeprep/backend/internal/middleware"
	"github.com/pageza/recipeprep/backend/internal/service"
)

// Handlers groups the API handlers the router mounts
type Handlers struct {
	Auth        *api.AuthHandler
	Recipes     *api.RecipeHandler
	Ingredients *api.IngredientHandler
	MealPlan    *api.MealPlanHandler
	Grocery     *api.GroceryHandler
	Health      *api.HealthHandler
}

// Options carries the cross-cutting pieces of the router
type Options struct {
	AuthService    service.IAuthService
	DB             *gorm.DB
	GenerateLimit  *middleware.RateLimiter
	Logger         *zap.Logger
	AllowedOrigins []string
}

// SetupRouter configures the application routes
func SetupRouter(h Handlers, opts Options) *gin.Engine {
	router := gin.New()
	router.Use(
		requestid.New(),
		middleware.RequestLogger(opts.Logger),
		middleware.Recovery(opts.Logger),
		middleware.CORS(opts.AllowedOrigins),
		middleware.ErrorHandler(opts.Logger),
	)

	router.GET("/health", h.Health.Health)

	v1 := router.Group("/api/v1")
	v1.GET("/health", h.Health.Health)
	h.Auth.RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(
		middleware.AuthMiddleware(opts.AuthService),
		middleware.RequireActiveUser(opts.DB),
	)
	{
		h.Recipes.RegisterRoutes(protected)
		h.Ingredients.RegisterRoutes(protected)
		h.MealPlan.RegisterRoutes(protected)
		h.Grocery.RegisterRoutes(protected, opts.GenerateLimit.RateLimitMiddleware())
	}

	return router
}
