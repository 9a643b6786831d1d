package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/pageza/recipeprep/backend/config"
	"github.com/pageza/recipeprep/backend/internal/database"
	"github.com/pageza/recipeprep/backend/internal/logging"
	"github.com/pageza/recipeprep/backend/internal/models"
	"github.com/pageza/recipeprep/backend/internal/service"
	"github.com/pageza/recipeprep/backend/internal/types"
)

const demoPassword = "testpassword123"

// sample recipes, written the way scraped recipe cards arrive
var sampleRecipes = []types.ImportRecipeRequest{
	{
		Name:     "Weeknight Chili",
		Servings: 4,
		Ingredients: []string{
			"<li>1 lb ground beef</li>",
			"<li>1 onion, diced</li>",
			"<li>2 cans kidney beans</li>",
			"<li>2 tbsp chili powder</li>",
			"<li>1 cup water</li>",
		},
		Instructions: []string{"Brown the beef with the onion.", "Add everything else and simmer 30 minutes."},
	},
	{
		Name:     "Buttermilk Pancakes",
		Servings: 2,
		Ingredients: []string{
			"1 1/2 cups flour",
			"2 tbsp sugar",
			"1 cup buttermilk",
			"2 eggs",
			"<span>3 tbsp</span> butter, melted",
		},
		Instructions: []string{"Whisk dry and wet separately, then combine.", "Cook on a hot griddle."},
	},
	{
		Name:     "Tomato &amp; Onion Salad",
		Servings: 2,
		Ingredients: []string{
			"3 tomatoes",
			"1/2 onion, sliced",
			"2 tbsp olive oil",
			"1 pinch salt",
		},
		Instructions: []string{"Slice, dress and season."},
	},
}

func main() {
	days := flag.Int("days", 7, "number of days of meals to plan")
	email := flag.String("email", "demo@example.com", "email of the demo user")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger, err := logging.New(cfg.LogLevel, false)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	if err := seed(context.Background(), cfg, logger, *email, *days); err != nil {
		logger.Fatal("seeding failed", zap.Error(err))
	}
}

func seed(ctx context.Context, cfg *config.Config, logger *zap.Logger, email string, days int) error {
	if days <= 0 {
		return fmt.Errorf("days must be positive, got %d", days)
	}

	db, err := database.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}
	if err := database.Migrate(ctx, db, logger); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	auth := service.NewAuthService(db, cfg.JWTSecret)
	user, err := demoUser(ctx, auth, email)
	if err != nil {
		return err
	}

	recipes := service.NewRecipeService(db, logger)
	mealPlan := service.NewMealPlanService(db)
	groceries := service.NewGroceryService(db, recipes, mealPlan, nil, logger)

	var imported []*models.Recipe
	for i := range sampleRecipes {
		r, err := recipes.ImportRecipe(ctx, user.ID, &sampleRecipes[i])
		if err != nil {
			return fmt.Errorf("failed to import %q: %w", sampleRecipes[i].Name, err)
		}
		imported = append(imported, r)
	}

	start := time.Now().UTC().Truncate(24 * time.Hour)
	for d := 0; d < days; d++ {
		r := imported[d%len(imported)]
		_, err := mealPlan.AddEntry(ctx, user.ID, &types.CreateMealPlanEntryRequest{
			RecipeID: r.ID.String(),
			Date:     start.AddDate(0, 0, d).Format(types.DateLayout),
			Servings: float64(r.Servings * 2),
		})
		if err != nil {
			return fmt.Errorf("failed to plan day %d: %w", d, err)
		}
	}

	list, err := groceries.Generate(ctx, user.ID, "", start, start.AddDate(0, 0, days-1))
	if err != nil {
		return err
	}

	logger.Info("seeded demo data",
		zap.String("email", user.Email),
		zap.String("password", demoPassword),
		zap.Int("recipes", len(imported)),
		zap.Int("meals", days),
		zap.String("grocery_list_id", list.ID.String()),
		zap.Int("grocery_items", len(list.Items)),
	)
	return nil
}

// demoUser registers the demo account, or logs into it when a previous run
// already created it.
func demoUser(ctx context.Context, auth *service.AuthService, email string) (*models.User, error) {
	user, _, err := auth.Register(ctx, "Demo Cook", email, demoPassword)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, service.ErrUserExists) {
		return nil, fmt.Errorf("failed to create demo user: %w", err)
	}
	user, _, err = auth.Login(ctx, email, demoPassword)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return nil, fmt.Errorf("user %s exists with a different password", email)
		}
		return nil, err
	}
	return user, nil
}
