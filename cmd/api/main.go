package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pageza/recipeprep/backend/config"
	"github.com/pageza/recipeprep/backend/internal/api"
	"github.com/pageza/recipeprep/backend/internal/database"
	"github.com/pageza/recipeprep/backend/internal/logging"
	"github.com/pageza/recipeprep/backend/internal/middleware"
	"github.com/pageza/recipeprep/backend/internal/router"
	"github.com/pageza/recipeprep/backend/internal/server"
	"github.com/pageza/recipeprep/backend/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, config.IsProduction())
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server exited with error", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx := context.Background()
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
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

	var redisClient *redis.Client
	if cfg.RedisEnabled() {
		redisClient, err = database.NewRedisClient(ctx, cfg, logger)
		if err != nil {
			// caching and rate limiting are optional
			logger.Warn("redis unavailable, continuing without it", zap.Error(err))
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	var store service.ObjectStore
	if cfg.S3Bucket != "" {
		s3cfg, err := config.NewS3Config(ctx, cfg.S3Bucket, cfg.AWSRegion)
		if err != nil {
			return fmt.Errorf("failed to configure export storage: %w", err)
		}
		store = s3cfg
		logger.Info("export uploads enabled", zap.String("bucket", cfg.S3Bucket))
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	recipeService := service.NewRecipeService(db, logger)
	mealPlanService := service.NewMealPlanService(db)
	groceryService := service.NewGroceryService(db, recipeService, mealPlanService,
		service.NewGroceryCache(redisClient, cfg.GroceryCacheTTL), logger)
	exportService := service.NewExportService(store, logger)

	handlers := router.Handlers{
		Auth:        api.NewAuthHandler(authService, logger),
		Recipes:     api.NewRecipeHandler(recipeService, logger),
		Ingredients: api.NewIngredientHandler(),
		MealPlan:    api.NewMealPlanHandler(mealPlanService, logger),
		Grocery:     api.NewGroceryHandler(groceryService, exportService, logger),
		Health:      api.NewHealthHandler(db, redisClient, logger),
	}
	engine := router.SetupRouter(handlers, router.Options{
		AuthService:    authService,
		DB:             db,
		GenerateLimit:  middleware.NewGroceryGenerationRateLimiter(redisClient, cfg.RateLimitWindow, cfg.RateLimitRequests, logger),
		Logger:         logger,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := server.New(cfg.Address(), engine, logger)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-quit:
		logger.Info("received signal", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
