package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/pageza/recipeprep/backend/config"
	"github.com/pageza/recipeprep/backend/internal/database"
	"github.com/pageza/recipeprep/backend/internal/logging"
)

func main() {
	rollback := flag.Bool("rollback", false, "Rollback the last migration")
	flag.Parse()

	logger, err := logging.New(os.Getenv("LOG_LEVEL"), config.IsProduction())
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// DATABASE_URL wins so the tool can run without the full app config
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		cfg, err := config.LoadConfig()
		if err != nil {
			logger.Fatal("failed to load configuration", zap.Error(err))
		}
		if cfg.DBDriver != config.DriverPostgres {
			logger.Fatal("SQL migrations target postgres; sqlite is migrated by the API on startup",
				zap.String("driver", cfg.DBDriver))
		}
		dsn = cfg.PostgresDSN()
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		logger.Fatal("failed to reach database", zap.Error(err))
	}

	migrations, err := fs.Sub(database.Migrations, "migrations")
	if err != nil {
		logger.Fatal("failed to open embedded migrations", zap.Error(err))
	}

	if *rollback {
		name, err := database.Rollback(ctx, db, migrations, logger)
		if errors.Is(err, database.ErrNothingToRollback) {
			logger.Info("no migrations to roll back")
			return
		}
		if err != nil {
			logger.Fatal("rollback failed", zap.Error(err))
		}
		logger.Info("successfully rolled back migration", zap.String("file", name))
		return
	}

	applied, err := database.ApplyMigrations(ctx, db, migrations, logger)
	if err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}
	logger.Info("all migrations applied", zap.Int("applied", len(applied)))
}
