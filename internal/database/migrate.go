package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/recipeprep/backend/internal/models"
)

// Migrations holds the Postgres schema. NNN_name.sql applies a version and
// NNN_name_rollback.sql reverts it.
//
//go:embed migrations/*.sql
var Migrations embed.FS

const rollbackSuffix = "_rollback.sql"

// AllModels lists every table gorm manages
func AllModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Recipe{},
		&models.MealPlanEntry{},
		&models.GroceryList{},
		&models.GroceryListItem{},
	}
}

// AutoMigrate creates or updates tables from the models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}

// Migrate brings the schema up to date: gorm auto-migration for SQLite, the
// embedded SQL files for Postgres.
func Migrate(ctx context.Context, db *gorm.DB, logger *zap.Logger) error {
	if db.Dialector.Name() == "sqlite" {
		logger.Info("using gorm auto-migration for sqlite")
		return AutoMigrate(db)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sub, err := fs.Sub(Migrations, "migrations")
	if err != nil {
		return err
	}
	_, err = ApplyMigrations(ctx, sqlDB, sub, logger)
	return err
}

func migrationFiles(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations: %w", err)
	}
	var files []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".sql") || strings.HasSuffix(name, rollbackSuffix) {
			continue
		}
		files = append(files, name)
	}
	sort.Strings(files)
	return files, nil
}

func migrationVersion(file string) string {
	version, _, _ := strings.Cut(file, "_")
	return version
}

func ensureMigrationsTable(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version VARCHAR(32) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			applied_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

// ApplyMigrations runs every migration in fsys that has not been recorded
// yet, each in its own transaction, and returns the files applied.
func ApplyMigrations(ctx context.Context, db *sql.DB, fsys fs.FS, logger *zap.Logger) ([]string, error) {
	if err := ensureMigrationsTable(ctx, db); err != nil {
		return nil, err
	}
	files, err := migrationFiles(fsys)
	if err != nil {
		return nil, err
	}

	var applied []string
	for _, file := range files {
		version := migrationVersion(file)

		var exists bool
		if err := db.QueryRowContext(ctx,
			"SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = $1)", version,
		).Scan(&exists); err != nil {
			return applied, fmt.Errorf("failed to check migration status: %w", err)
		}
		if exists {
			logger.Debug("skipping migration", zap.String("file", file))
			continue
		}

		content, err := fs.ReadFile(fsys, file)
		if err != nil {
			return applied, fmt.Errorf("failed to read migration %s: %w", file, err)
		}

		err = inTx(ctx, db, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, string(content)); err != nil {
				return err
			}
			_, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version, name) VALUES ($1, $2)", version, file)
			return err
		})
		if err != nil {
			return applied, fmt.Errorf("failed to apply migration %s: %w", file, err)
		}

		logger.Info("applied migration", zap.String("file", file))
		applied = append(applied, file)
	}
	return applied, nil
}

// ErrNothingToRollback is returned when no migration has been applied
var ErrNothingToRollback = errors.New("no migrations to roll back")

// Rollback reverts the most recently applied migration using its
// _rollback.sql file and returns the reverted migration's name.
func Rollback(ctx context.Context, db *sql.DB, fsys fs.FS, logger *zap.Logger) (string, error) {
	if err := ensureMigrationsTable(ctx, db); err != nil {
		return "", err
	}

	var version, name string
	err := db.QueryRowContext(ctx,
		"SELECT version, name FROM schema_migrations ORDER BY version DESC LIMIT 1",
	).Scan(&version, &name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNothingToRollback
	}
	if err != nil {
		return "", fmt.Errorf("failed to get last migration: %w", err)
	}

	rollbackFile := strings.TrimSuffix(name, ".sql") + rollbackSuffix
	content, err := fs.ReadFile(fsys, rollbackFile)
	if err != nil {
		return "", fmt.Errorf("rollback file not found: %s: %w", rollbackFile, err)
	}

	err = inTx(ctx, db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, string(content)); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, "DELETE FROM schema_migrations WHERE version = $1", version)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("failed to roll back %s: %w", name, err)
	}

	logger.Info("rolled back migration", zap.String("file", name))
	return name, nil
}

func inTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}
