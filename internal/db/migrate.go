package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/limbo/ascent/migrations"
	"github.com/pressly/goose/v3"
)

func setupGoose() error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	return nil
}

// Open returns a database/sql handle on the pgx driver, which goose needs.
func Open(connString string) (*sql.DB, error) {
	conn, err := sql.Open("pgx", connString)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	return conn, nil
}

func RunMigrations(ctx context.Context, conn *sql.DB) error {
	if err := setupGoose(); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, conn, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	slog.Info("migrations completed successfully")
	return nil
}

func MigrateDown(ctx context.Context, conn *sql.DB) error {
	if err := setupGoose(); err != nil {
		return err
	}
	if err := goose.DownContext(ctx, conn, "."); err != nil {
		return fmt.Errorf("failed to rollback migration: %w", err)
	}
	slog.Info("rolled back one migration")
	return nil
}

func Status(ctx context.Context, conn *sql.DB) error {
	if err := setupGoose(); err != nil {
		return err
	}
	return goose.StatusContext(ctx, conn, ".")
}
