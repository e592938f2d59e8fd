package cmd

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/limbo/ascent/internal/db"
	"github.com/limbo/ascent/pkg/config"
	"github.com/spf13/cobra"
)

func MigrateCmd(cfg *config.Config) *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply, roll back or inspect database migrations",
	}
	migrateCmd.AddCommand(
		migrateStep(cfg, "up", "Apply every pending migration", db.RunMigrations),
		migrateStep(cfg, "down", "Roll back the latest migration", db.MigrateDown),
		migrateStep(cfg, "status", "Print applied and pending migrations", db.Status),
	)
	return migrateCmd
}

func migrateStep(cfg *config.Config, use, short string, step func(context.Context, *sql.DB) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := db.Open(dbConfig(cfg).ConnString())
			if err != nil {
				return err
			}
			defer conn.Close()
			if err := step(cmd.Context(), conn); err != nil {
				return fmt.Errorf("migrate %s: %w", use, err)
			}
			return nil
		},
	}
}
