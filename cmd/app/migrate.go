package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"dispatch/cmd"
	"dispatch/internal/adapters/out/postgres/migrations"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

func migrateCommand(cfg cmd.Config, log *slog.Logger) *cobra.Command {
	command := &cobra.Command{
		Use:   "migrate",
		Short: "Manages the database schema",
	}

	step := func(use, short string, run func(ctx context.Context, db *sql.DB) error) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(command *cobra.Command, _ []string) error {
				db, err := sql.Open("postgres", cfg.DSN())
				if err != nil {
					return fmt.Errorf("could not open postgres: %w", err)
				}
				defer db.Close()

				if err := run(command.Context(), db); err != nil {
					return fmt.Errorf("migrate %s: %w", use, err)
				}
				return nil
			},
		}
	}

	command.AddCommand(
		step("up", "Migrates the database to the latest version", migrations.Up),
		step("down", "Rolls back the latest migration", migrations.Down),
		step("status", "Prints the state of every migration", migrations.Status),
		step("version", "Prints the current schema version", func(ctx context.Context, db *sql.DB) error {
			version, err := migrations.Version(ctx, db)
			if err != nil {
				return err
			}
			log.InfoContext(ctx, "schema version", "version", version)
			return nil
		}),
	)

	return command
}
