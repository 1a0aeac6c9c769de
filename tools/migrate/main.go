// Command migrate manages the schema and demo data outside the service.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/scenefeed/internal/metrics"
	"github.com/orgball2608/scenefeed/internal/migrations"
	"github.com/orgball2608/scenefeed/internal/repositories/item"
	"github.com/orgball2608/scenefeed/internal/seeder/seederimpl"
	"github.com/orgball2608/scenefeed/pkg/config"
	"github.com/orgball2608/scenefeed/pkg/logger"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
)

const migrationsDir = "internal/migrations"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "migrate",
		Short:        "Manage the scenefeed database",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newGooseCmd("up", "Apply all pending migrations", "Migrations applied successfully", goose.UpContext),
		newGooseCmd("down", "Roll back the latest migration", "Migration rollback successful", goose.DownContext),
		newGooseCmd("status", "Print migration status", "", goose.StatusContext),
		newGooseCmd("reset", "Roll back every migration", "All migrations have been rolled back", goose.ResetContext),
		newCreateCmd(),
		newSeedCmd(),
	)

	return rootCmd
}

func newGooseCmd(use, short, done string, run func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.New()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			db, err := migrations.Open(cfg.GetDSN())
			if err != nil {
				return err
			}
			defer db.Close()

			if err := run(cmd.Context(), db, "."); err != nil {
				return fmt.Errorf("%s failed: %w", use, err)
			}
			if done != "" {
				fmt.Fprintln(cmd.OutOrStdout(), done)
			}
			return nil
		},
	}
}

func newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new Go migration in " + migrationsDir,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Creating migration in: %s\n", migrationsDir)
			return goose.Create(nil, migrationsDir, args[0], "go")
		},
	}
}

func newSeedCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert demo events, vibe posts and profile entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.New()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			log := logger.New(logger.Opts{Env: cfg.App.Env})

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			pool, err := pgxpool.New(ctx, cfg.GetURL())
			if err != nil {
				return fmt.Errorf("failed to create pgx pool: %w", err)
			}
			defer pool.Close()

			clock := clockwork.NewRealClock()
			s := seederimpl.New(seederimpl.Opts{
				ItemRepo: item.NewPgxRepository(pool, log),
				Guard:    seederimpl.NewGuard(clock, 0),
				Clock:    clock,
				Metrics:  metrics.New(),
				Logger:   log,
				Config:   cfg,
			})

			if errs := s.RunAll(ctx); len(errs) > 0 {
				for _, err := range errs {
					log.Error("Seeding failed", "error", err)
				}
				return fmt.Errorf("%d seed operations failed", len(errs))
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Demo data seeded")
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "overall seeding timeout")
	return cmd
}
