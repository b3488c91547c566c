package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"

	"quiz-presenter/internal/config"
	"quiz-presenter/internal/infra/csvfile"
	pgloader "quiz-presenter/internal/infra/postgres"
	pgmigrations "quiz-presenter/internal/infra/postgres/migrations"
	rediscache "quiz-presenter/internal/infra/redis"
)

// NewMigrateCmd applies database migrations and optionally seeds the
// configured quiz from a CSV file.
func NewMigrateCmd(configPath *string) *cobra.Command {
	var seedCSV string
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrations(cmd.Context(), *configPath, seedCSV)
		},
	}
	cmd.Flags().StringVar(&seedCSV, "seed", "", "CSV file whose questions replace quiz.id after migrating")
	return cmd
}

func runMigrations(ctx context.Context, configPath, seedCSV string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := runMigrationsWithConfig(ctx, cfg); err != nil {
		return err
	}
	if seedCSV == "" {
		return nil
	}
	return seedFromCSV(ctx, cfg, seedCSV)
}

func openDB(cfg config.Config) (*bun.DB, error) {
	if cfg.Postgres.URL == "" {
		return nil, fmt.Errorf("postgres url not configured")
	}
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Postgres.URL)))
	return bun.NewDB(sqldb, pgdialect.New()), nil
}

func seedFromCSV(ctx context.Context, cfg config.Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	questions, err := csvfile.Parse(ctx, f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	var caches []pgloader.Invalidator
	if cfg.Redis.Addr != "" {
		client := newRedisClient(cfg)
		defer client.Close()
		caches = append(caches, rediscache.NewQuizRepository(client, nil, 0))
	}
	if err := pgloader.ReplaceQuestions(ctx, db, cfg.Quiz.ID, questions, caches...); err != nil {
		return err
	}
	log.Printf("seeded %d questions into quiz %s", len(questions), cfg.Quiz.ID)
	return nil
}

func runMigrationsWithConfig(ctx context.Context, cfg config.Config) error {
	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	migrator := migrate.NewMigrator(db, pgmigrations.Migrations)

	if err := migrator.Init(ctx); err != nil {
		return err
	}

	if _, err := migrator.Migrate(ctx); err != nil {
		return err
	}
	log.Printf("migrations applied")
	return nil
}
