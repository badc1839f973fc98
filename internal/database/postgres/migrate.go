package postgres

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/osse101/RouletteCampaign_Go/internal/logger"
	"github.com/osse101/RouletteCampaign_Go/migrations"
)

// RunMigrations applies the embedded goose migrations to the database at databaseURL
func RunMigrations(ctx context.Context, databaseURL string) error {
	return RunMigrationsFS(ctx, databaseURL, migrations.FS, ".")
}

// RunMigrationsFS applies goose migrations found in dir of fsys
func RunMigrationsFS(ctx context.Context, databaseURL string, fsys fs.FS, dir string) error {
	cfg, err := pgx.ParseConfig(databaseURL)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToParseDatabaseURL, err)
	}
	db := stdlib.OpenDB(*cfg)
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	if dir != "." {
		if fsys, err = fs.Sub(fsys, dir); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToRunMigrations, err)
		}
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSetDialect, err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRunMigrations, err)
	}

	log := logger.FromContext(ctx)
	for _, res := range results {
		log.Debug(LogMsgGoose, "source", res.Source.Path, "duration", res.Duration)
	}
	log.Info(LogMsgMigrationsApplied, "applied", len(results))
	return nil
}
