package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"console/internal/pkg/config"
	"console/pkg/logger"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type MigrateCommand string

const (
	MigrateUp      MigrateCommand = "up"
	MigrateDown    MigrateCommand = "down"
	MigrateVersion MigrateCommand = "version"
)

// Migrate applies the goose migrations found in fsys to the journal database.
// down rolls back a single migration.
func Migrate(ctx context.Context, log logger.Logger, cfg *config.Database, fsys fs.FS, command MigrateCommand) error {
	db, err := sql.Open("pgx", DSN(cfg))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("failed to close migration connection", logger.NewField("error", err))
		}
	}()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}

	switch command {
	case MigrateUp:
		results, err := provider.Up(ctx)
		if err != nil {
			return fmt.Errorf("migrate up: %w", err)
		}
		for _, r := range results {
			log.Info("migration applied",
				logger.NewField("version", r.Source.Version),
				logger.NewField("duration", r.Duration),
			)
		}

	case MigrateDown:
		result, err := provider.Down(ctx)
		if err != nil {
			return fmt.Errorf("migrate down: %w", err)
		}
		log.Info("migration rolled back", logger.NewField("version", result.Source.Version))

	case MigrateVersion:
	default:
		return fmt.Errorf("unknown migrate command %q", command)
	}

	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("database version: %w", err)
	}
	log.Info("journal schema version", logger.NewField("version", version))

	return nil
}
