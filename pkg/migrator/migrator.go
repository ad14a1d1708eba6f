package migrator

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/ghuser/boxjoy/pkg/logger"
)

// RunMigrations applies all pending goose migrations from files against db.
// It uses a goose Provider so no package-level goose state is touched.
func RunMigrations(ctx context.Context, db *sql.DB, files fs.FS, log logger.Logger) error {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, files)
	if err != nil {
		return fmt.Errorf("failed to create goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to up migrations: %w", err)
	}

	for _, r := range results {
		log.Info("migration applied",
			"version", r.Source.Version,
			"file", r.Source.Path,
			"duration_ms", r.Duration.Milliseconds(),
		)
	}
	return nil
}
