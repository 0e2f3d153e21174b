package postgres

import (
	"context"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"prevoz/internal/pkg/config"
	"prevoz/migrations"
	"prevoz/pkg/logger"
)

// Migrate прогоняет embedded-миграции до актуальной версии.
func Migrate(ctx context.Context, log logger.Logger, cfg *config.Database) error {
	db, err := goose.OpenDBWithDriver("pgx", newDsn(cfg))
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			log.With(
				logger.NewField("error", closeErr),
			).Warn("close migration connection")
		}
	}()

	goose.SetBaseFS(migrations.FS)

	err = goose.SetDialect("postgres")
	if err != nil {
		return fmt.Errorf("set migration dialect: %w", err)
	}

	err = goose.UpContext(ctx, db, ".")
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("read migration version: %w", err)
	}

	log.With(
		logger.NewField("version", version),
	).Info("migrations applied")
	return nil
}
