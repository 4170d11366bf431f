// Package sqlite contains the concrete implementation of the persistence layer using GORM over SQLite.
package sqlite

import (
	"context"
	"log/slog"

	"go.uber.org/fx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"accountd/config"
	"accountd/internal/domain/lifecycle"
	"accountd/internal/errors"
	"accountd/internal/infra/persistence/model"
)

const memoryDSN = ":memory:"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the SQLite-backed GORM client and ties its lifetime to the
// fx application: ping and migrate on start, close on stop.
func New(params Params) (*gorm.DB, error) {
	db, err := Open(params.Config.SQLite, params.Logger, params.Config.Env.Debug)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping SQLite")
			}

			return Migrate(db)
		},
		OnStop: func(_ context.Context) error {
			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open opens the database without lifecycle management. Tests use it directly.
// ":memory:" keeps the database in-process.
func Open(cfg *config.SQLiteConfig, logger *slog.Logger, debug bool) (*gorm.DB, error) {
	dsn := memoryDSN
	if cfg != nil && cfg.Path != "" {
		dsn = cfg.Path
	}
	if dsn != memoryDSN {
		// WAL keeps concurrent request handling from serializing on writers.
		dsn += "?_journal_mode=WAL&_foreign_keys=on"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		// Each use case issues at most one statement, so GORM's implicit
		// per-statement transaction buys nothing here.
		SkipDefaultTransaction: true,
		// Surface constraint violations as gorm.ErrDuplicatedKey and friends.
		TranslateError: true,
		Logger:         newGormSlogLogger(logger, debug),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite database")
	}

	return db, nil
}

// Migrate creates the users table if it does not exist. It is idempotent and
// runs once at process start, never on the request path.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.AccountModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate users table")
	}

	return nil
}
