package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jackc/pgx/v5/stdlib"

	"github.com/osse101/RocksBot_Go/internal/config"
	"github.com/osse101/RocksBot_Go/internal/database"
	"github.com/osse101/RocksBot_Go/internal/database/postgres"
	"github.com/osse101/RocksBot_Go/internal/database/sqlite"
	"github.com/osse101/RocksBot_Go/internal/repository"
)

// OpenStore connects the backend selected by DB_DRIVER and brings its
// schema up to date.
func OpenStore(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	switch cfg.DBDriver {
	case config.DBDriverSQLite:
		return openSQLite(ctx, cfg.SQLitePath)
	case config.DBDriverPostgres:
		return openPostgres(ctx, cfg)
	default:
		return nil, fmt.Errorf(ErrMsgUnknownDriverFmt, cfg.DBDriver)
	}
}

func openSQLite(ctx context.Context, path string) (repository.Store, error) {
	if path != sqlite.MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
		}
	}
	store, err := sqlite.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
	}
	slog.Info(LogMsgStoreOpened, "driver", config.DBDriverSQLite, "path", path)
	return store, nil
}

func openPostgres(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
	}

	// goose runs on database/sql; give it its own connection
	db := stdlib.OpenDB(*pool.Config().ConnConfig)
	defer db.Close()
	if err := database.Migrate(ctx, db, database.DriverPostgres); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
	}

	slog.Info(LogMsgStoreOpened, "driver", config.DBDriverPostgres, "host", cfg.DBHost, "db", cfg.DBName)
	return postgres.NewStore(pool), nil
}
