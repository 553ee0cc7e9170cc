// Package sqlite provides the embedded single-file backend.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"

	"github.com/osse101/RocksBot_Go/internal/database"
	"github.com/osse101/RocksBot_Go/internal/domain"
	"github.com/osse101/RocksBot_Go/internal/logger"
	"github.com/osse101/RocksBot_Go/internal/repository"
)

// Store implements repository.Store on SQLite.
type Store struct {
	db *sql.DB
	q  database.Queries
}

var _ repository.Store = (*Store)(nil)

// Open opens (or creates) the database at path and applies migrations.
// ":memory:" opens a private in-memory database.
func Open(ctx context.Context, path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New(ErrMsgPathRequired)
	}
	dsn := path
	if path != MemoryPath {
		dsn = filepath.Clean(path) + DSNPragmas
	}

	db, err := sql.Open(database.DriverSQLite, dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToOpen, err)
	}
	// One writer at a time; also keeps ":memory:" on a single shared connection.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", database.ErrMsgFailedToPingDatabase, err)
	}
	if err := database.Migrate(ctx, db, database.DriverSQLite); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db, q: database.NewQueries(sq.Question)}, nil
}

// DB exposes the handle for migration tooling
func (s *Store) DB() *sql.DB {
	return s.db
}

// Ping checks the handle is usable
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the handle
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func storageErr(msg string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrStorage, msg, err)
}

// GetOrCreate inserts a default row when absent and returns the stored row.
func (s *Store) GetOrCreate(ctx context.Context, key domain.UserKey) (*domain.UserProgression, error) {
	insertSQL, insertArgs, err := s.q.InsertProgressionIfAbsent(key)
	if err != nil {
		return nil, storageErr(database.ErrMsgFailedToBuildQuery, err)
	}
	if _, err := s.db.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
		return nil, storageErr(ErrMsgFailedToInsertProgression, err)
	}

	selectSQL, selectArgs, err := s.q.SelectProgression(key)
	if err != nil {
		return nil, storageErr(database.ErrMsgFailedToBuildQuery, err)
	}
	u, err := database.ScanProgression(s.db.QueryRowContext(ctx, selectSQL, selectArgs...))
	if err != nil {
		return nil, storageErr(ErrMsgFailedToGetProgression, err)
	}
	logger.FromContext(ctx).Debug(LogMsgProgressionLoaded, "user", key.String())
	return u, nil
}

// PartialUpdate writes only the fields named by patch.
func (s *Store) PartialUpdate(ctx context.Context, key domain.UserKey, patch domain.ProgressionPatch) error {
	if err := patch.Validate(); err != nil {
		return err
	}
	if patch.IsEmpty() {
		return nil
	}
	query, args, err := s.q.UpdateProgression(key, patch)
	if err != nil {
		return storageErr(database.ErrMsgFailedToBuildQuery, err)
	}
	n, err := s.exec(ctx, query, args)
	if err != nil {
		return storageErr(ErrMsgFailedToUpdateProgression, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", domain.ErrUserNotFound, key)
	}
	return nil
}

func (s *Store) exec(ctx context.Context, query string, args []any) (int64, error) {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// InsertItem adds a catalog row and returns the generated id.
func (s *Store) InsertItem(ctx context.Context, item domain.ShopItem) (int64, error) {
	query, args, err := s.q.InsertItem(item)
	if err != nil {
		return 0, storageErr(database.ErrMsgFailedToBuildQuery, err)
	}
	var id int64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, storageErr(ErrMsgFailedToInsertItem, err)
	}
	return id, nil
}

// GetItemByID returns domain.ErrItemNotFound when no row matches.
func (s *Store) GetItemByID(ctx context.Context, itemID int64) (*domain.ShopItem, error) {
	query, args, err := s.q.SelectItem(itemID)
	if err != nil {
		return nil, storageErr(database.ErrMsgFailedToBuildQuery, err)
	}
	item, err := database.ScanItem(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", domain.ErrItemNotFound, itemID)
		}
		return nil, storageErr(ErrMsgFailedToGetItem, err)
	}
	return item, nil
}

// ListItemsByCreator lists a creator's uploads in one guild
func (s *Store) ListItemsByCreator(ctx context.Context, guildID, creatorID int64) ([]domain.ShopItem, error) {
	query, args, err := s.q.SelectItemsByCreator(guildID, creatorID)
	if err != nil {
		return nil, storageErr(database.ErrMsgFailedToBuildQuery, err)
	}
	items := []domain.ShopItem{}
	err = s.each(ctx, query, args, func(rows *sql.Rows) error {
		item, err := database.ScanItem(rows)
		if err != nil {
			return err
		}
		items = append(items, *item)
		return nil
	})
	if err != nil {
		return nil, storageErr(ErrMsgFailedToListItems, err)
	}
	return items, nil
}

// ListCategories lists the distinct categories of an application
func (s *Store) ListCategories(ctx context.Context, guildID int64, application string) ([]string, error) {
	query, args, err := s.q.SelectCategories(guildID, application)
	if err != nil {
		return nil, storageErr(database.ErrMsgFailedToBuildQuery, err)
	}
	categories := []string{}
	err = s.each(ctx, query, args, func(rows *sql.Rows) error {
		var c string
		if err := rows.Scan(&c); err != nil {
			return err
		}
		categories = append(categories, c)
		return nil
	})
	if err != nil {
		return nil, storageErr(ErrMsgFailedToListCategories, err)
	}
	return categories, nil
}

// ListItemsInCategory lists id, name and price of the items in one category
func (s *Store) ListItemsInCategory(ctx context.Context, guildID int64, application, category string) ([]domain.ShopItemSummary, error) {
	query, args, err := s.q.SelectItemsInCategory(guildID, application, category)
	if err != nil {
		return nil, storageErr(database.ErrMsgFailedToBuildQuery, err)
	}
	items := []domain.ShopItemSummary{}
	err = s.each(ctx, query, args, func(rows *sql.Rows) error {
		summary, err := database.ScanSummary(rows)
		if err != nil {
			return err
		}
		items = append(items, summary)
		return nil
	})
	if err != nil {
		return nil, storageErr(ErrMsgFailedToListItems, err)
	}
	return items, nil
}

func (s *Store) each(ctx context.Context, query string, args []any, fn func(*sql.Rows) error) error {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		if err := fn(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

// UpdateItem writes only the fields named by patch.
func (s *Store) UpdateItem(ctx context.Context, itemID int64, patch domain.ItemPatch) error {
	if err := patch.Validate(); err != nil {
		return err
	}
	if patch.IsEmpty() {
		return nil
	}
	query, args, err := s.q.UpdateItem(itemID, patch)
	if err != nil {
		return storageErr(database.ErrMsgFailedToBuildQuery, err)
	}
	n, err := s.exec(ctx, query, args)
	if err != nil {
		return storageErr(ErrMsgFailedToUpdateItem, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %d", domain.ErrItemNotFound, itemID)
	}
	return nil
}

// DeleteItem removes one catalog row
func (s *Store) DeleteItem(ctx context.Context, itemID int64) error {
	query, args, err := s.q.DeleteItem(itemID)
	if err != nil {
		return storageErr(database.ErrMsgFailedToBuildQuery, err)
	}
	n, err := s.exec(ctx, query, args)
	if err != nil {
		return storageErr(ErrMsgFailedToDeleteItem, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %d", domain.ErrItemNotFound, itemID)
	}
	return nil
}

// ItemSchema reads PRAGMA table_info for shop_items.
func (s *Store) ItemSchema(ctx context.Context) ([]domain.ColumnInfo, error) {
	cols := []domain.ColumnInfo{}
	err := s.each(ctx, itemSchemaSQL, nil, func(rows *sql.Rows) error {
		var (
			cid       int
			c         domain.ColumnInfo
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &c.Name, &c.Type, &notNull, &dfltValue, &pk); err != nil {
			return err
		}
		c.NotNull = notNull != 0
		c.PrimaryKey = pk != 0
		cols = append(cols, c)
		return nil
	})
	if err != nil {
		return nil, storageErr(ErrMsgFailedToReadSchema, err)
	}
	return cols, nil
}
