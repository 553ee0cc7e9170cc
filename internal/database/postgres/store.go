package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/RocksBot_Go/internal/database"
	"github.com/osse101/RocksBot_Go/internal/domain"
	"github.com/osse101/RocksBot_Go/internal/logger"
	"github.com/osse101/RocksBot_Go/internal/repository"
)

// Querier is the subset of *pgxpool.Pool the store needs.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// Store implements repository.Store on PostgreSQL.
type Store struct {
	db Querier
	q  database.Queries
}

var _ repository.Store = (*Store)(nil)

// NewStore wraps a pool (or any Querier)
func NewStore(db Querier) *Store {
	return &Store{db: db, q: database.NewQueries(sq.Dollar)}
}

// Ping checks connectivity
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Close releases the pool
func (s *Store) Close() error {
	s.db.Close()
	return nil
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
	if _, err := s.db.Exec(ctx, insertSQL, insertArgs...); err != nil {
		return nil, storageErr(ErrMsgFailedToInsertProgression, err)
	}

	selectSQL, selectArgs, err := s.q.SelectProgression(key)
	if err != nil {
		return nil, storageErr(database.ErrMsgFailedToBuildQuery, err)
	}
	u, err := database.ScanProgression(s.db.QueryRow(ctx, selectSQL, selectArgs...))
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
	sql, args, err := s.q.UpdateProgression(key, patch)
	if err != nil {
		return storageErr(database.ErrMsgFailedToBuildQuery, err)
	}
	tag, err := s.db.Exec(ctx, sql, args...)
	if err != nil {
		return storageErr(ErrMsgFailedToUpdateProgression, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrUserNotFound, key)
	}
	return nil
}

// InsertItem adds a catalog row and returns the generated id.
func (s *Store) InsertItem(ctx context.Context, item domain.ShopItem) (int64, error) {
	sql, args, err := s.q.InsertItem(item)
	if err != nil {
		return 0, storageErr(database.ErrMsgFailedToBuildQuery, err)
	}
	var id int64
	if err := s.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, storageErr(ErrMsgFailedToInsertItem, err)
	}
	return id, nil
}

// GetItemByID returns domain.ErrItemNotFound when no row matches.
func (s *Store) GetItemByID(ctx context.Context, itemID int64) (*domain.ShopItem, error) {
	sql, args, err := s.q.SelectItem(itemID)
	if err != nil {
		return nil, storageErr(database.ErrMsgFailedToBuildQuery, err)
	}
	item, err := database.ScanItem(s.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", domain.ErrItemNotFound, itemID)
		}
		return nil, storageErr(ErrMsgFailedToGetItem, err)
	}
	return item, nil
}

// ListItemsByCreator lists a creator's uploads in one guild
func (s *Store) ListItemsByCreator(ctx context.Context, guildID, creatorID int64) ([]domain.ShopItem, error) {
	sql, args, err := s.q.SelectItemsByCreator(guildID, creatorID)
	if err != nil {
		return nil, storageErr(database.ErrMsgFailedToBuildQuery, err)
	}
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, storageErr(ErrMsgFailedToListItems, err)
	}
	defer rows.Close()

	items := []domain.ShopItem{}
	for rows.Next() {
		item, err := database.ScanItem(rows)
		if err != nil {
			return nil, storageErr(database.ErrMsgFailedToScanRow, err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(ErrMsgFailedToListItems, err)
	}
	return items, nil
}

// ListCategories lists the distinct categories of an application
func (s *Store) ListCategories(ctx context.Context, guildID int64, application string) ([]string, error) {
	sql, args, err := s.q.SelectCategories(guildID, application)
	if err != nil {
		return nil, storageErr(database.ErrMsgFailedToBuildQuery, err)
	}
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, storageErr(ErrMsgFailedToListCategories, err)
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, storageErr(database.ErrMsgFailedToScanRow, err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(ErrMsgFailedToListCategories, err)
	}
	return categories, nil
}

// ListItemsInCategory lists id, name and price of the items in one category
func (s *Store) ListItemsInCategory(ctx context.Context, guildID int64, application, category string) ([]domain.ShopItemSummary, error) {
	sql, args, err := s.q.SelectItemsInCategory(guildID, application, category)
	if err != nil {
		return nil, storageErr(database.ErrMsgFailedToBuildQuery, err)
	}
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, storageErr(ErrMsgFailedToListItems, err)
	}
	defer rows.Close()

	items := []domain.ShopItemSummary{}
	for rows.Next() {
		summary, err := database.ScanSummary(rows)
		if err != nil {
			return nil, storageErr(database.ErrMsgFailedToScanRow, err)
		}
		items = append(items, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(ErrMsgFailedToListItems, err)
	}
	return items, nil
}

// UpdateItem writes only the fields named by patch.
func (s *Store) UpdateItem(ctx context.Context, itemID int64, patch domain.ItemPatch) error {
	if err := patch.Validate(); err != nil {
		return err
	}
	if patch.IsEmpty() {
		return nil
	}
	sql, args, err := s.q.UpdateItem(itemID, patch)
	if err != nil {
		return storageErr(database.ErrMsgFailedToBuildQuery, err)
	}
	tag, err := s.db.Exec(ctx, sql, args...)
	if err != nil {
		return storageErr(ErrMsgFailedToUpdateItem, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %d", domain.ErrItemNotFound, itemID)
	}
	return nil
}

// DeleteItem removes one catalog row
func (s *Store) DeleteItem(ctx context.Context, itemID int64) error {
	sql, args, err := s.q.DeleteItem(itemID)
	if err != nil {
		return storageErr(database.ErrMsgFailedToBuildQuery, err)
	}
	tag, err := s.db.Exec(ctx, sql, args...)
	if err != nil {
		return storageErr(ErrMsgFailedToDeleteItem, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %d", domain.ErrItemNotFound, itemID)
	}
	return nil
}

// ItemSchema describes the shop_items columns from the system catalog.
func (s *Store) ItemSchema(ctx context.Context) ([]domain.ColumnInfo, error) {
	rows, err := s.db.Query(ctx, itemSchemaSQL, database.TableItems)
	if err != nil {
		return nil, storageErr(ErrMsgFailedToReadSchema, err)
	}
	defer rows.Close()

	cols := []domain.ColumnInfo{}
	for rows.Next() {
		var c domain.ColumnInfo
		if err := rows.Scan(&c.Name, &c.Type, &c.NotNull, &c.PrimaryKey); err != nil {
			return nil, storageErr(database.ErrMsgFailedToScanRow, err)
		}
		cols = append(cols, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(ErrMsgFailedToReadSchema, err)
	}
	return cols, nil
}
