package repository

import (
	"context"

	"github.com/osse101/RocksBot_Go/internal/domain"
)

// Catalog defines the interface for shop item persistence.
type Catalog interface {
	InsertItem(ctx context.Context, item domain.ShopItem) (int64, error)
	// GetItemByID returns domain.ErrItemNotFound when absent
	GetItemByID(ctx context.Context, itemID int64) (*domain.ShopItem, error)
	ListItemsByCreator(ctx context.Context, guildID, creatorID int64) ([]domain.ShopItem, error)
	ListCategories(ctx context.Context, guildID int64, application string) ([]string, error)
	ListItemsInCategory(ctx context.Context, guildID int64, application, category string) ([]domain.ShopItemSummary, error)
	UpdateItem(ctx context.Context, itemID int64, patch domain.ItemPatch) error
	DeleteItem(ctx context.Context, itemID int64) error
	ItemSchema(ctx context.Context) ([]domain.ColumnInfo, error)
}

// Store bundles every repository a backend provides.
type Store interface {
	Progression
	Catalog
	Ping(ctx context.Context) error
	Close() error
}
