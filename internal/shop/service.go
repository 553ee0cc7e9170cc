package shop

import (
	"context"
	"fmt"

	"github.com/osse101/RocksBot_Go/internal/domain"
	"github.com/osse101/RocksBot_Go/internal/logger"
	"github.com/osse101/RocksBot_Go/internal/metrics"
	"github.com/osse101/RocksBot_Go/internal/repository"
)

// Service defines the interface for catalog browsing, uploads and purchases
type Service interface {
	Applications() []string
	Categories(ctx context.Context, guildID int64, application string) ([]string, error)
	ItemsInCategory(ctx context.Context, guildID int64, application, category string) ([]domain.ShopItemSummary, error)
	ItemDetails(ctx context.Context, guildID, itemID int64) (*domain.ShopItem, error)
	CreatorUploads(ctx context.Context, guildID, creatorID int64) ([]domain.ShopItem, error)
	Upload(ctx context.Context, req UploadRequest) (*domain.ShopItem, error)
	Purchase(ctx context.Context, key domain.UserKey, itemID int64, d Deliverer) (*PurchaseResult, error)
	SetPrice(ctx context.Context, guildID, itemID, price int64) (*domain.ShopItem, error)
	RemoveItem(ctx context.Context, guildID, itemID int64) (*domain.ShopItem, error)
	CatalogSchema(ctx context.Context) ([]domain.ColumnInfo, error)
}

type service struct {
	progress repository.Progression
	catalog  repository.Catalog
	taxonomy Taxonomy
}

// NewService creates a new shop service
func NewService(progress repository.Progression, catalog repository.Catalog, taxonomy Taxonomy) Service {
	return &service{
		progress: progress,
		catalog:  catalog,
		taxonomy: taxonomy,
	}
}

func (s *service) Applications() []string {
	return append([]string(nil), s.taxonomy.Applications...)
}

// Categories lists the categories of an application that have at least one item.
func (s *service) Categories(ctx context.Context, guildID int64, application string) ([]string, error) {
	if !s.taxonomy.HasApplication(application) {
		return nil, fmt.Errorf(ErrMsgUnknownApplicationFmt, domain.ErrInvalidInput, application)
	}
	categories, err := s.catalog.ListCategories(ctx, guildID, application)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListFailedFmt, "categories", err)
	}
	return categories, nil
}

func (s *service) ItemsInCategory(ctx context.Context, guildID int64, application, category string) ([]domain.ShopItemSummary, error) {
	items, err := s.catalog.ListItemsInCategory(ctx, guildID, application, category)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListFailedFmt, "items", err)
	}
	return items, nil
}

// ItemDetails returns an item of guildID. Items filed under another guild
// are reported as domain.ErrItemNotFound.
func (s *service) ItemDetails(ctx context.Context, guildID, itemID int64) (*domain.ShopItem, error) {
	item, err := s.catalog.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetItemFailedFmt, itemID, err)
	}
	if item.GuildID != guildID {
		return nil, fmt.Errorf(ErrMsgGetItemFailedFmt, itemID, domain.ErrItemNotFound)
	}
	return item, nil
}

func (s *service) CreatorUploads(ctx context.Context, guildID, creatorID int64) ([]domain.ShopItem, error) {
	items, err := s.catalog.ListItemsByCreator(ctx, guildID, creatorID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListFailedFmt, "uploads", err)
	}
	return items, nil
}

// SetPrice changes the price of an item and returns the updated item.
func (s *service) SetPrice(ctx context.Context, guildID, itemID, price int64) (*domain.ShopItem, error) {
	if price < 0 {
		return nil, fmt.Errorf(ErrMsgNegativePriceFmt, domain.ErrInvalidInput, price)
	}
	item, err := s.ItemDetails(ctx, guildID, itemID)
	if err != nil {
		return nil, err
	}
	if err := s.catalog.UpdateItem(ctx, itemID, domain.ItemPatch{Price: &price}); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateItemFailedFmt, itemID, err)
	}
	item.Price = price
	logger.FromContext(ctx).Info(LogMsgPriceUpdated, "item_id", itemID, "price", price)
	return item, nil
}

// RemoveItem deletes an item and returns what was deleted.
func (s *service) RemoveItem(ctx context.Context, guildID, itemID int64) (*domain.ShopItem, error) {
	item, err := s.ItemDetails(ctx, guildID, itemID)
	if err != nil {
		return nil, err
	}
	if err := s.catalog.DeleteItem(ctx, itemID); err != nil {
		return nil, fmt.Errorf(ErrMsgDeleteItemFailedFmt, itemID, err)
	}
	logger.FromContext(ctx).Info(LogMsgItemRemoved, "item_id", itemID, "name", item.Name)
	return item, nil
}

func (s *service) CatalogSchema(ctx context.Context) ([]domain.ColumnInfo, error) {
	cols, err := s.catalog.ItemSchema(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailedFmt, err)
	}
	return cols, nil
}

func recordUpload(application string) {
	metrics.Uploads.WithLabelValues(application).Inc()
}
