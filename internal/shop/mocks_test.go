package shop

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/RocksBot_Go/internal/domain"
)

// MockProgression implements repository.Progression for testing
type MockProgression struct {
	mock.Mock
}

func (m *MockProgression) GetOrCreate(ctx context.Context, key domain.UserKey) (*domain.UserProgression, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	u := *args.Get(0).(*domain.UserProgression)
	return &u, args.Error(1)
}

func (m *MockProgression) PartialUpdate(ctx context.Context, key domain.UserKey, patch domain.ProgressionPatch) error {
	args := m.Called(ctx, key, patch)
	return args.Error(0)
}

// MockCatalog implements repository.Catalog for testing
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) InsertItem(ctx context.Context, item domain.ShopItem) (int64, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalog) GetItemByID(ctx context.Context, itemID int64) (*domain.ShopItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	item := *args.Get(0).(*domain.ShopItem)
	return &item, args.Error(1)
}

func (m *MockCatalog) ListItemsByCreator(ctx context.Context, guildID, creatorID int64) ([]domain.ShopItem, error) {
	args := m.Called(ctx, guildID, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShopItem), args.Error(1)
}

func (m *MockCatalog) ListCategories(ctx context.Context, guildID int64, application string) ([]string, error) {
	args := m.Called(ctx, guildID, application)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCatalog) ListItemsInCategory(ctx context.Context, guildID int64, application, category string) ([]domain.ShopItemSummary, error) {
	args := m.Called(ctx, guildID, application, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShopItemSummary), args.Error(1)
}

func (m *MockCatalog) UpdateItem(ctx context.Context, itemID int64, patch domain.ItemPatch) error {
	args := m.Called(ctx, itemID, patch)
	return args.Error(0)
}

func (m *MockCatalog) DeleteItem(ctx context.Context, itemID int64) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *MockCatalog) ItemSchema(ctx context.Context) ([]domain.ColumnInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ColumnInfo), args.Error(1)
}

// MockDeliverer implements Deliverer for testing
type MockDeliverer struct {
	mock.Mock
}

func (m *MockDeliverer) Deliver(ctx context.Context, buyerID int64, item domain.ShopItem) error {
	args := m.Called(ctx, buyerID, item)
	return args.Error(0)
}
