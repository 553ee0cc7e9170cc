package discord

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/RocksBot_Go/internal/domain"
	"github.com/osse101/RocksBot_Go/internal/economy"
	"github.com/osse101/RocksBot_Go/internal/progression"
	"github.com/osse101/RocksBot_Go/internal/shop"
)

// MockEconomyService implements economy.Service for testing
type MockEconomyService struct {
	mock.Mock
}

func (m *MockEconomyService) HandleMessage(ctx context.Context, key domain.UserKey, now time.Time) (*economy.MessageResult, error) {
	args := m.Called(ctx, key, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.MessageResult), args.Error(1)
}

func (m *MockEconomyService) ClaimDaily(ctx context.Context, key domain.UserKey, now time.Time) (*economy.DailyResult, error) {
	args := m.Called(ctx, key, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.DailyResult), args.Error(1)
}

func (m *MockEconomyService) GetProfile(ctx context.Context, key domain.UserKey) (*economy.Profile, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.Profile), args.Error(1)
}

func (m *MockEconomyService) GetDropRates(ctx context.Context, key domain.UserKey) (*progression.DropRates, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*progression.DropRates), args.Error(1)
}

func (m *MockEconomyService) GiveCoins(ctx context.Context, key domain.UserKey, amount int64) (*economy.BalanceChange, error) {
	args := m.Called(ctx, key, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.BalanceChange), args.Error(1)
}

func (m *MockEconomyService) RemoveCoins(ctx context.Context, key domain.UserKey, amount int64) (*economy.BalanceChange, error) {
	args := m.Called(ctx, key, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.BalanceChange), args.Error(1)
}

// MockShopService implements shop.Service for testing
type MockShopService struct {
	mock.Mock
}

func (m *MockShopService) Applications() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func (m *MockShopService) Categories(ctx context.Context, guildID int64, application string) ([]string, error) {
	args := m.Called(ctx, guildID, application)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockShopService) ItemsInCategory(ctx context.Context, guildID int64, application, category string) ([]domain.ShopItemSummary, error) {
	args := m.Called(ctx, guildID, application, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShopItemSummary), args.Error(1)
}

func (m *MockShopService) ItemDetails(ctx context.Context, guildID, itemID int64) (*domain.ShopItem, error) {
	args := m.Called(ctx, guildID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShopItem), args.Error(1)
}

func (m *MockShopService) CreatorUploads(ctx context.Context, guildID, creatorID int64) ([]domain.ShopItem, error) {
	args := m.Called(ctx, guildID, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShopItem), args.Error(1)
}

func (m *MockShopService) Upload(ctx context.Context, req shop.UploadRequest) (*domain.ShopItem, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShopItem), args.Error(1)
}

func (m *MockShopService) Purchase(ctx context.Context, key domain.UserKey, itemID int64, d shop.Deliverer) (*shop.PurchaseResult, error) {
	args := m.Called(ctx, key, itemID, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.PurchaseResult), args.Error(1)
}

func (m *MockShopService) SetPrice(ctx context.Context, guildID, itemID, price int64) (*domain.ShopItem, error) {
	args := m.Called(ctx, guildID, itemID, price)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShopItem), args.Error(1)
}

func (m *MockShopService) RemoveItem(ctx context.Context, guildID, itemID int64) (*domain.ShopItem, error) {
	args := m.Called(ctx, guildID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShopItem), args.Error(1)
}

func (m *MockShopService) CatalogSchema(ctx context.Context) ([]domain.ColumnInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ColumnInfo), args.Error(1)
}
