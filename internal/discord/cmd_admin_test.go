package discord

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RocksBot_Go/internal/domain"
	"github.com/osse101/RocksBot_Go/internal/economy"
)

var adminRoles = []string{"501"}

func TestAdminCommands_RequireAdminRole(t *testing.T) {
	for _, name := range []string{CmdGiveCoins, CmdRemoveCoins, CmdSetPrice, CmdRemoveItem, CmdDatabase} {
		t.Run(name, func(t *testing.T) {
			tc := SetupTestContext(t)

			err := runCommand(t, tc, commandInteraction(name, []string{"502"}))
			assert.ErrorIs(t, err, errMissingRole)
			_, data := tc.LastCallback(t)
			assert.Equal(t, MsgAdminOnly, data.text())
			assert.Empty(t, tc.Edits(t))
		})
	}
}

func TestGiveCoinsCommand(t *testing.T) {
	tc := SetupTestContext(t)
	target := domain.UserKey{UserID: 44, GuildID: 20}
	tc.Economy.On("GiveCoins", mock.Anything, target, int64(2500)).Return(&economy.BalanceChange{Before: 100, After: 2600}, nil)

	err := runCommand(t, tc, commandInteraction(CmdGiveCoins, adminRoles, userOption(OptUser, "44"), intOption(OptAmount, 2500)))
	require.NoError(t, err)
	assert.Equal(t, "Gave 2,500 coins to <@44>. Their new balance is 2,600.", tc.LastEdit(t).text())
	tc.Economy.AssertExpectations(t)
}

func TestRemoveCoinsCommand(t *testing.T) {
	tc := SetupTestContext(t)
	target := domain.UserKey{UserID: 44, GuildID: 20}
	tc.Economy.On("RemoveCoins", mock.Anything, target, int64(1000)).Return(&economy.BalanceChange{Before: 300, After: 0}, nil)

	err := runCommand(t, tc, commandInteraction(CmdRemoveCoins, adminRoles, userOption(OptUser, "44"), intOption(OptAmount, 1000)))
	require.NoError(t, err)
	assert.Equal(t, "Removed 1,000 coins from <@44>. Their new balance is 0.", tc.LastEdit(t).text())
}

func TestGiveCoinsCommand_RejectsNonPositive(t *testing.T) {
	tc := SetupTestContext(t)

	err := runCommand(t, tc, commandInteraction(CmdGiveCoins, adminRoles, userOption(OptUser, "44"), intOption(OptAmount, 0)))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, MsgAmountPositive, tc.LastEdit(t).text())
	tc.Economy.AssertNotCalled(t, "GiveCoins", mock.Anything, mock.Anything, mock.Anything)
}

func TestSetPriceCommand(t *testing.T) {
	t.Run("updates", func(t *testing.T) {
		tc := SetupTestContext(t)
		tc.Shop.On("SetPrice", mock.Anything, int64(20), int64(7), int64(1200)).Return(&domain.ShopItem{ID: 7, Price: 1200}, nil)

		err := runCommand(t, tc, commandInteraction(CmdSetPrice, adminRoles, intOption(OptItemID, 7), intOption(OptNewPrice, 1200)))
		require.NoError(t, err)
		assert.Equal(t, "Updated price for item ID `7` to **1,200** coins.", tc.LastEdit(t).text())
	})

	t.Run("negative price", func(t *testing.T) {
		tc := SetupTestContext(t)

		err := runCommand(t, tc, commandInteraction(CmdSetPrice, adminRoles, intOption(OptItemID, 7), intOption(OptNewPrice, -5)))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Equal(t, MsgPriceNonNegative, tc.LastEdit(t).text())
		tc.Shop.AssertNotCalled(t, "SetPrice", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown item", func(t *testing.T) {
		tc := SetupTestContext(t)
		tc.Shop.On("SetPrice", mock.Anything, int64(20), int64(9), int64(10)).Return(nil, fmt.Errorf("set price 9: %w", domain.ErrItemNotFound))

		err := runCommand(t, tc, commandInteraction(CmdSetPrice, adminRoles, intOption(OptItemID, 9), intOption(OptNewPrice, 10)))
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
		assert.Equal(t, "No item with ID `9` exists.", tc.LastEdit(t).text())
	})
}

func TestRemoveItemCommand(t *testing.T) {
	tc := SetupTestContext(t)
	tc.Shop.On("RemoveItem", mock.Anything, int64(20), int64(7)).Return(&domain.ShopItem{ID: 7}, nil)
	tc.Shop.On("RemoveItem", mock.Anything, int64(20), int64(8)).Return(nil, domain.ErrStorage)

	require.NoError(t, runCommand(t, tc, commandInteraction(CmdRemoveItem, adminRoles, intOption(OptItemID, 7))))
	assert.Equal(t, "Successfully removed item ID `7` from the shop.", tc.LastEdit(t).text())

	err := runCommand(t, tc, commandInteraction(CmdRemoveItem, adminRoles, intOption(OptItemID, 8)))
	assert.ErrorIs(t, err, domain.ErrStorage)
	assert.Equal(t, MsgRemoveItemFailed, tc.LastEdit(t).text())
}

func TestDatabaseCommand(t *testing.T) {
	t.Run("restricted channel", func(t *testing.T) {
		cfg := testConfig()
		cfg.Channels.DatabaseView = 888
		tc := SetupTestContextWithConfig(t, cfg)

		err := runCommand(t, tc, commandInteraction(CmdDatabase, adminRoles))
		assert.ErrorIs(t, err, domain.ErrChannelRestricted)
		_, data := tc.LastCallback(t)
		assert.Equal(t, "You can only use this command in the <#888> channel.", data.text())
		tc.Shop.AssertNotCalled(t, "CatalogSchema", mock.Anything)
	})

	t.Run("shows schema", func(t *testing.T) {
		cfg := testConfig()
		cfg.Channels.DatabaseView = 30
		tc := SetupTestContextWithConfig(t, cfg)
		tc.Shop.On("CatalogSchema", mock.Anything).Return([]domain.ColumnInfo{
			{Name: "item_id", Type: "INTEGER", NotNull: true, PrimaryKey: true},
		}, nil)

		require.NoError(t, runCommand(t, tc, commandInteraction(CmdDatabase, adminRoles)))
		embed := tc.LastEdit(t).Embeds[0]
		assert.Equal(t, MsgSchemaTitle, embed.Title)
		assert.Contains(t, embed.Description, "Column: item_id")
	})
}
