package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RocksBot_Go/internal/domain"
	"github.com/osse101/RocksBot_Go/internal/shop"
)

var sessionIDPattern = regexp.MustCompile(`shop_app\|([0-9a-f-]{36})\|`)

func testItem() *domain.ShopItem {
	return &domain.ShopItem{
		ID:          7,
		CreatorID:   77,
		GuildID:     20,
		Name:        "Glow Pack",
		Application: "Alight Motion",
		Category:    "CC",
		Price:       150,
		ProductLink: "https://files.example/glow",
		Previews:    []string{"https://img.example/1.png", "https://img.example/2.png"},
	}
}

func shopConfig() Config {
	cfg := testConfig()
	cfg.Channels = Channels{Shop: 30, PurchaseLog: 61, AdminLog: 62}
	return cfg
}

// startShop runs /shop and returns the flow id carried by the menu buttons
func startShop(t *testing.T, tc *TestContext) string {
	t.Helper()
	tc.Shop.On("Applications").Return([]string{"Alight Motion", "After Effects"})

	require.NoError(t, runCommand(t, tc, commandInteraction(CmdShop, nil)))

	calls := tc.Requests(http.MethodPost, "/callback")
	require.NotEmpty(t, calls)
	m := sessionIDPattern.FindStringSubmatch(calls[len(calls)-1].Body)
	require.Len(t, m, 2, "menu buttons must carry the flow id")
	return m[1]
}

func runComponent(t *testing.T, tc *TestContext, i *discordgo.InteractionCreate) error {
	t.Helper()
	prefix, _, _ := strings.Cut(i.MessageComponentData().CustomID, CustomIDSeparator)
	handler, ok := tc.Bot.Registry.Components[prefix]
	require.True(t, ok, "component not registered: %s", prefix)
	return handler(context.Background(), tc.Session, i)
}

func TestShopFlow_Purchase(t *testing.T) {
	tc := SetupTestContextWithConfig(t, shopConfig())
	item := testItem()
	sid := startShop(t, tc)

	typ, data := tc.LastCallback(t)
	assert.Equal(t, int(discordgo.InteractionResponseChannelMessageWithSource), typ)
	assert.Equal(t, MsgShopWelcome, data.text())
	assert.Equal(t, int(discordgo.MessageFlagsEphemeral), data.Flags)
	assert.Contains(t, string(data.Components), "After Effects")

	// application
	tc.Shop.On("Categories", mock.Anything, int64(20), "Alight Motion").Return([]string{"CC", "FX"}, nil)
	require.NoError(t, runComponent(t, tc, componentInteraction(testUserID, "shop_app|"+sid+"|Alight Motion")))
	typ, data = tc.LastCallback(t)
	assert.Equal(t, int(discordgo.InteractionResponseUpdateMessage), typ)
	assert.Equal(t, "Please select a category for **Alight Motion**.", data.text())
	assert.Contains(t, string(data.Components), "shop_cat|"+sid)

	// category
	tc.Shop.On("ItemsInCategory", mock.Anything, int64(20), "Alight Motion", "CC").
		Return([]domain.ShopItemSummary{{ID: 7, Name: "Glow Pack", Price: 1500}}, nil)
	require.NoError(t, runComponent(t, tc, componentInteraction(testUserID, "shop_cat|"+sid, "CC")))
	_, data = tc.LastCallback(t)
	assert.Equal(t, "Showing items for **CC**. Please select an item:", data.text())
	assert.Contains(t, string(data.Components), "Glow Pack (1,500 coins)")
	assert.Contains(t, string(data.Components), `"value":"7"`)

	// item
	tc.Shop.On("ItemDetails", mock.Anything, int64(20), int64(7)).Return(item, nil)
	require.NoError(t, runComponent(t, tc, componentInteraction(testUserID, "shop_item|"+sid, "7")))
	_, data = tc.LastCallback(t)
	require.Len(t, data.Embeds, 1)
	assert.Equal(t, "Confirm Purchase: Glow Pack", data.Embeds[0].Title)
	assert.Equal(t, "Are you sure you want to buy this for **150** coins?", data.Embeds[0].Description)
	assert.Equal(t, "https://img.example/1.png", data.Embeds[0].Image.URL)
	assert.Contains(t, string(data.Components), "shop_buy|"+sid)

	// buy
	tc.Shop.On("Purchase", mock.Anything, testKey, int64(7), mock.Anything).
		Run(func(args mock.Arguments) {
			d := args.Get(3).(shop.Deliverer)
			require.NoError(t, d.Deliver(args.Get(0).(context.Context), 10, *item))
		}).
		Return(&shop.PurchaseResult{Item: *item, BalanceBefore: 1000, BalanceAfter: 850}, nil)
	require.NoError(t, runComponent(t, tc, componentInteraction(testUserID, "shop_buy|"+sid)))

	typ, data = tc.LastCallback(t)
	assert.Equal(t, int(discordgo.InteractionResponseUpdateMessage), typ)
	assert.Equal(t, MsgProcessing, data.text())
	assert.JSONEq(t, `[]`, string(data.Components), "buttons are stripped before purchasing")
	assert.Equal(t, "Purchase complete! I've sent the link for **Glow Pack** to your DMs.", tc.LastEdit(t).text())

	dms := tc.ChannelMessages(t, "dm-1")
	require.Len(t, dms, 1)
	require.Len(t, dms[0].Embeds, 1)
	assert.Equal(t, MsgDeliveryTitle, dms[0].Embeds[0].Title)
	assert.Equal(t, "[Click Here](https://files.example/glow)", dms[0].Embeds[0].Fields[0].Value)

	public := tc.ChannelMessages(t, "61")
	require.Len(t, public, 1)
	assert.Contains(t, public[0].Embeds[0].Description, "<@10>")
	assert.Contains(t, public[0].Embeds[0].Description, "Glow Pack")

	admin := tc.ChannelMessages(t, "62")
	require.Len(t, admin, 1)
	fields := admin[0].Embeds[0].Fields
	assert.Equal(t, "Tester (`10`)", fields[0].Value)
	assert.Equal(t, "Glow Pack (`7`)", fields[1].Value)
	assert.Equal(t, "maker (`77`)", fields[2].Value)
	assert.Equal(t, "1,000 coins", fields[4].Value)
	assert.Equal(t, "850 coins", fields[5].Value)
	assert.Equal(t, "[Main](https://img.example/1.png) | [Extra 1](https://img.example/2.png)", fields[6].Value)

	// the flow is finished; a second click finds nothing
	err := runComponent(t, tc, componentInteraction(testUserID, "shop_buy|"+sid))
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
	_, data = tc.LastCallback(t)
	assert.Equal(t, MsgSessionExpired, data.text())
	tc.Shop.AssertNumberOfCalls(t, "Purchase", 1)
}

func TestShopCommand_ChannelRestricted(t *testing.T) {
	cfg := shopConfig()
	cfg.Channels.Shop = 999
	tc := SetupTestContextWithConfig(t, cfg)

	err := runCommand(t, tc, commandInteraction(CmdShop, nil))
	assert.ErrorIs(t, err, domain.ErrChannelRestricted)
	_, data := tc.LastCallback(t)
	assert.Equal(t, "You can only use this command in the <#999> channel.", data.text())
	tc.Shop.AssertNotCalled(t, "Applications")
}

func TestShopFlow_Rejections(t *testing.T) {
	t.Run("another user's menu", func(t *testing.T) {
		tc := SetupTestContextWithConfig(t, shopConfig())
		sid := startShop(t, tc)

		err := runComponent(t, tc, componentInteraction("11", "shop_app|"+sid+"|Alight Motion"))
		assert.ErrorIs(t, err, domain.ErrInvalidSelection)
		typ, data := tc.LastCallback(t)
		assert.Equal(t, int(discordgo.InteractionResponseChannelMessageWithSource), typ)
		assert.Equal(t, MsgNotYourMenu, data.text())
		tc.Shop.AssertNotCalled(t, "Categories", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown flow", func(t *testing.T) {
		tc := SetupTestContextWithConfig(t, shopConfig())

		err := runComponent(t, tc, componentInteraction(testUserID, "shop_app|missing|Alight Motion"))
		assert.ErrorIs(t, err, domain.ErrSessionExpired)
		_, data := tc.LastCallback(t)
		assert.Equal(t, MsgSessionExpired, data.text())
	})

	t.Run("idle flow expires", func(t *testing.T) {
		tc := SetupTestContextWithConfig(t, shopConfig())
		sid := startShop(t, tc)
		tc.Bot.now = func() time.Time { return time.Now().Add(2 * time.Minute) }

		err := runComponent(t, tc, componentInteraction(testUserID, "shop_app|"+sid+"|Alight Motion"))
		assert.ErrorIs(t, err, domain.ErrSessionExpired)
		typ, data := tc.LastCallback(t)
		assert.Equal(t, int(discordgo.InteractionResponseUpdateMessage), typ)
		assert.Equal(t, MsgSessionExpired, data.text())
		assert.JSONEq(t, `[]`, string(data.Components))
	})

	t.Run("stale click on an earlier menu", func(t *testing.T) {
		tc := SetupTestContextWithConfig(t, shopConfig())
		sid := startShop(t, tc)
		tc.Shop.On("Categories", mock.Anything, int64(20), "Alight Motion").Return([]string{"CC"}, nil)
		require.NoError(t, runComponent(t, tc, componentInteraction(testUserID, "shop_app|"+sid+"|Alight Motion")))

		err := runComponent(t, tc, componentInteraction(testUserID, "shop_app|"+sid+"|After Effects"))
		assert.ErrorIs(t, err, domain.ErrInvalidSelection)
		_, data := tc.LastCallback(t)
		assert.Equal(t, MsgStaleSelection, data.text())
	})

	t.Run("empty category shows placeholder", func(t *testing.T) {
		tc := SetupTestContextWithConfig(t, shopConfig())
		sid := startShop(t, tc)
		tc.Shop.On("Categories", mock.Anything, int64(20), "After Effects").Return([]string{}, nil)

		require.NoError(t, runComponent(t, tc, componentInteraction(testUserID, "shop_app|"+sid+"|After Effects")))
		_, data := tc.LastCallback(t)
		assert.Contains(t, string(data.Components), MsgNoCategories)
		assert.Contains(t, string(data.Components), `"value":"`+shop.PlaceholderValue+`"`)

		err := runComponent(t, tc, componentInteraction(testUserID, "shop_cat|"+sid, shop.PlaceholderValue))
		assert.ErrorIs(t, err, domain.ErrInvalidSelection)
		_, data = tc.LastCallback(t)
		assert.Equal(t, MsgNoCategoriesSelect, data.text())
		tc.Shop.AssertNotCalled(t, "ItemsInCategory", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("item removed before confirmation", func(t *testing.T) {
		tc := SetupTestContextWithConfig(t, shopConfig())
		sid := startShop(t, tc)
		tc.Shop.On("Categories", mock.Anything, int64(20), "Alight Motion").Return([]string{"CC"}, nil)
		tc.Shop.On("ItemsInCategory", mock.Anything, int64(20), "Alight Motion", "CC").Return([]domain.ShopItemSummary{{ID: 7}}, nil)
		tc.Shop.On("ItemDetails", mock.Anything, int64(20), int64(7)).Return(nil, fmt.Errorf("get item 7: %w", domain.ErrItemNotFound))

		require.NoError(t, runComponent(t, tc, componentInteraction(testUserID, "shop_app|"+sid+"|Alight Motion")))
		require.NoError(t, runComponent(t, tc, componentInteraction(testUserID, "shop_cat|"+sid, "CC")))
		err := runComponent(t, tc, componentInteraction(testUserID, "shop_item|"+sid, "7"))
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
		_, data := tc.LastCallback(t)
		assert.Equal(t, MsgItemNotFound, data.text())
	})
}

func TestPurchaseFailureMessage(t *testing.T) {
	tc := SetupTestContext(t)
	tc.Shop.On("ItemDetails", mock.Anything, int64(20), int64(7)).Return(&domain.ShopItem{ID: 7, Price: 2500}, nil)
	tc.Shop.On("ItemDetails", mock.Anything, int64(20), int64(8)).Return(nil, domain.ErrItemNotFound)

	deliveryErr := fmt.Errorf("%w: item 7", domain.ErrDeliveryFailed)
	refundErr := fmt.Errorf("%w: 150 coins", shop.ErrRefundFailed)

	tests := []struct {
		name   string
		itemID int64
		err    error
		want   string
	}{
		{"insufficient funds quotes the price", 7, fmt.Errorf("%w: need 2500", domain.ErrInsufficientFunds), "You don't have enough coins! You need 2,500 coins."},
		{"insufficient funds without item", 8, domain.ErrInsufficientFunds, MsgInsufficientFunds},
		{"item gone", 7, fmt.Errorf("get item: %w", domain.ErrItemNotFound), MsgItemGone},
		{"delivery refunded", 7, deliveryErr, MsgDMRefunded},
		{"refund failed", 7, errors.Join(deliveryErr, refundErr), MsgRefundFailed},
		{"storage", 7, domain.ErrStorage, MsgPurchaseFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tc.Bot.purchaseFailureMessage(context.Background(), 20, tt.itemID, tt.err))
		})
	}
}

func TestShopBuy_DeliveryRefunded(t *testing.T) {
	tc := SetupTestContextWithConfig(t, shopConfig())
	sid := startShop(t, tc)
	tc.Shop.On("Categories", mock.Anything, int64(20), "Alight Motion").Return([]string{"CC"}, nil)
	tc.Shop.On("ItemsInCategory", mock.Anything, int64(20), "Alight Motion", "CC").Return([]domain.ShopItemSummary{{ID: 7}}, nil)
	tc.Shop.On("ItemDetails", mock.Anything, int64(20), int64(7)).Return(testItem(), nil)
	tc.Shop.On("Purchase", mock.Anything, testKey, int64(7), mock.Anything).
		Return(nil, fmt.Errorf("%w: closed DMs", domain.ErrDeliveryFailed))

	require.NoError(t, runComponent(t, tc, componentInteraction(testUserID, "shop_app|"+sid+"|Alight Motion")))
	require.NoError(t, runComponent(t, tc, componentInteraction(testUserID, "shop_cat|"+sid, "CC")))
	require.NoError(t, runComponent(t, tc, componentInteraction(testUserID, "shop_item|"+sid, "7")))

	err := runComponent(t, tc, componentInteraction(testUserID, "shop_buy|"+sid))
	assert.ErrorIs(t, err, domain.ErrDeliveryFailed)
	assert.Equal(t, MsgDMRefunded, tc.LastEdit(t).text())
	assert.Empty(t, tc.ChannelMessages(t, "61"), "failed purchases are not logged")
}

func TestDMDeliverer(t *testing.T) {
	t.Run("sends the link", func(t *testing.T) {
		tc := SetupTestContext(t)
		err := tc.Bot.dmDeliverer(tc.Session).Deliver(context.Background(), 10, *testItem())
		require.NoError(t, err)

		opens := tc.Requests(http.MethodPost, "/users/@me/channels")
		require.Len(t, opens, 1)
		assert.Contains(t, opens[0].Body, `"recipient_id":"10"`)
		dms := tc.ChannelMessages(t, "dm-1")
		require.Len(t, dms, 1)
		assert.Equal(t, "DEI! Tambi! thank you for purchasing **Glow Pack**.", dms[0].Embeds[0].Description)
	})

	t.Run("closed DMs fail delivery", func(t *testing.T) {
		tc := SetupTestContext(t)
		tc.FailPath("/channels/dm-1/messages", http.StatusForbidden)

		err := tc.Bot.dmDeliverer(tc.Session).Deliver(context.Background(), 10, *testItem())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to send DM")
	})

	t.Run("DM channel unavailable", func(t *testing.T) {
		tc := SetupTestContext(t)
		tc.FailPath("/users/@me/channels", http.StatusForbidden)

		err := tc.Bot.dmDeliverer(tc.Session).Deliver(context.Background(), 10, *testItem())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open DM channel")
	})
}

func TestApplicationButtons_Rows(t *testing.T) {
	apps := []string{"a", "b", "c", "d", "e", "f", "g"}
	rows := applicationButtons("sid", apps)
	require.Len(t, rows, 2)
	assert.Len(t, rows[0].(discordgo.ActionsRow).Components, ButtonsPerActionRow)
	assert.Len(t, rows[1].(discordgo.ActionsRow).Components, 2)
	assert.Equal(t, "shop_app|sid|f", rows[1].(discordgo.ActionsRow).Components[0].(discordgo.Button).CustomID)
}

func TestSelectMenu_CapsOptions(t *testing.T) {
	options := make([]discordgo.SelectMenuOption, 40)
	for n := range options {
		options[n] = discordgo.SelectMenuOption{Label: fmt.Sprint(n), Value: fmt.Sprint(n)}
	}
	rows := selectMenu("shop_item|sid", "pick", options, MsgNoItems)
	menu := rows[0].(discordgo.ActionsRow).Components[0].(discordgo.SelectMenu)
	assert.Len(t, menu.Options, MaxSelectOptions)
	assert.Equal(t, discordgo.StringSelectMenu, menu.MenuType)
}
