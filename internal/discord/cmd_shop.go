package discord

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RocksBot_Go/internal/domain"
	"github.com/osse101/RocksBot_Go/internal/logger"
	"github.com/osse101/RocksBot_Go/internal/shop"
)

// ShopCommand returns the shop command definition and handler. The menu
// chain that follows is driven by component interactions whose custom ids
// carry the flow id.
func (b *Bot) ShopCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdShop,
		Description: "Browse and purchase items from the interactive shop.",
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
		if err := requireChannel(s, i, b.channels.Shop); err != nil {
			return err
		}
		key, err := interactionKey(i)
		if err != nil {
			_ = respondEphemeral(s, i, MsgGuildOnly)
			return err
		}

		flow := b.sessions.Start(ctx, key)
		return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content:    MsgShopWelcome,
				Components: applicationButtons(flow.ID, b.shop.Applications()),
				Flags:      discordgo.MessageFlagsEphemeral,
			},
		})
	}

	return cmd, handler
}

func customID(parts ...string) string {
	return strings.Join(parts, CustomIDSeparator)
}

// parseCustomID splits "<prefix>|<session>[|<value>]"
func parseCustomID(id string) (session, value string) {
	parts := strings.SplitN(id, CustomIDSeparator, 3)
	if len(parts) > 1 {
		session = parts[1]
	}
	if len(parts) > 2 {
		value = parts[2]
	}
	return session, value
}

func applicationButtons(sessionID string, apps []string) []discordgo.MessageComponent {
	var rows []discordgo.MessageComponent
	for start := 0; start < len(apps); start += ButtonsPerActionRow {
		end := min(start+ButtonsPerActionRow, len(apps))
		row := discordgo.ActionsRow{}
		for _, app := range apps[start:end] {
			row.Components = append(row.Components, discordgo.Button{
				Label:    app,
				Style:    discordgo.PrimaryButton,
				CustomID: customID(ComponentShopApp, sessionID, app),
			})
		}
		rows = append(rows, row)
	}
	return rows
}

func selectMenu(id, placeholder string, options []discordgo.SelectMenuOption, empty string) []discordgo.MessageComponent {
	if len(options) == 0 {
		options = []discordgo.SelectMenuOption{{Label: empty, Value: shop.PlaceholderValue}}
	}
	if len(options) > MaxSelectOptions {
		options = options[:MaxSelectOptions]
	}
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				MenuType:    discordgo.StringSelectMenu,
				CustomID:    id,
				Placeholder: placeholder,
				Options:     options,
			},
		}},
	}
}

// updateMenu rewrites the ephemeral menu message in place
func updateMenu(s *discordgo.Session, i *discordgo.InteractionCreate, content string, embeds []*discordgo.MessageEmbed, components []discordgo.MessageComponent) error {
	if components == nil {
		components = []discordgo.MessageComponent{}
	}
	if embeds == nil {
		embeds = []*discordgo.MessageEmbed{}
	}
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Embeds:     embeds,
			Components: components,
		},
	})
}

// updateContent changes only the menu text and keeps its components
func updateContent(s *discordgo.Session, i *discordgo.InteractionCreate, content string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
}

// loadFlow finds the caller's flow for a component interaction. A missing,
// expired or foreign flow gets a terminal menu update.
func (b *Bot) loadFlow(s *discordgo.Session, i *discordgo.InteractionCreate) (*shop.Flow, domain.UserKey, string, error) {
	key, err := interactionKey(i)
	if err != nil {
		_ = updateMenu(s, i, MsgGuildOnly, nil, nil)
		return nil, key, "", err
	}
	sessionID, value := parseCustomID(i.MessageComponentData().CustomID)
	flow, err := b.sessions.Get(sessionID, key)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSelection) {
			_ = respondEphemeral(s, i, MsgNotYourMenu)
		} else {
			b.answerFlowError(s, i, err)
		}
		return nil, key, "", err
	}
	return flow, key, value, nil
}

// answerFlowError reports a rejected menu transition
func (b *Bot) answerFlowError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	switch {
	case errors.Is(err, domain.ErrSessionExpired):
		_ = updateMenu(s, i, MsgSessionExpired, nil, nil)
	case errors.Is(err, domain.ErrInvalidSelection):
		_ = updateContent(s, i, MsgStaleSelection)
	default:
		_ = updateMenu(s, i, MsgGenericError, nil, nil)
	}
}

func selectedValue(i *discordgo.InteractionCreate) string {
	if values := i.MessageComponentData().Values; len(values) > 0 {
		return values[0]
	}
	return ""
}

func (b *Bot) handleShopApplication(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	flow, key, app, err := b.loadFlow(s, i)
	if err != nil {
		return err
	}
	if err := flow.SelectApplication(app, b.now()); err != nil {
		b.answerFlowError(s, i, err)
		return err
	}

	categories, err := b.shop.Categories(ctx, key.GuildID, app)
	if err != nil {
		_ = updateMenu(s, i, formatFriendlyError(err, MsgGenericError), nil, nil)
		return err
	}
	options := make([]discordgo.SelectMenuOption, 0, len(categories))
	for _, c := range categories {
		options = append(options, discordgo.SelectMenuOption{Label: c, Value: c})
	}
	return updateMenu(s, i, fmt.Sprintf(MsgChooseCategoryFmt, app), nil,
		selectMenu(customID(ComponentShopCat, flow.ID), MsgCategoryHolder, options, MsgNoCategories))
}

func (b *Bot) handleShopCategory(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	flow, key, _, err := b.loadFlow(s, i)
	if err != nil {
		return err
	}
	category := selectedValue(i)
	if err := flow.SelectCategory(category, b.now()); err != nil {
		if errors.Is(err, domain.ErrInvalidSelection) && category == shop.PlaceholderValue {
			_ = updateContent(s, i, MsgNoCategoriesSelect)
			return err
		}
		b.answerFlowError(s, i, err)
		return err
	}

	snap := flow.Snapshot()
	items, err := b.shop.ItemsInCategory(ctx, key.GuildID, snap.Application, category)
	if err != nil {
		_ = updateMenu(s, i, formatFriendlyError(err, MsgGenericError), nil, nil)
		return err
	}
	options := make([]discordgo.SelectMenuOption, 0, len(items))
	for _, it := range items {
		options = append(options, discordgo.SelectMenuOption{
			Label: fmt.Sprintf(MsgItemOptionFmt, it.Name, formatNumber(it.Price)),
			Value: strconv.FormatInt(it.ID, 10),
		})
	}
	return updateMenu(s, i, fmt.Sprintf(MsgChooseItemFmt, category), nil,
		selectMenu(customID(ComponentShopItem, flow.ID), MsgItemHolder, options, MsgNoItems))
}

func (b *Bot) handleShopItem(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	flow, key, _, err := b.loadFlow(s, i)
	if err != nil {
		return err
	}
	value := selectedValue(i)
	itemID, err := flow.SelectItem(value, b.now())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSelection) && value == shop.PlaceholderValue {
			_ = updateContent(s, i, MsgNoItemsSelect)
			return err
		}
		b.answerFlowError(s, i, err)
		return err
	}

	item, err := b.shop.ItemDetails(ctx, key.GuildID, itemID)
	if err != nil {
		b.sessions.Finish(flow.ID)
		_ = updateMenu(s, i, formatFriendlyError(err, MsgGenericError), nil, nil)
		return err
	}

	buy := []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{Label: MsgBuyNow, Style: discordgo.SuccessButton, CustomID: customID(ComponentShopBuy, flow.ID)},
		}},
	}
	return updateMenu(s, i, "", []*discordgo.MessageEmbed{confirmEmbed(item)}, buy)
}

func confirmEmbed(item *domain.ShopItem) *discordgo.MessageEmbed {
	embed := createEmbed(fmt.Sprintf(MsgConfirmTitleFmt, item.Name), fmt.Sprintf(MsgConfirmFmt, formatNumber(item.Price)), ColorOrange)
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Application", Value: item.Application, Inline: true},
		{Name: "Category", Value: item.Category, Inline: true},
	}
	embed.Image = mainPreview(item.Previews)
	if links := previewLinks(item.Previews); links != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: MsgMorePreviews, Value: links})
	}
	return embed
}

func (b *Bot) handleShopBuy(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	flow, key, _, err := b.loadFlow(s, i)
	if err != nil {
		return err
	}
	itemID, err := flow.Confirm(b.now())
	if err != nil {
		b.answerFlowError(s, i, err)
		return err
	}
	defer b.sessions.Finish(flow.ID)

	// acknowledge and strip the buttons before the slow part
	if err := updateMenu(s, i, MsgProcessing, nil, nil); err != nil {
		return err
	}

	buyer := getInteractionUser(i)
	res, err := b.shop.Purchase(ctx, key, itemID, b.dmDeliverer(s))
	if err != nil {
		editContent(ctx, s, i, b.purchaseFailureMessage(ctx, key.GuildID, itemID, err))
		return err
	}

	editContent(ctx, s, i, fmt.Sprintf(MsgPurchaseSentFmt, res.Item.Name))
	logger.FromContext(ctx).Info(LogMsgPurchaseCompleted, "buyer", buyer.ID, "item_id", itemID)
	b.logPurchase(ctx, s, buyer, res)
	return nil
}

func (b *Bot) purchaseFailureMessage(ctx context.Context, guildID, itemID int64, err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		item, lookupErr := b.shop.ItemDetails(ctx, guildID, itemID)
		if lookupErr != nil {
			return MsgInsufficientFunds
		}
		return fmt.Sprintf(MsgNotEnoughCoinsFmt, formatNumber(item.Price))
	case errors.Is(err, domain.ErrItemNotFound):
		return MsgItemGone
	case errors.Is(err, shop.ErrRefundFailed):
		return MsgRefundFailed
	case errors.Is(err, domain.ErrDeliveryFailed):
		return MsgDMRefunded
	default:
		return MsgPurchaseFailed
	}
}
