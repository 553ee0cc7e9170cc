package discord

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RocksBot_Go/internal/domain"
	"github.com/osse101/RocksBot_Go/internal/logger"
	"github.com/osse101/RocksBot_Go/internal/shop"
)

// dmDeliverer sends the download link to the buyer's direct messages.
// Closed DMs surface as an error, which makes the purchase refund.
func (b *Bot) dmDeliverer(s *discordgo.Session) shop.Deliverer {
	return shop.DelivererFunc(func(ctx context.Context, buyerID int64, item domain.ShopItem) error {
		ch, err := s.UserChannelCreate(strconv.FormatInt(buyerID, 10))
		if err != nil {
			return fmt.Errorf(ErrMsgOpenDMFmt, err)
		}
		if _, err := s.ChannelMessageSendEmbed(ch.ID, deliveryEmbed(item)); err != nil {
			return fmt.Errorf(ErrMsgSendDMFmt, err)
		}
		return nil
	})
}

func deliveryEmbed(item domain.ShopItem) *discordgo.MessageEmbed {
	embed := createEmbed(MsgDeliveryTitle, fmt.Sprintf(MsgDeliveryFmt, item.Name), ColorBrand)
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: MsgDownload, Value: fmt.Sprintf(MsgDownloadLinkFmt, item.ProductLink)},
	}
	return embed
}

// logPurchase posts the public purchase log and the detailed admin log
func (b *Bot) logPurchase(ctx context.Context, s *discordgo.Session, buyer *discordgo.User, res *shop.PurchaseResult) {
	public := &discordgo.MessageEmbed{
		Title:       MsgPublicLogTitle,
		Description: fmt.Sprintf(MsgPublicLogFmt, buyer.Mention(), res.Item.Name),
		Color:       ColorBlurple,
		Image:       mainPreview(res.Item.Previews),
	}
	postToChannel(ctx, s, b.channels.PurchaseLog, &discordgo.MessageSend{Embeds: []*discordgo.MessageEmbed{public}})

	if b.channels.AdminLog == 0 {
		return
	}
	postToChannel(ctx, s, b.channels.AdminLog, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{adminPurchaseEmbed(buyer, b.creatorName(ctx, s, res.Item.CreatorID), res, b.now())},
	})
}

func (b *Bot) creatorName(ctx context.Context, s *discordgo.Session, creatorID int64) string {
	creator, err := s.User(strconv.FormatInt(creatorID, 10))
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgCreatorLookupFailed, "creator_id", creatorID, "error", err)
		return fmt.Sprintf(MsgUnknownCreatorFmt, creatorID)
	}
	return fmt.Sprintf(MsgNamedIDFmt, creator.Username, creator.ID)
}

func adminPurchaseEmbed(buyer *discordgo.User, creator string, res *shop.PurchaseResult, at time.Time) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:     MsgAdminLogTitle,
		Color:     ColorDarkRed,
		Timestamp: at.UTC().Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Buyer", Value: fmt.Sprintf(MsgNamedIDFmt, buyer.Username, buyer.ID)},
			{Name: "Item Purchased", Value: fmt.Sprintf(MsgItemIDFmt, res.Item.Name, res.Item.ID)},
			{Name: "Creator", Value: creator},
			{Name: "Price", Value: fmt.Sprintf(MsgCoinsFmt, formatNumber(res.Item.Price)), Inline: true},
			{Name: "Balance Before", Value: fmt.Sprintf(MsgCoinsFmt, formatNumber(res.BalanceBefore)), Inline: true},
			{Name: "Balance After", Value: fmt.Sprintf(MsgCoinsFmt, formatNumber(res.BalanceAfter)), Inline: true},
		},
	}
	if shots := screenshotLinks(res.Item.Previews); shots != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: MsgScreenshots, Value: shots})
	}
	return embed
}

func screenshotLinks(previews []string) string {
	links := make([]string, 0, len(previews))
	for n, p := range previews {
		if n == 0 {
			links = append(links, fmt.Sprintf(MsgScreenshotMainFmt, p))
			continue
		}
		links = append(links, fmt.Sprintf(MsgScreenshotExtraFmt, n, p))
	}
	return strings.Join(links, " | ")
}
