package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RocksBot_Go/internal/domain"
	"github.com/osse101/RocksBot_Go/internal/economy"
)

// Admin command option names
const (
	OptUser     = "user"
	OptAmount   = "amount"
	OptItemID   = "item_id"
	OptNewPrice = "new_price"
)

// adminCommand wraps an admin handler with the role check, the optional
// channel restriction and a deferred reply
func (b *Bot) adminCommand(cmd *discordgo.ApplicationCommand, channel int64, run CommandHandler) (*discordgo.ApplicationCommand, CommandHandler) {
	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
		if err := requireRole(ctx, s, i, b.roles.Admin, MsgAdminOnly); err != nil {
			return err
		}
		if err := requireChannel(s, i, channel); err != nil {
			return err
		}
		if i.GuildID == "" {
			_ = respondEphemeral(s, i, MsgGuildOnly)
			return fmt.Errorf("%w: %s", domain.ErrInvalidInput, MsgGuildOnly)
		}
		if err := deferResponse(s, i); err != nil {
			return err
		}
		return run(ctx, s, i)
	}
	return cmd, handler
}

func balanceCommandDef(name, description string) *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        name,
		Description: description,
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionUser, Name: OptUser, Description: "The member whose balance changes.", Required: true},
			{Type: discordgo.ApplicationCommandOptionInteger, Name: OptAmount, Description: "Number of coins.", Required: true},
		},
	}
}

type balanceAdjuster func(ctx context.Context, key domain.UserKey, amount int64) (*economy.BalanceChange, error)

// adjustBalance runs a give or remove against the target member
func (b *Bot) adjustBalance(adjust balanceAdjuster, doneFmt, failed string) CommandHandler {
	return func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
		opts := getOptions(i)
		target := opts[OptUser].UserValue(nil)
		amount := opts[OptAmount].IntValue()
		if amount <= 0 {
			editContent(ctx, s, i, MsgAmountPositive)
			return fmt.Errorf("%w: amount %d", domain.ErrInvalidInput, amount)
		}

		key, err := userKey(target.ID, i.GuildID)
		if err != nil {
			editContent(ctx, s, i, failed)
			return err
		}
		change, err := adjust(ctx, key, amount)
		if err != nil {
			editContent(ctx, s, i, failed)
			return err
		}
		editContent(ctx, s, i, fmt.Sprintf(doneFmt, formatNumber(amount), target.Mention(), formatNumber(change.After)))
		return nil
	}
}

// GiveCoinsCommand returns the givecoins command definition and handler
func (b *Bot) GiveCoinsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return b.adminCommand(balanceCommandDef(CmdGiveCoins, "[Admin] Give coins to a user."), 0,
		b.adjustBalance(b.economy.GiveCoins, MsgGaveCoinsFmt, MsgGiveCoinsFailed))
}

// RemoveCoinsCommand returns the removecoins command definition and handler
func (b *Bot) RemoveCoinsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return b.adminCommand(balanceCommandDef(CmdRemoveCoins, "[Admin] Remove coins from a user."), 0,
		b.adjustBalance(b.economy.RemoveCoins, MsgRemovedCoinsFmt, MsgRemoveCoinsFailed))
}

func itemIDOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type: discordgo.ApplicationCommandOptionInteger, Name: OptItemID, Description: "The item's ID.", Required: true,
	}
}

// itemFailure picks the reply for a failed item operation
func itemFailure(err error, itemID int64, fallback string) string {
	if errors.Is(err, domain.ErrItemNotFound) {
		return fmt.Sprintf(MsgItemNotFoundFmt, itemID)
	}
	return fallback
}

// SetPriceCommand returns the setprice command definition and handler
func (b *Bot) SetPriceCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdSetPrice,
		Description: "[Admin] Set a new price for an item.",
		Options: []*discordgo.ApplicationCommandOption{
			itemIDOption(),
			{Type: discordgo.ApplicationCommandOptionInteger, Name: OptNewPrice, Description: "The new price in coins.", Required: true},
		},
	}

	return b.adminCommand(cmd, 0, func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
		opts := getOptions(i)
		itemID := opts[OptItemID].IntValue()
		price := opts[OptNewPrice].IntValue()
		if price < 0 {
			editContent(ctx, s, i, MsgPriceNonNegative)
			return fmt.Errorf("%w: price %d", domain.ErrInvalidInput, price)
		}

		guildID, err := parseSnowflake(i.GuildID)
		if err != nil {
			return err
		}
		item, err := b.shop.SetPrice(ctx, guildID, itemID, price)
		if err != nil {
			editContent(ctx, s, i, itemFailure(err, itemID, MsgSetPriceFailed))
			return err
		}
		editContent(ctx, s, i, fmt.Sprintf(MsgPriceUpdatedFmt, item.ID, formatNumber(item.Price)))
		return nil
	})
}

// RemoveItemCommand returns the removeitem command definition and handler
func (b *Bot) RemoveItemCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdRemoveItem,
		Description: "[Admin] Remove an item from the shop.",
		Options:     []*discordgo.ApplicationCommandOption{itemIDOption()},
	}

	return b.adminCommand(cmd, 0, func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
		itemID := getOptions(i)[OptItemID].IntValue()
		guildID, err := parseSnowflake(i.GuildID)
		if err != nil {
			return err
		}
		if _, err := b.shop.RemoveItem(ctx, guildID, itemID); err != nil {
			editContent(ctx, s, i, itemFailure(err, itemID, MsgRemoveItemFailed))
			return err
		}
		editContent(ctx, s, i, fmt.Sprintf(MsgItemRemovedFmt, itemID))
		return nil
	})
}

// DatabaseCommand returns the database command definition and handler
func (b *Bot) DatabaseCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdDatabase,
		Description: "[Admin] View the structure of the shop database.",
	}

	return b.adminCommand(cmd, b.channels.DatabaseView, func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
		columns, err := b.shop.CatalogSchema(ctx)
		if err != nil {
			editContent(ctx, s, i, MsgSchemaFailed)
			return err
		}
		sendEmbed(ctx, s, i, createEmbed(MsgSchemaTitle, schemaDescription(columns), ColorDarkGrey))
		return nil
	})
}

func schemaDescription(columns []domain.ColumnInfo) string {
	var sb strings.Builder
	sb.WriteString("```\n")
	for _, c := range columns {
		fmt.Fprintf(&sb, MsgSchemaColumnFmt, c.Name, c.Type, yesNo(c.NotNull), yesNo(c.PrimaryKey))
	}
	sb.WriteString("```")
	return sb.String()
}
