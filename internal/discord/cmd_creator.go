package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RocksBot_Go/internal/domain"
	"github.com/osse101/RocksBot_Go/internal/shop"
)

// Upload command option names
const (
	OptApplication = "application"
	OptCategory    = "category"
	OptName        = "name"
	OptPrice       = "price"
	OptLink        = "link"
	OptScreenshot  = "screenshot"
	OptScreenshot2 = "screenshot_2"
	OptScreenshot3 = "screenshot_3"
)

var screenshotOptions = []string{OptScreenshot, OptScreenshot2, OptScreenshot3}

func stringChoices(values []string) []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(values))
	for _, v := range values {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: v, Value: v})
	}
	return choices
}

// UploadCommand returns the upd command definition and handler
func (b *Bot) UploadCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdUpload,
		Description: "Upload a new item to the shop.",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionString, Name: OptApplication, Description: "The application this item is for.", Required: true, Choices: stringChoices(b.taxonomy.Applications)},
			{Type: discordgo.ApplicationCommandOptionString, Name: OptCategory, Description: "The category of the item.", Required: true, Choices: stringChoices(b.taxonomy.Categories)},
			{Type: discordgo.ApplicationCommandOptionString, Name: OptName, Description: "The name of the item.", Required: true},
			{Type: discordgo.ApplicationCommandOptionInteger, Name: OptPrice, Description: "The price in coins.", Required: true},
			{Type: discordgo.ApplicationCommandOptionString, Name: OptLink, Description: "The download link for the item.", Required: true},
			{Type: discordgo.ApplicationCommandOptionAttachment, Name: OptScreenshot, Description: "The main screenshot for the product.", Required: true},
			{Type: discordgo.ApplicationCommandOptionAttachment, Name: OptScreenshot2, Description: "A second screenshot (Required for FX and Project Files)."},
			{Type: discordgo.ApplicationCommandOptionAttachment, Name: OptScreenshot3, Description: "A third screenshot (Required for FX and Project Files)."},
		},
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
		if err := requireRole(ctx, s, i, b.roles.Creator, MsgNotCreator); err != nil {
			return err
		}
		if err := requireChannel(s, i, b.channels.Upload); err != nil {
			return err
		}
		key, err := interactionKey(i)
		if err != nil {
			_ = respondEphemeral(s, i, MsgGuildOnly)
			return err
		}

		req := b.uploadRequest(i, key)
		if len(req.Previews) < b.taxonomy.RequiredPreviews(req.Category) {
			_ = respondEphemeral(s, i, MsgPreviewsNeeded)
			return fmt.Errorf("%w: %s", domain.ErrInvalidInput, MsgPreviewsNeeded)
		}
		if err := deferResponse(s, i); err != nil {
			return err
		}
		if req.Price < 0 {
			editContent(ctx, s, i, MsgPriceNotNegative)
			return fmt.Errorf("%w: %s", domain.ErrInvalidInput, MsgPriceNotNegative)
		}

		item, err := b.shop.Upload(ctx, req)
		if err != nil {
			msg := MsgUploadFailed
			if errors.Is(err, domain.ErrInvalidInput) {
				msg = formatFriendlyError(err, MsgUploadFailed)
			}
			editContent(ctx, s, i, msg)
			return err
		}

		editContent(ctx, s, i, MsgUploadSuccess)
		b.announceItem(ctx, s, i, item)
		return nil
	}

	return cmd, handler
}

func (b *Bot) uploadRequest(i *discordgo.InteractionCreate, key domain.UserKey) shop.UploadRequest {
	opts := getOptions(i)
	str := func(name string) string {
		if o, ok := opts[name]; ok {
			return o.StringValue()
		}
		return ""
	}

	req := shop.UploadRequest{
		CreatorID:   key.UserID,
		GuildID:     key.GuildID,
		Name:        str(OptName),
		Application: str(OptApplication),
		Category:    str(OptCategory),
		ProductLink: str(OptLink),
	}
	if o, ok := opts[OptPrice]; ok {
		req.Price = o.IntValue()
	}

	resolved := i.ApplicationCommandData().Resolved
	for _, name := range screenshotOptions {
		o, ok := opts[name]
		if !ok || resolved == nil {
			continue
		}
		// attachment options carry the attachment id as a plain string value
		id, _ := o.Value.(string)
		if att, ok := resolved.Attachments[id]; ok && att != nil {
			req.Previews = append(req.Previews, att.URL)
		}
	}
	return req
}

// announceItem posts the new-item alert, pinging the members role when it exists
func (b *Bot) announceItem(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, item *domain.ShopItem) {
	if b.channels.NewItemLog == 0 {
		return
	}
	mention := MsgEveryoneMention
	if id, ok := roleIDByName(ctx, s, i.GuildID, b.roles.Member); ok {
		mention = fmt.Sprintf(MsgRoleMentionFmt, id)
	}

	embed := &discordgo.MessageEmbed{
		Title:       MsgNewItemTitle,
		Description: fmt.Sprintf(MsgNewItemFmt, getInteractionUser(i).Mention()),
		Color:       ColorGreen,
		Image:       mainPreview(item.Previews),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Item Name", Value: item.Name},
			{Name: "Application", Value: item.Application, Inline: true},
			{Name: "Category", Value: item.Category, Inline: true},
			{Name: "Price", Value: fmt.Sprintf(MsgCoinsFmt, formatNumber(item.Price)), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: FooterNewItem},
	}
	if links := previewLinks(item.Previews); links != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: MsgMorePreviews, Value: links})
	}
	postToChannel(ctx, s, b.channels.NewItemLog, &discordgo.MessageSend{
		Content: mention,
		Embeds:  []*discordgo.MessageEmbed{embed},
	})
}

// MyUploadsCommand returns the myuploads command definition and handler
func (b *Bot) MyUploadsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdMyUploads,
		Description: "View all the items you have uploaded.",
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
		if err := requireRole(ctx, s, i, b.roles.Creator, MsgNotCreator); err != nil {
			return err
		}
		key, err := interactionKey(i)
		if err != nil {
			_ = respondEphemeral(s, i, MsgGuildOnly)
			return err
		}
		if err := deferResponse(s, i); err != nil {
			return err
		}

		uploads, err := b.shop.CreatorUploads(ctx, key.GuildID, key.UserID)
		if err != nil {
			editContent(ctx, s, i, MsgUploadsFailed)
			return err
		}
		if len(uploads) == 0 {
			editContent(ctx, s, i, MsgNoUploads)
			return nil
		}

		embed := createEmbed(MsgMyUploadsTitle, "", ColorBlue)
		for _, item := range uploads[:min(len(uploads), MaxEmbedFields)] {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:  fmt.Sprintf(MsgUploadEntryFmt, item.Name, item.ID),
				Value: fmt.Sprintf(MsgUploadDetailFmt, item.Application, item.Category, formatNumber(item.Price)),
			})
		}
		sendEmbed(ctx, s, i, embed)
		return nil
	}

	return cmd, handler
}
