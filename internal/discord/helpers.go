package discord

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/RocksBot_Go/internal/domain"
	"github.com/osse101/RocksBot_Go/internal/logger"
)

// formatNumber renders n with thousands separators ("1,234")
func formatNumber(n int64) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}

// progressBar draws a fixed-width bar for xp out of needed
func progressBar(xp, needed int64) string {
	filled := 0
	if needed > 0 {
		filled = int(min(xp*ProgressBarCells/needed, ProgressBarCells))
	}
	filled = max(filled, 0)
	return strings.Repeat(ProgressFilled, filled) + strings.Repeat(ProgressEmpty, ProgressBarCells-filled)
}

func parseSnowflake(id string) (int64, error) {
	v, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgInvalidSnowflakeFmt, id, err)
	}
	return v, nil
}

// getInteractionUser extracts the user from an interaction.
// Handles both guild (i.Member.User) and DM (i.User) contexts.
func getInteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// interactionKey returns the (user, guild) record key of the invoker.
// Interactions outside a guild have no key.
func interactionKey(i *discordgo.InteractionCreate) (domain.UserKey, error) {
	u := getInteractionUser(i)
	if i.GuildID == "" || u == nil {
		return domain.UserKey{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, MsgGuildOnly)
	}
	return userKey(u.ID, i.GuildID)
}

func userKey(userID, guildID string) (domain.UserKey, error) {
	uid, err := parseSnowflake(userID)
	if err != nil {
		return domain.UserKey{}, err
	}
	gid, err := parseSnowflake(guildID)
	if err != nil {
		return domain.UserKey{}, err
	}
	return domain.UserKey{UserID: uid, GuildID: gid}, nil
}

// getOptions indexes command options by name
func getOptions(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	opts := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, o := range opts {
		m[o.Name] = o
	}
	return m
}

// respondEphemeral answers immediately with a private message
func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// deferResponse acknowledges an interaction with a deferred private message.
// Required before any operation that might take longer than 3 seconds.
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	})
}

// editContent replaces the deferred response with text
func editContent(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Content: &content}); err != nil {
		logger.FromContext(ctx).Error(LogMsgRespondFailed, "error", err)
	}
}

// sendEmbed replaces the deferred response with an embed
func sendEmbed(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		logger.FromContext(ctx).Error(LogMsgRespondFailed, "error", err)
	}
}

// createEmbed creates a standard embed with the bot footer
func createEmbed(title, description string, color int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer:      &discordgo.MessageEmbedFooter{Text: FooterRocksBot},
	}
}

// formatFriendlyError maps domain errors onto messages users can act on.
// Internal failures collapse to fallback.
func formatFriendlyError(err error, fallback string) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return MsgInsufficientFunds
	case errors.Is(err, domain.ErrItemNotFound):
		return MsgItemNotFound
	case errors.Is(err, domain.ErrSessionExpired):
		return MsgSessionExpired
	case errors.Is(err, domain.ErrStorage):
		return fallback
	case errors.Is(err, domain.ErrInvalidInput):
		return MsgInvalidInputPrefix + strings.TrimPrefix(err.Error(), domain.ErrMsgInvalidInput+": ")
	default:
		return fallback
	}
}

// requireChannel refuses commands used outside allowed; 0 allows every channel
func requireChannel(s *discordgo.Session, i *discordgo.InteractionCreate, allowed int64) error {
	if allowed == 0 || i.ChannelID == strconv.FormatInt(allowed, 10) {
		return nil
	}
	if err := respondEphemeral(s, i, fmt.Sprintf(MsgChannelOnlyFmt, allowed)); err != nil {
		return err
	}
	return fmt.Errorf("%w: %s", domain.ErrChannelRestricted, i.ChannelID)
}

// requireRole refuses members without the named role
func requireRole(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, role, refusal string) error {
	if hasRole(ctx, s, i, role) {
		return nil
	}
	if err := respondEphemeral(s, i, refusal); err != nil {
		return err
	}
	return fmt.Errorf("%w: %s", errMissingRole, role)
}

func hasRole(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, role string) bool {
	if i.Member == nil || i.GuildID == "" {
		return false
	}
	id, ok := roleIDByName(ctx, s, i.GuildID, role)
	if !ok {
		return false
	}
	return slices.Contains(i.Member.Roles, id)
}

// roleIDByName resolves a role name from the state cache, falling back to the API
func roleIDByName(ctx context.Context, s *discordgo.Session, guildID, name string) (string, bool) {
	var roles []*discordgo.Role
	if g, err := s.State.Guild(guildID); err == nil {
		roles = g.Roles
	} else {
		roles, err = s.GuildRoles(guildID)
		if err != nil {
			logger.FromContext(ctx).Warn(LogMsgRoleLookupFailed, "guild", guildID, "error", err)
			return "", false
		}
	}
	for _, r := range roles {
		if r.Name == name {
			return r.ID, true
		}
	}
	return "", false
}

// postToChannel sends to a configured log channel; 0 means disabled
func postToChannel(ctx context.Context, s *discordgo.Session, channelID int64, msg *discordgo.MessageSend) {
	if channelID == 0 {
		return
	}
	if _, err := s.ChannelMessageSendComplex(strconv.FormatInt(channelID, 10), msg); err != nil {
		logger.FromContext(ctx).Warn(LogMsgLogChannelFailed, "channel", channelID, "error", err)
	}
}

// previewLinks renders the previews after the main one as markdown links
func previewLinks(previews []string) string {
	if len(previews) < 2 {
		return ""
	}
	links := make([]string, 0, len(previews)-1)
	for n, p := range previews[1:] {
		links = append(links, fmt.Sprintf(MsgPreviewLinkFmt, n+2, p))
	}
	return strings.Join(links, " | ")
}

func mainPreview(previews []string) *discordgo.MessageEmbedImage {
	if len(previews) == 0 {
		return nil
	}
	return &discordgo.MessageEmbedImage{URL: previews[0]}
}

func yesNo(b bool) string {
	if b {
		return MsgYes
	}
	return MsgNo
}
