package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RocksBot_Go/internal/logger"
)

// messageCreate grants passive chat rewards. Bot authors, direct messages
// and slash command replies earn nothing.
func (b *Bot) messageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.GuildID == "" || m.Interaction != nil {
		return
	}
	ctx := logger.NewRequestContext(context.Background())
	b.handleChatMessage(ctx, s, m.Message)
}

func (b *Bot) handleChatMessage(ctx context.Context, s *discordgo.Session, m *discordgo.Message) {
	log := logger.FromContext(ctx)

	key, err := userKey(m.Author.ID, m.GuildID)
	if err != nil {
		log.Warn(LogMsgMessageRewardFailed, "error", err)
		return
	}

	res, err := b.economy.HandleMessage(ctx, key, b.now())
	if err != nil {
		log.Error(LogMsgMessageRewardFailed, "user", key.String(), "error", err)
		return
	}

	if res.LeveledUp {
		if _, err := s.ChannelMessageSend(m.ChannelID, fmt.Sprintf(MsgLevelUpFmt, m.Author.Mention(), res.NewLevel)); err != nil {
			log.Warn(LogMsgAnnounceFailed, "channel", m.ChannelID, "error", err)
		}
	}
}
