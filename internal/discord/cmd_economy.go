package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RocksBot_Go/internal/economy"
	"github.com/osse101/RocksBot_Go/internal/logger"
	"github.com/osse101/RocksBot_Go/internal/progression"
)

// profileCommand builds a command that loads the invoker's profile and
// renders it privately.
func (b *Bot) profileCommand(name, description string, render func(*economy.Profile) *discordgo.MessageEmbed) (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{Name: name, Description: description}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
		key, err := interactionKey(i)
		if err != nil {
			_ = respondEphemeral(s, i, MsgGuildOnly)
			return err
		}
		if err := deferResponse(s, i); err != nil {
			return err
		}

		profile, err := b.economy.GetProfile(ctx, key)
		if err != nil {
			editContent(ctx, s, i, MsgProgressFailed)
			return err
		}
		sendEmbed(ctx, s, i, render(profile))
		return nil
	}

	return cmd, handler
}

// BalanceCommand returns the balance command definition and handler
func (b *Bot) BalanceCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return b.profileCommand(CmdBalance, "Check your current coin balance.", func(p *economy.Profile) *discordgo.MessageEmbed {
		return createEmbed(MsgBalanceTitle, fmt.Sprintf(MsgBalanceFmt, formatNumber(p.Balance)), ColorGold)
	})
}

// LevelCommand returns the lvl command definition and handler
func (b *Bot) LevelCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return b.profileCommand(CmdLevel, "Check your current level and XP.", func(p *economy.Profile) *discordgo.MessageEmbed {
		embed := createEmbed(MsgLevelTitle, "", ColorBlue)
		embed.Fields = []*discordgo.MessageEmbedField{
			{Name: "Level", Value: fmt.Sprintf("**%d**", p.Level), Inline: true},
			{Name: "XP", Value: fmt.Sprintf("**%s / %s**", formatNumber(p.XP), formatNumber(p.XPNeeded)), Inline: true},
			{Name: "Progress", Value: "`" + progressBar(p.XP, p.XPNeeded) + "`"},
		}
		return embed
	})
}

// StreakCommand returns the streak command definition and handler
func (b *Bot) StreakCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return b.profileCommand(CmdStreak, "Check your current daily streak.", func(p *economy.Profile) *discordgo.MessageEmbed {
		return createEmbed("", fmt.Sprintf(MsgStreakFmt, p.DailyStreak), ColorOrange)
	})
}

// LuckCommand returns the luck command definition and handler
func (b *Bot) LuckCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	return b.profileCommand(CmdLuck, "Check your current luck boost from your streak.", func(p *economy.Profile) *discordgo.MessageEmbed {
		embed := createEmbed(MsgLuckTitle, fmt.Sprintf(MsgLuckFmt, p.LuckMultiplier, p.DailyStreak), ColorPurple)
		embed.Footer.Text = FooterLuck
		return embed
	})
}

// DropRatesCommand returns the droprates command definition and handler
func (b *Bot) DropRatesCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdDropRates,
		Description: "View your current drop rates for coins and XP.",
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
		key, err := interactionKey(i)
		if err != nil {
			_ = respondEphemeral(s, i, MsgGuildOnly)
			return err
		}
		if err := deferResponse(s, i); err != nil {
			return err
		}

		rates, err := b.economy.GetDropRates(ctx, key)
		if err != nil {
			editContent(ctx, s, i, MsgDropRatesFailed)
			return err
		}
		sendEmbed(ctx, s, i, dropRatesEmbed(rates))
		return nil
	}

	return cmd, handler
}

func dropRatesEmbed(r *progression.DropRates) *discordgo.MessageEmbed {
	embed := createEmbed(MsgDropRatesTitle, fmt.Sprintf(MsgDropRatesFmt, r.Level, r.LuckMultiplier), ColorTeal)
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "💰 Coin Drops", Value: fmt.Sprintf(MsgDropRangeFmt, r.Coin.Max, "coins", r.Coin.HighTierChance*100), Inline: true},
		{Name: "📈 XP Gains", Value: fmt.Sprintf(MsgDropRangeFmt, r.XP.Max, "XP", r.XP.HighTierChance*100), Inline: true},
	}
	embed.Footer.Text = FooterDropRates
	return embed
}

// DailyCommand returns the daily command definition and handler
func (b *Bot) DailyCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        CmdDaily,
		Description: "Claim your daily reward.",
	}

	handler := func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
		key, err := interactionKey(i)
		if err != nil {
			_ = respondEphemeral(s, i, MsgGuildOnly)
			return err
		}
		if err := deferResponse(s, i); err != nil {
			return err
		}

		res, err := b.economy.ClaimDaily(ctx, key, b.now())
		if err != nil {
			editContent(ctx, s, i, MsgDailyFailed)
			return err
		}

		switch res.Status {
		case progression.DailyGranted:
			embed := createEmbed(MsgDailyTitle, fmt.Sprintf(MsgDailyFmt, formatNumber(res.Reward)), ColorGreen)
			embed.Fields = []*discordgo.MessageEmbedField{
				{Name: "New Balance", Value: fmt.Sprintf(MsgCoinsFmt, formatNumber(res.NewBalance)), Inline: true},
				{Name: "Current Streak", Value: fmt.Sprintf(MsgStreakDaysFmt, res.Streak), Inline: true},
			}
			sendEmbed(ctx, s, i, embed)
		case progression.DailyThrottled:
			editContent(ctx, s, i, res.Message)
			if res.WarningText != "" {
				b.sendDM(ctx, s, getInteractionUser(i).ID, res.WarningText)
			}
		case progression.DailyIgnored:
			// repeat spammers get no answer at all
			if err := s.InteractionResponseDelete(i.Interaction); err != nil {
				logger.FromContext(ctx).Debug(LogMsgRespondFailed, "error", err)
			}
		}
		return nil
	}

	return cmd, handler
}

// sendDM best-effort messages a user privately
func (b *Bot) sendDM(ctx context.Context, s *discordgo.Session, userID, content string) {
	ch, err := s.UserChannelCreate(userID)
	if err == nil {
		_, err = s.ChannelMessageSend(ch.ID, content)
	}
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgWarnDMFailed, "user", userID, "error", err)
	}
}
