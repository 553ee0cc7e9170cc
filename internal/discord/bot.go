package discord

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RocksBot_Go/internal/economy"
	"github.com/osse101/RocksBot_Go/internal/logger"
	"github.com/osse101/RocksBot_Go/internal/shop"
)

// Channels restricts commands and routes logs; 0 leaves a channel unset
type Channels struct {
	Shop         int64
	Upload       int64
	PurchaseLog  int64
	AdminLog     int64
	NewItemLog   int64
	DatabaseView int64
}

// Roles are matched by name against the invoking member's guild roles
type Roles struct {
	Admin   string
	Creator string
	Member  string
}

// Config holds the bot configuration
type Config struct {
	Token              string
	AppID              string
	GuildID            string // empty registers commands globally
	ForceCommandUpdate bool
	Channels           Channels
	Roles              Roles
	Taxonomy           shop.Taxonomy
}

// Bot represents the Discord bot
type Bot struct {
	Session  *discordgo.Session
	AppID    string
	GuildID  string
	Registry *CommandRegistry

	economy     economy.Service
	shop        shop.Service
	sessions    *shop.SessionStore
	channels    Channels
	roles       Roles
	taxonomy    shop.Taxonomy
	forceUpdate bool
	now         func() time.Time
}

// New creates a new Discord bot
func New(cfg Config, economySvc economy.Service, shopSvc shop.Service, sessions *shop.SessionStore) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCreateSessionFmt, err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages
	return NewWithSession(s, cfg, economySvc, shopSvc, sessions), nil
}

// NewWithSession wires a bot around an existing session and registers
// every command and component handler.
func NewWithSession(s *discordgo.Session, cfg Config, economySvc economy.Service, shopSvc shop.Service, sessions *shop.SessionStore) *Bot {
	b := &Bot{
		Session:     s,
		AppID:       cfg.AppID,
		GuildID:     cfg.GuildID,
		Registry:    NewCommandRegistry(),
		economy:     economySvc,
		shop:        shopSvc,
		sessions:    sessions,
		channels:    cfg.Channels,
		roles:       cfg.Roles,
		taxonomy:    cfg.Taxonomy,
		forceUpdate: cfg.ForceCommandUpdate,
		now:         time.Now,
	}
	b.registerAll()
	return b
}

func (b *Bot) registerAll() {
	for _, c := range []func() (*discordgo.ApplicationCommand, CommandHandler){
		b.BalanceCommand,
		b.LevelCommand,
		b.DropRatesCommand,
		b.DailyCommand,
		b.StreakCommand,
		b.LuckCommand,
		b.ShopCommand,
		b.UploadCommand,
		b.MyUploadsCommand,
		b.GiveCoinsCommand,
		b.RemoveCoinsCommand,
		b.SetPriceCommand,
		b.RemoveItemCommand,
		b.DatabaseCommand,
	} {
		b.Registry.Register(c())
	}
	b.Registry.RegisterComponent(ComponentShopApp, b.handleShopApplication)
	b.Registry.RegisterComponent(ComponentShopCat, b.handleShopCategory)
	b.Registry.RegisterComponent(ComponentShopItem, b.handleShopItem)
	b.Registry.RegisterComponent(ComponentShopBuy, b.handleShopBuy)
}

// Start opens the gateway connection and syncs slash commands
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)
	b.Session.AddHandler(b.messageCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf(ErrMsgOpenConnectionFmt, err)
	}
	if err := b.RegisterCommands(b.Registry, b.forceUpdate); err != nil {
		_ = b.Session.Close()
		return err
	}

	slog.Info(LogMsgBotRunning, "commands", len(b.Registry.Commands))
	return nil
}

// Stop closes the gateway connection
func (b *Bot) Stop() error {
	return b.Session.Close()
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info(LogMsgBotReady, "user", r.User.Username, "guilds", len(r.Guilds))
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := logger.NewRequestContext(context.Background())
	b.Registry.Handle(ctx, s, i)
}
