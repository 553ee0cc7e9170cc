package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/osse101/RocksBot_Go/internal/config"
	"github.com/osse101/RocksBot_Go/internal/discord"
	"github.com/osse101/RocksBot_Go/internal/domain"
	"github.com/osse101/RocksBot_Go/internal/economy"
	"github.com/osse101/RocksBot_Go/internal/repository"
	"github.com/osse101/RocksBot_Go/internal/server"
	"github.com/osse101/RocksBot_Go/internal/shop"
)

// App holds every long-lived component of the running bot.
type App struct {
	Config   *config.Config
	Store    repository.Store
	Economy  economy.Service
	Shop     shop.Service
	Sessions *shop.SessionStore
	Server   *server.Server
	Bot      *discord.Bot // nil when no Discord token is configured
}

// New opens the configured store and wires the application around it
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	store, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	app, err := NewWithStore(cfg, store)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return app, nil
}

// NewWithStore wires services, the HTTP API and the Discord bot around store
func NewWithStore(cfg *config.Config, store repository.Store) (*App, error) {
	taxonomy := Taxonomy(cfg)

	app := &App{
		Config:   cfg,
		Store:    store,
		Economy:  economy.NewService(store, cfg.DailyLocation),
		Shop:     shop.NewService(store, store, taxonomy),
		Sessions: shop.NewSessionStore(shop.DefaultSessionCapacity, domain.ShopSessionTimeout),
	}
	app.Server = server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Version:        cfg.Version,
	}, store, app.Economy, app.Shop)

	if cfg.DiscordToken == "" {
		slog.Warn(LogMsgDiscordDisabled)
		return app, nil
	}
	bot, err := discord.New(DiscordConfig(cfg, taxonomy), app.Economy, app.Shop, app.Sessions)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateBot, err)
	}
	app.Bot = bot
	return app, nil
}

// Taxonomy builds the shop taxonomy from configuration
func Taxonomy(cfg *config.Config) shop.Taxonomy {
	return shop.Taxonomy{
		Applications:          append([]string(nil), cfg.ShopApplications...),
		Categories:            append([]string(nil), cfg.ShopCategories...),
		FullPreviewCategories: append([]string(nil), domain.FullPreviewCategories...),
	}
}

// DiscordConfig maps application configuration onto the bot's
func DiscordConfig(cfg *config.Config, taxonomy shop.Taxonomy) discord.Config {
	return discord.Config{
		Token:              cfg.DiscordToken,
		AppID:              cfg.DiscordAppID,
		GuildID:            cfg.DiscordGuildID,
		ForceCommandUpdate: cfg.DiscordForceCommandUpdate,
		Channels: discord.Channels{
			Shop:         cfg.ShopChannelID,
			Upload:       cfg.UploadChannelID,
			PurchaseLog:  cfg.PurchaseLogChannelID,
			AdminLog:     cfg.AdminLogChannelID,
			NewItemLog:   cfg.NewItemLogChannelID,
			DatabaseView: cfg.DatabaseViewChannelID,
		},
		Roles: discord.Roles{
			Admin:   cfg.AdminRole,
			Creator: cfg.CreatorRole,
			Member:  cfg.MemberRole,
		},
		Taxonomy: taxonomy,
	}
}

// Run starts the bot and the HTTP server and blocks until ctx is cancelled
// or the server fails, then shuts everything down.
func (a *App) Run(ctx context.Context) error {
	if a.Bot != nil {
		if err := a.Bot.Start(); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedStartBot, err)
		}
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := a.Server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		slog.Info(LogMsgShutdownSignal)
	case err, ok := <-serverErr:
		if ok {
			runErr = fmt.Errorf("%s: %w", ErrMsgServerFailed, err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ShutdownTimeout)
	defer cancel()
	GracefulShutdown(shutdownCtx, ShutdownComponents{Server: a.Server, Bot: a.Bot, Store: a.Store})
	return runErr
}
