package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/RocksBot_Go/internal/discord"
	"github.com/osse101/RocksBot_Go/internal/repository"
	"github.com/osse101/RocksBot_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server *server.Server
	Bot    *discord.Bot
	Store  repository.Store
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in order:
// 1. HTTP server (stop accepting new requests)
// 2. Discord gateway (stop receiving interactions)
// 3. Store (after in-flight work has finished with it)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	if components.Server != nil {
		slog.Info(LogMsgShuttingDownServer)
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Bot != nil {
		slog.Info(LogMsgShuttingDownBot)
		if err := components.Bot.Stop(); err != nil {
			slog.Error(LogMsgBotShutdownFailed, "error", err)
		}
	}

	if components.Store != nil {
		slog.Info(LogMsgClosingStore)
		if err := components.Store.Close(); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
