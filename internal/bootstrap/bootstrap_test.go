package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RocksBot_Go/internal/config"
	"github.com/osse101/RocksBot_Go/internal/database/sqlite"
	"github.com/osse101/RocksBot_Go/internal/discord"
	"github.com/osse101/RocksBot_Go/internal/domain"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Port:             0,
		LogLevel:         "debug",
		LogFormat:        "text",
		LogDir:           t.TempDir(),
		Environment:      "test",
		Version:          "test",
		APIKey:           "test-key",
		DBDriver:         config.DBDriverSQLite,
		SQLitePath:       sqlite.MemoryPath,
		AdminRole:        "Admin",
		CreatorRole:      "Creator",
		MemberRole:       "Members",
		ShopApplications: []string{"Capcut"},
		ShopCategories:   []string{"Overlay", "FX"},
		DailyLocation:    time.UTC,
	}
}

func restoreDefaultLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	for n := range 12 {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2026-01-%02d_00-00-00", n+1))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o600))

	cleanupLogs(dir, 9)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Len(t, names, 10)
	assert.Contains(t, names, "notes.txt", "only log files are pruned")
	assert.NotContains(t, names, "session_2026-01-03_00-00-00.log")
	assert.Contains(t, names, "session_2026-01-04_00-00-00.log")
	assert.Contains(t, names, "session_2026-01-12_00-00-00.log")
}

func TestSetupLogger(t *testing.T) {
	restoreDefaultLogger(t)
	cfg := testConfig(t)
	cfg.LogDir = filepath.Join(cfg.LogDir, "nested")
	now := time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)

	f, err := setupLogger(cfg, io.Discard, now)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	assert.Equal(t, filepath.Join(cfg.LogDir, "session_2026-05-06_07-08-09.log"), f.Name())
	slog.Info("hello from test")

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), LogMsgStartingRocksBot)
	assert.Contains(t, string(data), "hello from test")
	assert.Contains(t, string(data), "service=rocks-bot")
}

func TestOpenStore(t *testing.T) {
	t.Run("sqlite creates the parent directory", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.SQLitePath = filepath.Join(t.TempDir(), "data", "economy.db")

		store, err := OpenStore(context.Background(), cfg)
		require.NoError(t, err)
		t.Cleanup(func() { _ = store.Close() })

		require.NoError(t, store.Ping(context.Background()))
		_, err = os.Stat(cfg.SQLitePath)
		assert.NoError(t, err)
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.DBDriver = "mysql"

		_, err := OpenStore(context.Background(), cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mysql")
	})
}

func TestNewWithStore(t *testing.T) {
	t.Run("without a Discord token only the API runs", func(t *testing.T) {
		restoreDefaultLogger(t)
		cfg := testConfig(t)

		app, err := New(context.Background(), cfg)
		require.NoError(t, err)
		t.Cleanup(func() { _ = app.Store.Close() })

		assert.Nil(t, app.Bot)
		assert.NotNil(t, app.Server)
		assert.Equal(t, []string{"Capcut"}, app.Shop.Applications())
	})

	t.Run("with a Discord token the bot is wired", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.DiscordToken = "token"
		cfg.DiscordAppID = "99"
		cfg.ShopChannelID = 5

		app, err := New(context.Background(), cfg)
		require.NoError(t, err)
		t.Cleanup(func() { _ = app.Store.Close() })

		require.NotNil(t, app.Bot)
		assert.Equal(t, "99", app.Bot.AppID)
		upd := app.Bot.Registry.Commands[discord.CmdUpload]
		require.NotNil(t, upd)
		assert.Equal(t, "Capcut", upd.Options[0].Choices[0].Value)
	})
}

func TestTaxonomy(t *testing.T) {
	cfg := testConfig(t)
	tax := Taxonomy(cfg)

	assert.Equal(t, cfg.ShopApplications, tax.Applications)
	assert.Equal(t, cfg.ShopCategories, tax.Categories)
	assert.Equal(t, domain.FullPreviewCategories, tax.FullPreviewCategories)

	tax.Applications[0] = "changed"
	assert.Equal(t, "Capcut", cfg.ShopApplications[0], "taxonomy must not alias config")
}

func TestDiscordConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.DiscordGuildID = "20"
	cfg.DiscordForceCommandUpdate = true
	cfg.UploadChannelID = 2
	cfg.AdminLogChannelID = 4
	cfg.DatabaseViewChannelID = 6

	dc := DiscordConfig(cfg, Taxonomy(cfg))
	assert.Equal(t, "20", dc.GuildID)
	assert.True(t, dc.ForceCommandUpdate)
	assert.Equal(t, discord.Channels{Upload: 2, AdminLog: 4, DatabaseView: 6}, dc.Channels)
	assert.Equal(t, discord.Roles{Admin: "Admin", Creator: "Creator", Member: "Members"}, dc.Roles)
}

func TestRun_ShutsDownOnCancel(t *testing.T) {
	restoreDefaultLogger(t)
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))

	app, err := New(context.Background(), testConfig(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Error(t, app.Store.Ping(context.Background()), "store is closed on shutdown")
}

func TestGracefulShutdown_NilComponents(t *testing.T) {
	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{})
	})
}
