package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	_ "time/tzdata" // DAILY_TIMEZONE on hosts without a zoneinfo database

	"github.com/joho/godotenv"

	"github.com/osse101/RocksBot_Go/internal/database"
	"github.com/osse101/RocksBot_Go/internal/domain"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	Environment string
	Version     string
	APIKey      string // API key for authentication

	// TrustedProxies may set X-Forwarded-For; empty trusts the socket address only
	TrustedProxies []string

	// Storage
	DBDriver          string
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration
	SQLitePath        string

	// Discord
	DiscordToken              string
	DiscordAppID              string
	DiscordGuildID            string // empty registers commands globally
	DiscordForceCommandUpdate bool

	// Channel restrictions and log targets; 0 means unset
	ShopChannelID         int64
	UploadChannelID       int64
	PurchaseLogChannelID  int64
	AdminLogChannelID     int64
	NewItemLogChannelID   int64
	DatabaseViewChannelID int64

	AdminRole   string
	CreatorRole string
	MemberRole  string

	ShopApplications []string
	ShopCategories   []string
	DailyTimezone    string
	DailyLocation    *time.Location
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		LogDir:      getEnv("LOG_DIR", DefaultLogDir),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		Version:     getEnv("VERSION", DefaultVersion),
		APIKey:      getEnv("API_KEY", ""),

		TrustedProxies: getEnvAsList("TRUSTED_PROXIES", nil),

		DBDriver:          strings.ToLower(getEnv("DB_DRIVER", DefaultDBDriver)),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", DefaultDBName),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
		SQLitePath:        getEnv("SQLITE_PATH", DefaultSQLitePath),

		DiscordToken:              getEnv("DISCORD_TOKEN", ""),
		DiscordAppID:              getEnv("DISCORD_APP_ID", ""),
		DiscordGuildID:            getEnv("DISCORD_GUILD_ID", ""),
		DiscordForceCommandUpdate: getEnvAsBool("DISCORD_FORCE_COMMAND_UPDATE", false),

		AdminRole:   getEnv("ADMIN_ROLE", DefaultAdminRole),
		CreatorRole: getEnv("CREATOR_ROLE", DefaultCreatorRole),
		MemberRole:  getEnv("MEMBER_ROLE", DefaultMemberRole),

		ShopApplications: getEnvAsList("SHOP_APPLICATIONS", domain.DefaultApplications),
		ShopCategories:   getEnvAsList("SHOP_CATEGORIES", domain.DefaultCategories),
		DailyTimezone:    getEnv("DAILY_TIMEZONE", DefaultDailyTimezone),
	}

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidPortFmt, err)
	}
	cfg.Port = port

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, errors.New(ErrMsgAPIKeyRequired)
	}

	if cfg.DBDriver != DBDriverPostgres && cfg.DBDriver != DBDriverSQLite {
		return nil, fmt.Errorf(ErrMsgInvalidDriverFmt, cfg.DBDriver)
	}

	loc, err := time.LoadLocation(cfg.DailyTimezone)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidTimezoneFmt, cfg.DailyTimezone, err)
	}
	cfg.DailyLocation = loc

	channels := []struct {
		key  string
		dest *int64
	}{
		{"SHOP_CHANNEL_ID", &cfg.ShopChannelID},
		{"UPLOAD_CHANNEL_ID", &cfg.UploadChannelID},
		{"PURCHASE_LOG_CHANNEL_ID", &cfg.PurchaseLogChannelID},
		{"ADMIN_LOG_CHANNEL_ID", &cfg.AdminLogChannelID},
		{"NEW_ITEM_LOG_CHANNEL_ID", &cfg.NewItemLogChannelID},
		{"DATABASE_VIEW_CHANNEL_ID", &cfg.DatabaseViewChannelID},
	}
	for _, ch := range channels {
		raw := getEnv(ch.key, "")
		if raw == "" {
			continue
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgInvalidChannelFmt, ch.key, raw, err)
		}
		*ch.dest = id
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping blank entries
func getEnvAsList(key string, defaultValue []string) []string {
	raw := os.Getenv(key)
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), defaultValue...)
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return database.PostgresURL(c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// UsesSQLite reports whether the embedded backend is selected
func (c *Config) UsesSQLite() bool {
	return c.DBDriver == DBDriverSQLite
}
