package database

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 2
)

// Drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Tables
const (
	TableProgression = "user_progression"
	TableItems       = "shop_items"
)

// Progression columns
const (
	ColUserID         = "user_id"
	ColGuildID        = "guild_id"
	ColBalance        = "balance"
	ColXP             = "xp"
	ColLevel          = "level"
	ColLastCoinClaim  = "last_coin_claim"
	ColLastXPClaim    = "last_xp_claim"
	ColLastDaily      = "last_daily"
	ColDailyStreak    = "daily_streak"
	ColDailySpamCount = "daily_spam_count"
)

// Item columns
const (
	ColItemID      = "item_id"
	ColCreatorID   = "creator_id"
	ColItemName    = "item_name"
	ColApplication = "application"
	ColCategory    = "category"
	ColPrice       = "price"
	ColProductLink = "product_link"
	ColScreenshot1 = "screenshot_link"
	ColScreenshot2 = "screenshot_link_2"
	ColScreenshot3 = "screenshot_link_3"
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString     = "failed to parse connection string"
	ErrMsgFailedToCreatePool          = "failed to create connection pool"
	ErrMsgFailedToPingDatabase        = "failed to ping database"
	ErrMsgFailedToBuildQuery          = "failed to build query"
	ErrMsgFailedToScanRow             = "failed to scan row"
	ErrMsgFailedToParseLastDaily      = "failed to parse last daily date"
	ErrMsgUnknownDialect              = "unknown migration dialect"
	ErrMsgFailedToCreateMigrator      = "failed to create migration provider"
	ErrMsgFailedToApplyMigrations     = "failed to apply migrations"
	ErrMsgFailedToRollbackMigration   = "failed to roll back migration"
	ErrMsgFailedToReadMigrationStatus = "failed to read migration status"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationApplied                = "Applied migration"
	LogMsgMigrationsUpToDate              = "Database schema is up to date"
)
