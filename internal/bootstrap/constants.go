package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of old log files kept next to the new one
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingRocksBot    = "Starting RocksBot"
	LogMsgConfigurationLoaded = "Configuration loaded"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Application Wiring
// =============================================================================

const (
	// ServiceName tags every log line
	ServiceName = "rocks-bot"

	// ShutdownTimeout bounds the graceful shutdown of every component
	ShutdownTimeout = 10 * time.Second
)

const (
	LogMsgStoreOpened      = "Store opened"
	LogMsgDiscordDisabled  = "DISCORD_TOKEN not set, running the HTTP API only"
	LogMsgShutdownSignal   = "Shutdown signal received"
	ErrMsgFailedOpenStore  = "failed to open store"
	ErrMsgFailedMigrate    = "failed to run migrations"
	ErrMsgFailedCreateBot  = "failed to create Discord bot"
	ErrMsgFailedStartBot   = "failed to start Discord bot"
	ErrMsgServerFailed     = "HTTP server failed"
	ErrMsgUnknownDriverFmt = "unknown DB_DRIVER %q"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgShuttingDownBot      = "Closing Discord connection..."
	LogMsgClosingStore         = "Closing store..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgBotShutdownFailed    = "Discord bot shutdown failed"
	LogMsgStoreCloseFailed     = "Store close failed"
)
