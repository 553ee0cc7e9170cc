package config

// Defaults
const (
	DefaultPort          = 8080
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
	DefaultLogDir        = "logs"
	DefaultEnvironment   = "dev"
	DefaultVersion       = "dev"
	DefaultDBDriver      = "postgres"
	DefaultDBName        = "rocksbot"
	DefaultDBMaxConns    = 10
	DefaultSQLitePath    = "data/economy.db"
	DefaultAdminRole     = "Admin"
	DefaultCreatorRole   = "Creator"
	DefaultMemberRole    = "Members"
	DefaultDailyTimezone = "UTC"
)

// Supported DB_DRIVER values
const (
	DBDriverPostgres = "postgres"
	DBDriverSQLite   = "sqlite"
)

// Error messages
const (
	ErrMsgInvalidPortFmt     = "invalid PORT value: %w"
	ErrMsgAPIKeyRequired     = "API_KEY environment variable must be set for security"
	ErrMsgInvalidDriverFmt   = "invalid DB_DRIVER %q: expected postgres or sqlite"
	ErrMsgInvalidTimezoneFmt = "invalid DAILY_TIMEZONE %q: %w"
	ErrMsgInvalidChannelFmt  = "invalid %s value %q: %w"
)
