package sqlite

// Connection settings
const (
	// MemoryPath opens a throwaway in-memory database
	MemoryPath = ":memory:"

	// DSNPragmas enables WAL and waits on a locked database instead of failing
	DSNPragmas = "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
)

const itemSchemaSQL = "PRAGMA table_info(shop_items)"

// Error Messages
const (
	ErrMsgPathRequired              = "sqlite path is required"
	ErrMsgFailedToOpen              = "failed to open sqlite database"
	ErrMsgFailedToInsertProgression = "failed to insert progression"
	ErrMsgFailedToGetProgression    = "failed to get progression"
	ErrMsgFailedToUpdateProgression = "failed to update progression"
	ErrMsgFailedToInsertItem        = "failed to insert item"
	ErrMsgFailedToGetItem           = "failed to get item"
	ErrMsgFailedToListItems         = "failed to list items"
	ErrMsgFailedToListCategories    = "failed to list categories"
	ErrMsgFailedToUpdateItem        = "failed to update item"
	ErrMsgFailedToDeleteItem        = "failed to delete item"
	ErrMsgFailedToReadSchema        = "failed to read item schema"
)

// Log Messages
const (
	LogMsgProgressionLoaded = "Loaded progression"
)
