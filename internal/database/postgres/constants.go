package postgres

// Error Messages - Progression Operations
const (
	ErrMsgFailedToInsertProgression = "failed to insert progression"
	ErrMsgFailedToGetProgression    = "failed to get progression"
	ErrMsgFailedToUpdateProgression = "failed to update progression"
)

// Error Messages - Catalog Operations
const (
	ErrMsgFailedToInsertItem     = "failed to insert item"
	ErrMsgFailedToGetItem        = "failed to get item"
	ErrMsgFailedToListItems      = "failed to list items"
	ErrMsgFailedToListCategories = "failed to list categories"
	ErrMsgFailedToUpdateItem     = "failed to update item"
	ErrMsgFailedToDeleteItem     = "failed to delete item"
	ErrMsgFailedToReadSchema     = "failed to read item schema"
)

// Log Messages
const (
	LogMsgProgressionLoaded = "Loaded progression"
)

// itemSchemaSQL mirrors sqlite's PRAGMA table_info for a postgres table.
const itemSchemaSQL = `
SELECT a.attname,
       format_type(a.atttypid, a.atttypmod),
       a.attnotnull,
       COALESCE(i.indisprimary, false)
FROM pg_attribute a
LEFT JOIN pg_index i
       ON i.indrelid = a.attrelid AND a.attnum = ANY(i.indkey) AND i.indisprimary
WHERE a.attrelid = $1::text::regclass
  AND a.attnum > 0
  AND NOT a.attisdropped
ORDER BY a.attnum`
