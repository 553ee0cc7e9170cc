package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"
	ErrMsgInvalidItemID     = "Invalid item id"
)

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError     = "Something went wrong"
	ErrMsgUnknownError           = "Unknown error"
	ErrMsgInvalidRequestError    = "Invalid request. Please check your inputs."
	ErrMsgUserNotFoundError      = "User not found"
	ErrMsgItemNotFoundError      = "Item not found"
	ErrMsgNotEnoughCoinsError    = "Not enough coins"
	ErrMsgDeliveryFailedError    = "Item could not be delivered, the purchase was refunded"
	ErrMsgSessionExpiredError    = "This shop session has expired"
	ErrMsgInvalidSelectionError  = "That option cannot be selected"
	ErrMsgChannelRestrictedError = "This command is not allowed in this channel"
)

// Success messages for API responses
const (
	MsgPriceUpdated = "Price updated"
	MsgItemRemoved  = "Item removed"
)

// Log messages
const (
	LogMsgReadinessFailed = "Readiness check failed"
	LogMsgServiceError    = "Service error"
)
