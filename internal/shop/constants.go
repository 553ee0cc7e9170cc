package shop

// ==================== Error Messages ====================

// Formatted error messages
const (
	ErrMsgGetItemFailedFmt        = "failed to load item %d: %w"
	ErrMsgGetProgressionFailedFmt = "failed to load progression for %s: %w"
	ErrMsgChargeFailedFmt         = "failed to charge %s for item %d: %w"
	ErrMsgInsufficientFundsFmt    = "%w: need %d coins, have %d"
	ErrMsgDeliveryFailedFmt       = "%w: item %d to user %d: %w"
	ErrMsgRefundFailedFmt         = "%w: %d coins to %s: %w"
	ErrMsgUnknownApplicationFmt   = "%w: unknown application %q"
	ErrMsgUnknownCategoryFmt      = "%w: unknown category %q"
	ErrMsgPreviewsRequiredFmt     = "%w: category %q requires %d previews, got %d"
	ErrMsgValidationFmt           = "%w: %s"
	ErrMsgNegativePriceFmt        = "%w: price %d is negative"
	ErrMsgInsertItemFailedFmt     = "failed to save item %q: %w"
	ErrMsgUpdateItemFailedFmt     = "failed to update item %d: %w"
	ErrMsgDeleteItemFailedFmt     = "failed to delete item %d: %w"
	ErrMsgListFailedFmt           = "failed to list %s: %w"
	ErrMsgSchemaFailedFmt         = "failed to read catalog schema: %w"
	ErrMsgWrongStageFmt           = "%w: %s is not allowed while %s"
	ErrMsgPlaceholderSelected     = "placeholder option selected"
	ErrMsgRefund                  = "refund failed"
)

// ==================== Log Messages ====================

// Purchase log messages
const (
	LogMsgPurchaseRejected  = "Purchase rejected, insufficient funds"
	LogMsgPurchaseCompleted = "Purchase completed"
	LogMsgDeliveryFailed    = "Item delivery failed, refunding"
	LogMsgRefundFailed      = "Refund after failed delivery did not go through"
	LogMsgRefunded          = "Purchase refunded"
)

// Catalog log messages
const (
	LogMsgItemUploaded = "Item uploaded"
	LogMsgPriceUpdated = "Item price updated"
	LogMsgItemRemoved  = "Item removed"
)

// Session log messages
const (
	LogMsgSessionStarted = "Shop session started"
)

// ==================== Labels ====================

// Purchase outcomes, used as metric labels
const (
	OutcomeCompleted    = "completed"
	OutcomeRejected     = "rejected"
	OutcomeRefunded     = "refunded"
	OutcomeRefundFailed = "refund_failed"
)

// Refund results, used as metric labels
const (
	RefundOK     = "ok"
	RefundFailed = "failed"
)

// ==================== Flow ====================

// PlaceholderValue is the option value shown when a menu has nothing to pick
const PlaceholderValue = "disabled"

// DefaultSessionCapacity bounds the number of live shop sessions
const DefaultSessionCapacity = 1024
