package economy

// ==================== Error Messages ====================

// Formatted error messages
const (
	ErrMsgGetProgressionFailedFmt    = "failed to load progression for %s: %w"
	ErrMsgUpdateProgressionFailedFmt = "failed to save progression for %s: %w"
	ErrMsgInvalidAmountFmt           = "amount must be greater than zero, got %d: %w"
)

// ==================== Log Messages ====================

// Passive reward log messages
const (
	LogMsgPassiveRewardGranted = "Passive reward granted"
	LogMsgLevelUp              = "User leveled up"
)

// Daily claim log messages
const (
	LogMsgDailyGranted   = "Daily reward granted"
	LogMsgDailyThrottled = "Daily claim throttled"
	LogMsgDailyIgnored   = "Daily claim ignored"
)

// Admin log messages
const (
	LogMsgCoinsGiven   = "Coins given"
	LogMsgCoinsRemoved = "Coins removed"
)

// Admin operations, used as metric labels
const (
	OperationGive   = "give"
	OperationRemove = "remove"
)
