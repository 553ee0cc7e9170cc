package economy

import "github.com/osse101/RocksBot_Go/internal/progression"

// MessageResult describes the rewards granted for one chat message.
type MessageResult struct {
	CoinsEarned int64 `json:"coins_earned"`
	XPEarned    int64 `json:"xp_earned"`
	LeveledUp   bool  `json:"leveled_up"`
	NewLevel    int   `json:"new_level"`
	NewBalance  int64 `json:"new_balance"`
}

// Rewarded reports whether anything was granted
func (r MessageResult) Rewarded() bool {
	return r.CoinsEarned > 0 || r.XPEarned > 0
}

// DailyResult describes the outcome of a daily claim.
type DailyResult struct {
	Status      progression.DailyStatus `json:"status"`
	Reward      int64                   `json:"reward"`
	Streak      int                     `json:"streak"`
	NewBalance  int64                   `json:"new_balance"`
	Message     string                  `json:"message,omitempty"`
	WarningText string                  `json:"warning_text,omitempty"` // sent privately when set
}

// Profile is the user-facing view of a progression record.
type Profile struct {
	Balance        int64   `json:"balance"`
	Level          int     `json:"level"`
	XP             int64   `json:"xp"`
	XPNeeded       int64   `json:"xp_needed"`
	DailyStreak    int     `json:"daily_streak"`
	LuckMultiplier float64 `json:"luck_multiplier"`
}

// BalanceChange reports an administrative balance adjustment.
type BalanceChange struct {
	Before int64 `json:"before"`
	After  int64 `json:"after"`
}
