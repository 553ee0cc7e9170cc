package domain

import (
	"fmt"
	"time"
)

// UserKey identifies a progression record: one per user per guild.
type UserKey struct {
	UserID  int64 `json:"user_id,string"`
	GuildID int64 `json:"guild_id,string"`
}

func (k UserKey) String() string {
	return fmt.Sprintf("%d@%d", k.UserID, k.GuildID)
}

// UserProgression is a snapshot of a user's economy state within one guild.
// Stores hand out copies; mutating a snapshot never touches persisted state.
type UserProgression struct {
	UserID         int64      `json:"user_id,string"`
	GuildID        int64      `json:"guild_id,string"`
	Balance        int64      `json:"balance"`
	XP             int64      `json:"xp"`
	Level          int        `json:"level"`
	LastCoinClaim  time.Time  `json:"last_coin_claim"`
	LastXPClaim    time.Time  `json:"last_xp_claim"`
	LastDailyClaim *time.Time `json:"last_daily_claim,omitempty"` // calendar date, midnight UTC
	DailyStreak    int        `json:"daily_streak"`
	DailySpamCount int        `json:"daily_spam_count"`
}

// Key returns the record key of the snapshot
func (p UserProgression) Key() UserKey {
	return UserKey{UserID: p.UserID, GuildID: p.GuildID}
}

// NewUserProgression returns the zero-valued record created on first access.
func NewUserProgression(key UserKey) UserProgression {
	return UserProgression{UserID: key.UserID, GuildID: key.GuildID}
}
