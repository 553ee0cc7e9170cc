package progression

import "time"

// DailyStatus is the result class of a daily claim attempt.
type DailyStatus int

const (
	DailyGranted DailyStatus = iota
	DailyThrottled
	DailyIgnored
)

func (s DailyStatus) String() string {
	switch s {
	case DailyGranted:
		return "granted"
	case DailyThrottled:
		return "throttled"
	case DailyIgnored:
		return "ignored"
	default:
		return "unknown"
	}
}

// MarshalText renders the status by name in JSON payloads
func (s DailyStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// DailyOutcome describes what a daily claim should do. The caller persists it:
// Granted writes Reward, NewStreak, today and a zero spam count; Throttled writes
// NewSpamCount; Ignored writes nothing.
type DailyOutcome struct {
	Status       DailyStatus
	Reward       int64
	NewStreak    int
	MessageIndex int  // SpamLadder index, Throttled only
	Warn         bool // send SpamWarningNotice privately, Throttled only
	NewSpamCount int
}

// Message returns the ladder reply for a throttled outcome, or "" otherwise
func (o DailyOutcome) Message() string {
	if o.Status != DailyThrottled || o.MessageIndex < 0 || o.MessageIndex >= len(SpamLadder) {
		return ""
	}
	return SpamLadder[o.MessageIndex]
}

// DailyReward is the tiered daily bonus: 50 plus 50 per 50 levels, capped at 500.
func DailyReward(level int) int64 {
	if level < 0 {
		level = 0
	}
	return min(int64(DailyBaseReward+DailyTierBonus*(level/DailyTierLevels)), DailyMaxReward)
}

// EvaluateDailyClaim decides a daily claim. today and lastDate are calendar dates
// (see domain.CalendarDate); lastDate is nil when the user never claimed.
func EvaluateDailyClaim(today time.Time, lastDate *time.Time, streak, spamCount, level int) DailyOutcome {
	if lastDate != nil && lastDate.Equal(today) {
		if spamCount >= DailySpamLimit {
			return DailyOutcome{Status: DailyIgnored, NewStreak: streak, NewSpamCount: spamCount}
		}
		if spamCount < 0 {
			spamCount = 0
		}
		return DailyOutcome{
			Status:       DailyThrottled,
			NewStreak:    streak,
			MessageIndex: spamCount,
			Warn:         spamCount == DailySpamWarningIndex,
			NewSpamCount: spamCount + 1,
		}
	}

	newStreak := 1
	if lastDate != nil && lastDate.Equal(today.AddDate(0, 0, -1)) {
		newStreak = streak + 1
	}
	return DailyOutcome{
		Status:    DailyGranted,
		Reward:    DailyReward(level),
		NewStreak: newStreak,
	}
}
