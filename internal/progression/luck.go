package progression

import "math"

// CalculateLuckMultiplier converts a daily streak into the high-tier drop multiplier:
// 1 + 0.5 per week of streak, capped at 10x.
func CalculateLuckMultiplier(streak int) float64 {
	if streak < 0 {
		streak = 0
	}
	return math.Min(1+LuckPerWeek*(float64(streak)/DaysPerWeek), MaxLuckMultiplier)
}
