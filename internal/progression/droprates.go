package progression

// DropRate describes one passive reward curve for display.
type DropRate struct {
	Min            int     `json:"min"`
	Max            int     `json:"max"`
	HighTierChance float64 `json:"high_tier_chance"`
}

// DropRates is the user-facing summary behind /droprates.
type DropRates struct {
	Level          int      `json:"level"`
	Streak         int      `json:"streak"`
	LuckMultiplier float64  `json:"luck_multiplier"`
	Coin           DropRate `json:"coin"`
	XP             DropRate `json:"xp"`
}

// CalculateDropRates summarizes both reward curves for a level and streak
func CalculateDropRates(level, streak int) DropRates {
	luck := CalculateLuckMultiplier(streak)
	return DropRates{
		Level:          level,
		Streak:         streak,
		LuckMultiplier: luck,
		Coin:           DropRate{Min: 1, Max: RewardCoin.Cap(level), HighTierChance: RewardCoin.HighTierChance(luck)},
		XP:             DropRate{Min: 1, Max: RewardXP.Cap(level), HighTierChance: RewardXP.HighTierChance(luck)},
	}
}
