package progression

// XPNeeded returns the XP required to advance from level
func XPNeeded(level int) int64 {
	if level < 0 {
		level = 0
	}
	return XPBaseRequirement + XPPerLevelRequirement*int64(level)
}

// LevelResult is the outcome of adding XP to a level.
type LevelResult struct {
	XP        int64
	Level     int
	LeveledUp bool
}

// ApplyXPGain adds earned XP and advances at most one level per call.
// Overflow beyond the next threshold stays in XP even if it would cover several
// more levels; the next gain will level again.
func ApplyXPGain(currentXP, earned int64, level int) LevelResult {
	total := currentXP + earned
	needed := XPNeeded(level)
	if total >= needed {
		return LevelResult{XP: total - needed, Level: level + 1, LeveledUp: true}
	}
	return LevelResult{XP: total, Level: level}
}

// Progress returns xp/needed clamped to [0, 1] for progress bars
func Progress(xp int64, level int) float64 {
	needed := XPNeeded(level)
	if xp <= 0 {
		return 0
	}
	if xp >= needed {
		return 1
	}
	return float64(xp) / float64(needed)
}
