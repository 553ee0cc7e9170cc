package progression

import (
	"math"
	"time"

	"github.com/osse101/RocksBot_Go/internal/domain"
)

// RewardKind selects which passive reward curve applies.
type RewardKind int

const (
	RewardCoin RewardKind = iota
	RewardXP
)

func (k RewardKind) String() string {
	switch k {
	case RewardCoin:
		return "coin"
	case RewardXP:
		return "xp"
	default:
		return "unknown"
	}
}

// Cap returns the largest reward of this kind at the given level
func (k RewardKind) Cap(level int) int {
	if level < 0 {
		level = 0
	}
	if k == RewardXP {
		return XPBaseCap + CapPerLevel*level
	}
	return CoinBaseCap + CapPerLevel*level
}

// BaseHighTierChance returns the high-tier probability before luck
func (k RewardKind) BaseHighTierChance() float64 {
	if k == RewardXP {
		return XPHighTierChance
	}
	return CoinHighTierChance
}

// Cooldown returns how long a user waits between two rewards of this kind
func (k RewardKind) Cooldown() time.Duration {
	if k == RewardXP {
		return domain.XPClaimCooldown
	}
	return domain.CoinClaimCooldown
}

// HighTierChance is the luck-boosted high-tier probability, capped at 1.
func (k RewardKind) HighTierChance(luck float64) float64 {
	return math.Min(k.BaseHighTierChance()*luck, 1.0)
}

// Bands returns the closed low band [1, lowMax] and high band [highMin, cap].
// lowMax never drops below 1 so low-tier draws stay defined for tiny caps.
func (k RewardKind) Bands(level int) (lowMax, highMin, highMax int) {
	top := k.Cap(level)
	split := top * LowTierNumerator / LowTierDenominator
	lowMax = max(split, 1)
	highMin = min(split+1, top)
	return lowMax, highMin, top
}

// EvaluatePassiveReward draws the reward for one qualifying event.
// Luck moves probability mass into the top band without widening the range.
func EvaluatePassiveReward(kind RewardKind, level int, luck float64, r Rand) int {
	if r == nil {
		r = DefaultRand()
	}
	lowMax, highMin, highMax := kind.Bands(level)
	if r.Float64() < kind.HighTierChance(luck) {
		return uniformInt(r, highMin, highMax)
	}
	return uniformInt(r, 1, lowMax)
}

// IsEligible reports whether strictly more than cooldown has passed since lastClaim.
// A zero lastClaim is always eligible.
func IsEligible(lastClaim, now time.Time, cooldown time.Duration) bool {
	if lastClaim.IsZero() {
		return true
	}
	return now.Sub(lastClaim) > cooldown
}
