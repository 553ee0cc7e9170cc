package progression

// =============================================================================
// Luck Constants
// =============================================================================

const (
	// LuckPerWeek is the multiplier gained for every seven streak days
	LuckPerWeek = 0.5

	// DaysPerWeek converts a daily streak into weeks
	DaysPerWeek = 7.0

	// MaxLuckMultiplier caps the streak luck boost
	MaxLuckMultiplier = 10.0
)

// =============================================================================
// Passive Reward Constants
// =============================================================================

const (
	// CoinBaseCap is the coin reward cap at level 0
	CoinBaseCap = 20

	// XPBaseCap is the XP reward cap at level 0
	XPBaseCap = 25

	// CapPerLevel is added to both caps for every level
	CapPerLevel = 5

	// CoinHighTierChance is the base probability of a high-tier coin drop (5%)
	CoinHighTierChance = 0.05

	// XPHighTierChance is the base probability of a high-tier XP drop (20%)
	XPHighTierChance = 0.20

	// LowTierNumerator and LowTierDenominator place the low/high band split at
	// floor(0.80 * cap), computed in integers to avoid float truncation surprises
	LowTierNumerator   = 4
	LowTierDenominator = 5
)

// =============================================================================
// Leveling Constants
// =============================================================================

const (
	// XPBaseRequirement is the XP needed to leave level 0
	XPBaseRequirement = 100

	// XPPerLevelRequirement is added to the requirement for every level
	XPPerLevelRequirement = 50
)

// =============================================================================
// Daily Claim Constants
// =============================================================================

const (
	// DailyBaseReward is paid to every successful daily claim
	DailyBaseReward = 50

	// DailyTierLevels is the number of levels per daily reward tier
	DailyTierLevels = 50

	// DailyTierBonus is added for each completed tier
	DailyTierBonus = 50

	// DailyMaxReward caps the daily reward
	DailyMaxReward = 500

	// DailySpamLimit is the number of throttled replies before attempts are ignored
	DailySpamLimit = 9

	// DailySpamWarningIndex is the ladder step that also sends a private warning
	DailySpamWarningIndex = 4
)

// SpamLadder holds the escalating replies to repeated same-day daily claims.
var SpamLadder = [DailySpamLimit]string{
	"You have already claimed your daily reward today. Come back tomorrow!",
	"Hey, I already told you. Once per day.",
	"Seriously? T-o-m-o-r-r-o-w.",
	"Are you even listening? Stop it.",
	"Okay, that's it. Don't make me warn you again.",
	"You're really pushing your luck.",
	"This is getting annoying.",
	"....",
	"From the beginning I've been watching you spam /daily. Last warning.",
}

// SpamWarningNotice is sent privately at DailySpamWarningIndex
const SpamWarningNotice = "Stop spamming the daily command."
