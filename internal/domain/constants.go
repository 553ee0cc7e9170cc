package domain

import "time"

// Platform identifiers
const (
	PlatformDiscord = "discord"
)

// Passive reward cooldowns, tracked independently per kind
const (
	CoinClaimCooldown = 25 * time.Second
	XPClaimCooldown   = 20 * time.Second
)

// ShopSessionTimeout is the inactivity window of an interactive shop flow
const ShopSessionTimeout = 30 * time.Second

// MaxPreviewLinks is the number of preview images a shop item can carry
const MaxPreviewLinks = 3

// DateLayout is the ISO calendar date format used for daily claims
const DateLayout = "2006-01-02"

// Default shop taxonomy
var (
	DefaultApplications = []string{"After Effects", "Alight Motion", "Node", "Capcut", "Blurr"}
	DefaultCategories   = []string{"CC", "FX", "Overlays", "Project File"}

	// FullPreviewCategories must be uploaded with every preview slot filled
	FullPreviewCategories = []string{"FX", "Project File"}
)
