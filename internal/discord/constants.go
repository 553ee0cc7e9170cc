package discord

// Slash command names
const (
	CmdBalance     = "balance"
	CmdLevel       = "lvl"
	CmdDropRates   = "droprates"
	CmdDaily       = "daily"
	CmdStreak      = "streak"
	CmdLuck        = "luck"
	CmdShop        = "shop"
	CmdUpload      = "upd"
	CmdMyUploads   = "myuploads"
	CmdGiveCoins   = "givecoins"
	CmdRemoveCoins = "removecoins"
	CmdSetPrice    = "setprice"
	CmdRemoveItem  = "removeitem"
	CmdDatabase    = "database"
)

// Component custom ids are "<prefix>|<session id>[|<value>]"
const (
	CustomIDSeparator   = "|"
	ComponentShopApp    = "shop_app"
	ComponentShopCat    = "shop_cat"
	ComponentShopItem   = "shop_item"
	ComponentShopBuy    = "shop_buy"
	ButtonsPerActionRow = 5

	// MaxSelectOptions is Discord's limit on options in one select menu
	MaxSelectOptions = 25

	// MaxEmbedFields is Discord's limit on fields in one embed
	MaxEmbedFields = 25
)

// Command results for metrics
const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
	ResultError    = "error"
)

// Embed colors
const (
	ColorGold     = 0xf1c40f
	ColorBlue     = 0x3498db
	ColorTeal     = 0x1abc9c
	ColorGreen    = 0x2ecc71
	ColorPurple   = 0x9b59b6
	ColorOrange   = 0xe67e22
	ColorBlurple  = 0x5865f2
	ColorDarkRed  = 0x992d22
	ColorDarkGrey = 0x607d8b
	ColorBrand    = 0x57f287
)

// Footers
const (
	FooterRocksBot  = "RocksBot"
	FooterDropRates = "Increase your level and daily streak to improve your rewards!"
	FooterLuck      = "This boosts your chances of high-tier chat rewards."
	FooterNewItem   = "Use /shop to browse and purchase!"
)

// Progress bar rendering for /lvl
const (
	ProgressBarCells = 20
	ProgressFilled   = "🟩"
	ProgressEmpty    = "⬛"
)

// ==================== Log Messages ====================

const (
	LogMsgBotReady            = "Discord bot is ready"
	LogMsgBotRunning          = "Discord bot is now running"
	LogMsgCheckingCommands    = "Checking Discord commands"
	LogMsgForceUpdate         = "Force update enabled - replacing all commands"
	LogMsgCommandsUnchanged   = "Commands unchanged, skipping registration"
	LogMsgCommandsChanged     = "Commands changed, updating"
	LogMsgCommandsUpdated     = "Commands updated successfully"
	LogMsgUnknownCommand      = "Unknown command"
	LogMsgUnknownComponent    = "Unknown component"
	LogMsgCommandFailed       = "Command failed"
	LogMsgRespondFailed       = "Failed to respond to interaction"
	LogMsgMessageRewardFailed = "Failed to process chat reward"
	LogMsgAnnounceFailed      = "Failed to announce level-up"
	LogMsgWarnDMFailed        = "Failed to send spam warning"
	LogMsgLogChannelFailed    = "Failed to post to log channel"
	LogMsgCreatorLookupFailed = "Could not find creator for admin log"
	LogMsgRoleLookupFailed    = "Failed to resolve guild roles"
	LogMsgPurchaseCompleted   = "Shop purchase completed"
)

// ==================== Error Messages ====================

const (
	ErrMsgCreateSessionFmt    = "error creating Discord session: %w"
	ErrMsgOpenConnectionFmt   = "error opening connection: %w"
	ErrMsgFetchCommandsFmt    = "failed to fetch existing commands: %w"
	ErrMsgOverwriteCommandFmt = "failed to bulk overwrite commands: %w"
	ErrMsgUpdateCommandsFmt   = "failed to update commands: %w"
	ErrMsgOpenDMFmt           = "failed to open DM channel: %w"
	ErrMsgSendDMFmt           = "failed to send DM: %w"
	ErrMsgInvalidSnowflakeFmt = "invalid snowflake %q: %w"
)
