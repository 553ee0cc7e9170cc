package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Progression metric names
const (
	MetricNameCoinsAwarded = "coins_awarded_total"
	MetricNameXPAwarded    = "xp_awarded_total"
	MetricNameLevelUps     = "level_ups_total"
	MetricNameDailyClaims  = "daily_claims_total"
	MetricNameAdminAdjust  = "admin_balance_adjustments_total"
)

// Shop metric names
const (
	MetricNamePurchases       = "shop_purchases_total"
	MetricNameCoinsSpent      = "coins_spent_total"
	MetricNameRefunds         = "shop_refunds_total"
	MetricNameUploads         = "shop_uploads_total"
	MetricNameSessionsStarted = "shop_sessions_started_total"
	MetricNameSessionsExpired = "shop_sessions_expired_total"
)

// Bot metric names
const (
	MetricNameCommandsHandled = "discord_commands_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Progression metric help text
const (
	HelpTextCoinsAwarded = "Total coins granted, by source"
	HelpTextXPAwarded    = "Total experience granted from chat activity"
	HelpTextLevelUps     = "Total level-ups"
	HelpTextDailyClaims  = "Daily claim attempts, by outcome"
	HelpTextAdminAdjust  = "Administrative balance adjustments, by operation"
)

// Shop metric help text
const (
	HelpTextPurchases       = "Shop purchase attempts, by outcome"
	HelpTextCoinsSpent      = "Total coins spent in the shop"
	HelpTextRefunds         = "Refunds issued after failed deliveries, by result"
	HelpTextUploads         = "Items uploaded by creators, by application"
	HelpTextSessionsStarted = "Interactive shop sessions started"
	HelpTextSessionsExpired = "Interactive shop sessions that timed out"
)

// Bot metric help text
const (
	HelpTextCommandsHandled = "Slash commands handled, by command and result"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelSource    = "source"
	LabelOutcome   = "outcome"
	LabelOperation = "operation"
	LabelApp       = "application"
	LabelCommand   = "command"
	LabelResult    = "result"
)

// Coin sources
const (
	SourceChat  = "chat"
	SourceDaily = "daily"
)

// ============================================================================
// Buckets
// ============================================================================

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}
