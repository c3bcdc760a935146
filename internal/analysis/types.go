package analysis

import "time"

// ClubSummary is the complete structured summary behind one report run.
// It is a pure value: rendering the same summary twice yields identical
// output.
type ClubSummary struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`

	Revenue     RevenueSummary     `json:"revenue"`
	Stadium     StadiumSummary     `json:"stadium"`
	Merchandise MerchandiseSummary `json:"merchandise"`
	Fanbase     FanbaseSummary     `json:"fanbase"`
}

// RevenueSummary covers the combined revenue picture across both streams.
type RevenueSummary struct {
	StadiumTotal     float64          `json:"stadium_total"`
	MerchandiseTotal float64          `json:"merchandise_total"`
	CombinedTotal    float64          `json:"combined_total"`
	StadiumShare     float64          `json:"stadium_share_pct"`
	MerchandiseShare float64          `json:"merchandise_share_pct"`
	Monthly          []MonthlyRevenue `json:"monthly"`
	// UnassignedMerchandise is merchandise revenue counted in
	// MerchandiseTotal but absent from Monthly because the sale has no
	// recorded selling date. Monthly sums plus this value reconcile with
	// the totals.
	UnassignedMerchandise float64    `json:"unassigned_merchandise"`
	PeakMonth             time.Month `json:"peak_month"`
}

// MonthlyRevenue is the combined revenue for one calendar month.
type MonthlyRevenue struct {
	Month       time.Month `json:"month"`
	Stadium     float64    `json:"stadium"`
	Merchandise float64    `json:"merchandise"`
	Combined    float64    `json:"combined"`
}

// StadiumSummary ranks the stadium revenue sources by total and efficiency.
type StadiumSummary struct {
	Sources             []SourceEfficiency `json:"sources"`
	MostEfficientSource string             `json:"most_efficient_source"`
}

// SourceEfficiency carries per-source totals and revenue per event.
type SourceEfficiency struct {
	Source          string  `json:"source"`
	Revenue         float64 `json:"revenue"`
	Events          int     `json:"events"`
	RevenuePerEvent float64 `json:"revenue_per_event"`
}

// MerchandiseSummary covers category, channel, region and promotion splits.
type MerchandiseSummary struct {
	Categories        []Group          `json:"categories"`
	TopCategory       string           `json:"top_category"`
	Channels          []ChannelSummary `json:"channels"`
	OnlineShare       float64          `json:"online_share_pct"`
	ChannelMultiplier float64          `json:"channel_multiplier"`
	Regions           []Group          `json:"regions"`
	Promotion         PromotionSummary `json:"promotion"`
}

// ChannelSummary carries per-channel revenue and pricing.
type ChannelSummary struct {
	Channel       string  `json:"channel"`
	Revenue       float64 `json:"revenue"`
	Sales         int     `json:"sales"`
	MeanUnitPrice float64 `json:"mean_unit_price"`
	Share         float64 `json:"share_pct"`
}

// PromotionSummary splits merchandise revenue by promotion flag.
type PromotionSummary struct {
	Promoted    PartitionStats `json:"promoted"`
	NonPromoted PartitionStats `json:"non_promoted"`
	// Multiplier is promoted revenue over non-promoted revenue.
	Multiplier float64 `json:"multiplier"`
}

// PartitionStats carries the sum/count/mean triple for one partition.
type PartitionStats struct {
	Revenue       float64 `json:"revenue"`
	Sales         int     `json:"sales"`
	MeanUnitPrice float64 `json:"mean_unit_price"`
}

// FanbaseSummary covers membership, attendance and the seasonal pass split.
type FanbaseSummary struct {
	Members           int     `json:"members"`
	MeanGamesAttended float64 `json:"mean_games_attended"`
	PassHolders       int     `json:"pass_holders"`
	PassRate          float64 `json:"pass_rate_pct"`
	HolderMeanGames   float64 `json:"holder_mean_games"`
	NonHolderMeanGames float64 `json:"non_holder_mean_games"`
	// EngagementMultiplier is the ratio of mean attendance between pass
	// holders and non-holders.
	EngagementMultiplier float64 `json:"engagement_multiplier"`
	AgeGroups            []Group `json:"age_groups"`
	Regions              []Group `json:"regions"`
}
