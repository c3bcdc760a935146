package dataset

import (
	"strings"
	"time"
)

// Dataset names used in error messages and logs.
const (
	StadiumDataset     = "stadium operations"
	MerchandiseDataset = "merchandise sales"
	FanbaseDataset     = "fanbase engagement"
)

// Region values after normalization.
const (
	RegionDomestic      = "Domestic"
	RegionInternational = "International"
)

// ChannelOnline and ChannelTeamStore are the two merchandise sales pathways.
const (
	ChannelOnline    = "Online"
	ChannelTeamStore = "Team Store"
)

// StadiumOperation is one revenue line for a stadium source in a month.
type StadiumOperation struct {
	Month        time.Month
	Source       string
	Revenue      float64
	RevenueValid bool
}

// MerchandiseSale is a single merchandise transaction.
type MerchandiseSale struct {
	Category       string
	Channel        string
	UnitPrice      float64
	UnitPriceValid bool
	Promotion      bool
	SellingDate    time.Time
	ArrivalDate    time.Time
	Region         string
	AgeGroup       string
}

// FanMember is one fan club member.
type FanMember struct {
	MemberID      string
	AgeGroup      string
	Region        string
	GamesAttended int
	GamesValid    bool
	SeasonalPass  bool
}

// NormalizeRegion maps raw customer regions onto the domestic/international
// split used by the report groupings. Canada is the club's home market;
// every other value, including blanks, counts as international.
func NormalizeRegion(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "canada", "domestic":
		return RegionDomestic
	default:
		return RegionInternational
	}
}
