package analysis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fcpulse/internal/dataset"
	"fcpulse/internal/errors"
)

func stadiumOp(month time.Month, source string, revenue float64) dataset.StadiumOperation {
	return dataset.StadiumOperation{Month: month, Source: source, Revenue: revenue, RevenueValid: true}
}

func sale(category, channel string, price float64, promotion bool, month time.Month) dataset.MerchandiseSale {
	return dataset.MerchandiseSale{
		Category:       category,
		Channel:        channel,
		UnitPrice:      price,
		UnitPriceValid: true,
		Promotion:      promotion,
		SellingDate:    time.Date(2025, month, 15, 0, 0, 0, 0, time.UTC),
		Region:         dataset.RegionDomestic,
		AgeGroup:       "18-25",
	}
}

func fan(id, ageGroup string, games int, pass bool) dataset.FanMember {
	return dataset.FanMember{
		MemberID:      id,
		AgeGroup:      ageGroup,
		Region:        dataset.RegionDomestic,
		GamesAttended: games,
		GamesValid:    true,
		SeasonalPass:  pass,
	}
}

func fixtureStadium() []dataset.StadiumOperation {
	return []dataset.StadiumOperation{
		stadiumOp(time.January, "Lower Bowl", 500000),
		stadiumOp(time.January, "Concessions", 100000),
		stadiumOp(time.February, "Lower Bowl", 700000),
		stadiumOp(time.February, "Upper Bowl", 200000),
	}
}

func fixtureMerchandise() []dataset.MerchandiseSale {
	return []dataset.MerchandiseSale{
		sale("Jersey", dataset.ChannelOnline, 120, true, time.January),
		sale("Jersey", dataset.ChannelOnline, 130, false, time.February),
		sale("Jersey", dataset.ChannelOnline, 150, false, time.February),
		sale("Scarf", dataset.ChannelTeamStore, 60, false, time.January),
		sale("Scarf", dataset.ChannelTeamStore, 40, true, time.February),
	}
}

func fixtureFans() []dataset.FanMember {
	return []dataset.FanMember{
		fan("M001", "18-25", 22, true),
		fan("M002", "18-25", 22, true),
		fan("M003", "26-35", 23, true),
		fan("M004", "26-35", 22, true),
		fan("M005", "36-50", 23, true),
		fan("M006", "18-25", 4, false),
		fan("M007", "36-50", 5, false),
	}
}

func TestSummarizer_Summarize(t *testing.T) {
	summary, err := NewSummarizer(nil).Summarize(
		context.Background(), fixtureStadium(), fixtureMerchandise(), fixtureFans())
	require.NoError(t, err)

	assert.NotEmpty(t, summary.RunID)
	assert.False(t, summary.GeneratedAt.IsZero())

	// Revenue
	assert.InDelta(t, 1500000, summary.Revenue.StadiumTotal, 1e-9)
	assert.InDelta(t, 500, summary.Revenue.MerchandiseTotal, 1e-9)
	assert.InDelta(t, 1500500, summary.Revenue.CombinedTotal, 1e-9)
	assert.InDelta(t, 100.0, summary.Revenue.StadiumShare+summary.Revenue.MerchandiseShare, 1e-9)
	assert.Equal(t, time.February, summary.Revenue.PeakMonth)

	require.Len(t, summary.Revenue.Monthly, 2)
	assert.Equal(t, time.January, summary.Revenue.Monthly[0].Month)
	assert.InDelta(t, 600180, summary.Revenue.Monthly[0].Combined, 1e-9)
	assert.Equal(t, time.February, summary.Revenue.Monthly[1].Month)
	assert.InDelta(t, 900320, summary.Revenue.Monthly[1].Combined, 1e-9)

	// Stadium: ranked by revenue, efficiency picks revenue per event
	require.Len(t, summary.Stadium.Sources, 3)
	assert.Equal(t, "Lower Bowl", summary.Stadium.Sources[0].Source)
	assert.InDelta(t, 1200000, summary.Stadium.Sources[0].Revenue, 1e-9)
	assert.Equal(t, 2, summary.Stadium.Sources[0].Events)
	assert.InDelta(t, 600000, summary.Stadium.Sources[0].RevenuePerEvent, 1e-9)
	assert.Equal(t, "Lower Bowl", summary.Stadium.MostEfficientSource)

	// Merchandise
	assert.Equal(t, "Jersey", summary.Merchandise.TopCategory)
	require.Len(t, summary.Merchandise.Channels, 2)
	assert.Equal(t, dataset.ChannelOnline, summary.Merchandise.Channels[0].Channel)
	assert.InDelta(t, 400, summary.Merchandise.Channels[0].Revenue, 1e-9)
	assert.InDelta(t, 80.0, summary.Merchandise.OnlineShare, 1e-9)
	assert.InDelta(t, 4.0, summary.Merchandise.ChannelMultiplier, 1e-9)

	assert.InDelta(t, 160, summary.Merchandise.Promotion.Promoted.Revenue, 1e-9)
	assert.InDelta(t, 340, summary.Merchandise.Promotion.NonPromoted.Revenue, 1e-9)
	assert.InDelta(t, 160.0/340.0, summary.Merchandise.Promotion.Multiplier, 1e-9)

	// Fanbase
	assert.Equal(t, 7, summary.Fanbase.Members)
	assert.Equal(t, 5, summary.Fanbase.PassHolders)
	assert.InDelta(t, 5.0/7.0*100, summary.Fanbase.PassRate, 1e-9)
	assert.InDelta(t, 22.4, summary.Fanbase.HolderMeanGames, 1e-9)
	assert.InDelta(t, 4.5, summary.Fanbase.NonHolderMeanGames, 1e-9)
	assert.InDelta(t, 22.4/4.5, summary.Fanbase.EngagementMultiplier, 1e-9)
	require.Len(t, summary.Fanbase.AgeGroups, 3)
	assert.Equal(t, "18-25", summary.Fanbase.AgeGroups[0].Key)
}

func TestSummarizer_EmptyDatasets(t *testing.T) {
	tests := []struct {
		name        string
		stadium     []dataset.StadiumOperation
		merchandise []dataset.MerchandiseSale
		fans        []dataset.FanMember
	}{
		{"empty stadium", nil, fixtureMerchandise(), fixtureFans()},
		{"empty merchandise", fixtureStadium(), nil, fixtureFans()},
		{"empty fanbase", fixtureStadium(), fixtureMerchandise(), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSummarizer(nil).Summarize(
				context.Background(), tt.stadium, tt.merchandise, tt.fans)
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.ErrTypeMissingData))
		})
	}
}

func TestSummarizer_NoTeamStoreSales(t *testing.T) {
	merch := []dataset.MerchandiseSale{
		sale("Jersey", dataset.ChannelOnline, 120, false, time.January),
	}

	_, err := NewSummarizer(nil).Summarize(
		context.Background(), fixtureStadium(), merch, fixtureFans())
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeDivisionByZero))
}

func TestSummarizer_NoNonHolders(t *testing.T) {
	fans := []dataset.FanMember{
		fan("M001", "18-25", 22, true),
		fan("M002", "18-25", 24, true),
	}

	_, err := NewSummarizer(nil).Summarize(
		context.Background(), fixtureStadium(), fixtureMerchandise(), fans)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeDivisionByZero))
}

// A sale without a selling date still counts toward the merchandise total;
// its revenue lands in UnassignedMerchandise so the monthly table stays
// reconcilable with the totals.
func TestSummarizer_SaleWithoutSellingDate(t *testing.T) {
	undated := sale("Cap", dataset.ChannelOnline, 75, false, time.January)
	undated.SellingDate = time.Time{}
	merch := append(fixtureMerchandise(), undated)

	summary, err := NewSummarizer(nil).Summarize(
		context.Background(), fixtureStadium(), merch, fixtureFans())
	require.NoError(t, err)

	assert.InDelta(t, 575, summary.Revenue.MerchandiseTotal, 1e-9)
	assert.InDelta(t, 75, summary.Revenue.UnassignedMerchandise, 1e-9)

	var byMonth float64
	for _, m := range summary.Revenue.Monthly {
		byMonth += m.Merchandise
	}
	assert.InDelta(t, summary.Revenue.MerchandiseTotal,
		byMonth+summary.Revenue.UnassignedMerchandise, 1e-9)
}

// Partition consistency: the per-source revenue breakdown carries exactly
// the stadium total, and channel revenue carries exactly the merchandise
// total.
func TestSummarizer_PartitionConsistency(t *testing.T) {
	summary, err := NewSummarizer(nil).Summarize(
		context.Background(), fixtureStadium(), fixtureMerchandise(), fixtureFans())
	require.NoError(t, err)

	var bySource float64
	for _, s := range summary.Stadium.Sources {
		bySource += s.Revenue
	}
	assert.InDelta(t, summary.Revenue.StadiumTotal, bySource, 1e-9)

	var byChannel, channelShares float64
	for _, c := range summary.Merchandise.Channels {
		byChannel += c.Revenue
		channelShares += c.Share
	}
	assert.InDelta(t, summary.Revenue.MerchandiseTotal, byChannel, 1e-9)
	assert.InDelta(t, 100.0, channelShares, 1e-9)

	var byMonth float64
	for _, m := range summary.Revenue.Monthly {
		byMonth += m.Combined
	}
	assert.InDelta(t, summary.Revenue.CombinedTotal, byMonth, 1e-9)
}
