package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"fcpulse/internal/dataset"
	"fcpulse/internal/errors"
)

// Summarizer is the single source of truth for building the club summary
// from the three datasets. Every table the report and the exporters emit
// comes from the ClubSummary it produces.
type Summarizer struct {
	logger *slog.Logger
}

// NewSummarizer creates a summarizer.
func NewSummarizer(logger *slog.Logger) *Summarizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Summarizer{logger: logger}
}

// Summarize computes the full club summary. Derived ratios with an empty
// denominator partition surface as division-by-zero errors; the caller
// decides whether to abort the run, never this package.
func (s *Summarizer) Summarize(
	ctx context.Context,
	stadium []dataset.StadiumOperation,
	merchandise []dataset.MerchandiseSale,
	fans []dataset.FanMember,
) (*ClubSummary, error) {
	s.logger.InfoContext(ctx, "building club summary",
		slog.Int("stadium_records", len(stadium)),
		slog.Int("merchandise_records", len(merchandise)),
		slog.Int("fan_records", len(fans)))

	if len(stadium) == 0 {
		return nil, errors.NewMissingDataError("stadium operations dataset is empty", nil)
	}
	if len(merchandise) == 0 {
		return nil, errors.NewMissingDataError("merchandise sales dataset is empty", nil)
	}
	if len(fans) == 0 {
		return nil, errors.NewMissingDataError("fanbase engagement dataset is empty", nil)
	}

	summary := &ClubSummary{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
	}

	revenue, err := s.summarizeRevenue(stadium, merchandise)
	if err != nil {
		return nil, fmt.Errorf("revenue summary: %w", err)
	}
	summary.Revenue = revenue

	summary.Stadium = s.summarizeStadium(stadium)

	merch, err := s.summarizeMerchandise(merchandise, revenue.MerchandiseTotal)
	if err != nil {
		return nil, fmt.Errorf("merchandise summary: %w", err)
	}
	summary.Merchandise = merch

	fanbase, err := s.summarizeFanbase(fans)
	if err != nil {
		return nil, fmt.Errorf("fanbase summary: %w", err)
	}
	summary.Fanbase = fanbase

	s.logger.InfoContext(ctx, "club summary complete",
		slog.String("run_id", summary.RunID),
		slog.Float64("combined_revenue", summary.Revenue.CombinedTotal))

	return summary, nil
}

func (s *Summarizer) summarizeRevenue(
	stadium []dataset.StadiumOperation,
	merchandise []dataset.MerchandiseSale,
) (RevenueSummary, error) {
	var stadiumTotal float64
	stadiumMonthly := make(map[time.Month]float64)
	for _, op := range stadium {
		if !op.RevenueValid {
			continue
		}
		stadiumTotal += op.Revenue
		stadiumMonthly[op.Month] += op.Revenue
	}

	var merchTotal float64
	var unassigned float64
	merchMonthly := make(map[time.Month]float64)
	for _, sale := range merchandise {
		if !sale.UnitPriceValid {
			continue
		}
		merchTotal += sale.UnitPrice
		if sale.SellingDate.IsZero() {
			unassigned += sale.UnitPrice
		} else {
			merchMonthly[sale.SellingDate.Month()] += sale.UnitPrice
		}
	}

	combined := stadiumTotal + merchTotal

	stadiumShare, err := Share("stadium revenue share", stadiumTotal, combined)
	if err != nil {
		return RevenueSummary{}, err
	}
	merchShare, err := Share("merchandise revenue share", merchTotal, combined)
	if err != nil {
		return RevenueSummary{}, err
	}

	monthly := buildMonthlyRevenue(stadiumMonthly, merchMonthly)

	return RevenueSummary{
		StadiumTotal:     stadiumTotal,
		MerchandiseTotal: merchTotal,
		CombinedTotal:    combined,
		StadiumShare:          stadiumShare,
		MerchandiseShare:      merchShare,
		Monthly:               monthly,
		UnassignedMerchandise: unassigned,
		PeakMonth:             peakMonth(monthly),
	}, nil
}

// buildMonthlyRevenue merges the two monthly streams in calendar order.
// Only months present in at least one stream appear.
func buildMonthlyRevenue(stadium, merch map[time.Month]float64) []MonthlyRevenue {
	var monthly []MonthlyRevenue
	for m := time.January; m <= time.December; m++ {
		sRev, sOK := stadium[m]
		mRev, mOK := merch[m]
		if !sOK && !mOK {
			continue
		}
		monthly = append(monthly, MonthlyRevenue{
			Month:       m,
			Stadium:     sRev,
			Merchandise: mRev,
			Combined:    sRev + mRev,
		})
	}
	return monthly
}

// peakMonth picks the month with the highest combined revenue.
// Ties resolve to the earliest month.
func peakMonth(monthly []MonthlyRevenue) time.Month {
	var peak time.Month
	var best float64
	for _, m := range monthly {
		if peak == 0 || m.Combined > best {
			peak = m.Month
			best = m.Combined
		}
	}
	return peak
}

func (s *Summarizer) summarizeStadium(stadium []dataset.StadiumOperation) StadiumSummary {
	groups := GroupBy(stadium,
		func(op dataset.StadiumOperation) string { return op.Source },
		func(op dataset.StadiumOperation) (float64, bool) { return op.Revenue, op.RevenueValid })

	sources := make([]SourceEfficiency, 0, len(groups))
	for _, g := range SortBySumDesc(groups) {
		eff := SourceEfficiency{
			Source:  g.Key,
			Revenue: g.Sum,
			Events:  g.Count,
		}
		if g.Count > 0 {
			eff.RevenuePerEvent = g.Sum / float64(g.Count)
		}
		sources = append(sources, eff)
	}

	return StadiumSummary{
		Sources:             sources,
		MostEfficientSource: mostEfficientSource(sources),
	}
}

// mostEfficientSource ranks sources by revenue per event, ties on name.
func mostEfficientSource(sources []SourceEfficiency) string {
	if len(sources) == 0 {
		return ""
	}
	ranked := make([]SourceEfficiency, len(sources))
	copy(ranked, sources)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].RevenuePerEvent != ranked[j].RevenuePerEvent {
			return ranked[i].RevenuePerEvent > ranked[j].RevenuePerEvent
		}
		return ranked[i].Source < ranked[j].Source
	})
	return ranked[0].Source
}

func (s *Summarizer) summarizeMerchandise(
	merchandise []dataset.MerchandiseSale,
	merchTotal float64,
) (MerchandiseSummary, error) {
	price := func(sale dataset.MerchandiseSale) (float64, bool) {
		return sale.UnitPrice, sale.UnitPriceValid
	}

	categories := SortBySumDesc(GroupBy(merchandise,
		func(sale dataset.MerchandiseSale) string { return sale.Category }, price))

	topCategory := ""
	if len(categories) > 0 {
		topCategory = categories[0].Key
	}

	channelGroups := GroupBy(merchandise,
		func(sale dataset.MerchandiseSale) string { return sale.Channel }, price)

	channels := make([]ChannelSummary, 0, len(channelGroups))
	for _, g := range SortBySumDesc(channelGroups) {
		share, err := Share("channel revenue share", g.Sum, merchTotal)
		if err != nil {
			return MerchandiseSummary{}, err
		}
		channels = append(channels, ChannelSummary{
			Channel:       g.Key,
			Revenue:       g.Sum,
			Sales:         g.Count,
			MeanUnitPrice: g.Mean,
			Share:         share,
		})
	}

	online, _ := FindGroup(channelGroups, dataset.ChannelOnline)
	store, storeOK := FindGroup(channelGroups, dataset.ChannelTeamStore)
	if !storeOK {
		return MerchandiseSummary{}, errors.NewDivisionByZeroError("channel multiplier")
	}
	channelMultiplier, err := Ratio("channel multiplier", online.Sum, store.Sum)
	if err != nil {
		return MerchandiseSummary{}, err
	}

	onlineShare, err := Share("online channel share", online.Sum, merchTotal)
	if err != nil {
		return MerchandiseSummary{}, err
	}

	regions := SortBySumDesc(GroupBy(merchandise,
		func(sale dataset.MerchandiseSale) string { return sale.Region }, price))

	promotion, err := summarizePromotion(merchandise)
	if err != nil {
		return MerchandiseSummary{}, err
	}

	return MerchandiseSummary{
		Categories:        categories,
		TopCategory:       topCategory,
		Channels:          channels,
		OnlineShare:       onlineShare,
		ChannelMultiplier: channelMultiplier,
		Regions:           regions,
		Promotion:         promotion,
	}, nil
}

func summarizePromotion(merchandise []dataset.MerchandiseSale) (PromotionSummary, error) {
	groups := GroupBy(merchandise,
		func(sale dataset.MerchandiseSale) string {
			if sale.Promotion {
				return "promoted"
			}
			return "regular"
		},
		func(sale dataset.MerchandiseSale) (float64, bool) {
			return sale.UnitPrice, sale.UnitPriceValid
		})

	promoted, _ := FindGroup(groups, "promoted")
	regular, regularOK := FindGroup(groups, "regular")
	if !regularOK {
		return PromotionSummary{}, errors.NewDivisionByZeroError("promotion multiplier")
	}

	multiplier, err := Ratio("promotion multiplier", promoted.Sum, regular.Sum)
	if err != nil {
		return PromotionSummary{}, err
	}

	return PromotionSummary{
		Promoted:    PartitionStats{Revenue: promoted.Sum, Sales: promoted.Count, MeanUnitPrice: promoted.Mean},
		NonPromoted: PartitionStats{Revenue: regular.Sum, Sales: regular.Count, MeanUnitPrice: regular.Mean},
		Multiplier:  multiplier,
	}, nil
}

func (s *Summarizer) summarizeFanbase(fans []dataset.FanMember) (FanbaseSummary, error) {
	games := func(f dataset.FanMember) (float64, bool) {
		return float64(f.GamesAttended), f.GamesValid
	}

	overall := GroupBy(fans, func(dataset.FanMember) string { return "all" }, games)
	meanGames := overall[0].Mean

	passGroups := GroupBy(fans,
		func(f dataset.FanMember) string {
			if f.SeasonalPass {
				return "holder"
			}
			return "non-holder"
		}, games)

	holder, _ := FindGroup(passGroups, "holder")
	nonHolder, _ := FindGroup(passGroups, "non-holder")

	multiplier, err := MeanRatio("engagement multiplier", holder, nonHolder)
	if err != nil {
		return FanbaseSummary{}, err
	}

	passRate, err := Share("seasonal pass rate", float64(holder.Count), float64(len(fans)))
	if err != nil {
		return FanbaseSummary{}, err
	}

	return FanbaseSummary{
		Members:              len(fans),
		MeanGamesAttended:    meanGames,
		PassHolders:          holder.Count,
		PassRate:             passRate,
		HolderMeanGames:      holder.Mean,
		NonHolderMeanGames:   nonHolder.Mean,
		EngagementMultiplier: multiplier,
		AgeGroups: GroupBy(fans,
			func(f dataset.FanMember) string { return f.AgeGroup }, games),
		Regions: GroupBy(fans,
			func(f dataset.FanMember) string { return f.Region }, games),
	}, nil
}
