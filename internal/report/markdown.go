package report

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"fcpulse/internal/analysis"
)

// Render maps a club summary onto the fixed markdown report layout.
// It is a pure function: identical summaries render to identical bytes,
// which the golden tests rely on.
func Render(summary *analysis.ClubSummary) []byte {
	var b strings.Builder
	p := message.NewPrinter(language.English)

	money := func(v float64) string { return p.Sprintf("$%.0f", v) }
	price := func(v float64) string { return p.Sprintf("$%.2f", v) }
	count := func(n int) string { return p.Sprintf("%d", n) }
	pct := func(v float64) string { return fmt.Sprintf("%.1f%%", v) }

	fmt.Fprintf(&b, "# Vancouver City FC Season Performance Report\n\n")
	fmt.Fprintf(&b, "Run %s generated at %s.\n\n",
		summary.RunID, summary.GeneratedAt.Format(time.RFC3339))

	rev := summary.Revenue
	fan := summary.Fanbase
	merch := summary.Merchandise

	fmt.Fprintf(&b, "## Executive Summary\n\n")
	fmt.Fprintf(&b, "- **Total Revenue:** %s\n", money(rev.CombinedTotal))
	fmt.Fprintf(&b, "- **Stadium Revenue Share:** %s\n", pct(rev.StadiumShare))
	fmt.Fprintf(&b, "- **Merchandise Revenue Share:** %s\n", pct(rev.MerchandiseShare))
	fmt.Fprintf(&b, "- **Total Members:** %s\n", count(fan.Members))
	fmt.Fprintf(&b, "- **Average Games Attended:** %.1f\n", fan.MeanGamesAttended)
	fmt.Fprintf(&b, "- **Seasonal Pass Rate:** %s\n", pct(fan.PassRate))
	fmt.Fprintf(&b, "- **Engagement Multiplier:** %.1fx\n", fan.EngagementMultiplier)
	fmt.Fprintf(&b, "\n")

	fmt.Fprintf(&b, "## Revenue Composition\n\n")
	fmt.Fprintf(&b, "| Stream | Revenue | Share |\n")
	fmt.Fprintf(&b, "|---|---|---|\n")
	fmt.Fprintf(&b, "| Stadium Operations | %s | %s |\n", money(rev.StadiumTotal), pct(rev.StadiumShare))
	fmt.Fprintf(&b, "| Merchandise Sales | %s | %s |\n", money(rev.MerchandiseTotal), pct(rev.MerchandiseShare))
	fmt.Fprintf(&b, "| Total | %s | %s |\n", money(rev.CombinedTotal), pct(rev.StadiumShare+rev.MerchandiseShare))
	fmt.Fprintf(&b, "\n")

	fmt.Fprintf(&b, "## Monthly Revenue\n\n")
	fmt.Fprintf(&b, "| Month | Stadium | Merchandise | Combined |\n")
	fmt.Fprintf(&b, "|---|---|---|---|\n")
	for _, m := range rev.Monthly {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			m.Month.String(), money(m.Stadium), money(m.Merchandise), money(m.Combined))
	}
	if rev.UnassignedMerchandise > 0 {
		fmt.Fprintf(&b, "\nMerchandise revenue without a recorded selling month: %s (counted in totals, absent from the table above).\n",
			money(rev.UnassignedMerchandise))
	}
	fmt.Fprintf(&b, "\nPeak revenue month: **%s**.\n\n", rev.PeakMonth.String())

	fmt.Fprintf(&b, "## Stadium Source Efficiency\n\n")
	fmt.Fprintf(&b, "| Source | Revenue | Events | Revenue per Event |\n")
	fmt.Fprintf(&b, "|---|---|---|---|\n")
	for _, s := range summary.Stadium.Sources {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			s.Source, money(s.Revenue), count(s.Events), money(s.RevenuePerEvent))
	}
	fmt.Fprintf(&b, "\nMost efficient source: **%s**.\n\n", summary.Stadium.MostEfficientSource)

	fmt.Fprintf(&b, "## Merchandise Performance\n\n")

	fmt.Fprintf(&b, "### Revenue by Category\n\n")
	fmt.Fprintf(&b, "| Category | Revenue | Sales | Mean Unit Price |\n")
	fmt.Fprintf(&b, "|---|---|---|---|\n")
	for _, g := range merch.Categories {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			g.Key, money(g.Sum), count(g.Count), price(g.Mean))
	}
	fmt.Fprintf(&b, "\nTop category: **%s**.\n\n", merch.TopCategory)

	fmt.Fprintf(&b, "### Channel Performance\n\n")
	fmt.Fprintf(&b, "| Channel | Revenue | Sales | Mean Unit Price | Share |\n")
	fmt.Fprintf(&b, "|---|---|---|---|---|\n")
	for _, c := range merch.Channels {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			c.Channel, money(c.Revenue), count(c.Sales), price(c.MeanUnitPrice), pct(c.Share))
	}
	fmt.Fprintf(&b, "\nOnline vs Team Store multiplier: **%.2fx**.\n\n", merch.ChannelMultiplier)

	fmt.Fprintf(&b, "### Promotion Impact\n\n")
	fmt.Fprintf(&b, "| Partition | Revenue | Sales | Mean Unit Price |\n")
	fmt.Fprintf(&b, "|---|---|---|---|\n")
	fmt.Fprintf(&b, "| Promoted | %s | %s | %s |\n",
		money(merch.Promotion.Promoted.Revenue),
		count(merch.Promotion.Promoted.Sales),
		price(merch.Promotion.Promoted.MeanUnitPrice))
	fmt.Fprintf(&b, "| Non-Promoted | %s | %s | %s |\n",
		money(merch.Promotion.NonPromoted.Revenue),
		count(merch.Promotion.NonPromoted.Sales),
		price(merch.Promotion.NonPromoted.MeanUnitPrice))
	fmt.Fprintf(&b, "\nPromotion multiplier: **%.2fx**.\n\n", merch.Promotion.Multiplier)

	fmt.Fprintf(&b, "### Revenue by Region\n\n")
	fmt.Fprintf(&b, "| Region | Revenue | Sales | Mean Unit Price |\n")
	fmt.Fprintf(&b, "|---|---|---|---|\n")
	for _, g := range merch.Regions {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			g.Key, money(g.Sum), count(g.Count), price(g.Mean))
	}
	fmt.Fprintf(&b, "\n")

	fmt.Fprintf(&b, "## Fanbase Engagement\n\n")
	fmt.Fprintf(&b, "- **Members:** %s\n", count(fan.Members))
	fmt.Fprintf(&b, "- **Seasonal Pass Holders:** %s (%s)\n", count(fan.PassHolders), pct(fan.PassRate))
	fmt.Fprintf(&b, "- **Holder Mean Attendance:** %.1f games\n", fan.HolderMeanGames)
	fmt.Fprintf(&b, "- **Non-Holder Mean Attendance:** %.1f games\n", fan.NonHolderMeanGames)
	fmt.Fprintf(&b, "- **Engagement Multiplier:** %.1fx\n", fan.EngagementMultiplier)
	fmt.Fprintf(&b, "\n")

	fmt.Fprintf(&b, "### Mean Attendance by Age Group\n\n")
	fmt.Fprintf(&b, "| Age Group | Members | Mean Games |\n")
	fmt.Fprintf(&b, "|---|---|---|\n")
	for _, g := range fan.AgeGroups {
		fmt.Fprintf(&b, "| %s | %s | %.1f |\n", g.Key, count(g.Count), g.Mean)
	}
	fmt.Fprintf(&b, "\n")

	fmt.Fprintf(&b, "### Mean Attendance by Region\n\n")
	fmt.Fprintf(&b, "| Region | Members | Mean Games |\n")
	fmt.Fprintf(&b, "|---|---|---|\n")
	for _, g := range fan.Regions {
		fmt.Fprintf(&b, "| %s | %s | %.1f |\n", g.Key, count(g.Count), g.Mean)
	}
	fmt.Fprintf(&b, "\n")

	fmt.Fprintf(&b, "## Key Findings\n\n")
	fmt.Fprintf(&b, "| Metric | Value | Insight |\n")
	fmt.Fprintf(&b, "|---|---|---|\n")
	fmt.Fprintf(&b, "| Total Revenue | %s | Strong revenue base with growth potential |\n", money(rev.CombinedTotal))
	fmt.Fprintf(&b, "| Stadium Revenue Share | %s | Primary revenue driver |\n", pct(rev.StadiumShare))
	fmt.Fprintf(&b, "| Merchandise Revenue Share | %s | Significant growth opportunity |\n", pct(rev.MerchandiseShare))
	fmt.Fprintf(&b, "| Seasonal Pass Rate | %s | Low adoption with high engagement multiplier |\n", pct(fan.PassRate))
	fmt.Fprintf(&b, "| Engagement Multiplier | %.1fx | Exceptional loyalty among pass holders |\n", fan.EngagementMultiplier)
	fmt.Fprintf(&b, "| Online Channel Share | %s | Dominant sales channel |\n", pct(merch.OnlineShare))
	fmt.Fprintf(&b, "| Promotion Multiplier | %.2fx | Promotions underperform and need optimization |\n", merch.Promotion.Multiplier)
	fmt.Fprintf(&b, "| Peak Revenue Month | %s | Seasonal peak performance |\n", rev.PeakMonth.String())
	fmt.Fprintf(&b, "| Most Efficient Stadium Source | %s | Highest revenue per event |\n", summary.Stadium.MostEfficientSource)
	fmt.Fprintf(&b, "| Top Merchandise Category | %s | Premium product with strong performance |\n", merch.TopCategory)

	return []byte(b.String())
}
