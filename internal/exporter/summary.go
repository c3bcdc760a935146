package exporter

import (
	"fmt"

	"fcpulse/internal/analysis"
	"fcpulse/internal/config"
)

// SummaryExporter writes the club summary tables as individual CSV files
// under the reports directory, one file per table.
type SummaryExporter struct {
	csvWriter *CSVWriter
}

// NewSummaryExporter creates a new summary exporter
func NewSummaryExporter(paths *config.Paths) *SummaryExporter {
	return &SummaryExporter{
		csvWriter: NewCSVWriter(paths),
	}
}

// ExportAll writes every summary table. File names are fixed so downstream
// spreadsheets can link to them across runs.
func (e *SummaryExporter) ExportAll(summary *analysis.ClubSummary) error {
	exports := []struct {
		name string
		fn   func(*analysis.ClubSummary) error
	}{
		{"monthly_revenue.csv", e.exportMonthlyRevenue},
		{"stadium_sources.csv", e.exportStadiumSources},
		{"merchandise_categories.csv", e.exportCategories},
		{"merchandise_channels.csv", e.exportChannels},
		{"merchandise_regions.csv", e.exportRegions},
		{"promotion_impact.csv", e.exportPromotion},
		{"fanbase_age_groups.csv", e.exportFanbaseAgeGroups},
		{"fanbase_regions.csv", e.exportFanbaseRegions},
	}

	for _, export := range exports {
		if err := export.fn(summary); err != nil {
			return fmt.Errorf("failed to export %s: %w", export.name, err)
		}
	}

	return nil
}

func (e *SummaryExporter) exportMonthlyRevenue(summary *analysis.ClubSummary) error {
	headers := []string{"Month", "StadiumRevenue", "MerchandiseRevenue", "CombinedRevenue"}

	var records [][]string
	for _, m := range summary.Revenue.Monthly {
		records = append(records, []string{
			m.Month.String(),
			formatFloat(m.Stadium),
			formatFloat(m.Merchandise),
			formatFloat(m.Combined),
		})
	}

	return e.csvWriter.WriteSimpleCSV("monthly_revenue.csv", headers, records)
}

func (e *SummaryExporter) exportStadiumSources(summary *analysis.ClubSummary) error {
	headers := []string{"Source", "Revenue", "Events", "RevenuePerEvent"}

	var records [][]string
	for _, s := range summary.Stadium.Sources {
		records = append(records, []string{
			s.Source,
			formatFloat(s.Revenue),
			formatInt(s.Events),
			formatFloat(s.RevenuePerEvent),
		})
	}

	return e.csvWriter.WriteSimpleCSV("stadium_sources.csv", headers, records)
}

func (e *SummaryExporter) exportCategories(summary *analysis.ClubSummary) error {
	headers := []string{"Category", "Revenue", "Sales", "MeanUnitPrice"}

	var records [][]string
	for _, g := range summary.Merchandise.Categories {
		records = append(records, groupToCSVRow(g))
	}

	return e.csvWriter.WriteSimpleCSV("merchandise_categories.csv", headers, records)
}

func (e *SummaryExporter) exportChannels(summary *analysis.ClubSummary) error {
	headers := []string{"Channel", "Revenue", "Sales", "MeanUnitPrice", "SharePercent"}

	var records [][]string
	for _, c := range summary.Merchandise.Channels {
		records = append(records, []string{
			c.Channel,
			formatFloat(c.Revenue),
			formatInt(c.Sales),
			formatFloat(c.MeanUnitPrice),
			formatFloat(c.Share),
		})
	}

	return e.csvWriter.WriteSimpleCSV("merchandise_channels.csv", headers, records)
}

func (e *SummaryExporter) exportRegions(summary *analysis.ClubSummary) error {
	headers := []string{"Region", "Revenue", "Sales", "MeanUnitPrice"}

	var records [][]string
	for _, g := range summary.Merchandise.Regions {
		records = append(records, groupToCSVRow(g))
	}

	return e.csvWriter.WriteSimpleCSV("merchandise_regions.csv", headers, records)
}

func (e *SummaryExporter) exportPromotion(summary *analysis.ClubSummary) error {
	headers := []string{"Partition", "Revenue", "Sales", "MeanUnitPrice"}

	promo := summary.Merchandise.Promotion
	records := [][]string{
		{"Promoted", formatFloat(promo.Promoted.Revenue), formatInt(promo.Promoted.Sales), formatFloat(promo.Promoted.MeanUnitPrice)},
		{"NonPromoted", formatFloat(promo.NonPromoted.Revenue), formatInt(promo.NonPromoted.Sales), formatFloat(promo.NonPromoted.MeanUnitPrice)},
	}

	return e.csvWriter.WriteSimpleCSV("promotion_impact.csv", headers, records)
}

func (e *SummaryExporter) exportFanbaseAgeGroups(summary *analysis.ClubSummary) error {
	headers := []string{"AgeGroup", "Members", "MeanGamesAttended"}

	var records [][]string
	for _, g := range summary.Fanbase.AgeGroups {
		records = append(records, []string{g.Key, formatInt(g.Count), formatFloat(g.Mean)})
	}

	return e.csvWriter.WriteSimpleCSV("fanbase_age_groups.csv", headers, records)
}

func (e *SummaryExporter) exportFanbaseRegions(summary *analysis.ClubSummary) error {
	headers := []string{"Region", "Members", "MeanGamesAttended"}

	var records [][]string
	for _, g := range summary.Fanbase.Regions {
		records = append(records, []string{g.Key, formatInt(g.Count), formatFloat(g.Mean)})
	}

	return e.csvWriter.WriteSimpleCSV("fanbase_regions.csv", headers, records)
}

// groupToCSVRow converts an aggregation group to the key/sum/count/mean row shape
func groupToCSVRow(g analysis.Group) []string {
	return []string{
		g.Key,
		formatFloat(g.Sum),
		formatInt(g.Count),
		formatFloat(g.Mean),
	}
}
