package exporter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fcpulse/internal/analysis"
	"fcpulse/internal/config"
)

func testSummary() *analysis.ClubSummary {
	return &analysis.ClubSummary{
		RunID:       "run-123",
		GeneratedAt: time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC),
		Revenue: analysis.RevenueSummary{
			StadiumTotal:     1_000_000,
			MerchandiseTotal: 500_000,
			CombinedTotal:    1_500_000,
			StadiumShare:     66.7,
			MerchandiseShare: 33.3,
			Monthly: []analysis.MonthlyRevenue{
				{Month: time.January, Stadium: 600_000, Merchandise: 200_000, Combined: 800_000},
				{Month: time.February, Stadium: 400_000, Merchandise: 300_000, Combined: 700_000},
			},
			PeakMonth: time.January,
		},
		Stadium: analysis.StadiumSummary{
			Sources: []analysis.SourceEfficiency{
				{Source: "Lower Bowl", Revenue: 700_000, Events: 7, RevenuePerEvent: 100_000},
				{Source: "Concessions", Revenue: 300_000, Events: 6, RevenuePerEvent: 50_000},
			},
			MostEfficientSource: "Lower Bowl",
		},
		Merchandise: analysis.MerchandiseSummary{
			Categories: []analysis.Group{
				{Key: "Jersey", Count: 2_000, Sum: 300_000, Mean: 150, Valid: true},
				{Key: "Scarf", Count: 8_000, Sum: 200_000, Mean: 25, Valid: true},
			},
			TopCategory: "Jersey",
			Channels: []analysis.ChannelSummary{
				{Channel: "Online", Revenue: 400_000, Sales: 8_000, MeanUnitPrice: 50, Share: 80},
				{Channel: "Team Store", Revenue: 100_000, Sales: 2_000, MeanUnitPrice: 50, Share: 20},
			},
			OnlineShare:       80,
			ChannelMultiplier: 4,
			Regions: []analysis.Group{
				{Key: "Domestic", Count: 9_000, Sum: 450_000, Mean: 50, Valid: true},
				{Key: "International", Count: 1_000, Sum: 50_000, Mean: 50, Valid: true},
			},
			Promotion: analysis.PromotionSummary{
				Promoted:    analysis.PartitionStats{Revenue: 180_000, Sales: 3_600, MeanUnitPrice: 50},
				NonPromoted: analysis.PartitionStats{Revenue: 320_000, Sales: 6_400, MeanUnitPrice: 50},
				Multiplier:  0.5625,
			},
		},
		Fanbase: analysis.FanbaseSummary{
			Members:              7_000,
			MeanGamesAttended:    5.7,
			PassHolders:          476,
			PassRate:             6.8,
			HolderMeanGames:      22.4,
			NonHolderMeanGames:   4.5,
			EngagementMultiplier: 4.98,
			AgeGroups: []analysis.Group{
				{Key: "18-25", Count: 3_000, Mean: 6.8, Valid: true},
				{Key: "26-35", Count: 4_000, Mean: 5.1, Valid: true},
			},
			Regions: []analysis.Group{
				{Key: "Domestic", Count: 6_300, Mean: 6.0, Valid: true},
				{Key: "International", Count: 700, Mean: 3.2, Valid: true},
			},
		},
	}
}

func TestSummaryExporterExportAll(t *testing.T) {
	paths := config.PathsFromBase(t.TempDir())
	exporter := NewSummaryExporter(paths)

	err := exporter.ExportAll(testSummary())
	require.NoError(t, err)

	expected := []string{
		"monthly_revenue.csv",
		"stadium_sources.csv",
		"merchandise_categories.csv",
		"merchandise_channels.csv",
		"merchandise_regions.csv",
		"promotion_impact.csv",
		"fanbase_age_groups.csv",
		"fanbase_regions.csv",
	}
	for _, name := range expected {
		_, err := os.Stat(paths.GetReportPath(name))
		assert.NoError(t, err, "expected report file %s", name)
	}
}

func TestSummaryExporterMonthlyRevenueContents(t *testing.T) {
	paths := config.PathsFromBase(t.TempDir())
	exporter := NewSummaryExporter(paths)

	require.NoError(t, exporter.ExportAll(testSummary()))

	data, err := os.ReadFile(paths.GetReportPath("monthly_revenue.csv"))
	require.NoError(t, err)

	content := string(data)
	assert.True(t, strings.HasPrefix(content, "\xEF\xBB\xBF"), "expected UTF-8 BOM prefix")

	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(content, "\xEF\xBB\xBF")), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Month,StadiumRevenue,MerchandiseRevenue,CombinedRevenue", lines[0])
	assert.Equal(t, "January,600000.00,200000.00,800000.00", lines[1])
	assert.Equal(t, "February,400000.00,300000.00,700000.00", lines[2])
}

func TestSummaryExporterPromotionContents(t *testing.T) {
	paths := config.PathsFromBase(t.TempDir())
	exporter := NewSummaryExporter(paths)

	require.NoError(t, exporter.ExportAll(testSummary()))

	data, err := os.ReadFile(paths.GetReportPath("promotion_impact.csv"))
	require.NoError(t, err)

	content := strings.TrimPrefix(string(data), "\xEF\xBB\xBF")
	assert.Contains(t, content, "Promoted,180000.00,3600,50.00")
	assert.Contains(t, content, "NonPromoted,320000.00,6400,50.00")
}

func TestWriteSummaryJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reports", "club_summary.json")
	summary := testSummary()

	err := WriteSummaryJSON(path, summary)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var envelope struct {
		Format      string                `json:"format"`
		RunID       string                `json:"run_id"`
		GeneratedAt time.Time             `json:"generated_at"`
		Summary     *analysis.ClubSummary `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(data, &envelope))

	assert.Equal(t, "fcpulse-summary-v1", envelope.Format)
	assert.Equal(t, "run-123", envelope.RunID)
	require.NotNil(t, envelope.Summary)
	assert.Equal(t, 1_500_000.0, envelope.Summary.Revenue.CombinedTotal)
	assert.Equal(t, "Jersey", envelope.Summary.Merchandise.TopCategory)
	assert.Equal(t, time.Month(1), envelope.Summary.Revenue.PeakMonth)
}

func TestCSVWriterAbsolutePath(t *testing.T) {
	dir := t.TempDir()
	paths := config.PathsFromBase(dir)
	writer := NewCSVWriter(paths)

	target := filepath.Join(dir, "custom", "out.csv")
	err := writer.WriteSimpleCSV(target, []string{"A", "B"}, [][]string{{"1", "2"}})
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "A,B\n1,2\n")
}
