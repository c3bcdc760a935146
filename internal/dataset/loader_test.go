package dataset

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fcpulse/internal/errors"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoader_StadiumOperations(t *testing.T) {
	path := writeTempCSV(t, `Month,Source,Revenue
January,Lower Bowl,1200000
1,Upper Bowl,"850,000"
February,Concessions,$430000.50
3,,125000
`)

	loader := NewLoader(nil, 0.10)
	records, err := loader.StadiumOperations(path)
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, time.January, records[0].Month)
	assert.Equal(t, "Lower Bowl", records[0].Source)
	assert.InDelta(t, 1200000, records[0].Revenue, 1e-9)
	assert.True(t, records[0].RevenueValid)

	// Month numbers and thousands separators are accepted
	assert.Equal(t, time.January, records[1].Month)
	assert.InDelta(t, 850000, records[1].Revenue, 1e-9)

	// Currency signs are stripped
	assert.InDelta(t, 430000.50, records[2].Revenue, 1e-9)

	// Blank sources fall back to Unknown
	assert.Equal(t, "Unknown", records[3].Source)
}

func TestLoader_StadiumOperations_ColumnOrderIrrelevant(t *testing.T) {
	path := writeTempCSV(t, `Revenue,Month,Source
500000,4,Parking
`)

	records, err := NewLoader(nil, 0.10).StadiumOperations(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, time.April, records[0].Month)
	assert.Equal(t, "Parking", records[0].Source)
	assert.InDelta(t, 500000, records[0].Revenue, 1e-9)
}

func TestLoader_StadiumOperations_SchemaMismatch(t *testing.T) {
	path := writeTempCSV(t, `Month,Origin,Amount
January,Lower Bowl,1200000
`)

	_, err := NewLoader(nil, 0.10).StadiumOperations(path)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeSchemaMismatch))
}

func TestLoader_StadiumOperations_Empty(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no rows at all", ""},
		{"header only", "Month,Source,Revenue\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempCSV(t, tt.content)
			_, err := NewLoader(nil, 0.10).StadiumOperations(path)
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.ErrTypeMissingData))
		})
	}
}

func TestLoader_StadiumOperations_MissingToleranceExceeded(t *testing.T) {
	// Two of four revenue values missing: 50% > 10% tolerance
	path := writeTempCSV(t, `Month,Source,Revenue
1,Lower Bowl,1200000
2,Lower Bowl,
3,Upper Bowl,900000
4,Upper Bowl,not-a-number
`)

	_, err := NewLoader(nil, 0.10).StadiumOperations(path)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeMissingData))

	// A permissive tolerance loads the same file, flagging the bad rows
	records, err := NewLoader(nil, 0.5).StadiumOperations(path)
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.False(t, records[1].RevenueValid)
	assert.False(t, records[3].RevenueValid)
}

func TestLoader_StadiumOperations_BadMonth(t *testing.T) {
	path := writeTempCSV(t, `Month,Source,Revenue
Septembruary,Lower Bowl,1200000
`)

	_, err := NewLoader(nil, 0.10).StadiumOperations(path)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeParsing))
}

func TestLoader_MerchandiseSales(t *testing.T) {
	path := writeTempCSV(t, `Item_Category,Channel,Unit_Price,Promotion,Selling_Date,Arrival_Date,Customer_Region,Customer_Age_Group
Jersey,Online,129.99,True,2025-02-14,2025-02-20,Canada,18-25
Scarf,Team Store,24.50,False,2025-03-01,,US,26-35
,Online,59.99,no,2025-03-05,,,
`)

	records, err := NewLoader(nil, 0.10).MerchandiseSales(path)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "Jersey", records[0].Category)
	assert.Equal(t, ChannelOnline, records[0].Channel)
	assert.True(t, records[0].Promotion)
	assert.Equal(t, RegionDomestic, records[0].Region)
	assert.Equal(t, "18-25", records[0].AgeGroup)
	assert.Equal(t, time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC), records[0].SellingDate)

	assert.Equal(t, RegionInternational, records[1].Region)
	assert.False(t, records[1].Promotion)
	assert.True(t, records[1].ArrivalDate.IsZero())

	// Blank categoricals fall back to Unknown / International
	assert.Equal(t, "Unknown", records[2].Category)
	assert.Equal(t, RegionInternational, records[2].Region)
	assert.Equal(t, "Unknown", records[2].AgeGroup)
}

func TestLoader_FanMembers(t *testing.T) {
	path := writeTempCSV(t, `Member_ID,Age_Group,Customer_Region,Games_Attended,Seasonal_Pass
M001,18-25,Canada,22,true
M002,26-35,US,4,false
M003,36-50,Canada,0,0
`)

	records, err := NewLoader(nil, 0.10).FanMembers(path)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "M001", records[0].MemberID)
	assert.Equal(t, 22, records[0].GamesAttended)
	assert.True(t, records[0].SeasonalPass)
	assert.Equal(t, RegionDomestic, records[0].Region)

	assert.False(t, records[1].SeasonalPass)
	assert.Equal(t, RegionInternational, records[1].Region)

	assert.Equal(t, 0, records[2].GamesAttended)
	assert.True(t, records[2].GamesValid)
	assert.False(t, records[2].SeasonalPass)
}

func TestLoader_CSVWithBOM(t *testing.T) {
	path := writeTempCSV(t, "\uFEFFMonth,Source,Revenue\n1,Lower Bowl,100\n")

	records, err := NewLoader(nil, 0.10).StadiumOperations(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestNormalizeRegion(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"Canada", RegionDomestic},
		{" canada ", RegionDomestic},
		{"Domestic", RegionDomestic},
		{"US", RegionInternational},
		{"Mexico", RegionInternational},
		{"Europe", RegionInternational},
		{"", RegionInternational},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeRegion(tt.raw))
		})
	}
}

func TestParseMonth(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Month
		wantErr  bool
	}{
		{"1", time.January, false},
		{"12", time.December, false},
		{"February", time.February, false},
		{"feb", time.February, false},
		{"0", 0, true},
		{"13", 0, true},
		{"", 0, true},
		{"Smarch", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m, err := parseMonth(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, m)
		})
	}
}
