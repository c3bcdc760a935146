package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Canonical dataset file names used by the fixture writers.
const (
	StadiumFixtureFile     = "stadium_operations.csv"
	MerchandiseFixtureFile = "merchandise_sales.csv"
	FanbaseFixtureFile     = "fanbase_data.csv"
)

// WriteStadiumFixture writes a small stadium operations dataset into dir
// and returns the file path.
func WriteStadiumFixture(t *testing.T, dir string) string {
	t.Helper()
	return writeFixture(t, dir, StadiumFixtureFile,
		"Month,Source,Revenue\n"+
			"1,Lower Bowl,600000\n"+
			"1,Concessions,150000\n"+
			"2,Lower Bowl,700000\n"+
			"2,Concessions,200000\n")
}

// WriteMerchandiseFixture writes a small merchandise sales dataset into dir
// and returns the file path.
func WriteMerchandiseFixture(t *testing.T, dir string) string {
	t.Helper()
	return writeFixture(t, dir, MerchandiseFixtureFile,
		"Item_Category,Channel,Unit_Price,Promotion,Selling_Date,Customer_Region,Customer_Age_Group\n"+
			"Jersey,Online,130,True,2025-01-15,Canada,18-25\n"+
			"Jersey,Online,130,False,2025-01-20,USA,26-35\n"+
			"Scarf,Team Store,25,False,2025-02-05,Canada,26-35\n"+
			"Cap,Online,30,True,2025-02-10,Canada,18-25\n")
}

// WriteFanbaseFixture writes a small fanbase engagement dataset into dir
// and returns the file path.
func WriteFanbaseFixture(t *testing.T, dir string) string {
	t.Helper()
	return writeFixture(t, dir, FanbaseFixtureFile,
		"Member_ID,Age_Group,Customer_Region,Games_Attended,Seasonal_Pass\n"+
			"M001,18-25,Canada,22,True\n"+
			"M002,26-35,Canada,24,True\n"+
			"M003,26-35,USA,4,False\n"+
			"M004,36-50,Canada,5,False\n")
}

// WriteAllFixtures writes all three dataset fixtures into dir.
func WriteAllFixtures(t *testing.T, dir string) {
	t.Helper()
	WriteStadiumFixture(t, dir)
	WriteMerchandiseFixture(t, dir)
	WriteFanbaseFixture(t, dir)
}

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
