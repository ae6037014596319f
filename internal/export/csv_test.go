package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevanshM1211/IT-Service-Desk-Analytics/internal/analytics"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriteTableCreatesDirAndFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "reports")
	table := Table{
		Name:   "sample",
		Header: []string{"a", "b"},
		Rows:   [][]string{{"1", "2"}, {"3", "4"}},
	}

	path, err := WriteTable(dir, table)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sample.csv"), path)

	records := readCSV(t, path)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"a", "b"}, records[0])
	assert.Equal(t, []string{"3", "4"}, records[2])
}

func TestNotApplicableRendersAsNA(t *testing.T) {
	summary := analytics.SLAComplianceSummary{}
	table := SLASummaryTable(summary)

	require.Len(t, table.Rows, 1)
	row := table.Rows[0]
	assert.Equal(t, "NA", row[3], "compliance rate of an empty dataset is not a number")
	assert.Equal(t, "NA", row[4])
}

func TestResolutionStatsTableRendersValues(t *testing.T) {
	stddev := 4.5
	rows := []analytics.ResolutionStatsRow{
		{Key: "Network", Count: 3, MeanHours: 10.125, MeanDays: 0.42, MedianHours: 9, MinHours: 5, MaxHours: 18, StdDevHours: &stddev},
		{Key: "Email", Count: 1, MeanHours: 2, MeanDays: 0.08, MedianHours: 2, MinHours: 2, MaxHours: 2},
	}

	table := ResolutionStatsTable("resolution_stats_by_category", "Category", rows)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "10.13", table.Rows[0][2], "values round to two decimals")
	assert.Equal(t, "4.50", table.Rows[0][7])
	assert.Equal(t, "NA", table.Rows[1][7], "single observation has no sample stddev")
}

func TestWriteAllWritesEveryTable(t *testing.T) {
	dir := t.TempDir()
	tables := []Table{
		{Name: "one", Header: []string{"x"}, Rows: [][]string{{"1"}}},
		{Name: "two", Header: []string{"y"}},
	}

	paths, err := WriteAll(dir, tables)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	for _, path := range paths {
		_, err := os.Stat(path)
		assert.NoError(t, err)
	}
}
