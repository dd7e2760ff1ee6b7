package report

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/shivani7798/JobSpy/internal/models"
)

func TestWriteWorkbook_SheetOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.xlsx")
	require.NoError(t, WriteWorkbook(path, sampleResultSet(), DefaultStyle()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Summary", "All Jobs", "Indeed", "Linkedin"}, f.GetSheetList())
}

func TestWriteWorkbook_SummarySheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.xlsx")
	require.NoError(t, WriteWorkbook(path, sampleResultSet(), DefaultStyle()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Summary")
	require.NoError(t, err)
	require.Len(t, rows, 8, "header plus seven metrics")

	assert.Equal(t, []string{"Metric", "Value"}, rows[0])
	assert.Equal(t, []string{"Total Jobs Found", "2"}, rows[1])
	assert.Equal(t, []string{"Average Min Salary (£)", "£50,000.00"}, rows[5])
}

func TestWriteWorkbook_AllJobsColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.xlsx")
	require.NoError(t, WriteWorkbook(path, sampleResultSet(), DefaultStyle()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("All Jobs")
	require.NoError(t, err)
	require.NotEmpty(t, rows)

	// company_industry is absent from every listing, so the column is gone;
	// the rest keep canonical order.
	assert.Equal(t, []string{
		"site", "title", "company", "location", "job_type",
		"min_amount", "max_amount", "interval", "is_remote",
		"date_posted", "job_level",
	}, rows[0])
	assert.Len(t, rows, 3)
	assert.Equal(t, "indeed", rows[1][0])
	assert.Equal(t, "linkedin", rows[2][0])
}

func TestWriteWorkbook_SiteSheets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.xlsx")
	require.NoError(t, WriteWorkbook(path, sampleResultSet(), DefaultStyle()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	for _, sheet := range []string{"Indeed", "Linkedin"} {
		rows, err := f.GetRows(sheet)
		require.NoError(t, err)
		assert.Len(t, rows, 2, "sheet %s holds header plus one listing", sheet)
	}
}

func TestWriteWorkbook_EmptyResultSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, WriteWorkbook(path, nil, DefaultStyle()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Summary", "All Jobs"}, f.GetSheetList())

	rows, err := f.GetRows("All Jobs")
	require.NoError(t, err)
	require.Len(t, rows, 1, "header row must still be present")
	assert.Equal(t, []string{"site", "title"}, rows[0])

	summary, err := f.GetRows("Summary")
	require.NoError(t, err)
	assert.Equal(t, []string{"Average Min Salary (£)", "N/A"}, summary[5])
}

func TestWriteWorkbook_CollidingSiteNames(t *testing.T) {
	rs := models.ResultSet{
		{Site: "Indeed", Title: "A"},
		{Site: "INDEED", Title: "B"},
	}

	path := filepath.Join(t.TempDir(), "collide.xlsx")
	require.NoError(t, WriteWorkbook(path, rs, DefaultStyle()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	seen := make(map[string]bool)
	for _, s := range sheets {
		assert.False(t, seen[s], "duplicate sheet name %q", s)
		seen[s] = true
	}
	assert.Len(t, sheets, 4)
}

func TestWriteWorkbook_BadPath(t *testing.T) {
	err := WriteWorkbook(filepath.Join(t.TempDir(), "missing", "out.xlsx"), sampleResultSet(), DefaultStyle())
	assert.Error(t, err)
}
