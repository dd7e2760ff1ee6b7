package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shivani7798/JobSpy/internal/database"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestGenerate_WritesSelectedFormats(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	ts := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	artifacts, err := Generate(sampleResultSet(), Options{
		OutputDir: dir,
		BaseName:  "jobs",
		Formats:   []Format{FormatExcel, FormatJSON, FormatHTML, FormatParquet},
		Now:       fixedClock(ts),
	})
	require.NoError(t, err)
	require.Len(t, artifacts, 4)

	assert.Equal(t, filepath.Join(dir, "jobs_2025-03-14_09-26-53.xlsx"), artifacts[0].Path)
	for _, a := range artifacts {
		_, err := os.Stat(a.Path)
		assert.NoError(t, err, "artifact %s must exist", a.Path)
	}
}

func TestGenerate_CreatesOnlyImmediateFolder(t *testing.T) {
	// parent exists -> folder is created
	dir := filepath.Join(t.TempDir(), "reports")
	_, err := Generate(sampleResultSet(), Options{
		OutputDir: dir,
		BaseName:  "jobs",
		Formats:   []Format{FormatJSON},
	})
	require.NoError(t, err)

	// missing ancestor -> fatal, not silently created
	deep := filepath.Join(t.TempDir(), "a", "b", "reports")
	_, err = Generate(sampleResultSet(), Options{
		OutputDir: deep,
		BaseName:  "jobs",
		Formats:   []Format{FormatJSON},
	})
	assert.Error(t, err)
}

func TestGenerate_SQLiteAppendsAcrossRuns(t *testing.T) {
	dir := t.TempDir()
	opts := Options{
		OutputDir: dir,
		BaseName:  "jobs",
		Formats:   []Format{FormatSQLite},
	}

	_, err := Generate(sampleResultSet(), opts)
	require.NoError(t, err)
	_, err = Generate(sampleResultSet(), opts)
	require.NoError(t, err)

	store, err := database.Open(filepath.Join(dir, "jobs.db"))
	require.NoError(t, err)
	defer store.Close()

	n, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(4), n, "second run must append, not overwrite")
}

func TestGenerate_SuccessiveTimestampsDoNotCollide(t *testing.T) {
	dir := t.TempDir()
	ts := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	first, err := Generate(sampleResultSet(), Options{
		OutputDir: dir, BaseName: "jobs", Formats: []Format{FormatJSON}, Now: fixedClock(ts),
	})
	require.NoError(t, err)
	second, err := Generate(sampleResultSet(), Options{
		OutputDir: dir, BaseName: "jobs", Formats: []Format{FormatJSON}, Now: fixedClock(ts.Add(time.Second)),
	})
	require.NoError(t, err)

	assert.NotEqual(t, first[0].Path, second[0].Path)
}

func TestGenerate_Validation(t *testing.T) {
	_, err := Generate(nil, Options{OutputDir: t.TempDir(), Formats: []Format{FormatJSON}})
	assert.Error(t, err, "base name required")

	_, err = Generate(nil, Options{OutputDir: t.TempDir(), BaseName: "jobs"})
	assert.Error(t, err, "at least one format required")
}

func TestParseFormat(t *testing.T) {
	for _, ok := range []string{"xlsx", "json", "parquet", "sqlite", "html", "pdf"} {
		_, err := ParseFormat(ok)
		assert.NoError(t, err, ok)
	}
	_, err := ParseFormat("docx")
	assert.Error(t, err)
}
