package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderDocument(t *testing.T) {
	ts := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	html, err := RenderDocument("Data Engineer Jobs", sampleResultSet(), DefaultStyle(), ts)
	require.NoError(t, err)

	doc := string(html)
	assert.Contains(t, doc, "<title>Data Engineer Jobs</title>")
	assert.Contains(t, doc, "Total Jobs Found")
	assert.Contains(t, doc, "£50,000.00")
	assert.Contains(t, doc, "background: #4CAF50")
	assert.Contains(t, doc, "background: #2196F3")
	assert.Contains(t, doc, "<td>indeed</td>")
	assert.Contains(t, doc, "Generated 2025-03-14 09:26:53")
}

func TestRenderDocument_EscapesListingText(t *testing.T) {
	rs := sampleResultSet()
	rs[0].Title = `<script>alert("x")</script>`

	html, err := RenderDocument("Jobs", rs, DefaultStyle(), time.Now())
	require.NoError(t, err)
	assert.NotContains(t, string(html), "<script>alert")
}

func TestWriteDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.html")
	require.NoError(t, WriteDocument(path, "Jobs", sampleResultSet(), DefaultStyle(), time.Now()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<!DOCTYPE html>"))
}

func TestRenderDocument_Empty(t *testing.T) {
	html, err := RenderDocument("Jobs", nil, DefaultStyle(), time.Now())
	require.NoError(t, err)

	doc := string(html)
	assert.Contains(t, doc, "Listings (0)")
	assert.Contains(t, doc, "N/A")
}
